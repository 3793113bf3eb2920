package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"text/template"

	"deepforce/internal/analyze"
)

var ErrNoTypes = errors.New("no struct types to generate methods for")

// ForceImport is the import path of the protocol package referenced by
// generated methods.
const ForceImport = "deepforce/force"

// DefaultFilename is the conventional name for a generated forcing file.
const DefaultFilename = "zz_generated.deepforce.go"

// GeneratedFile is one emitted source file.
type GeneratedFile struct {
	Filename string
	Content  []byte
}

var methodsTmpl = template.Must(template.New("methods").Parse(`// Code generated by deepforce-gen. DO NOT EDIT.

package {{.Package}}

import "{{.ForceImport}}"
{{range .Types}}
// ForceDeep forces every traversable field of {{.Name}}.
func (v {{.Name}}) ForceDeep() force.Done {
{{- range .Fields}}
	force.Deep(v.{{.}})
{{- end}}
	return force.Done{}
}
{{end}}`))

type fileView struct {
	Package     string
	ForceImport string
	Types       []typeView
}

type typeView struct {
	Name   string
	Fields []string
}

// Generate emits ForceDeep methods for the given struct types into a single
// file belonging to pkgName. At least one type is required: a file with no
// methods would not compile, its protocol import being unused.
func Generate(pkgName string, infos []*analyze.TypeInfo) (GeneratedFile, error) {
	if len(infos) == 0 {
		return GeneratedFile{}, fmt.Errorf("package %s: %w", pkgName, ErrNoTypes)
	}

	view := fileView{
		Package:     pkgName,
		ForceImport: ForceImport,
	}

	for _, info := range infos {
		if info.Kind != analyze.TypeKindStruct {
			return GeneratedFile{}, fmt.Errorf("type %s is not a struct (kind: %s)", info.ID, info.Kind)
		}

		tv := typeView{Name: info.ID.Name}
		for _, f := range info.Fields {
			if !f.Type.Traversable() {
				continue
			}

			tv.Fields = append(tv.Fields, f.Name)
		}

		view.Types = append(view.Types, tv)
	}

	var buf bytes.Buffer
	err := methodsTmpl.Execute(&buf, view)
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("executing methods template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("formatting generated source: %w", err)
	}

	return GeneratedFile{Filename: DefaultFilename, Content: src}, nil
}
