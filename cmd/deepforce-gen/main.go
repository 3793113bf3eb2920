// Package main provides the CLI entrypoint for deepforce-gen.
//
// deepforce-gen generates ForceDeep methods for struct types so they can be
// forced without reflection and with full access to unexported fields.
// Intended for go:generate lines, stringer-style:
//
//	//go:generate go run deepforce/cmd/deepforce-gen -types Invoice,Line -out .
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"deepforce/internal/analyze"
	"deepforce/internal/gen"
)

func main() {
	var (
		pkgPattern = flag.String("pkg", ".", "package pattern to analyze")
		typeNames  = flag.String("types", "", "comma-separated struct type names (default: all exported structs)")
		outDir     = flag.String("out", ".", "output directory for the generated file")
		outName    = flag.String("name", gen.DefaultFilename, "filename of the generated file")
	)
	flag.Parse()

	err := run(*pkgPattern, *typeNames, *outDir, *outName)
	if err != nil {
		fmt.Fprintln(os.Stderr, "deepforce-gen:", err)
		os.Exit(1)
	}
}

func run(pkgPattern, typeNames, outDir, filename string) error {
	analyzer := analyze.NewAnalyzer()

	graph, err := analyzer.LoadPackages(pkgPattern)
	if err != nil {
		return err
	}

	pkg, err := singlePackage(graph)
	if err != nil {
		return err
	}

	infos, err := selectTypes(graph, pkg, typeNames)
	if err != nil {
		return err
	}

	file, err := gen.Generate(pkg.Name, infos)
	if err != nil {
		return err
	}

	if filename != "" {
		file.Filename = filename
	}

	return gen.WriteFiles([]gen.GeneratedFile{file}, outDir)
}

func singlePackage(graph *analyze.TypeGraph) (*analyze.PackageInfo, error) {
	if len(graph.Packages) != 1 {
		return nil, fmt.Errorf("expected exactly one package, analyzed %d", len(graph.Packages))
	}

	for _, pkg := range graph.Packages {
		return pkg, nil
	}

	return nil, fmt.Errorf("no packages analyzed")
}

func selectTypes(graph *analyze.TypeGraph, pkg *analyze.PackageInfo, typeNames string) ([]*analyze.TypeInfo, error) {
	var infos []*analyze.TypeInfo

	if typeNames == "" {
		for _, id := range pkg.Types {
			info := graph.GetType(id)
			if info.Kind == analyze.TypeKindStruct {
				infos = append(infos, info)
			}
		}

		return infos, nil
	}

	for _, name := range strings.Split(typeNames, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		info := graph.GetType(analyze.TypeID{PkgPath: pkg.Path, Name: name})
		if info == nil {
			return nil, fmt.Errorf("type %s not found in %s", name, pkg.Path)
		}
		if info.Kind != analyze.TypeKindStruct {
			return nil, fmt.Errorf("type %s is not a struct (kind: %s)", name, info.Kind)
		}

		infos = append(infos, info)
	}

	return infos, nil
}
