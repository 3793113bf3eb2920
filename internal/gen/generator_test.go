package gen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepforce/internal/analyze"
	"deepforce/internal/gen"
)

func structInfo(pkgPath, name string, fields ...analyze.FieldInfo) *analyze.TypeInfo {
	return &analyze.TypeInfo{
		ID:     analyze.TypeID{PkgPath: pkgPath, Name: name},
		Kind:   analyze.TypeKindStruct,
		Fields: fields,
	}
}

func TestGenerateMethods(t *testing.T) {
	plainString := &analyze.TypeInfo{Kind: analyze.TypeKindBasic}
	namedScalar := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "billing", Name: "Currency"},
		Kind: analyze.TypeKindBasic,
	}
	cellPtr := &analyze.TypeInfo{Kind: analyze.TypeKindPointer}

	invoice := structInfo("billing", "Invoice",
		analyze.FieldInfo{Name: "Number", Exported: true, Type: plainString, Index: 0},
		analyze.FieldInfo{Name: "Currency", Exported: true, Type: namedScalar, Index: 1},
		analyze.FieldInfo{Name: "total", Exported: false, Type: cellPtr, Index: 2},
	)

	file, err := gen.Generate("billing", []*analyze.TypeInfo{invoice})
	require.NoError(t, err)

	assert.Equal(t, gen.DefaultFilename, file.Filename)

	src := string(file.Content)
	assert.True(t, strings.HasPrefix(src, "// Code generated by deepforce-gen. DO NOT EDIT."))
	assert.Contains(t, src, "package billing")
	assert.Contains(t, src, `import "deepforce/force"`)
	assert.Contains(t, src, "func (v Invoice) ForceDeep() force.Done {")

	// plain scalars are skipped, named scalars and pointers are forced
	assert.NotContains(t, src, "force.Deep(v.Number)")
	assert.Contains(t, src, "force.Deep(v.Currency)")
	assert.Contains(t, src, "force.Deep(v.total)")
}

func TestGenerateMultipleTypes(t *testing.T) {
	cellPtr := &analyze.TypeInfo{Kind: analyze.TypeKindPointer}

	file, err := gen.Generate("billing", []*analyze.TypeInfo{
		structInfo("billing", "Money",
			analyze.FieldInfo{Name: "Amount", Exported: true, Type: cellPtr, Index: 0},
		),
		structInfo("billing", "Line",
			analyze.FieldInfo{Name: "Price", Exported: true, Type: cellPtr, Index: 0},
		),
	})
	require.NoError(t, err)

	src := string(file.Content)
	assert.Contains(t, src, "func (v Money) ForceDeep() force.Done {")
	assert.Contains(t, src, "func (v Line) ForceDeep() force.Done {")
}

func TestGenerateRejectsEmptyTypeList(t *testing.T) {
	_, err := gen.Generate("billing", nil)
	assert.ErrorIs(t, err, gen.ErrNoTypes)

	_, err = gen.Generate("billing", []*analyze.TypeInfo{})
	assert.ErrorIs(t, err, gen.ErrNoTypes)
}

func TestGenerateRejectsNonStructs(t *testing.T) {
	scalar := &analyze.TypeInfo{
		ID:   analyze.TypeID{PkgPath: "billing", Name: "Currency"},
		Kind: analyze.TypeKindBasic,
	}

	_, err := gen.Generate("billing", []*analyze.TypeInfo{scalar})
	assert.ErrorContains(t, err, "not a struct")
}
