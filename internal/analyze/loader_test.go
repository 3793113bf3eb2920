package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepforce/internal/analyze"
)

func TestLoadPackagesSample(t *testing.T) {
	a := analyze.NewAnalyzer()

	graph, err := a.LoadPackages("deepforce/sample")
	require.NoError(t, err)

	pkg, ok := graph.Packages["deepforce/sample"]
	require.True(t, ok)
	assert.Equal(t, "sample", pkg.Name)
	assert.NotEmpty(t, pkg.Types)

	invoice, err := a.GetStruct("deepforce/sample", "Invoice")
	require.NoError(t, err)

	byName := make(map[string]analyze.FieldInfo, len(invoice.Fields))
	for _, f := range invoice.Fields {
		byName[f.Name] = f
	}

	number, ok := byName["Number"]
	require.True(t, ok)
	assert.True(t, number.Exported)
	assert.Equal(t, analyze.TypeKindBasic, number.Type.Kind)

	lines, ok := byName["Lines"]
	require.True(t, ok)
	assert.Equal(t, analyze.TypeKindSlice, lines.Type.Kind)

	// the unexported deferred total is visible to the analyzer
	total, ok := byName["total"]
	require.True(t, ok)
	assert.False(t, total.Exported)
	assert.Equal(t, analyze.TypeKindPointer, total.Type.Kind)
}

func TestGetStructErrors(t *testing.T) {
	a := analyze.NewAnalyzer()

	_, err := a.LoadPackages("deepforce/sample")
	require.NoError(t, err)

	_, err = a.GetStruct("deepforce/sample", "Nothing")
	assert.Error(t, err)

	// Currency is a named scalar, not a struct
	_, err = a.GetStruct("deepforce/sample", "Currency")
	assert.Error(t, err)
}

func TestLoadPackagesBadPattern(t *testing.T) {
	a := analyze.NewAnalyzer()

	_, err := a.LoadPackages("deepforce/no/such/package")
	assert.Error(t, err)
}
