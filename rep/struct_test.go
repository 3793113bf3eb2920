package rep_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepforce/force"
	"deepforce/rep"
	"deepforce/thunk"
)

func TestForStructRejectsNonStructs(t *testing.T) {
	_, err := rep.ForStruct[int]()
	assert.ErrorIs(t, err, rep.ErrNotAStruct)

	_, err = rep.ForStruct[[]string]()
	assert.ErrorIs(t, err, rep.ErrNotAStruct)
}

func TestForStructNamesAndShapes(t *testing.T) {
	type order struct {
		ID    string
		Total int
	}

	r, err := rep.ForStruct[order]()
	require.NoError(t, err)

	assert.Equal(t, rep.ShapeMeta, r.Shape())
	assert.Equal(t, "order", r.Name())
}

func TestForStructNoExportedFieldsIsUnit(t *testing.T) {
	type opaque struct {
		hidden *thunk.Cell[int]
	}

	r, err := rep.ForStruct[opaque]()
	require.NoError(t, err)

	fn, err := rep.Compile(r)
	require.NoError(t, err)

	assert.Equal(t, force.Done{}, fn(opaque{}))
}

// The automatically derived representation and a hand-declared one over a
// structurally identical record leave values in the same forced state.
func TestForStructMatchesHandDeclaredShape(t *testing.T) {
	type derivedLine struct {
		SKU   *thunk.Cell[int]
		Qty   *thunk.Cell[int]
		Price *thunk.Cell[int]
	}
	type declaredLine struct {
		SKU   *thunk.Cell[int]
		Qty   *thunk.Cell[int]
		Price *thunk.Cell[int]
	}

	auto, err := rep.ForStruct[derivedLine]()
	require.NoError(t, err)
	require.NoError(t, rep.RegisterType(reflect.TypeFor[derivedLine](), auto))

	hand := rep.Meta("declaredLine", rep.Product(
		rep.Field(func(v any) any { return v.(declaredLine).SKU }),
		rep.Product(
			rep.Field(func(v any) any { return v.(declaredLine).Qty }),
			rep.Field(func(v any) any { return v.(declaredLine).Price }),
		),
	))
	require.NoError(t, rep.Register[declaredLine](hand))

	var dRuns, hRuns [3]int

	d := derivedLine{
		SKU:   counted(1, &dRuns[0]),
		Qty:   counted(2, &dRuns[1]),
		Price: counted(3, &dRuns[2]),
	}
	h := declaredLine{
		SKU:   counted(1, &hRuns[0]),
		Qty:   counted(2, &hRuns[1]),
		Price: counted(3, &hRuns[2]),
	}

	force.Deep(d)
	force.Deep(h)

	assert.Equal(t, dRuns, hRuns)
	for i, n := range dRuns {
		assert.Equal(t, 1, n, "field %d", i)
	}
}
