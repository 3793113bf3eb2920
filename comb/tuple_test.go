package comb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepforce/comb"
	"deepforce/force"
	"deepforce/thunk"
)

func TestT2ForcesBothComponents(t *testing.T) {
	var aRuns int

	pair := comb.T2[*thunk.Cell[int], string]{A: counted(1, &aRuns), B: "label"}

	require.Equal(t, force.Done{}, pair.ForceDeep())
	assert.Equal(t, 1, aRuns)
}

func TestT9ForcesEveryComponent(t *testing.T) {
	runs := make([]int, 9)
	cell := func(i int) *thunk.Cell[int] { return counted(i, &runs[i]) }

	wide := comb.T9[
		*thunk.Cell[int], *thunk.Cell[int], *thunk.Cell[int],
		*thunk.Cell[int], *thunk.Cell[int], *thunk.Cell[int],
		*thunk.Cell[int], *thunk.Cell[int], *thunk.Cell[int],
	]{
		A: cell(0), B: cell(1), C: cell(2),
		D: cell(3), E: cell(4), F: cell(5),
		G: cell(6), H: cell(7), I: cell(8),
	}

	require.Equal(t, force.Done{}, wide.ForceDeep())

	for i, n := range runs {
		assert.Equal(t, 1, n, "component %d", i)
	}
}
