package comb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepforce/comb"
	"deepforce/force"
	"deepforce/thunk"
)

func TestSumProd(t *testing.T) {
	s := comb.Sum[int]{Value: 10}.Add(5).Add(-3)
	assert.Equal(t, 12, s.Value)
	assert.Equal(t, force.Done{}, s.ForceDeep())

	p := comb.Prod[float64]{Value: 2}.Mul(3).Mul(0.5)
	assert.InDelta(t, 3.0, p.Value, 1e-9)
	assert.Equal(t, force.Done{}, p.ForceDeep())
}

func TestMinMax(t *testing.T) {
	lo := comb.Min[int]{Value: 5}.Pick(9).Pick(2).Pick(7)
	assert.Equal(t, 2, lo.Value)

	hi := comb.Max[string]{Value: "b"}.Pick("a").Pick("c")
	assert.Equal(t, "c", hi.Value)
}

func TestFirstLastMerge(t *testing.T) {
	a := comb.First[int]{Value: comb.Some(1)}
	b := comb.First[int]{Value: comb.Some(2)}
	empty := comb.First[int]{}

	assert.Equal(t, 1, a.Merge(b).Value.Or(0))
	assert.Equal(t, 2, empty.Merge(b).Value.Or(0))

	x := comb.Last[int]{Value: comb.Some(1)}
	y := comb.Last[int]{Value: comb.Some(2)}
	blank := comb.Last[int]{}

	assert.Equal(t, 2, x.Merge(y).Value.Or(0))
	assert.Equal(t, 1, x.Merge(blank).Value.Or(0))
}

func TestWrapperForcingReachesContents(t *testing.T) {
	var firstRuns, lastRuns, revRuns, idRuns, constRuns int

	first := comb.First[*thunk.Cell[int]]{Value: comb.Some(counted(1, &firstRuns))}
	require.Equal(t, force.Done{}, first.ForceDeep())
	assert.Equal(t, 1, firstRuns)

	last := comb.Last[*thunk.Cell[int]]{Value: comb.Some(counted(2, &lastRuns))}
	require.Equal(t, force.Done{}, last.ForceDeep())
	assert.Equal(t, 1, lastRuns)

	rev := comb.Reverse[*thunk.Cell[int]]{Value: counted(3, &revRuns)}
	require.Equal(t, force.Done{}, rev.ForceDeep())
	assert.Equal(t, 1, revRuns)

	id := comb.Identity[*thunk.Cell[int]]{Value: counted(4, &idRuns)}
	require.Equal(t, force.Done{}, id.ForceDeep())
	assert.Equal(t, 1, idRuns)

	phantom := comb.Const[*thunk.Cell[int], string]{Value: counted(5, &constRuns)}
	require.Equal(t, force.Done{}, phantom.ForceDeep())
	assert.Equal(t, 1, constRuns)
}

func TestFixed(t *testing.T) {
	f := comb.Fixed{Units: 1995}
	assert.Equal(t, force.Done{}, f.ForceDeep())
}

func TestNewRatio(t *testing.T) {
	r, err := comb.NewRatio(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Num)
	assert.Equal(t, 4, r.Den)
	assert.Equal(t, force.Done{}, r.ForceDeep())

	_, err = comb.NewRatio(1, 0)
	assert.ErrorIs(t, err, comb.ErrZeroDenominator)
}
