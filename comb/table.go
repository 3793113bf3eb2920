package comb

import (
	"errors"
	"fmt"

	"deepforce/force"
)

var (
	ErrBounds     = errors.New("table upper bound is below lower bound - 1")
	ErrIndexRange = errors.New("index outside table bounds")
)

// Table is an indexable fixed-range table: elements stored under indices
// lo..hi inclusive. hi == lo-1 denotes an empty table.
type Table[T any] struct {
	lo, hi int
	cells  []T
}

// NewTable allocates a table covering the inclusive index range [lo, hi].
func NewTable[T any](lo, hi int) (*Table[T], error) {
	if hi < lo-1 {
		return nil, fmt.Errorf("table bounds (%d, %d): %w", lo, hi, ErrBounds)
	}

	return &Table[T]{lo: lo, hi: hi, cells: make([]T, hi-lo+1)}, nil
}

// Bounds returns the inclusive index range of the table.
func (t *Table[T]) Bounds() (lo, hi int) {
	return t.lo, t.hi
}

// Len returns the number of stored elements.
func (t *Table[T]) Len() int {
	return len(t.cells)
}

// At returns the element stored under index i.
func (t *Table[T]) At(i int) (T, error) {
	if i < t.lo || i > t.hi {
		var zero T
		return zero, fmt.Errorf("index %d in (%d, %d): %w", i, t.lo, t.hi, ErrIndexRange)
	}

	return t.cells[i-t.lo], nil
}

// Set stores v under index i.
func (t *Table[T]) Set(i int, v T) error {
	if i < t.lo || i > t.hi {
		return fmt.Errorf("index %d in (%d, %d): %w", i, t.lo, t.hi, ErrIndexRange)
	}

	t.cells[i-t.lo] = v

	return nil
}

// ForceDeep forces the index-range bounds and every stored element, walking
// the whole backing spine.
func (t *Table[T]) ForceDeep() force.Done {
	force.Deep(t.lo)
	force.Deep(t.hi)

	for i := range t.cells {
		force.Deep(t.cells[i])
	}

	return force.Done{}
}
