package comb

import "deepforce/force"

// Either is a two-way tagged union holding exactly one of its alternatives.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns an Either populated on the left side.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right returns an Either populated on the right side.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// IsRight reports whether the right alternative is populated.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value and whether the left side is populated.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether the right side is populated.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// ForceDeep forces whichever side is populated. The absent alternative is
// never evaluated.
func (e Either[L, R]) ForceDeep() force.Done {
	if e.isRight {
		return force.Deep(e.right)
	}

	return force.Deep(e.left)
}
