package comb

import (
	"cmp"
	"errors"
	"fmt"

	"deepforce/force"
)

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Single-field wrappers. Forcing any of them forces the one contained field.

// Sum is an additive accumulator wrapper.
type Sum[T number] struct{ Value T }

func (s Sum[T]) Add(v T) Sum[T] { return Sum[T]{Value: s.Value + v} }

func (s Sum[T]) ForceDeep() force.Done { return force.Deep(s.Value) }

// Prod is a multiplicative accumulator wrapper.
type Prod[T number] struct{ Value T }

func (p Prod[T]) Mul(v T) Prod[T] { return Prod[T]{Value: p.Value * v} }

func (p Prod[T]) ForceDeep() force.Done { return force.Deep(p.Value) }

// Min keeps the smallest value seen.
type Min[T cmp.Ordered] struct{ Value T }

func (m Min[T]) Pick(v T) Min[T] { return Min[T]{Value: min(m.Value, v)} }

func (m Min[T]) ForceDeep() force.Done { return force.Deep(m.Value) }

// Max keeps the largest value seen.
type Max[T cmp.Ordered] struct{ Value T }

func (m Max[T]) Pick(v T) Max[T] { return Max[T]{Value: max(m.Value, v)} }

func (m Max[T]) ForceDeep() force.Done { return force.Deep(m.Value) }

// First is a first-wins wrapper around an optional value.
type First[T any] struct{ Value Option[T] }

func (f First[T]) Merge(other First[T]) First[T] {
	if f.Value.IsSome() {
		return f
	}

	return other
}

func (f First[T]) ForceDeep() force.Done { return force.Deep(f.Value) }

// Last is a last-wins wrapper around an optional value.
type Last[T any] struct{ Value Option[T] }

func (l Last[T]) Merge(other Last[T]) Last[T] {
	if other.Value.IsSome() {
		return other
	}

	return l
}

func (l Last[T]) ForceDeep() force.Done { return force.Deep(l.Value) }

// Reverse inverts the ordering of its contained value.
type Reverse[T any] struct{ Value T }

func (r Reverse[T]) ForceDeep() force.Done { return force.Deep(r.Value) }

// Fixed is a fixed-point quantity stored as scaled integer units.
type Fixed struct{ Units int64 }

func (f Fixed) ForceDeep() force.Done { return force.Deep(f.Units) }

// Identity wraps a value without altering its meaning.
type Identity[T any] struct{ Value T }

func (i Identity[T]) ForceDeep() force.Done { return force.Deep(i.Value) }

// Const holds a value of type A while carrying phantom type B.
type Const[A, B any] struct{ Value A }

func (c Const[A, B]) ForceDeep() force.Done { return force.Deep(c.Value) }

var ErrZeroDenominator = errors.New("ratio denominator is zero")

// Ratio is a rational number as a numerator/denominator pair.
type Ratio[T integer] struct {
	Num, Den T
}

// NewRatio builds a ratio, rejecting a zero denominator.
func NewRatio[T integer](num, den T) (Ratio[T], error) {
	if den == 0 {
		return Ratio[T]{}, fmt.Errorf("ratio %d/%d: %w", num, den, ErrZeroDenominator)
	}

	return Ratio[T]{Num: num, Den: den}, nil
}

// ForceDeep forces both components.
func (r Ratio[T]) ForceDeep() force.Done {
	force.Deep(r.Num)
	force.Deep(r.Den)

	return force.Done{}
}
