package comb

import "deepforce/force"

// Option is an optional value: either Some(v) or None.
type Option[T any] struct {
	val T
	ok  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{val: v, ok: true}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.ok
}

// Or returns the contained value, or fallback when absent.
func (o Option[T]) Or(fallback T) T {
	if o.ok {
		return o.val
	}

	return fallback
}

// ForceDeep forces the contained value when present; an absent option is
// already forced.
func (o Option[T]) ForceDeep() force.Done {
	if o.ok {
		return force.Deep(o.val)
	}

	return force.Done{}
}
