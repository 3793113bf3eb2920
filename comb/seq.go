package comb

import (
	"iter"

	"deepforce/force"
)

// Drain forces every element of s and runs the sequence to exhaustion. The
// spine itself must be fully traversed: a sequence that never ends makes
// Drain never return, which is the specified behavior for unbounded input.
func Drain[T any](s iter.Seq[T]) force.Done {
	for v := range s {
		force.Deep(v)
	}

	return force.Done{}
}

// Drain2 is Drain for keyed sequences; both halves of every pair are forced.
func Drain2[K, V any](s iter.Seq2[K, V]) force.Done {
	for k, v := range s {
		force.Deep(k)
		force.Deep(v)
	}

	return force.Done{}
}
