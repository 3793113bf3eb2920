// Package thunk models the host evaluation side of the forcing protocol: a
// deferred, memoized result cell. A Cell starts pending, computes its value
// on first access, and afterwards always observes the same result regardless
// of which caller triggered materialization.
//
// The forcing protocol only triggers and observes this transition; it never
// performs the computation itself.
package thunk

import (
	"sync"

	"deepforce/force"
)

// Cell is a compute-on-first-access, memoized result. The zero Cell is not
// usable; construct cells with New or Of.
type Cell[T any] struct {
	mu      sync.Mutex
	compute func() T
	val     T
	done    bool
	failed  bool
	reason  any // recorded panic value, re-raised unchanged on every access
}

// New returns a pending cell whose value is produced by compute on first
// access. compute must not be nil.
func New[T any](compute func() T) *Cell[T] {
	if compute == nil {
		panic("thunk: New requires a computation")
	}

	return &Cell[T]{compute: compute}
}

// Of returns an already-materialized cell holding v.
func Of[T any](v T) *Cell[T] {
	return &Cell[T]{val: v, done: true}
}

// Get materializes the cell if needed and returns its value. The computation
// runs at most once; concurrent callers block until it settles. A panic
// raised by the computation is recorded and re-raised unchanged by this and
// every later call.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.failed {
		panic(c.reason)
	}

	if !c.done {
		c.materialize()
	}

	return c.val
}

// materialize runs the computation with c.mu held.
func (c *Cell[T]) materialize() {
	raised := true
	defer func() {
		c.compute = nil

		if raised {
			c.failed = true
			c.reason = recover()
			panic(c.reason)
		}
	}()

	c.val = c.compute()
	raised = false
	c.done = true
}

// Materialized reports whether the cell has settled with a value. It stays
// false for a cell whose computation failed.
func (c *Cell[T]) Materialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.done
}

// ForceDeep materializes the cell and then forces the computed value.
func (c *Cell[T]) ForceDeep() force.Done {
	return force.Deep(c.Get())
}
