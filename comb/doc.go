// Package comb provides hand-written forcing combinators for the standard
// composite shapes: optionals, two-way tagged unions, fixed-arity tuples,
// bounded tables, single-field accumulator wrappers, paired-component
// numbers and lazy sequences.
//
// Every type here implements force.Forcer explicitly, either because its
// state is private (Option, Either, Table) or because its forcing has a
// short-circuit rule the generic engine must not second-guess (a union
// forces only the side that is populated).
package comb
