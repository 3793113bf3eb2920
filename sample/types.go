// Package sample is a small billing domain used across the repository's
// tests: invoices whose totals are deferred, memoized computations. Its
// forcing methods are generated by deepforce-gen (see the go:generate line)
// because Invoice keeps its deferred total in an unexported field.
package sample

import (
	"deepforce/comb"
	"deepforce/thunk"
)

//go:generate go run deepforce/cmd/deepforce-gen -types Money,Line,Invoice -out .

// Currency is an ISO 4217 code.
type Currency string

// Money is an amount in minor currency units.
type Money struct {
	Units    int64
	Currency Currency
}

// Line is one invoice position.
type Line struct {
	SKU   string
	Qty   int
	Price Money
}

// Invoice is a bill whose total is computed on first access.
type Invoice struct {
	Number string
	Lines  []Line
	Notes  comb.Option[string]

	total *thunk.Cell[Money]
}

// NewInvoice builds an invoice with a deferred total over its lines.
func NewInvoice(number string, lines []Line, notes comb.Option[string]) *Invoice {
	inv := &Invoice{
		Number: number,
		Lines:  lines,
		Notes:  notes,
	}

	inv.total = thunk.New(func() Money {
		var sum Money
		for _, l := range inv.Lines {
			sum.Units += l.Price.Units * int64(l.Qty)
			sum.Currency = l.Price.Currency
		}

		return sum
	})

	return inv
}

// Total materializes and returns the invoice total.
func (v *Invoice) Total() Money {
	return v.total.Get()
}

// Settled reports whether the total has been materialized.
func (v *Invoice) Settled() bool {
	return v.total.Materialized()
}
