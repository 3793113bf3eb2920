package force_test

import (
	"fmt"

	"deepforce/comb"
	"deepforce/force"
	"deepforce/thunk"
)

func ExampleDeep() {
	runs := 0
	cell := thunk.New(func() int {
		runs++
		return 40 + 2
	})

	report := comb.T2[*thunk.Cell[int], string]{A: cell, B: "ready"}

	force.Deep(report)
	force.Deep(report) // idempotent: re-verification, not re-computation

	fmt.Println(cell.Get(), runs)

	// Output:
	// 42 1
}

func ExampleSeq() {
	total := thunk.New(func() int { return 1 + 2 + 3 })

	// total is fully forced before the label is handed back
	label := force.Seq(total, "invoice")

	fmt.Println(label, total.Materialized())

	// Output:
	// invoice true
}
