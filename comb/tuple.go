package comb

import "deepforce/force"

// Fixed-arity tuples T2 through T9. Forcing a tuple forces every component;
// the relative order is unspecified, but all components complete before
// ForceDeep returns.

type T2[A, B any] struct {
	A A
	B B
}

func (t T2[A, B]) ForceDeep() force.Done {
	force.Deep(t.A)
	force.Deep(t.B)

	return force.Done{}
}

type T3[A, B, C any] struct {
	A A
	B B
	C C
}

func (t T3[A, B, C]) ForceDeep() force.Done {
	force.Deep(t.A)
	force.Deep(t.B)
	force.Deep(t.C)

	return force.Done{}
}

type T4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

func (t T4[A, B, C, D]) ForceDeep() force.Done {
	force.Deep(t.A)
	force.Deep(t.B)
	force.Deep(t.C)
	force.Deep(t.D)

	return force.Done{}
}

type T5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

func (t T5[A, B, C, D, E]) ForceDeep() force.Done {
	force.Deep(t.A)
	force.Deep(t.B)
	force.Deep(t.C)
	force.Deep(t.D)
	force.Deep(t.E)

	return force.Done{}
}

type T6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

func (t T6[A, B, C, D, E, F]) ForceDeep() force.Done {
	force.Deep(t.A)
	force.Deep(t.B)
	force.Deep(t.C)
	force.Deep(t.D)
	force.Deep(t.E)
	force.Deep(t.F)

	return force.Done{}
}

type T7[A, B, C, D, E, F, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

func (t T7[A, B, C, D, E, F, G]) ForceDeep() force.Done {
	force.Deep(t.A)
	force.Deep(t.B)
	force.Deep(t.C)
	force.Deep(t.D)
	force.Deep(t.E)
	force.Deep(t.F)
	force.Deep(t.G)

	return force.Done{}
}

type T8[A, B, C, D, E, F, G, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

func (t T8[A, B, C, D, E, F, G, H]) ForceDeep() force.Done {
	force.Deep(t.A)
	force.Deep(t.B)
	force.Deep(t.C)
	force.Deep(t.D)
	force.Deep(t.E)
	force.Deep(t.F)
	force.Deep(t.G)
	force.Deep(t.H)

	return force.Done{}
}

type T9[A, B, C, D, E, F, G, H, I any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
}

func (t T9[A, B, C, D, E, F, G, H, I]) ForceDeep() force.Done {
	force.Deep(t.A)
	force.Deep(t.B)
	force.Deep(t.C)
	force.Deep(t.D)
	force.Deep(t.E)
	force.Deep(t.F)
	force.Deep(t.G)
	force.Deep(t.H)
	force.Deep(t.I)

	return force.Done{}
}
