package rep

import "deepforce/force"

// Rep is a structural representation: a finite tree of alternatives
// describing a type as nested sums and products of fields. Reps are built
// once per type at derivation time and compiled into forcing functions.
type Rep struct {
	shape ShapeEnum
	name  string
	get   func(any) any // ShapeField: project the field value out of the whole
	which func(any) int // ShapeSum: 0 selects left, 1 selects right
	left  *Rep
	right *Rep
	inner *Rep
}

// Empty is the uninhabited shape. A value of this shape cannot exist;
// compiling it yields an implementation that reports a derivation bug if it
// is ever invoked.
func Empty() *Rep {
	return &Rep{shape: ShapeEmpty}
}

// Unit is the constant shape with no fields.
func Unit() *Rep {
	return &Rep{shape: ShapeUnit}
}

// Field describes a single field of a forceable type, projected out of the
// enclosing value by get.
func Field(get func(any) any) *Rep {
	return &Rep{shape: ShapeField, get: get}
}

// Product describes a value carrying both sub-shapes.
func Product(left, right *Rep) *Rep {
	return &Rep{shape: ShapeProduct, left: left, right: right}
}

// Sum describes a value carrying exactly one of two alternatives; which
// inspects the value and returns 0 for the left alternative, 1 for the
// right.
func Sum(which func(any) int, left, right *Rep) *Rep {
	return &Rep{shape: ShapeSum, which: which, left: left, right: right}
}

// Meta attaches a name to the wrapped sub-shape. Forcing strips the wrapper
// and delegates to the inner representation.
func Meta(name string, inner *Rep) *Rep {
	return &Rep{shape: ShapeMeta, name: name, inner: inner}
}

// Shape returns the representation's own alternative.
func (r *Rep) Shape() ShapeEnum {
	return r.shape
}

// Name returns the metadata name, empty unless the shape is ShapeMeta.
func (r *Rep) Name() string {
	return r.name
}

// ForceDeep makes representation trees themselves forceable values: it
// walks every child representation and the interned name metadata. The
// projection and selector functions are identity-only handles.
func (r *Rep) ForceDeep() force.Done {
	force.Deep(r.name)
	force.Deep(r.get)
	force.Deep(r.which)

	if r.left != nil {
		r.left.ForceDeep()
	}
	if r.right != nil {
		r.right.ForceDeep()
	}
	if r.inner != nil {
		r.inner.ForceDeep()
	}

	return force.Done{}
}
