package rep

//go:generate go tool stringer -type=ShapeEnum -output=shape_string.go

type ShapeEnum int

const (
	_ ShapeEnum = iota // skip zero value, use it as a default (invalid) value for ShapeEnum

	ShapeEmpty   // uninhabited: no value of this shape can exist
	ShapeUnit    // constant with no fields
	ShapeField   // a single field of a forceable type
	ShapeProduct // both sub-shapes present
	ShapeSum     // exactly one of two alternatives present
	ShapeMeta    // name wrapper around one sub-shape

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)
