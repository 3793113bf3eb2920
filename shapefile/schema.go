package shapefile

// File represents the root of a YAML shape definition file.
type File struct {
	// Version of the shapefile schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Shapes is the list of per-type shape declarations.
	Shapes []TypeShape `yaml:"shapes"`
}

// TypeShape declares the structural representation of one registered type.
type TypeShape struct {
	// Type is the registered name of the Go type (e.g. "sample.Invoice").
	Type string `yaml:"type"`

	// Shape is the root node of the representation tree.
	Shape Node `yaml:"shape"`
}

// Node is one alternative of the representation tree. Exactly one of its
// markers must be set.
type Node struct {
	// Unit marks a constant shape with no fields.
	Unit bool `yaml:"unit,omitempty"`

	// Field names a struct field of a forceable type.
	Field string `yaml:"field,omitempty"`

	// Product lists sub-shapes that are all present; folded right into
	// binary products.
	Product []Node `yaml:"product,omitempty"`

	// Sum declares a two-way alternative chosen by a tag field.
	Sum *SumNode `yaml:"sum,omitempty"`

	// Meta attaches a name to the node given in Of.
	Meta string `yaml:"meta,omitempty"`

	// Of is the sub-shape wrapped by Meta.
	Of *Node `yaml:"of,omitempty"`
}

// SumNode declares a tagged two-way union.
type SumNode struct {
	// Tag names a bool or integer struct field selecting the alternative:
	// false/0 picks Left, anything else picks Right.
	Tag string `yaml:"tag"`

	Left  Node `yaml:"left"`
	Right Node `yaml:"right"`
}
