package analyze

import "go/types"

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "deepforce/sample"
	Name    string // e.g., "Invoice"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown TypeKind = iota
	TypeKindBasic            // int, string, bool, etc.
	TypeKindStruct           // struct type
	TypeKindPointer          // pointer to another type
	TypeKindSlice            // slice of another type
	TypeKindArray            // array of another type
	TypeKindMap              // map type
	TypeKindOpaque           // func, chan: identity-only handles
	TypeKindNamed            // named type wrapping another (alias or external)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindOpaque:
		return "opaque"
	case TypeKindNamed:
		return "named"
	default:
		return "unknown"
	}
}

// TypeInfo describes a Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier (empty for unnamed types like *T or []T)
	Kind       TypeKind    // Kind of type
	Underlying *TypeInfo   // For named types, the underlying type
	ElemType   *TypeInfo   // For pointers, slices and arrays, the element type
	Fields     []FieldInfo // For structs, the list of fields
	GoType     types.Type  // The original go/types.Type
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return t.ID.Name != ""
}

// Traversable reports whether a field of this type can transitively hold
// deferred work, i.e. whether the generated method must force it. Unnamed
// basic scalars are materialized by construction and identity-only handles
// have no decomposable content; everything else is forced.
func (t *TypeInfo) Traversable() bool {
	if t == nil {
		return false
	}

	switch t.Kind {
	case TypeKindBasic, TypeKindOpaque:
		// A named scalar may still carry a ForceDeep override.
		return t.IsNamed()
	default:
		return true
	}
}

// FieldInfo describes a struct field, exported or not.
type FieldInfo struct {
	Name     string    // Go field name
	Exported bool      // Whether the field is exported
	Type     *TypeInfo // Field type
	Embedded bool      // Whether the field is embedded (anonymous)
	Index    int       // Field index in the struct
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Named types defined in this package
}
