package shapefile

import (
	"errors"
	"fmt"
	"reflect"

	"deepforce/rep"
)

var (
	ErrUnknownType     = errors.New("type name is not registered")
	ErrNotAStruct      = errors.New("declared type is not a struct")
	ErrEmptyNode       = errors.New("shape node declares no alternative")
	ErrAmbiguousNode   = errors.New("shape node declares more than one alternative")
	ErrEmptyProduct    = errors.New("product node has no children")
	ErrMetaWithoutOf   = errors.New("meta node has no wrapped shape")
	ErrNoSuchField     = errors.New("field does not exist on the declared type")
	ErrUnexportedField = errors.New("field is not exported")
	ErrBadTagField     = errors.New("sum tag field must be bool or integer")
)

// Registry maps the names a shape file may refer to onto Go types.
type Registry struct {
	types map[string]reflect.Type
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]reflect.Type)}
}

// Add registers t under name, replacing any previous entry.
func (r *Registry) Add(name string, t reflect.Type) {
	r.types[name] = t
}

// AddType registers T under name.
func AddType[T any](r *Registry, name string) {
	r.Add(name, reflect.TypeFor[T]())
}

// Lookup resolves a declared type name.
func (r *Registry) Lookup(name string) (reflect.Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Apply builds, compiles and registers the derived implementation for every
// shape declared in f. It stops at the first invalid declaration.
func Apply(f *File, reg *Registry) error {
	for _, ts := range f.Shapes {
		t, ok := reg.Lookup(ts.Type)
		if !ok {
			return fmt.Errorf("shape for %q: %w", ts.Type, ErrUnknownType)
		}

		r, err := Build(ts, t)
		if err != nil {
			return err
		}

		err = rep.RegisterType(t, r)
		if err != nil {
			return fmt.Errorf("shape for %q: %w", ts.Type, err)
		}
	}

	return nil
}

// Build validates the declared shape against the reflect type and produces
// its representation tree.
func Build(ts TypeShape, t reflect.Type) (*rep.Rep, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("shape for %q (%s): %w", ts.Type, t, ErrNotAStruct)
	}

	r, err := buildNode(ts.Shape, t)
	if err != nil {
		return nil, fmt.Errorf("shape for %q: %w", ts.Type, err)
	}

	return r, nil
}

func buildNode(n Node, t reflect.Type) (*rep.Rep, error) {
	set := 0
	if n.Unit {
		set++
	}
	if n.Field != "" {
		set++
	}
	if len(n.Product) > 0 {
		set++
	}
	if n.Sum != nil {
		set++
	}
	if n.Meta != "" {
		set++
	}

	switch {
	case set == 0:
		return nil, ErrEmptyNode
	case set > 1:
		return nil, ErrAmbiguousNode
	}

	switch {
	default:
		return nil, ErrEmptyNode

	case n.Unit:
		return rep.Unit(), nil

	case n.Field != "":
		get, err := fieldAccessor(t, n.Field)
		if err != nil {
			return nil, err
		}

		return rep.Field(get), nil

	case len(n.Product) > 0:
		return buildProduct(n.Product, t)

	case n.Sum != nil:
		return buildSum(n.Sum, t)

	case n.Meta != "":
		if n.Of == nil {
			return nil, fmt.Errorf("meta %q: %w", n.Meta, ErrMetaWithoutOf)
		}

		inner, err := buildNode(*n.Of, t)
		if err != nil {
			return nil, fmt.Errorf("meta %q: %w", n.Meta, err)
		}

		return rep.Meta(n.Meta, inner), nil
	}
}

func buildProduct(children []Node, t reflect.Type) (*rep.Rep, error) {
	if len(children) == 0 {
		return nil, ErrEmptyProduct
	}

	reps := make([]*rep.Rep, 0, len(children))
	for i, child := range children {
		r, err := buildNode(child, t)
		if err != nil {
			return nil, fmt.Errorf("product child %d: %w", i, err)
		}

		reps = append(reps, r)
	}

	// fold right into binary products
	out := reps[len(reps)-1]
	for i := len(reps) - 2; i >= 0; i-- {
		out = rep.Product(reps[i], out)
	}

	return out, nil
}

func buildSum(s *SumNode, t reflect.Type) (*rep.Rep, error) {
	which, err := tagSelector(t, s.Tag)
	if err != nil {
		return nil, err
	}

	left, err := buildNode(s.Left, t)
	if err != nil {
		return nil, fmt.Errorf("sum left: %w", err)
	}

	right, err := buildNode(s.Right, t)
	if err != nil {
		return nil, fmt.Errorf("sum right: %w", err)
	}

	return rep.Sum(which, left, right), nil
}

// fieldAccessor builds the projection for an exported struct field.
func fieldAccessor(t reflect.Type, name string) (func(any) any, error) {
	sf, ok := t.FieldByName(name)
	if !ok {
		return nil, fmt.Errorf("field %q on %s: %w", name, t, ErrNoSuchField)
	}
	if !sf.IsExported() {
		return nil, fmt.Errorf("field %q on %s: %w", name, t, ErrUnexportedField)
	}

	idx := sf.Index

	return func(v any) any {
		return reflect.ValueOf(v).FieldByIndex(idx).Interface()
	}, nil
}

// tagSelector builds the sum discriminator from a bool or integer field.
func tagSelector(t reflect.Type, name string) (func(any) int, error) {
	sf, ok := t.FieldByName(name)
	if !ok {
		return nil, fmt.Errorf("tag %q on %s: %w", name, t, ErrNoSuchField)
	}
	if !sf.IsExported() {
		return nil, fmt.Errorf("tag %q on %s: %w", name, t, ErrUnexportedField)
	}

	idx := sf.Index

	switch sf.Type.Kind() {
	default:
		return nil, fmt.Errorf("tag %q on %s is %s: %w", name, t, sf.Type.Kind(), ErrBadTagField)

	case reflect.Bool:
		return func(v any) int {
			if reflect.ValueOf(v).FieldByIndex(idx).Bool() {
				return 1
			}

			return 0
		}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(v any) int {
			if reflect.ValueOf(v).FieldByIndex(idx).Int() != 0 {
				return 1
			}

			return 0
		}, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return func(v any) int {
			if reflect.ValueOf(v).FieldByIndex(idx).Uint() != 0 {
				return 1
			}

			return 0
		}, nil
	}
}
