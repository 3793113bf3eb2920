package rep

import (
	"errors"
	"fmt"
	"reflect"

	"deepforce/force"
)

var (
	ErrNilRep      = errors.New("representation is nil")
	ErrNilChild    = errors.New("product or sum child representation is nil")
	ErrNilInner    = errors.New("meta wrapper inner representation is nil")
	ErrNilAccessor = errors.New("field shape has no projection")
	ErrNilSelector = errors.New("sum shape has no alternative selector")
	ErrBadShape    = errors.New("representation has an invalid shape")
)

// Compile synthesizes a forcing implementation from r by structural
// recursion. The resulting function honors the shape semantics: products
// force both sides before returning (relative order unspecified), sums force
// only the alternative the value holds, meta wrappers are stripped, unit is
// a no-op, and the empty shape reports a derivation bug if ever invoked.
func Compile(r *Rep) (func(any) force.Done, error) {
	if r == nil {
		return nil, ErrNilRep
	}

	switch r.shape {
	default:
		return nil, fmt.Errorf("shape %d: %w", int(r.shape), ErrBadShape)

	case ShapeEmpty:
		return func(any) force.Done {
			// Reaching this means a value of an uninhabited shape exists:
			// the representation, not the caller, is wrong.
			panic("rep: uninhabited shape invoked; the registered representation is inconsistent with the type")
		}, nil

	case ShapeUnit:
		return func(any) force.Done { return force.Done{} }, nil

	case ShapeField:
		if r.get == nil {
			return nil, ErrNilAccessor
		}

		get := r.get

		return func(v any) force.Done { return force.Deep(get(v)) }, nil

	case ShapeProduct:
		left, err := compileChild(r.left)
		if err != nil {
			return nil, fmt.Errorf("product left: %w", err)
		}

		right, err := compileChild(r.right)
		if err != nil {
			return nil, fmt.Errorf("product right: %w", err)
		}

		return func(v any) force.Done {
			left(v)
			right(v)

			return force.Done{}
		}, nil

	case ShapeSum:
		if r.which == nil {
			return nil, ErrNilSelector
		}

		left, err := compileChild(r.left)
		if err != nil {
			return nil, fmt.Errorf("sum left: %w", err)
		}

		right, err := compileChild(r.right)
		if err != nil {
			return nil, fmt.Errorf("sum right: %w", err)
		}

		which := r.which

		return func(v any) force.Done {
			switch which(v) {
			default:
				panic("rep: sum selector returned an alternative other than 0 or 1")
			case 0:
				return left(v)
			case 1:
				return right(v)
			}
		}, nil

	case ShapeMeta:
		if r.inner == nil {
			return nil, ErrNilInner
		}

		inner, err := Compile(r.inner)
		if err != nil {
			return nil, fmt.Errorf("meta %q: %w", r.name, err)
		}

		return inner, nil
	}
}

// compileChild treats a nil product/sum child as ErrNilChild rather than
// ErrNilRep, so the wrapped error names the actual mistake.
func compileChild(r *Rep) (func(any) force.Done, error) {
	if r == nil {
		return nil, ErrNilChild
	}

	return Compile(r)
}

// RegisterType compiles r and installs it as the derived implementation for
// t in the protocol registry.
func RegisterType(t reflect.Type, r *Rep) error {
	fn, err := Compile(r)
	if err != nil {
		return fmt.Errorf("derive %s: %w", t, err)
	}

	force.RegisterDerived(t, fn)

	return nil
}

// Register is the declarative per-type opt-in: supply a representation once
// and every force.Deep over T dispatches to the derived implementation.
func Register[T any](r *Rep) error {
	return RegisterType(reflect.TypeFor[T](), r)
}
