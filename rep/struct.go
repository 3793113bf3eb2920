package rep

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrNotAStruct = errors.New("automatic derivation requires a struct type")

// ForStruct derives a representation for T automatically: a meta wrapper
// carrying the type name around a right-nested product of exported-field
// projections. A struct with no exported fields derives to unit.
//
// The derived shape only reaches exported fields; types with private
// deferred state implement force.Forcer or declare a shape explicitly.
func ForStruct[T any]() (*Rep, error) {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("derive %s: %w", t, ErrNotAStruct)
	}

	var fields []*Rep
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}

		idx := i
		fields = append(fields, Field(func(v any) any {
			return reflect.ValueOf(v).Field(idx).Interface()
		}))
	}

	return Meta(t.Name(), chainProduct(fields)), nil
}

// chainProduct folds field shapes into a right-nested binary product.
func chainProduct(fields []*Rep) *Rep {
	switch len(fields) {
	case 0:
		return Unit()
	case 1:
		return fields[0]
	default:
		return Product(fields[0], chainProduct(fields[1:]))
	}
}
