package force

import (
	"reflect"
	"sync"

	"deepforce/primitive"
)

// Done is the terminal marker: it carries no information beyond "forcing
// completed".
type Done struct{}

// Forcer is the per-type override hook of the protocol. A type implements it
// when the default shape-driven traversal cannot see its structure (private
// deferred cells) or when it needs short-circuit behavior (tagged unions).
//
// ForceDeep must force every sub-value of the receiver's active shape before
// returning, and must be idempotent: re-forcing re-verifies, never
// re-computes.
type Forcer interface {
	ForceDeep() Done
}

var (
	derivedMu sync.RWMutex
	derived   map[reflect.Type]func(any) Done
)

// RegisterDerived installs a derived implementation for t, replacing any
// previous one. Derived implementations are produced once per type at
// derivation time (see deepforce/rep) and consulted by Deep after a Forcer
// override and before the kind-driven engine.
func RegisterDerived(t reflect.Type, fn func(any) Done) {
	if t == nil || fn == nil {
		panic("force: RegisterDerived requires both a type and an implementation")
	}

	derivedMu.Lock()
	defer derivedMu.Unlock()

	if derived == nil {
		derived = make(map[reflect.Type]func(any) Done)
	}
	derived[t] = fn
}

func lookupDerived(t reflect.Type) func(any) Done {
	derivedMu.RLock()
	defer derivedMu.RUnlock()

	return derived[t]
}

// Deep forces v and everything reachable from it, bottoming out at the
// atomic catalog. It is synchronous and blocking, safe to call from
// concurrent goroutines converging on shared sub-values, and idempotent.
func Deep(v any) Done {
	if v == nil {
		return Done{}
	}

	return deepValue(reflect.ValueOf(v))
}

func deepValue(v reflect.Value) Done {
	t := v.Type()

	// A nil value has nothing reachable; checked before the Forcer probe so
	// a typed nil pointer never receives a method call.
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return Done{}
		}
	}

	if v.CanInterface() {
		if f, ok := v.Interface().(Forcer); ok {
			return f.ForceDeep()
		}

		if fn := lookupDerived(t); fn != nil {
			return fn(v.Interface())
		}
	}

	// Atomic entries are forced by a single observation step: the value is
	// already in canonical form and has no further structure.
	if primitive.FromReflectType(t) != 0 || primitive.AtomicKind(t.Kind()) || primitive.IsTypeToken(t) {
		return Done{}
	}

	switch t.Kind() {
	case reflect.Pointer, reflect.Interface:
		return deepValue(v.Elem())

	case reflect.Slice, reflect.Array:
		// The spine is walked to its end even when elements are atomic: a
		// partially walked collection is not fully forced.
		for i := 0; i < v.Len(); i++ {
			deepValue(v.Index(i))
		}

		return Done{}

	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			deepValue(iter.Key())
			deepValue(iter.Value())
		}

		return Done{}

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			// Unexported fields are internals the engine cannot see; types
			// holding deferred state there implement Forcer or register a
			// derived shape instead.
			if !t.Field(i).IsExported() {
				continue
			}

			deepValue(v.Field(i))
		}

		return Done{}

	default:
		// Named scalars and anything else without declared structure.
		return Done{}
	}
}
