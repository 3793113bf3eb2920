// Package primitive catalogs the atomic kinds of the forcing protocol:
// types with no forceable structure beyond their own representation.
//
// The catalog covers:
//   - fixed-width signed/unsigned integers of every standard width
//   - the platform-dependent scalars int, uint and uintptr (size and
//     pointer-difference values)
//   - float32/float64 and the native complex64/complex128 pairs
//   - bool, string, the unit type struct{}
//   - time.Time and time.Duration as the clock scalars
//
// rune and byte are aliases of int32 and uint8 and resolve to those entries.
// Identity-only handles (function values, channels, unsafe pointers and
// reflect.Type fingerprints) carry no decomposable content either; they are
// classified by AtomicKind and IsTypeToken rather than by exact type, since
// their concrete types are unbounded.
//
// These entries must be declared atomic explicitly: a structural engine left
// to recurse into them would reach private internals it cannot see.
package primitive

import (
	"reflect"
	"time"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindUintptr
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
	KindBool
	KindString
	KindUnit
	KindTime
	KindDuration

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsComplex() bool {
	switch k {
	default:
		return false
	case KindComplex64, KindComplex128:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindUintptr:
		return true
	}
}

// IsClock reports whether the kind is one of the time scalars.
func (k KindEnum) IsClock() bool {
	return k == KindTime || k == KindDuration
}

// FromReflectType classifies rtype against the catalog. It matches exact
// types only: a named type whose underlying type is atomic is not claimed
// here, because it may carry its own ForceDeep override.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype {
	default:
		return 0
	case reflect.TypeFor[int]():
		return KindInt
	case reflect.TypeFor[int8]():
		return KindInt8
	case reflect.TypeFor[int16]():
		return KindInt16
	case reflect.TypeFor[int32](): // also rune
		return KindInt32
	case reflect.TypeFor[int64]():
		return KindInt64
	case reflect.TypeFor[uint]():
		return KindUint
	case reflect.TypeFor[uint8](): // also byte
		return KindUint8
	case reflect.TypeFor[uint16]():
		return KindUint16
	case reflect.TypeFor[uint32]():
		return KindUint32
	case reflect.TypeFor[uint64]():
		return KindUint64
	case reflect.TypeFor[uintptr]():
		return KindUintptr
	case reflect.TypeFor[float32]():
		return KindFloat32
	case reflect.TypeFor[float64]():
		return KindFloat64
	case reflect.TypeFor[complex64]():
		return KindComplex64
	case reflect.TypeFor[complex128]():
		return KindComplex128
	case reflect.TypeFor[bool]():
		return KindBool
	case reflect.TypeFor[string]():
		return KindString
	case reflect.TypeFor[struct{}]():
		return KindUnit
	case reflect.TypeFor[time.Time]():
		return KindTime
	case reflect.TypeFor[time.Duration]():
		return KindDuration
	}
}

// AtomicKind reports whether every type of the given reflect.Kind is an
// identity-only handle: observing the value is a complete forcing step.
func AtomicKind(kind reflect.Kind) bool {
	switch kind {
	default:
		return false
	case reflect.Func, reflect.Chan, reflect.Uintptr, reflect.UnsafePointer:
		return true
	}
}

// IsTypeToken reports whether rtype is a type-fingerprint token, i.e. a
// reflect.Type value. Such tokens are opaque handles with stable identity.
func IsTypeToken(rtype reflect.Type) bool {
	if rtype == nil {
		return false
	}

	return rtype.Implements(reflect.TypeFor[reflect.Type]())
}
