// Package scalar provides the core single-value number type.
package scalar

import (
	"reflect"

	"golang.org/x/exp/constraints"
)

// Number is a constraint for raw numeric values accepted by a Scalar.
type Number interface {
	constraints.Integer | constraints.Float
}

// Kind represents runtime type information for the value held by a Scalar.
type Kind int

// Supported kinds. The zero Kind is Int64 so that a zero Scalar holds integer 0.
const (
	Int64 Kind = iota
	Float64
)

// Size returns the byte size of the kind.
func (k Kind) Size() int {
	switch k {
	case Int64, Float64:
		return 8
	default:
		panic("unknown kind")
	}
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Int64:
		return "int64"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// inferKind infers the Kind for a raw number of type T.
// Named types (type Celsius float64) resolve through their underlying kind.
func inferKind[T Number](v T) Kind {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Float32, reflect.Float64:
		return Float64
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int64
	default:
		panic("unsupported type")
	}
}
