package scalar

import (
	"fmt"
	"reflect"
)

// Scalar wraps a single number, either an integer or a floating-point value.
//
// Binary operations (Add, Sub, Mul, Div, Pow, ReLU) always return a new Scalar
// and leave their operands untouched. The *Assign methods mutate the receiver
// and return it.
//
// Arithmetic follows Go's numeric semantics without interception:
//   - Int64 with Int64 stays Int64 (overflow wraps)
//   - anything involving a Float64 is computed in float64 (IEEE-754)
//   - Div is true division and always yields Float64
//
// A Scalar is not safe for concurrent mutation. Callers sharing one across
// goroutines must synchronize the *Assign methods themselves.
//
// Example:
//
//	a := scalar.New(5)
//	b := a.Add(scalar.New(3)) // Scalar(8)
//	a.SubAssign(scalar.New(2)) // a is now Scalar(3)
type Scalar struct {
	kind Kind
	i    int64
	f    float64
}

// New creates a Scalar holding v.
// Integer types are held as Int64, float types as Float64. Unsigned values
// above math.MaxInt64 wrap as in a Go int64 conversion.
func New[T Number](v T) *Scalar {
	if inferKind(v) == Float64 {
		return Float(float64(v))
	}
	return Int(int64(v))
}

// Int creates an Int64 Scalar.
func Int(v int64) *Scalar {
	return &Scalar{kind: Int64, i: v}
}

// Float creates a Float64 Scalar.
func Float(v float64) *Scalar {
	return &Scalar{kind: Float64, f: v}
}

// Kind returns the kind of the held value.
func (s *Scalar) Kind() Kind {
	return s.kind
}

// IsInt reports whether the held value is an integer.
func (s *Scalar) IsInt() bool {
	return s.kind == Int64
}

// Data returns the held value as an int64 or a float64.
func (s *Scalar) Data() any {
	switch s.kind {
	case Int64:
		return s.i
	case Float64:
		return s.f
	default:
		panic(fmt.Sprintf("scalar: unknown kind %v", s.kind))
	}
}

// Float64 returns the held value converted to float64.
func (s *Scalar) Float64() float64 {
	if s.kind == Int64 {
		return float64(s.i)
	}
	return s.f
}

// Int64 returns the held value converted to int64, truncating toward zero.
// The result for NaN or out-of-range floats is implementation-specific.
func (s *Scalar) Int64() int64 {
	if s.kind == Int64 {
		return s.i
	}
	return int64(s.f)
}

// Clone returns a new Scalar holding the same value.
func (s *Scalar) Clone() *Scalar {
	c := *s
	return &c
}

// Equal reports whether s and o hold numerically equal values.
// Kinds may differ: Scalar(2) equals Scalar(2.0). NaN is never equal.
func (s *Scalar) Equal(o *Scalar) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.kind == Int64 && o.kind == Int64 {
		return s.i == o.i
	}
	return s.Float64() == o.Float64()
}

// String returns the Scalar formatted as "Scalar(<value>)", using the default
// Go formatting of the held number.
func (s *Scalar) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Scalar(%v)", s.Data())
}

// set replaces the held value with the one held by o.
func (s *Scalar) set(o *Scalar) {
	s.kind, s.i, s.f = o.kind, o.i, o.f
}

// Operand is a constraint for values accepted on either side of an operator:
// a *Scalar or any raw Number.
type Operand interface {
	Number | *Scalar
}

// Lift resolves an operand into a Scalar.
// A *Scalar is returned as-is; a raw number is wrapped in a new Scalar.
func Lift[T Operand](v T) *Scalar {
	if s, ok := any(v).(*Scalar); ok {
		if s == nil {
			panic("scalar: nil operand")
		}
		return s
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int(int64(rv.Uint()))
	default:
		panic(fmt.Sprintf("scalar: unsupported operand type %T", v))
	}
}
