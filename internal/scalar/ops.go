package scalar

import (
	"fmt"
	"math"
)

// Binary operations - each returns a new Scalar and leaves both operands untouched.

// Add returns s + o.
func (s *Scalar) Add(o *Scalar) *Scalar {
	switch promote(s, o, "add") {
	case Int64:
		return Int(s.i + o.i)
	default:
		return Float(s.Float64() + o.Float64())
	}
}

// Sub returns s - o.
func (s *Scalar) Sub(o *Scalar) *Scalar {
	switch promote(s, o, "sub") {
	case Int64:
		return Int(s.i - o.i)
	default:
		return Float(s.Float64() - o.Float64())
	}
}

// Mul returns s * o.
func (s *Scalar) Mul(o *Scalar) *Scalar {
	switch promote(s, o, "mul") {
	case Int64:
		return Int(s.i * o.i)
	default:
		return Float(s.Float64() * o.Float64())
	}
}

// Div returns s / o as a Float64 Scalar (true division).
//
// Integer division by zero panics with the Go runtime error
// "integer divide by zero". Float division by zero yields ±Inf or NaN.
func (s *Scalar) Div(o *Scalar) *Scalar {
	switch promote(s, o, "div") {
	case Int64:
		return divInt64(s.i, o.i)
	default:
		return Float(s.Float64() / o.Float64())
	}
}

// Pow returns s raised to the power e.
//
// An Int64 base with a non-negative Int64 exponent stays Int64 (overflow
// wraps). Every other combination is computed with math.Pow, so a negative
// base with a fractional exponent yields NaN.
func (s *Scalar) Pow(e *Scalar) *Scalar {
	if promote(s, e, "pow") == Int64 && e.i >= 0 {
		return Int(powInt64(s.i, e.i))
	}
	return Float(math.Pow(s.Float64(), e.Float64()))
}

// Reflected operations - s is the right-hand operand.

// RAdd returns o + s.
func (s *Scalar) RAdd(o *Scalar) *Scalar {
	return mustOperand(o, "radd").Add(s)
}

// RSub returns o - s.
func (s *Scalar) RSub(o *Scalar) *Scalar {
	return mustOperand(o, "rsub").Sub(s)
}

// RMul returns o * s.
func (s *Scalar) RMul(o *Scalar) *Scalar {
	return mustOperand(o, "rmul").Mul(s)
}

// RDiv returns o / s.
func (s *Scalar) RDiv(o *Scalar) *Scalar {
	return mustOperand(o, "rdiv").Div(s)
}

// In-place operations - the receiver is overwritten and returned.

// AddAssign sets s to s + o and returns s.
func (s *Scalar) AddAssign(o *Scalar) *Scalar {
	s.set(s.Add(o))
	return s
}

// SubAssign sets s to s - o and returns s.
func (s *Scalar) SubAssign(o *Scalar) *Scalar {
	s.set(s.Sub(o))
	return s
}

// MulAssign sets s to s * o and returns s.
func (s *Scalar) MulAssign(o *Scalar) *Scalar {
	s.set(s.Mul(o))
	return s
}

// DivAssign sets s to s / o and returns s. The receiver becomes Float64.
func (s *Scalar) DivAssign(o *Scalar) *Scalar {
	s.set(s.Div(o))
	return s
}

// promote returns the kind an operation on a and b is computed in.
func promote(a, b *Scalar, op string) Kind {
	mustOperand(b, op)
	if a.kind == Int64 && b.kind == Int64 {
		return Int64
	}
	return Float64
}

func mustOperand(o *Scalar, op string) *Scalar {
	if o == nil {
		panic(fmt.Sprintf("%s: nil operand", op))
	}
	return o
}

// divInt64 divides two integers, panicking like Go integer division when b == 0.
func divInt64(a, b int64) *Scalar {
	// Exact quotient when divisible; MinInt64 / -1 overflows int64.
	if a%b == 0 && b != -1 {
		return Float(float64(a / b))
	}
	return Float(float64(a) / float64(b))
}

// powInt64 computes base^exp by repeated squaring. exp must be non-negative.
func powInt64(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}
