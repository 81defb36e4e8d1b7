// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package scalar

import (
	"github.com/born-ml/scalar/internal/scalar"
)

// Type aliases for public API

// Scalar is a single number with arithmetic operators.
type Scalar = scalar.Scalar

// Kind represents whether a Scalar holds an integer or a float.
type Kind = scalar.Kind

// Kind constants.
const (
	Int64   Kind = scalar.Int64
	Float64 Kind = scalar.Float64
)

// Number is a constraint for raw Go integer and float types.
type Number = scalar.Number

// Operand is a constraint for a *Scalar or a raw Number.
type Operand = scalar.Operand

// New creates a Scalar holding v.
func New[T Number](v T) *Scalar {
	return scalar.New(v)
}

// Int creates an integer Scalar.
func Int(v int64) *Scalar {
	return scalar.Int(v)
}

// Float creates a floating-point Scalar.
func Float(v float64) *Scalar {
	return scalar.Float(v)
}

// Lift resolves an operand into a Scalar. A *Scalar is returned as-is.
func Lift[T Operand](v T) *Scalar {
	return scalar.Lift(v)
}

// Add returns l + r.
func Add[L, R Operand](l L, r R) *Scalar {
	return scalar.Add(l, r)
}

// Sub returns l - r.
func Sub[L, R Operand](l L, r R) *Scalar {
	return scalar.Sub(l, r)
}

// Mul returns l * r.
func Mul[L, R Operand](l L, r R) *Scalar {
	return scalar.Mul(l, r)
}

// Div returns l / r using true division.
func Div[L, R Operand](l L, r R) *Scalar {
	return scalar.Div(l, r)
}

// Pow returns base raised to exp.
func Pow[B, E Operand](base B, exp E) *Scalar {
	return scalar.Pow(base, exp)
}

// AddAssign sets s to s + o and returns s.
func AddAssign[T Operand](s *Scalar, o T) *Scalar {
	return scalar.AddAssign(s, o)
}

// SubAssign sets s to s - o and returns s.
func SubAssign[T Operand](s *Scalar, o T) *Scalar {
	return scalar.SubAssign(s, o)
}

// MulAssign sets s to s * o and returns s.
func MulAssign[T Operand](s *Scalar, o T) *Scalar {
	return scalar.MulAssign(s, o)
}

// DivAssign sets s to s / o and returns s.
func DivAssign[T Operand](s *Scalar, o T) *Scalar {
	return scalar.DivAssign(s, o)
}
