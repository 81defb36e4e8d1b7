// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides a single-value number type with arithmetic and ReLU.
//
// # Overview
//
// A Scalar holds exactly one number, tagged as either an integer (Int64) or a
// floating-point value (Float64). It offers:
//   - Binary arithmetic returning new values (Add, Sub, Mul, Div, Pow)
//   - Reflected forms where the Scalar is the right-hand operand (RAdd, RSub, RMul, RDiv)
//   - In-place forms mutating the receiver (AddAssign, SubAssign, MulAssign, DivAssign)
//   - The ReLU activation
//
// There is no graph, gradient tracking or tensor support.
//
// # Basic Usage
//
//	a := scalar.New(5)
//	b := scalar.New(3)
//
//	sum := a.Add(b)           // Scalar(8)
//	diff := scalar.Sub(7, a)  // Scalar(2): raw number on the left
//	q := scalar.Div(a, 2)     // Scalar(2.5): true division
//
//	a.AddAssign(b)            // a is now Scalar(8)
//	scalar.SubAssign(a, 2)    // a is now Scalar(6)
//
// # Operands
//
// The package-level functions accept an Operand on either side: a *Scalar or
// any Go integer or float value. Raw numbers are lifted into a Scalar first,
// and operand order is always preserved.
//
// # Numeric Semantics
//
// Results follow Go arithmetic directly:
//   - Int64 op Int64 stays Int64 for Add, Sub, Mul and Pow with a non-negative exponent; overflow wraps
//   - A Float64 on either side produces Float64
//   - Div always produces Float64
//
// Integer division by zero panics with the Go runtime error. Float division
// by zero yields ±Inf or NaN. A negative base raised to a fractional power
// yields NaN.
//
// # Concurrency
//
// Scalar does no locking. Mutating one from multiple goroutines requires
// external synchronization.
package scalar
