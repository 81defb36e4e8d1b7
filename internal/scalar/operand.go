package scalar

// Operand-level operations. Both sides accept either a *Scalar or a raw number,
// and operand order is preserved: Sub(7, s) computes 7 - s.

// Add returns l + r.
func Add[L, R Operand](l L, r R) *Scalar {
	return Lift(l).Add(Lift(r))
}

// Sub returns l - r.
func Sub[L, R Operand](l L, r R) *Scalar {
	return Lift(l).Sub(Lift(r))
}

// Mul returns l * r.
func Mul[L, R Operand](l L, r R) *Scalar {
	return Lift(l).Mul(Lift(r))
}

// Div returns l / r (true division).
func Div[L, R Operand](l L, r R) *Scalar {
	return Lift(l).Div(Lift(r))
}

// Pow returns base raised to exp.
func Pow[B, E Operand](base B, exp E) *Scalar {
	return Lift(base).Pow(Lift(exp))
}

// AddAssign sets s to s + o and returns s.
func AddAssign[T Operand](s *Scalar, o T) *Scalar {
	return s.AddAssign(Lift(o))
}

// SubAssign sets s to s - o and returns s.
func SubAssign[T Operand](s *Scalar, o T) *Scalar {
	return s.SubAssign(Lift(o))
}

// MulAssign sets s to s * o and returns s.
func MulAssign[T Operand](s *Scalar, o T) *Scalar {
	return s.MulAssign(Lift(o))
}

// DivAssign sets s to s / o and returns s.
func DivAssign[T Operand](s *Scalar, o T) *Scalar {
	return s.DivAssign(Lift(o))
}
