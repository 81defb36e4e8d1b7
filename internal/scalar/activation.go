package scalar

import "fmt"

// ReLU applies the Rectified Linear Unit: f(x) = max(0, x).
//
// The result is always a new Scalar of the same kind, even when the value
// passes through unchanged. NaN maps to 0.
func (s *Scalar) ReLU() *Scalar {
	switch s.kind {
	case Int64:
		if s.i > 0 {
			return Int(s.i)
		}
		return Int(0)
	case Float64:
		if s.f > 0 {
			return Float(s.f)
		}
		return Float(0)
	default:
		panic(fmt.Sprintf("relu: unknown kind %v", s.kind))
	}
}
