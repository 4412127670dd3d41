package ltmath

import "math"

// Add returns a + other in the unit of a.
func (a Angle) Add(other Angle) Angle {
	a.value += other.In(a.unit).value
	return a
}

// Sub returns a - other in the unit of a.
func (a Angle) Sub(other Angle) Angle {
	a.value -= other.In(a.unit).value
	return a
}

// Rem returns the floating point remainder of a / other in the unit of a.
// The result has the sign of a, see math.Mod.
func (a Angle) Rem(other Angle) Angle {
	a.value = math.Mod(a.value, other.In(a.unit).value)
	return a
}

// Mul scales the angle by the given factor.
func (a Angle) Mul(factor float64) Angle {
	a.value *= factor
	return a
}

// Div divides the angle by the given divisor.
func (a Angle) Div(divisor float64) Angle {
	a.value /= divisor
	return a
}

// Ratio returns a / other as a plain number. other is converted to the unit
// of a before dividing.
func (a Angle) Ratio(other Angle) float64 {
	return a.value / other.In(a.unit).value
}

// Neg returns the negated angle.
func (a Angle) Neg() Angle {
	a.value = -a.value
	return a
}

// Mul returns angle scaled by factor. It is the same as angle.Mul(factor).
func Mul[N Number](factor N, angle Angle) Angle {
	return angle.Mul(float64(factor))
}
