package ltmath

import "math"

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 {
	return math.Sin(a.Radians())
}

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 {
	return math.Cos(a.Radians())
}

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 {
	return math.Tan(a.Radians())
}

// SinCos returns Sin and Cos of the angle.
func (a Angle) SinCos() (sin, cos float64) {
	return math.Sincos(a.Radians())
}

// DegreesOf returns an angle of x degrees.
func DegreesOf[N Number](x N) Angle {
	return FromDegrees(x)
}

// RadiansOf returns an angle of x radians.
func RadiansOf[N Number](x N) Angle {
	return FromRadians(x)
}

// PiRadiansOf returns an angle of x·π radians.
func PiRadiansOf[N Number](x N) Angle {
	return FromRadians(float64(x) * math.Pi)
}

// Asin returns the arcsine of x in radians.
// The angle holds NaN if x is outside of [-1, 1].
func Asin[N Number](x N) Angle {
	return FromRadians(math.Asin(float64(x)))
}

// Acos returns the arccosine of x in radians.
// The angle holds NaN if x is outside of [-1, 1].
func Acos[N Number](x N) Angle {
	return FromRadians(math.Acos(float64(x)))
}

// Atan returns the arctangent of x in radians.
func Atan[N Number](x N) Angle {
	return FromRadians(math.Atan(float64(x)))
}

// Atan2 returns the arctangent of y/x in radians, using the signs of both
// to determine the quadrant. See math.Atan2.
func Atan2[N Number](y, x N) Angle {
	return FromRadians(math.Atan2(float64(y), float64(x)))
}
