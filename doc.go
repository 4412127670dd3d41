// Package ltmath provides small math primitives.
//
// The central type is Angle, a value that is stored either in degrees or in
// radians. Binary operations between two angles always produce a result in
// the unit of the left operand, converting the right operand first:
//
//	a := ltmath.FromDegrees(90)
//	b := ltmath.FromRadians(math.Pi / 2)
//	a.Add(b) // 180° stored in degrees
//	b.Add(a) // π stored in radians
//
// Angles are plain values and safe to share between goroutines. Invalid
// inputs are never trapped: NaN and infinities propagate through all
// operations following the usual floating point rules.
package ltmath
