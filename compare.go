package ltmath

import "math"

// differences below epsilon are treated as equal when ordering angles.
// It absorbs the rounding error of converting between units.
const epsilon = 1e-10

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to
// or greater than other. other is converted to the unit of a first and values
// closer than 1e-10 are considered equal.
//
// Angles are not normalized before comparison: 360° is greater than 0°.
func (a Angle) Compare(other Angle) int {
	diff := a.value - other.In(a.unit).value

	switch {
	case math.Abs(diff) < epsilon:
		return 0
	case diff > 0:
		return 1
	default:
		return -1
	}
}

// Equal reports whether a and other describe the same angle within the
// tolerance used by Compare. Use == to test for identical representation.
func (a Angle) Equal(other Angle) bool {
	return a.Compare(other) == 0
}

func (a Angle) Less(other Angle) bool {
	return a.Compare(other) < 0
}

// Compare is a.Compare(b). It can be used with slices.SortFunc.
func Compare(a, b Angle) int {
	return a.Compare(b)
}
