package ltmath

import (
	"math"
	"strconv"
	"strings"
)

// String formats the angle in degrees followed by a degree sign, e.g. "90.0°".
// Angles stored in radians are converted first.
func (a Angle) String() string {
	return formatFloat(a.Degrees()) + "°"
}

// formatFloat formats f in its shortest representation. Values in [1e-3, 1e7)
// use plain notation and always keep a fractional digit.
func formatFloat(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-3 || abs >= 1e7) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.ContainsAny(s, ".IN") {
		return s
	}

	return s + ".0"
}
