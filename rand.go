package ltmath

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn(min, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

// RandomAngle returns a random angle in radians uniformly sampled from the full circle.
func RandomAngle() Angle {
	return FromRadians(RandomIn(0, 2*math.Pi))
}
