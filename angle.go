package ltmath

import (
	"log/slog"
	"math"
)

// Unit is the unit an Angle stores its value in.
type Unit uint8

const (
	Degrees Unit = iota
	Radians
)

func (u Unit) String() string {
	switch u {
	case Degrees:
		return "deg"
	case Radians:
		return "rad"
	default:
		panic("ltmath: invalid unit")
	}
}

// Period returns the size of a full turn in this unit.
func (u Unit) Period() float64 {
	if u == Radians {
		return 2 * math.Pi
	}

	return 360
}

// Number is any of the built-in numeric types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Angle is an angle stored either in degrees or in radians. The zero value
// is an angle of 0 degrees.
//
// Two angles compare equal using == only if they have the same unit and the
// same value. Use Compare or Equal to compare angles across units.
type Angle struct {
	unit  Unit
	value float64
}

// Zero is an angle of 0 degrees.
var Zero = FromDegrees(0)

// FromDegrees returns an angle of x degrees.
func FromDegrees[N Number](x N) Angle {
	return Angle{unit: Degrees, value: float64(x)}
}

// FromRadians returns an angle of x radians.
func FromRadians[N Number](x N) Angle {
	return Angle{unit: Radians, value: float64(x)}
}

// Unit returns the unit the value of this angle is stored in.
func (a Angle) Unit() Unit {
	return a.unit
}

// Value returns the raw value of the angle in its own unit.
func (a Angle) Value() float64 {
	return a.value
}

// ToDegrees returns the same angle stored in degrees.
func (a Angle) ToDegrees() Angle {
	if a.unit == Degrees {
		return a
	}

	return Angle{unit: Degrees, value: a.value * (180 / math.Pi)}
}

// ToRadians returns the same angle stored in radians.
func (a Angle) ToRadians() Angle {
	if a.unit == Radians {
		return a
	}

	return Angle{unit: Radians, value: a.value * (math.Pi / 180)}
}

// In returns the same angle stored in the given unit.
func (a Angle) In(unit Unit) Angle {
	if unit == Radians {
		return a.ToRadians()
	}

	return a.ToDegrees()
}

// Degrees returns the value of the angle in degrees.
func (a Angle) Degrees() float64 {
	return a.ToDegrees().value
}

// Radians returns the value of the angle in radians.
func (a Angle) Radians() float64 {
	return a.ToRadians().value
}

// Normalized returns the angle reduced to one full turn, that is [0, 360)
// for degrees and [0, 2π) for radians. The unit is kept.
func (a Angle) Normalized() Angle {
	period := a.unit.Period()

	value := math.Mod(a.value, period)
	if value < 0 {
		value += period

		// a tiny negative remainder can round up to a full period
		if value >= period {
			value = 0
		}
	}

	return Angle{unit: a.unit, value: value}
}

// DifferenceTo returns the smallest signed difference a - other,
// normalized to the range [-half turn, half turn) in the unit of a.
func (a Angle) DifferenceTo(other Angle) Angle {
	half := a.unit.Period() / 2

	diff := a.Sub(other)
	diff.value += half
	diff = diff.Normalized()
	diff.value -= half

	return diff
}

func (a Angle) LogValue() slog.Value {
	return slog.StringValue(a.String())
}
