package ltmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAngle_Trig(t *testing.T) {
	require.InDelta(t, 1.0, FromDegrees(90).Sin(), 1e-9)
	require.InDelta(t, -1.0, FromDegrees(180).Cos(), 1e-9)
	require.InDelta(t, 1.0, FromDegrees(45).Tan(), 1e-9)
	require.InDelta(t, 1.0, FromRadians(math.Pi/2).Sin(), 1e-9)

	sin, cos := FromDegrees(30).SinCos()
	require.InDelta(t, 0.5, sin, 1e-9)
	require.InDelta(t, math.Sqrt(3)/2, cos, 1e-9)
}

func TestConstructors(t *testing.T) {
	require.Equal(t, FromDegrees(12), DegreesOf(12))
	require.Equal(t, FromRadians(1.25), RadiansOf(1.25))
	require.Equal(t, FromRadians(math.Pi), PiRadiansOf(1))
	require.Equal(t, FromRadians(math.Pi/2), PiRadiansOf(0.5))
}

func TestInverseTrig(t *testing.T) {
	require.Equal(t, Radians, Asin(1.0).Unit())
	require.InDelta(t, math.Pi/2, Asin(1.0).Radians(), 1e-12)
	require.InDelta(t, math.Pi/2, Acos(0.0).Radians(), 1e-12)
	require.InDelta(t, 45, Atan(1).Degrees(), 1e-12)

	t.Run("out of domain", func(t *testing.T) {
		require.True(t, math.IsNaN(Asin(1.5).Radians()))
		require.True(t, math.IsNaN(Acos(-2).Radians()))
	})

	t.Run("atan2", func(t *testing.T) {
		a := Atan2(1, 1)
		require.Equal(t, Radians, a.Unit())
		require.InDelta(t, math.Pi/4, a.Radians(), 1e-12)
		require.InDelta(t, 45, a.Degrees(), 1e-12)
		require.InDelta(t, -135, Atan2(-1.0, -1.0).Degrees(), 1e-12)
	})
}

func TestNaNPropagates(t *testing.T) {
	a := Asin(2).Add(FromDegrees(10)).Mul(3)
	require.True(t, math.IsNaN(a.Value()))
	require.True(t, math.IsNaN(a.Normalized().Value()))
	require.True(t, math.IsNaN(a.Sin()))
}
