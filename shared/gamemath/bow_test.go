package gamemath

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPullFractionMidpoint(t *testing.T) {
	fraction, err := PullFraction(Vec3(0, 0, 0.5), Vec3(0, 0, 0), Vec3(0, 0, 1))
	require.NoError(t, err)
	require.InDelta(t, 0.5, fraction, 1e-12)
}

func TestPullFractionLongAxis(t *testing.T) {
	// axes longer than a unit must not be squashed by a clamped dot product
	fraction, err := PullFraction(Vec3(0, 0, -3), Vec3(0, 0, 0), Vec3(0, 0, -4))
	require.NoError(t, err)
	require.InDelta(t, 0.75, fraction, 1e-12)
}

func TestPullFractionIgnoresOffAxisOffset(t *testing.T) {
	fraction, err := PullFraction(Vec3(3, -2, 0.25), Vec3(0, 0, 0), Vec3(0, 0, 1))
	require.NoError(t, err)
	require.InDelta(t, 0.25, fraction, 1e-12)
}

func TestPullFractionClamps(t *testing.T) {
	start, end := Vec3(0, 0, 0), Vec3(0, 0, 1)

	before, err := PullFraction(Vec3(0, 0, -5), start, end)
	require.NoError(t, err)
	require.Equal(t, 0.0, before)

	beyond, err := PullFraction(Vec3(0, 0, 12), start, end)
	require.NoError(t, err)
	require.Equal(t, 1.0, beyond)
}

func TestPullFractionDegenerateAxis(t *testing.T) {
	fraction, err := PullFraction(Vec3(1, 1, 1), Vec3(0, 2, 0), Vec3(0, 2, 0))
	require.ErrorIs(t, err, ErrDegenerateAxis)
	require.Equal(t, 0.0, fraction)
}

func TestPullFractionAlwaysInUnitRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		coord := rapid.Float64Range(-100, 100)
		pull := Vec3(coord.Draw(t, "px"), coord.Draw(t, "py"), coord.Draw(t, "pz"))
		start := Vec3(coord.Draw(t, "sx"), coord.Draw(t, "sy"), coord.Draw(t, "sz"))
		end := Vec3(coord.Draw(t, "ex"), coord.Draw(t, "ey"), coord.Draw(t, "ez"))

		fraction, err := PullFraction(pull, start, end)
		if err != nil {
			require.ErrorIs(t, err, ErrDegenerateAxis)
		}
		require.GreaterOrEqual(t, fraction, 0.0)
		require.LessOrEqual(t, fraction, 1.0)
	})
}

func TestPullFractionMonotonicAlongAxis(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := Vec3(rapid.Float64Range(-5, 5).Draw(t, "sx"), 0, rapid.Float64Range(-5, 5).Draw(t, "sz"))
		axis := Vec3(rapid.Float64Range(-3, 3).Draw(t, "ax"), rapid.Float64Range(-3, 3).Draw(t, "ay"), rapid.Float64Range(0.1, 3).Draw(t, "az"))
		end := start.Add(axis)

		a := rapid.Float64Range(-0.5, 1.5).Draw(t, "a")
		b := rapid.Float64Range(-0.5, 1.5).Draw(t, "b")
		if a > b {
			a, b = b, a
		}

		fa, err := PullFraction(start.Add(axis.Scale(a)), start, end)
		require.NoError(t, err)
		fb, err := PullFraction(start.Add(axis.Scale(b)), start, end)
		require.NoError(t, err)
		require.LessOrEqual(t, fa, fb+1e-12)
	})
}

func TestStringLayout(t *testing.T) {
	anchor, notch := StringLayout(0, -0.6, 0, 0.2)
	require.Equal(t, 0.0, anchor)
	require.InDelta(t, 0.2, notch, 1e-12)

	anchor, notch = StringLayout(0, -0.6, 0.5, 0.2)
	require.InDelta(t, -0.3, anchor, 1e-12)
	require.InDelta(t, -0.1, notch, 1e-12)

	anchor, _ = StringLayout(0, -0.6, 1, 0.2)
	require.InDelta(t, -0.6, anchor, 1e-12)
}

func TestLaunchImpulse(t *testing.T) {
	impulse := LaunchImpulse(Vec3(0, 0, 1), 0.5, 10)
	require.True(t, NearlyEqual(Vec3(0, 0, 5), impulse, 1e-12), "got %v", impulse)

	require.True(t, NearlyEqual(Zero3(), LaunchImpulse(Vec3(0, 0, 1), 0, 10), 0))
}

func TestVelocityChange(t *testing.T) {
	require.True(t, NearlyEqual(Vec3(0, 0, 2.5), VelocityChange(Vec3(0, 0, 5), 2), 1e-12))
	require.True(t, NearlyEqual(Vec3(0, 0, 5), VelocityChange(Vec3(0, 0, 5), 0), 1e-12))
}

func TestBowPoint(t *testing.T) {
	p := BowPoint(Vec3(1, 2, 3), Vec3(0, 0, 1), -0.5)
	require.True(t, NearlyEqual(Vec3(1, 2, 2.5), p, 1e-12))
}
