package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentBoxHitsThinTarget(t *testing.T) {
	// a fast segment fully crossing a 2cm thick board still registers
	center := Vec3(0, 1, 10)
	half := Vec3(0.5, 0.5, 0.01)

	tHit, hit := SegmentBox(Vec3(0, 1, 5), Vec3(0, 1, 15), center, half)
	require.True(t, hit)
	require.InDelta(t, (9.99-5)/10, tHit, 1e-9)
}

func TestSegmentBoxMiss(t *testing.T) {
	_, hit := SegmentBox(Vec3(2, 1, 5), Vec3(2, 1, 15), Vec3(0, 1, 10), Vec3(0.5, 0.5, 0.5))
	require.False(t, hit)

	// stops short of the box
	_, hit = SegmentBox(Vec3(0, 1, 5), Vec3(0, 1, 9), Vec3(0, 1, 10), Vec3(0.5, 0.5, 0.5))
	require.False(t, hit)
}

func TestSegmentBoxIgnoresBoxContainingStart(t *testing.T) {
	_, hit := SegmentBox(Vec3(0, 0, 0), Vec3(0, 0, 3), Vec3(0, 0, 0), Vec3(1, 1, 1))
	require.False(t, hit)
}

func TestSegmentBoxAxisParallel(t *testing.T) {
	tHit, hit := SegmentBox(Vec3(0, 5, 0), Vec3(0, -5, 0), Vec3(0, 0, 0), Vec3(1, 1, 1))
	require.True(t, hit)
	require.InDelta(t, 0.4, tHit, 1e-9)
}

func TestRadialImpulse(t *testing.T) {
	impulse, ok := RadialImpulse(Vec3(0, 0, 0), Vec3(1, 0, 0), 2, 10)
	require.True(t, ok)
	require.True(t, NearlyEqual(Vec3(5, 0, 0), impulse, 1e-9), "got %v", impulse)

	_, ok = RadialImpulse(Vec3(0, 0, 0), Vec3(3, 0, 0), 2, 10)
	require.False(t, ok)

	impulse, ok = RadialImpulse(Vec3(1, 1, 1), Vec3(1, 1, 1), 2, 10)
	require.True(t, ok)
	require.True(t, NearlyEqual(Vec3(0, 10, 0), impulse, 1e-9))

	_, ok = RadialImpulse(Vec3(0, 0, 0), Vec3(0, 0, 0), 0, 10)
	require.False(t, ok)
}

func TestLookRotation(t *testing.T) {
	forward, up, ok := LookRotation(Vec3(0, -3, 4), Vec3(0, 1, 0), 0.01)
	require.True(t, ok)
	require.True(t, NearlyEqual(Vec3(0, -0.6, 0.8), forward, 1e-9))
	require.InDelta(t, 0, Dot3(forward, up), 1e-9)
	require.InDelta(t, 1, up.Magnitude(), 1e-9)
	require.Greater(t, up.Y(), 0.0)

	_, _, ok = LookRotation(Vec3(0, 0, 0.001), Vec3(0, 1, 0), 0.01)
	require.False(t, ok)

	// straight down with world up: falls back to a valid perpendicular
	forward, up, ok = LookRotation(Vec3(0, -9, 0), Vec3(0, 1, 0), 0.01)
	require.True(t, ok)
	require.InDelta(t, 0, Dot3(forward, up), 1e-9)
}

func TestPitchForward(t *testing.T) {
	require.True(t, NearlyEqual(Vec3(0, 0, 1), PitchForward(0), 1e-12))
	require.True(t, NearlyEqual(Vec3(0, 1, 0), PitchForward(math.Pi/2), 1e-12))
}
