package gamemath

import (
	"errors"

	"github.com/automoto/bowrange/mathutil"
	"github.com/kvartborg/vector"
)

// ErrDegenerateAxis is returned when the string's start and end reference
// points coincide.
var ErrDegenerateAxis = errors.New("gamemath: pull axis has zero length")

// PullFraction projects pullPos onto the start->end axis and returns how far
// along it the hand is, clamped to [0, 1].
func PullFraction(pullPos, start, end vector.Vector) (float64, error) {
	axis := end.Sub(start)
	maxLength := axis.Magnitude()
	if maxLength < epsilon {
		return 0, ErrDegenerateAxis
	}

	pullDirection := pullPos.Sub(start)
	value := Dot3(pullDirection, axis.Scale(1/maxLength)) / maxLength
	return mathutil.ClampFloat(value, 0, 1), nil
}

// StringLayout returns the bow-local z of the string anchor and the notch for
// a given pull fraction.
func StringLayout(startZ, endZ, fraction, notchOffset float64) (anchorZ, notchZ float64) {
	anchorZ = mathutil.Lerp(startZ, endZ, fraction)
	return anchorZ, anchorZ + notchOffset
}

// BowPoint maps a bow-local z onto the world, along the bow's forward axis.
func BowPoint(origin, forward vector.Vector, localZ float64) vector.Vector {
	return origin.Add(forward.Scale(localZ))
}

// LaunchImpulse returns forward * fraction * speed.
func LaunchImpulse(forward vector.Vector, fraction, speed float64) vector.Vector {
	return forward.Scale(fraction * speed)
}

// VelocityChange converts an impulse into the velocity change it causes on a
// body of the given mass. Non-positive masses are treated as 1.
func VelocityChange(impulse vector.Vector, mass float64) vector.Vector {
	if mass <= 0 {
		mass = 1
	}
	return impulse.Scale(1 / mass)
}
