// Package gamemath holds the pure math behind the bow, arrow and collision
// systems. It has no dependencies on ebitengine, donburi, or resolv.
package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

const epsilon = 1e-9

// Vec3 builds a three dimensional vector.
func Vec3(x, y, z float64) vector.Vector {
	return vector.Vector{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() vector.Vector {
	return vector.Vector{0, 0, 0}
}

// Dot3 is the unclamped dot product. vector.Vector.Dot clamps its result to
// [-1, 1], which is only right for unit vectors.
func Dot3(a, b vector.Vector) float64 {
	return a.X()*b.X() + a.Y()*b.Y() + a.Z()*b.Z()
}

// Distance returns |a - b|.
func Distance(a, b vector.Vector) float64 {
	return a.Sub(b).Magnitude()
}

// NearlyEqual compares two vectors component-wise within tol.
func NearlyEqual(a, b vector.Vector, tol float64) bool {
	return math.Abs(a.X()-b.X()) <= tol &&
		math.Abs(a.Y()-b.Y()) <= tol &&
		math.Abs(a.Z()-b.Z()) <= tol
}

// PitchForward returns the unit forward vector for a bow pitched by angle
// radians upward from the +Z axis.
func PitchForward(angle float64) vector.Vector {
	return Vec3(0, math.Sin(angle), math.Cos(angle))
}

// PitchUp returns the up vector matching PitchForward for the same angle.
func PitchUp(angle float64) vector.Vector {
	return Vec3(0, math.Cos(angle), -math.Sin(angle))
}
