package gamemath

import "github.com/kvartborg/vector"

// LookRotation turns a facing toward velocity while keeping up as close to
// the previous up as possible. ok is false when velocity is shorter than
// minSpeed; the caller should keep its current orientation then.
func LookRotation(velocity, up vector.Vector, minSpeed float64) (forward, newUp vector.Vector, ok bool) {
	speed := velocity.Magnitude()
	if speed < minSpeed || speed < epsilon {
		return nil, nil, false
	}
	forward = velocity.Scale(1 / speed)

	newUp = orthogonalUp(forward, up)
	if newUp == nil {
		// up is parallel to the new facing, fall back to world up or world z
		newUp = orthogonalUp(forward, Vec3(0, 1, 0))
		if newUp == nil {
			newUp = orthogonalUp(forward, Vec3(0, 0, 1))
		}
	}
	return forward, newUp, true
}

func orthogonalUp(forward, up vector.Vector) vector.Vector {
	projected := up.Sub(forward.Scale(Dot3(up, forward)))
	length := projected.Magnitude()
	if length < 1e-6 {
		return nil
	}
	return projected.Scale(1 / length)
}
