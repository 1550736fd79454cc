package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

// ContainsPoint reports whether p lies inside the box centered on center.
func ContainsPoint(p, center, halfExtents vector.Vector) bool {
	for i := 0; i < 3; i++ {
		if math.Abs(p[i]-center[i]) > halfExtents[i] {
			return false
		}
	}
	return true
}

// SegmentBox intersects the segment from->to with an axis-aligned box using
// the slab method. t is the entry point as a fraction of the segment. Boxes
// that already contain from are not reported, matching a line-cast that only
// sees surfaces it enters.
func SegmentBox(from, to, center, halfExtents vector.Vector) (t float64, hit bool) {
	if ContainsPoint(from, center, halfExtents) {
		return 0, false
	}

	tMin, tMax := 0.0, 1.0
	for i := 0; i < 3; i++ {
		lo := center[i] - halfExtents[i]
		hi := center[i] + halfExtents[i]
		d := to[i] - from[i]

		if math.Abs(d) < epsilon {
			if from[i] < lo || from[i] > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - from[i]) / d
		t2 := (hi - from[i]) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// SegmentBounds returns the component-wise min and max of a segment.
func SegmentBounds(from, to vector.Vector) (lo, hi vector.Vector) {
	lo = Vec3(math.Min(from[0], to[0]), math.Min(from[1], to[1]), math.Min(from[2], to[2]))
	hi = Vec3(math.Max(from[0], to[0]), math.Max(from[1], to[1]), math.Max(from[2], to[2]))
	return lo, hi
}

// RadialImpulse returns the impulse an explosion at center applies to a body
// at point: directed away from center, scaled linearly from force at the
// center to zero at radius. ok is false outside the radius.
func RadialImpulse(center, point vector.Vector, radius, force float64) (impulse vector.Vector, ok bool) {
	if radius <= 0 {
		return nil, false
	}
	offset := point.Sub(center)
	dist := offset.Magnitude()
	if dist > radius {
		return nil, false
	}
	strength := force * (1 - dist/radius)
	if dist < epsilon {
		return Vec3(0, strength, 0), true
	}
	return offset.Scale(strength / dist), true
}
