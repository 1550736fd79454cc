package systems

import (
	"math"

	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/mathutil"
	"github.com/automoto/bowrange/shared/gamemath"
	"github.com/automoto/bowrange/systems/factory"
	"github.com/automoto/bowrange/tags"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Hit is the nearest collider crossed by a line-cast.
type Hit struct {
	Entry *donburi.Entry
	Point vector.Vector
	T     float64 // fraction along the cast segment
	Layer int
}

// Linecast returns the nearest collider the segment from->to enters.
// Colliders that already contain from are not reported.
func Linecast(e *ecs.ECS, from, to vector.Vector) (Hit, bool) {
	lo, hi := gamemath.SegmentBounds(from, to)

	best := Hit{T: math.Inf(1)}
	for _, entry := range queryArea(e, lo, hi) {
		col := components.Collider.Get(entry)
		t, ok := gamemath.SegmentBox(from, to, components.Transform.Get(entry).Position, col.HalfExtents)
		if !ok || t >= best.T {
			continue
		}
		best = Hit{
			Entry: entry,
			Point: from.Add(to.Sub(from).Scale(t)),
			T:     t,
			Layer: col.Layer,
		}
	}
	return best, best.Entry != nil
}

// queryArea returns the entries whose collider footprints share a
// broadphase cell with the X/Z rectangle lo..hi, in grid order.
func queryArea(e *ecs.ECS, lo, hi vector.Vector) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)
	if space.Width() == 0 || space.Height() == 0 {
		return nil
	}

	x0, z0 := factory.ToSpace(lo.X(), lo.Z())
	x1, z1 := factory.ToSpace(hi.X(), hi.Z())
	cx0, cz0 := space.WorldToSpace(x0, z0)
	cx1, cz1 := space.WorldToSpace(x1, z1)
	cx0, cx1 = clampCell(cx0, space.Width()), clampCell(cx1, space.Width())
	cz0, cz1 = clampCell(cz0, space.Height()), clampCell(cz1, space.Height())

	seen := make(map[*resolv.Object]struct{})
	var found []*donburi.Entry
	for cz := cz0; cz <= cz1; cz++ {
		for cx := cx0; cx <= cx1; cx++ {
			cell := space.Cell(cx, cz)
			if cell == nil {
				continue
			}
			for _, obj := range cell.Objects {
				if _, dup := seen[obj]; dup {
					continue
				}
				seen[obj] = struct{}{}

				entry, ok := obj.Data.(*donburi.Entry)
				if !ok || !entry.Valid() || !entry.HasComponent(components.Collider) {
					continue
				}
				found = append(found, entry)
			}
		}
	}
	return found
}

func clampCell(c, n int) int {
	return int(mathutil.ClampFloat(float64(c), 0, float64(n-1)))
}

// UpdateArrows advances every flying arrow by one tick. The arrow turns to
// face its velocity, then the tip's path since the last tick is cast. The
// nearest hit ends the flight unless it is the wielder's body, in which case
// nothing else is considered that tick.
func UpdateArrows(e *ecs.ECS) {
	var flying []*donburi.Entry
	tags.Arrow.Each(e.World, func(entry *donburi.Entry) {
		if components.Arrow.Get(entry).State == components.ArrowInFlight {
			flying = append(flying, entry)
		}
	})

	for _, arrow := range flying {
		updateFlight(e, arrow)
	}
}

func updateFlight(e *ecs.ECS, entry *donburi.Entry) {
	a := components.Arrow.Get(entry)
	t := components.Transform.Get(entry)
	body := components.Physics.Get(entry)

	a.FlightTicks++
	if forward, up, ok := gamemath.LookRotation(body.Velocity, t.Up, cfg.Arrow.MinAlignSpeed); ok {
		t.Forward, t.Up = forward, up
	}

	tip := a.Tip(t)
	if hit, ok := Linecast(e, a.LastTip, tip); ok && hit.Layer != cfg.Layers.Wielder {
		attach(e, entry, hit)
		return
	}
	a.LastTip = tip

	if t.Position.Y() < cfg.Physics.KillDepth {
		e.World.Remove(entry.Entity())
	}
}

// attach sticks an arrow's tip into the hit surface and ends its flight.
func attach(e *ecs.ECS, entry *donburi.Entry, hit Hit) {
	a := components.Arrow.Get(entry)
	t := components.Transform.Get(entry)
	body := components.Physics.Get(entry)

	t.Position = hit.Point.Sub(t.Forward.Scale(a.TipLength))

	// Anything with a body carries the arrow along; kinematic bodies ignore
	// the impulse.
	if hit.Entry.HasComponent(components.Physics) {
		body.Interpolation = components.InterpolationNone
		t.SetParent(hit.Entry)
		components.Physics.Get(hit.Entry).AddImpulse(body.Velocity)
	}

	a.Advance(components.ArrowAttached)
	a.AttachedTo = hit.Entry
	a.Trail = false
	body.SetSimulated(false)
	a.LastTip = a.Tip(t)

	var blasted []*donburi.Entry
	if a.Kind == components.ArrowBomb {
		blasted = detonate(e, hit.Point, hit.Entry)
	}

	ArrowAttachedEvent.Publish(e.World, ArrowAttached{
		Arrow:       entry,
		Target:      hit.Entry,
		Point:       hit.Point,
		Kind:        a.Kind,
		ShotID:      a.ShotID,
		FlightTicks: a.FlightTicks,
		Blasted:     blasted,
	})
}

// detonate pushes every free body near center away from it and returns the
// targets other than direct that are inside the blast radius.
func detonate(e *ecs.ECS, center vector.Vector, direct *donburi.Entry) []*donburi.Entry {
	radius := cfg.Bomb.Radius
	reach := gamemath.Vec3(radius, radius, radius)

	var blasted []*donburi.Entry
	for _, entry := range queryArea(e, center.Sub(reach), center.Add(reach)) {
		pos := components.Transform.Get(entry).Position
		if gamemath.Distance(center, pos) > radius {
			continue
		}

		if entry.HasComponent(components.Physics) {
			if body := components.Physics.Get(entry); !body.Kinematic {
				if impulse, ok := gamemath.RadialImpulse(center, pos, radius, cfg.Bomb.Force); ok {
					body.AddImpulse(impulse)
				}
			}
		}
		if entry != direct && entry.HasComponent(components.Target) {
			blasted = append(blasted, entry)
		}
	}

	factory.CreateExplosion(e, center, radius)
	return blasted
}
