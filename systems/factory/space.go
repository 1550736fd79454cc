package factory

import (
	"math"

	"github.com/automoto/bowrange/archetypes"
	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The broadphase grid is the range's X/Z footprint in centimetres.
const spaceUnitsPerMeter = 100

// CreateSpace spawns the broadphase grid covering width x depth metres from
// the range origin. Non-positive sizes fall back to the configured range.
func CreateSpace(ecs *ecs.ECS, width, depth float64) *donburi.Entry {
	if width <= 0 {
		width = cfg.Range.Width
	}
	if depth <= 0 {
		depth = cfg.Range.Depth
	}

	space := archetypes.Space.Spawn(ecs)
	cell := cfg.Range.CellSizeCM
	spaceData := resolv.NewSpace(
		wholeCells(width*spaceUnitsPerMeter, cell),
		wholeCells(depth*spaceUnitsPerMeter, cell),
		cell,
		cell,
	)
	components.Space.Set(space, spaceData)
	return space
}

// wholeCells rounds size up to a whole number of cells, since resolv drops a
// trailing partial cell.
func wholeCells(size float64, cell int) int {
	return int(math.Ceil(size/float64(cell))) * cell
}

// ToSpace converts a world X/Z position into broadphase coordinates.
func ToSpace(x, z float64) (float64, float64) {
	return (x - cfg.Range.OriginX) * spaceUnitsPerMeter, (z - cfg.Range.OriginZ) * spaceUnitsPerMeter
}

// PlaceObject moves obj so it covers the X/Z footprint of a box.
func PlaceObject(obj *resolv.Object, center, halfExtents vector.Vector) {
	x, y := ToSpace(center.X()-halfExtents.X(), center.Z()-halfExtents.Z())
	w := halfExtents.X() * 2 * spaceUnitsPerMeter
	h := halfExtents.Z() * 2 * spaceUnitsPerMeter
	if obj.X == x && obj.Y == y && obj.W == w && obj.H == h {
		return
	}
	obj.X, obj.Y, obj.W, obj.H = x, y, w, h
	obj.Update()
}

// addCollider gives e a box collider and registers it in the space.
func addCollider(ecs *ecs.ECS, e *donburi.Entry, halfExtents vector.Vector, layer int, tags ...string) {
	obj := resolv.NewObject(0, 0, 0, 0, tags...)
	obj.Data = e
	components.Collider.Set(e, &components.ColliderData{
		HalfExtents: halfExtents,
		Layer:       layer,
		Object:      obj,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	PlaceObject(obj, components.Transform.Get(e).Position, halfExtents)
}
