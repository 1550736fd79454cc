package factory

import (
	"github.com/automoto/bowrange/archetypes"
	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/shared/gamemath"
	"github.com/automoto/bowrange/shared/leveldata"
	"github.com/automoto/bowrange/tags"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRange spawns everything in a range layout and returns the bow. The
// space must exist first.
func CreateRange(ecs *ecs.ECS, data *leveldata.RangeData) *donburi.Entry {
	for _, box := range data.Scenery {
		CreateScenery(ecs, worldCenter(box), halfExtents(box))
	}
	for _, box := range data.Wielders {
		CreateWielder(ecs, worldCenter(box), halfExtents(box))
	}
	for _, t := range data.Targets {
		CreateTarget(ecs, t)
	}

	pos := gamemath.Vec3(data.Bow.X+cfg.Range.OriginX, data.Bow.Y, data.Bow.Z+cfg.Range.OriginZ)
	return CreateBow(ecs, pos, data.Bow.Pitch)
}

func CreateScenery(ecs *ecs.ECS, center, half vector.Vector) *donburi.Entry {
	e := archetypes.Scenery.Spawn(ecs)
	components.Transform.Set(e, newTransform(center))
	addCollider(ecs, e, half, cfg.Layers.Default, tags.ResolvSolid)
	return e
}

// CreateWielder spawns the archer's body. Arrows pass through it.
func CreateWielder(ecs *ecs.ECS, center, half vector.Vector) *donburi.Entry {
	e := archetypes.Wielder.Spawn(ecs)
	components.Transform.Set(e, newTransform(center))
	addCollider(ecs, e, half, cfg.Layers.Wielder, tags.ResolvWielder)
	return e
}

func CreateTarget(ecs *ecs.ECS, t leveldata.TargetPlacement) *donburi.Entry {
	var e *donburi.Entry
	if t.Dynamic {
		e = archetypes.Target.Spawn(ecs, components.Physics)
	} else {
		e = archetypes.Target.Spawn(ecs)
	}

	components.Target.Set(e, &components.TargetData{
		Name:   t.Name,
		Points: t.Points,
	})
	components.Transform.Set(e, newTransform(worldCenter(t.Box)))

	resolvTags := []string{tags.ResolvSolid, tags.ResolvTarget}
	if t.Dynamic {
		mass := t.Mass
		if mass <= 0 {
			mass = cfg.Physics.TargetMass
		}
		// Swinging targets float in place and are only moved by hits
		components.Physics.Set(e, &components.PhysicsData{
			Velocity:      gamemath.Zero3(),
			Mass:          mass,
			Drag:          cfg.Physics.TargetDrag,
			Interpolation: components.InterpolationInterpolate,
		})
		resolvTags = append(resolvTags, tags.ResolvBody)
	}

	addCollider(ecs, e, halfExtents(t.Box), cfg.Layers.Target, resolvTags...)
	return e
}

func newTransform(pos vector.Vector) *components.TransformData {
	return &components.TransformData{
		Position: pos,
		Forward:  gamemath.Vec3(0, 0, 1),
		Up:       gamemath.Vec3(0, 1, 0),
	}
}

func worldCenter(b leveldata.Box) vector.Vector {
	return gamemath.Vec3(b.X+cfg.Range.OriginX, b.Y, b.Z+cfg.Range.OriginZ)
}

func halfExtents(b leveldata.Box) vector.Vector {
	return gamemath.Vec3(b.HalfW, b.HalfH, b.HalfD)
}
