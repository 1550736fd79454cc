package systems

import (
	"github.com/automoto/bowrange/components"
	"github.com/automoto/bowrange/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTransforms moves parented transforms with their parents and keeps
// collider footprints in the broadphase in sync with their transforms.
func UpdateTransforms(ecs *ecs.ECS) {
	components.Transform.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Transform.Get(e)
		if t.Parent == nil {
			return
		}
		if !t.Parent.Valid() || !t.Parent.HasComponent(components.Transform) {
			t.SetParent(nil)
			return
		}
		t.Position = components.Transform.Get(t.Parent).Position.Add(t.LocalOffset)
	})

	components.Collider.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Collider.Get(e)
		if c.Object == nil {
			return
		}
		factory.PlaceObject(c.Object, components.Transform.Get(e).Position, c.HalfExtents)
	})
}
