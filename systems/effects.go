package systems

import (
	"github.com/automoto/bowrange/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects counts down short-lived markers and removes expired ones.
func UpdateEffects(ecs *ecs.ECS) {
	updateAutoDestroy(ecs)
}

// updateAutoDestroy handles entities that should be destroyed after a duration
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		if e.HasComponent(components.Collider) {
			c := components.Collider.Get(e)
			if c.Object != nil && c.Object.Space != nil {
				c.Object.Space.Remove(c.Object)
			}
		}
		e.Remove()
	}
}
