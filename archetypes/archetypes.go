package archetypes

import (
	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Bow = newArchetype(
		tags.Bow,
		components.Transform,
		components.Pull,
		components.StringVisual,
	)
	Arrow = newArchetype(
		tags.Arrow,
		components.Arrow,
		components.Transform,
		components.Physics,
	)
	Interactor = newArchetype(
		tags.Interactor,
		components.Interactor,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Transform,
		components.Collider,
	)
	Scenery = newArchetype(
		tags.Scenery,
		components.Transform,
		components.Collider,
	)
	Wielder = newArchetype(
		tags.Wielder,
		components.Transform,
		components.Collider,
	)
	Space = newArchetype(
		components.Space,
	)
	Round = newArchetype(
		components.Countdown,
		components.Score,
		components.BombMode,
	)
	Input = newArchetype(
		components.Input,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Explosion,
		components.AutoDestroy,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
