package factory

import (
	"github.com/automoto/bowrange/archetypes"
	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/shared/gamemath"
	"github.com/google/uuid"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBow spawns a bow held at pos, pitched up by pitch radians, with the
// string at rest.
func CreateBow(ecs *ecs.ECS, pos vector.Vector, pitch float64) *donburi.Entry {
	bow := archetypes.Bow.Spawn(ecs)

	components.Transform.Set(bow, &components.TransformData{
		Position: pos,
		Forward:  gamemath.PitchForward(pitch),
		Up:       gamemath.PitchUp(pitch),
	})
	components.Pull.Set(bow, &components.PullData{
		StartZ: cfg.Bow.StartZ,
		EndZ:   cfg.Bow.EndZ,
		Pitch:  pitch,
	})

	anchorZ, notchZ := gamemath.StringLayout(cfg.Bow.StartZ, cfg.Bow.EndZ, 0, cfg.Bow.NotchOffset)
	components.StringVisual.Set(bow, &components.StringVisualData{
		AnchorZ: anchorZ,
		NotchZ:  notchZ,
	})

	return bow
}

// CreateInteractor spawns a hand resting on the bow's string.
func CreateInteractor(ecs *ecs.ECS, bow *donburi.Entry) *donburi.Entry {
	hand := archetypes.Interactor.Spawn(ecs)

	t := components.Transform.Get(bow)
	pull := components.Pull.Get(bow)
	components.Interactor.Set(hand, &components.InteractorData{
		Position: gamemath.BowPoint(t.Position, t.Forward, pull.StartZ),
		Target:   bow,
	})
	return hand
}

// CreateArrow spawns an arrow resting on the bow's notch. The arrow is
// kinematic until launched.
func CreateArrow(ecs *ecs.ECS, bow *donburi.Entry, kind components.ArrowKind) *donburi.Entry {
	arrow := archetypes.Arrow.Spawn(ecs)

	bowT := components.Transform.Get(bow)
	notchZ := components.StringVisual.Get(bow).NotchZ

	t := &components.TransformData{
		Position: gamemath.BowPoint(bowT.Position, bowT.Forward, notchZ),
		Forward:  bowT.Forward.Clone(),
		Up:       bowT.Up.Clone(),
	}
	components.Transform.Set(arrow, t)

	body := &components.PhysicsData{
		Velocity:      gamemath.Zero3(),
		Mass:          cfg.Arrow.Mass,
		Interpolation: components.InterpolationInterpolate,
	}
	body.SetSimulated(false)
	components.Physics.Set(arrow, body)

	data := &components.ArrowData{
		ShotID:    uuid.New(),
		State:     components.ArrowResting,
		Kind:      kind,
		Bow:       bow,
		TipLength: cfg.Arrow.TipLength,
	}
	data.LastTip = data.Tip(t)
	components.Arrow.Set(arrow, data)

	return arrow
}

// Quiver hands out arrows for the pull system.
type Quiver struct{}

func (Quiver) SpawnArrow(ecs *ecs.ECS, bow *donburi.Entry) *donburi.Entry {
	return CreateArrow(ecs, bow, components.ArrowNormal)
}

func (Quiver) SpawnBombArrow(ecs *ecs.ECS, bow *donburi.Entry) *donburi.Entry {
	return CreateArrow(ecs, bow, components.ArrowBomb)
}
