package systems

import (
	"errors"

	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/logging"
	"github.com/automoto/bowrange/shared/gamemath"
	"github.com/automoto/bowrange/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ArrowSpawner creates arrows resting on a bow's notch.
type ArrowSpawner interface {
	SpawnArrow(ecs *ecs.ECS, bow *donburi.Entry) *donburi.Entry
	SpawnBombArrow(ecs *ecs.ECS, bow *donburi.Entry) *donburi.Entry
}

// NewPullSystem returns the system that tracks hands on bowstrings. While a
// hand holds a string it nocks an arrow from spawner and follows the draw;
// when the hand lets go the bow is released.
func NewPullSystem(spawner ArrowSpawner) ecs.System {
	return func(e *ecs.ECS) {
		var bows []*donburi.Entry
		tags.Bow.Each(e.World, func(bow *donburi.Entry) {
			bows = append(bows, bow)
		})

		for _, bow := range bows {
			updateBow(e, bow, spawner)
		}
	}
}

func updateBow(e *ecs.ECS, bow *donburi.Entry, spawner ArrowSpawner) {
	pull := components.Pull.Get(bow)
	hand := handOn(e, bow)

	if hand == nil || !components.Interactor.Get(hand).Selected {
		if pull.Interactor != nil {
			Release(e, bow)
		}
		return
	}

	if pull.Interactor == nil {
		pull.Interactor = hand
		pull.AxisWarned = false
	}

	if !pull.ArrowSpawned && spawner != nil {
		var arrow *donburi.Entry
		if BombModeActive(e) {
			arrow = spawner.SpawnBombArrow(e, bow)
		} else {
			arrow = spawner.SpawnArrow(e, bow)
		}
		pull.Nocked = arrow
		pull.ArrowSpawned = arrow != nil
	}

	bowT := components.Transform.Get(bow)
	start := gamemath.BowPoint(bowT.Position, bowT.Forward, pull.StartZ)
	end := gamemath.BowPoint(bowT.Position, bowT.Forward, pull.EndZ)

	fraction, err := gamemath.PullFraction(components.Interactor.Get(hand).Position, start, end)
	if errors.Is(err, gamemath.ErrDegenerateAxis) && !pull.AxisWarned {
		logging.L().Warn("bowstring has no pull axis", zap.Float64("startZ", pull.StartZ), zap.Float64("endZ", pull.EndZ))
		pull.AxisWarned = true
	}
	pull.Fraction = fraction

	layoutString(bow)
	followNotch(bow)
}

// handOn returns the first interactor aimed at bow.
func handOn(e *ecs.ECS, bow *donburi.Entry) *donburi.Entry {
	var hand *donburi.Entry
	components.Interactor.Each(e.World, func(entry *donburi.Entry) {
		if hand != nil {
			return
		}
		if components.Interactor.Get(entry).Target == bow {
			hand = entry
		}
	})
	return hand
}

// layoutString moves the string anchor and notch to match the pull.
func layoutString(bow *donburi.Entry) {
	pull := components.Pull.Get(bow)
	visual := components.StringVisual.Get(bow)
	visual.AnchorZ, visual.NotchZ = gamemath.StringLayout(pull.StartZ, pull.EndZ, pull.Fraction, cfg.Bow.NotchOffset)
}

// followNotch keeps the nocked arrow on the notch, facing the bow's forward.
func followNotch(bow *donburi.Entry) {
	pull := components.Pull.Get(bow)
	if pull.Nocked == nil || !pull.Nocked.Valid() {
		return
	}

	bowT := components.Transform.Get(bow)
	t := components.Transform.Get(pull.Nocked)
	t.Position = gamemath.BowPoint(bowT.Position, bowT.Forward, components.StringVisual.Get(bow).NotchZ)
	t.Forward = bowT.Forward.Clone()
	t.Up = bowT.Up.Clone()

	arrow := components.Arrow.Get(pull.Nocked)
	arrow.LastTip = arrow.Tip(t)
}

// Release lets go of the string. A nocked arrow is launched with the current
// pull, then the pull always returns to 0 and the bow is ready for the next
// arrow.
func Release(e *ecs.ECS, bow *donburi.Entry) {
	pull := components.Pull.Get(bow)
	fraction := pull.Fraction

	if pull.Nocked != nil && pull.Nocked.Valid() && Launch(bow, pull.Nocked, fraction) {
		PullReleasedEvent.Publish(e.World, PullReleased{
			Bow:      bow,
			Arrow:    pull.Nocked,
			Fraction: fraction,
			ShotID:   components.Arrow.Get(pull.Nocked).ShotID,
		})
	}

	pull.Fraction = 0
	pull.Interactor = nil
	pull.Nocked = nil
	pull.ArrowSpawned = false
	layoutString(bow)
}

// Launch sends a resting arrow off along the bow's forward axis with an
// impulse proportional to fraction. It reports false if the arrow was not
// resting.
func Launch(bow, arrow *donburi.Entry, fraction float64) bool {
	a := components.Arrow.Get(arrow)
	if !a.Advance(components.ArrowInFlight) {
		return false
	}

	t := components.Transform.Get(arrow)
	t.SetParent(nil)

	body := components.Physics.Get(arrow)
	body.SetSimulated(true)
	body.AddImpulse(gamemath.LaunchImpulse(components.Transform.Get(bow).Forward, fraction, cfg.Arrow.Speed))

	a.LastTip = a.Tip(t)
	a.FlightTicks = 0
	a.Trail = true
	return true
}
