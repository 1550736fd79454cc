package systems

import (
	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/mathutil"
	"github.com/automoto/bowrange/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// overdraw lets the keyboard hand travel past full draw so the pull clamps.
const overdraw = 1.2

// UpdateInput maps the viewer's action buffer onto the first bow and its
// hand. Without an input entity (headless runs) it does nothing and hands are
// driven directly.
// Must run BEFORE the pull system in the system order.
func UpdateInput(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	if input.JustPressed(cfg.ActionRestart) {
		RestartRound(ecs)
	}
	if input.JustPressed(cfg.ActionBomb) {
		ActivateBombMode(ecs)
	}

	bow, ok := components.Pull.First(ecs.World)
	if !ok {
		return
	}
	aimBow(bow, input)

	hand := handOn(ecs, bow)
	if hand == nil {
		return
	}
	interactor := components.Interactor.Get(hand)
	pull := components.Pull.Get(bow)

	interactor.Selected = input.Pressed(cfg.ActionGrab)
	if interactor.Selected {
		maxReach := mathutil.AbsFloat(pull.EndZ-pull.StartZ) * overdraw
		input.Reach = mathutil.ClampFloat(input.Reach+cfg.Bow.PullRate, 0, maxReach)
	} else {
		input.Reach = 0
	}

	// The hand moves from the string's rest position toward full draw
	bowT := components.Transform.Get(bow)
	direction := 1.0
	if pull.EndZ < pull.StartZ {
		direction = -1.0
	}
	interactor.Position = gamemath.BowPoint(bowT.Position, bowT.Forward, pull.StartZ+direction*input.Reach)
}

// aimBow pitches the bow with the up and down actions.
func aimBow(bow *donburi.Entry, input *components.InputData) {
	pull := components.Pull.Get(bow)

	pitch := pull.Pitch
	if input.Pressed(cfg.ActionPitchUp) {
		pitch += cfg.Bow.PitchRate
	}
	if input.Pressed(cfg.ActionPitchDown) {
		pitch -= cfg.Bow.PitchRate
	}
	pitch = mathutil.ClampFloat(pitch, -cfg.Bow.MaxPitch, cfg.Bow.MaxPitch)
	if pitch == pull.Pitch {
		return
	}

	pull.Pitch = pitch
	t := components.Transform.Get(bow)
	t.Forward = gamemath.PitchForward(pitch)
	t.Up = gamemath.PitchUp(pitch)
}
