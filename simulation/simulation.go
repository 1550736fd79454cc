// Package simulation assembles the archery range world and advances it in
// fixed ticks. It has no rendering or windowing dependencies, so it runs the
// same under the desktop viewer and in tests.
package simulation

import (
	"errors"

	"github.com/automoto/bowrange/components"
	"github.com/automoto/bowrange/hud"
	"github.com/automoto/bowrange/shared/gamemath"
	"github.com/automoto/bowrange/shared/leveldata"
	"github.com/automoto/bowrange/systems"
	"github.com/automoto/bowrange/systems/factory"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var ErrNoRange = errors.New("simulation: no range layout")

type Options struct {
	Range   *leveldata.RangeData
	Timer   hud.TimerDisplay
	Score   hud.ScoreDisplay
	Spawner systems.ArrowSpawner // defaults to factory.Quiver
	Best    int                  // best score carried over from earlier sessions
	Persist bool                 // save the record when a round ends
}

type Simulation struct {
	ECS   *ecs.ECS
	Bow   *donburi.Entry
	Hand  *donburi.Entry
	Round *donburi.Entry
	ticks int
}

func New(opts Options) (*Simulation, error) {
	if opts.Range == nil {
		return nil, ErrNoRange
	}

	world := donburi.NewWorld()
	e := ecs.NewECS(world)

	systems.SubscribeLogging(world)
	systems.SubscribeScoring(world, opts.Score)
	if opts.Persist {
		systems.SubscribePersistence(world)
	}

	factory.CreateSpace(e, opts.Range.Width, opts.Range.Depth)
	round := factory.CreateRound(e, opts.Best)
	bow := factory.CreateRange(e, opts.Range)
	hand := factory.CreateInteractor(e, bow)

	spawner := opts.Spawner
	if spawner == nil {
		spawner = factory.Quiver{}
	}

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateBombMode)
	e.AddSystem(systems.NewPullSystem(spawner))
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateTransforms)
	e.AddSystem(systems.UpdateArrows)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.NewCountdownSystem(opts.Timer))
	e.AddSystem(systems.ProcessEvents)

	if opts.Score != nil {
		score := components.Score.Get(round)
		opts.Score.UpdateScore(score.Points, score.Shots, score.Best)
	}

	return &Simulation{
		ECS:   e,
		Bow:   bow,
		Hand:  hand,
		Round: round,
	}, nil
}

// Step advances the world by one fixed tick.
func (s *Simulation) Step() {
	s.ECS.Update()
	s.ticks++
}

// Run advances the world by n ticks.
func (s *Simulation) Run(n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}

// Ticks returns how many ticks have run.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// SetHand places the hand and sets whether it holds the string. This is the
// entry point for controller input.
func (s *Simulation) SetHand(pos vector.Vector, selected bool) {
	hand := components.Interactor.Get(s.Hand)
	hand.Position = pos
	hand.Selected = selected
}

// DrawPoint returns the world point on the bow's pull axis for a pull
// fraction, where a hand would be to draw the string that far.
func (s *Simulation) DrawPoint(fraction float64) vector.Vector {
	t := components.Transform.Get(s.Bow)
	pull := components.Pull.Get(s.Bow)
	return gamemath.BowPoint(t.Position, t.Forward, pull.StartZ+fraction*(pull.EndZ-pull.StartZ))
}

// Pull returns the bow's pull state.
func (s *Simulation) Pull() *components.PullData {
	return components.Pull.Get(s.Bow)
}

// Score returns the round's score.
func (s *Simulation) Score() *components.ScoreData {
	return components.Score.Get(s.Round)
}
