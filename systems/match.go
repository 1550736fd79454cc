package systems

import (
	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/hud"
	"github.com/automoto/bowrange/logging"
	"github.com/automoto/bowrange/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// NewCountdownSystem returns the round timer system. Every tick while the
// countdown is running it takes one tick off and pushes the remaining
// seconds to display. Once nothing is left it stops and publishes TimeUp.
func NewCountdownSystem(display hud.TimerDisplay) ecs.System {
	if display == nil {
		logging.L().Error("countdown has no timer display")
	}

	return func(e *ecs.ECS) {
		roundEntry, ok := components.Countdown.First(e.World)
		if !ok {
			return
		}
		countdown := components.Countdown.Get(roundEntry)
		if !countdown.Active {
			return
		}

		if countdown.RemainingTicks > 0 {
			countdown.RemainingTicks--
			if display != nil {
				display.UpdateTime(RemainingSeconds(countdown))
			}
			return
		}

		// Time's up
		countdown.Active = false
		logging.L().Info("out of time")

		ev := TimeUp{}
		if roundEntry.HasComponent(components.Score) {
			score := components.Score.Get(roundEntry)
			ev.Points, ev.Shots = score.Points, score.Shots
		}
		TimeUpEvent.Publish(e.World, ev)
	}
}

// RemainingSeconds converts the countdown's ticks into seconds.
func RemainingSeconds(c *components.CountdownData) float64 {
	return float64(c.RemainingTicks) * cfg.TickSeconds()
}

// StartCountdown (re)starts the round timer from the full round length.
func StartCountdown(e *ecs.ECS) {
	roundEntry, ok := components.Countdown.First(e.World)
	if !ok {
		return
	}
	countdown := components.Countdown.Get(roundEntry)
	countdown.RemainingTicks = cfg.TicksFor(cfg.Timer.RoundSeconds)
	countdown.Active = true
}

// RestartRound clears every arrow, empties the bows, resets the score and
// starts the countdown again. The best score is kept.
func RestartRound(e *ecs.ECS) {
	var arrows []*donburi.Entry
	tags.Arrow.Each(e.World, func(entry *donburi.Entry) {
		arrows = append(arrows, entry)
	})

	tags.Bow.Each(e.World, func(bow *donburi.Entry) {
		pull := components.Pull.Get(bow)
		pull.Fraction = 0
		pull.Interactor = nil
		pull.Nocked = nil
		pull.ArrowSpawned = false
		layoutString(bow)
	})
	components.Interactor.Each(e.World, func(entry *donburi.Entry) {
		components.Interactor.Get(entry).Selected = false
	})

	for _, arrow := range arrows {
		e.World.Remove(arrow.Entity())
	}

	if roundEntry, ok := components.Score.First(e.World); ok {
		score := components.Score.Get(roundEntry)
		*score = components.ScoreData{Best: score.Best}
	}
	DeactivateBombMode(e)
	StartCountdown(e)

	logging.L().Info("round restarted", zap.Int("arrowsCleared", len(arrows)))
}
