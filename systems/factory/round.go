package factory

import (
	"github.com/automoto/bowrange/archetypes"
	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRound spawns the singleton holding the countdown, score and bomb
// mode flag.
func CreateRound(ecs *ecs.ECS, best int) *donburi.Entry {
	round := archetypes.Round.Spawn(ecs)

	components.Countdown.Set(round, &components.CountdownData{
		RemainingTicks: cfg.TicksFor(cfg.Timer.RoundSeconds),
		Active:         cfg.Timer.AutoStart,
	})
	components.Score.Set(round, &components.ScoreData{
		Best: best,
	})
	components.BombMode.Set(round, &components.BombModeData{})

	return round
}

// CreateInput spawns the viewer's action buffer.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}
