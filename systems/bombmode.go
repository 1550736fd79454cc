package systems

import (
	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/logging"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// ActivateBombMode turns bomb arrows on. Activating while already active
// restarts the expiry from the full duration.
func ActivateBombMode(e *ecs.ECS) {
	entry, ok := components.BombMode.First(e.World)
	if !ok {
		return
	}
	bomb := components.BombMode.Get(entry)

	ticks := cfg.TicksFor(cfg.Bomb.Duration)
	bomb.Expiry = gween.New(1, 0, float32(ticks), ease.Linear)
	bomb.Charge = 1

	if !bomb.Active {
		bomb.Active = true
		BombModeChangedEvent.Publish(e.World, BombModeChanged{Active: true})
	}
	logging.L().Debug("bomb mode armed", zap.Int("ticks", ticks))
}

// DeactivateBombMode clears bomb mode immediately.
func DeactivateBombMode(e *ecs.ECS) {
	entry, ok := components.BombMode.First(e.World)
	if !ok {
		return
	}
	bomb := components.BombMode.Get(entry)

	bomb.Expiry = nil
	bomb.Charge = 0
	if bomb.Active {
		bomb.Active = false
		BombModeChangedEvent.Publish(e.World, BombModeChanged{Active: false})
	}
}

// BombModeActive reports whether newly nocked arrows should be bomb arrows.
func BombModeActive(e *ecs.ECS) bool {
	entry, ok := components.BombMode.First(e.World)
	if !ok {
		return false
	}
	return components.BombMode.Get(entry).Active
}

// UpdateBombMode advances the expiry by one tick and clears the flag on the
// tick the duration is reached.
func UpdateBombMode(e *ecs.ECS) {
	entry, ok := components.BombMode.First(e.World)
	if !ok {
		return
	}
	bomb := components.BombMode.Get(entry)
	if !bomb.Active || bomb.Expiry == nil {
		return
	}

	charge, finished := bomb.Expiry.Update(1)
	bomb.Charge = charge
	if finished {
		DeactivateBombMode(e)
	}
}
