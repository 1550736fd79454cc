package factory

import (
	"github.com/automoto/bowrange/archetypes"
	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateExplosion spawns a short-lived blast marker.
func CreateExplosion(ecs *ecs.ECS, center vector.Vector, radius float64) *donburi.Entry {
	e := archetypes.Explosion.Spawn(ecs)
	components.Explosion.Set(e, &components.ExplosionData{
		Center: center.Clone(),
		Radius: radius,
	})
	components.AutoDestroy.Set(e, &components.AutoDestroyData{
		FramesRemaining: cfg.Bomb.MarkerTicks,
	})
	return e
}
