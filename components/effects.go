package components

import (
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

// ExplosionData marks where a bomb arrow detonated.
type ExplosionData struct {
	Center vector.Vector
	Radius float64
}

var Explosion = donburi.NewComponentType[ExplosionData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
