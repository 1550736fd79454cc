package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BombModeData is the time-limited bomb-arrow flag. Expiry runs in ticks so
// the flag clears on an exact tick.
type BombModeData struct {
	Active bool
	Expiry *gween.Tween
	Charge float32 // 1 when granted, falls to 0 at expiry
}

var BombMode = donburi.NewComponentType[BombModeData]()

// CountdownData is the round timer. This is a singleton component.
type CountdownData struct {
	RemainingTicks int
	Active         bool
}

var Countdown = donburi.NewComponentType[CountdownData]()

// ScoreData stores the round's statistics. This is a singleton component.
type ScoreData struct {
	Points int
	Hits   int
	Shots  int
	Best   int
}

var Score = donburi.NewComponentType[ScoreData]()

// TargetData marks a scoring target.
type TargetData struct {
	Name   string
	Points int
	Hits   int
}

var Target = donburi.NewComponentType[TargetData]()
