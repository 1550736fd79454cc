package components

import (
	"github.com/google/uuid"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

type ArrowState int

const (
	ArrowResting ArrowState = iota
	ArrowInFlight
	ArrowAttached
)

func (s ArrowState) String() string {
	switch s {
	case ArrowResting:
		return "resting"
	case ArrowInFlight:
		return "in-flight"
	case ArrowAttached:
		return "attached"
	}
	return "unknown"
}

type ArrowKind int

const (
	ArrowNormal ArrowKind = iota
	ArrowBomb
)

func (k ArrowKind) String() string {
	if k == ArrowBomb {
		return "bomb"
	}
	return "normal"
}

type ArrowData struct {
	ShotID      uuid.UUID
	State       ArrowState
	Kind        ArrowKind
	Bow         *donburi.Entry
	TipLength   float64
	LastTip     vector.Vector
	AttachedTo  *donburi.Entry // what the arrow stuck into
	FlightTicks int
	Trail       bool // trail/particle effects emitting
}

var Arrow = donburi.NewComponentType[ArrowData]()

// Advance moves the arrow to the next state. Only Resting->InFlight and
// InFlight->Attached are allowed; anything else is refused.
func (a *ArrowData) Advance(to ArrowState) bool {
	switch {
	case a.State == ArrowResting && to == ArrowInFlight,
		a.State == ArrowInFlight && to == ArrowAttached:
		a.State = to
		return true
	}
	return false
}

// Tip returns the world position of the arrow tip.
func (a *ArrowData) Tip(t *TransformData) vector.Vector {
	return t.Position.Add(t.Forward.Scale(a.TipLength))
}
