package systems

import (
	"github.com/automoto/bowrange/components"
	"github.com/automoto/bowrange/logging"
	"github.com/google/uuid"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"
)

// PullReleased is published when a drawn string is let go with an arrow on
// the notch.
type PullReleased struct {
	Bow      *donburi.Entry
	Arrow    *donburi.Entry
	Fraction float64
	ShotID   uuid.UUID
}

// ArrowAttached is published when a flying arrow sticks into something.
type ArrowAttached struct {
	Arrow       *donburi.Entry
	Target      *donburi.Entry
	Point       vector.Vector
	Kind        components.ArrowKind
	ShotID      uuid.UUID
	FlightTicks int
	Blasted     []*donburi.Entry // targets caught in a bomb blast, excluding Target
}

type BombModeChanged struct {
	Active bool
}

// TimeUp is published once when the round countdown runs out.
type TimeUp struct {
	Points int
	Shots  int
}

var (
	PullReleasedEvent    = events.NewEventType[PullReleased]()
	ArrowAttachedEvent   = events.NewEventType[ArrowAttached]()
	BombModeChangedEvent = events.NewEventType[BombModeChanged]()
	TimeUpEvent          = events.NewEventType[TimeUp]()
)

// ProcessEvents delivers every queued event to its subscribers.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}

// SubscribeLogging logs every event at debug level. It also creates the
// event buses so later publishes never add entities mid-iteration.
func SubscribeLogging(w donburi.World) {
	PullReleasedEvent.Subscribe(w, func(w donburi.World, ev PullReleased) {
		logging.L().Debug("pull released",
			zap.Stringer("shot", ev.ShotID),
			zap.Float64("fraction", ev.Fraction))
	})
	ArrowAttachedEvent.Subscribe(w, func(w donburi.World, ev ArrowAttached) {
		logging.L().Debug("arrow attached",
			zap.Stringer("shot", ev.ShotID),
			zap.Stringer("kind", ev.Kind),
			zap.Int("flightTicks", ev.FlightTicks),
			zap.Bool("target", ev.Target != nil && ev.Target.HasComponent(components.Target)),
			zap.Int("blasted", len(ev.Blasted)))
	})
	BombModeChangedEvent.Subscribe(w, func(w donburi.World, ev BombModeChanged) {
		logging.L().Debug("bomb mode changed", zap.Bool("active", ev.Active))
	})
	TimeUpEvent.Subscribe(w, func(w donburi.World, ev TimeUp) {
		logging.L().Info("round over", zap.Int("points", ev.Points), zap.Int("shots", ev.Shots))
	})
}
