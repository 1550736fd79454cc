package systems

import (
	"github.com/automoto/bowrange/components"
	"github.com/automoto/bowrange/hud"
	"github.com/automoto/bowrange/logging"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// SubscribeScoring keeps the round's score from release and attach events
// and pushes every change to display.
func SubscribeScoring(w donburi.World, display hud.ScoreDisplay) {
	push := func(score *components.ScoreData) {
		if display != nil {
			display.UpdateScore(score.Points, score.Shots, score.Best)
		}
	}

	PullReleasedEvent.Subscribe(w, func(w donburi.World, ev PullReleased) {
		score, ok := roundScore(w)
		if !ok {
			return
		}
		score.Shots++
		push(score)
	})

	ArrowAttachedEvent.Subscribe(w, func(w donburi.World, ev ArrowAttached) {
		score, ok := roundScore(w)
		if !ok {
			return
		}

		scored := false
		if ev.Target != nil && ev.Target.Valid() && ev.Target.HasComponent(components.Target) {
			award(score, ev.Target)
			scored = true
		}
		for _, t := range ev.Blasted {
			if t.Valid() && t.HasComponent(components.Target) {
				award(score, t)
				scored = true
			}
		}
		if scored {
			score.Hits++
			push(score)
		}
	})

	TimeUpEvent.Subscribe(w, func(w donburi.World, ev TimeUp) {
		score, ok := roundScore(w)
		if !ok || score.Points <= score.Best {
			return
		}
		logging.L().Info("new best score", zap.Int("points", score.Points), zap.Int("previous", score.Best))
		score.Best = score.Points
		push(score)
	})
}

func award(score *components.ScoreData, target *donburi.Entry) {
	t := components.Target.Get(target)
	t.Hits++
	score.Points += t.Points
}

func roundScore(w donburi.World) (*components.ScoreData, bool) {
	entry, ok := components.Score.First(w)
	if !ok {
		return nil, false
	}
	return components.Score.Get(entry), true
}
