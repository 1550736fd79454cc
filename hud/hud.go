// Package hud holds the display services the simulation pushes round state
// into. Systems receive these interfaces explicitly; nothing here is global.
package hud

import (
	"fmt"
	"math"
	"sync"

	"github.com/automoto/bowrange/logging"
	"go.uber.org/zap"
)

// TimerDisplay shows the round clock.
type TimerDisplay interface {
	UpdateTime(seconds float64)
}

// ScoreDisplay shows the round's score line.
type ScoreDisplay interface {
	UpdateScore(points, shots, best int)
}

// FormatClock renders a clock value as "M : SS". The value is shifted up by
// one second first, so a countdown reads 0 : 01 during its last second.
func FormatClock(seconds float64) string {
	t := seconds + 1
	if t < 0 {
		t = 0
	}
	minutes := math.Floor(t / 60)
	secs := math.Floor(math.Mod(t, 60))
	return fmt.Sprintf("%d : %02d", int(minutes), int(secs))
}

// Board is the default display service. It keeps the latest formatted text
// for the viewer to draw.
type Board struct {
	mu     sync.RWMutex
	clock  string
	score  string
	closed bool
}

var (
	_ TimerDisplay = (*Board)(nil)
	_ ScoreDisplay = (*Board)(nil)
)

func New() *Board {
	return &Board{
		clock: FormatClock(0),
		score: formatScore(0, 0, 0),
	}
}

func (b *Board) UpdateTime(seconds float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		logging.L().Warn("timer update on closed board", zap.Float64("seconds", seconds))
		return
	}
	b.clock = FormatClock(seconds)
}

func (b *Board) UpdateScore(points, shots, best int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		logging.L().Warn("score update on closed board", zap.Int("points", points))
		return
	}
	b.score = formatScore(points, shots, best)
}

// Clock returns the last formatted clock text.
func (b *Board) Clock() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.clock
}

// Score returns the last formatted score text.
func (b *Board) Score() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.score
}

// Close stops the board from accepting updates. It is safe to call twice.
func (b *Board) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

func formatScore(points, shots, best int) string {
	return fmt.Sprintf("SCORE %d   SHOTS %d   BEST %d", points, shots, best)
}
