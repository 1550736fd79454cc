package config

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionGrab          // hold to grab and draw the string, release to fire
	ActionPitchUp
	ActionPitchDown
	ActionBomb
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

// InputConfig maps actions to key names. Names follow ebiten's key naming
// ("Space", "ArrowUp", "B") so the viewer can resolve them.
type InputConfig struct {
	Bindings map[ActionID][]string
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID][]string{
			ActionGrab:      {"Space"},
			ActionPitchUp:   {"ArrowUp", "W"},
			ActionPitchDown: {"ArrowDown", "S"},
			ActionBomb:      {"B"},
			ActionRestart:   {"Enter"},
		},
	}
}
