package components

import (
	cfg "github.com/automoto/bowrange/config"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

// InteractorData is a hand that can select a bow's string. Controllers or
// the viewer's keyboard mapping drive it; the pull system only reads it.
type InteractorData struct {
	Selected bool
	Position vector.Vector
	Target   *donburi.Entry // bow being interacted with
}

var Interactor = donburi.NewComponentType[InteractorData]()

// InputData stores the current and previous tick's pressed state for all
// viewer actions.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Reach    float64 // how far the keyboard hand has drawn back, in metres
}

var Input = donburi.NewComponentType[InputData]()

func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

func (in *InputData) JustReleased(a cfg.ActionID) bool {
	return !in.Current[a] && in.Previous[a]
}
