package components

import (
	"github.com/yohamta/donburi"
)

// PullData is the bowstring's pull state. StartZ and EndZ are bow-local
// positions of the string at rest and at full draw.
type PullData struct {
	Fraction     float64 // always within [0, 1]
	StartZ       float64
	EndZ         float64
	Pitch        float64        // radians above the horizon, driven by the viewer
	Interactor   *donburi.Entry // hand currently drawing the string
	Nocked       *donburi.Entry // arrow resting on the notch
	ArrowSpawned bool
	AxisWarned   bool
}

var Pull = donburi.NewComponentType[PullData]()

// StringVisualData holds the bow-local z of the string's drawn point and of
// the notch marker.
type StringVisualData struct {
	AnchorZ float64
	NotchZ  float64
}

var StringVisual = donburi.NewComponentType[StringVisualData]()
