package scenes

import (
	"fmt"

	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/hud"
	"github.com/automoto/bowrange/render"
	"github.com/automoto/bowrange/simulation"
	"github.com/automoto/bowrange/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// RangeScene runs the simulation one tick per ebiten update and maps the
// keyboard onto the viewer's action buffer.
type RangeScene struct {
	sim   *simulation.Simulation
	input *donburi.Entry
	keys  [cfg.ActionCount][]ebiten.Key
}

// NewRangeScene binds the configured keys and registers the renderers on the
// simulation's world. An unknown key name is an error.
func NewRangeScene(sim *simulation.Simulation, board *hud.Board) (*RangeScene, error) {
	rs := &RangeScene{
		sim:   sim,
		input: factory.CreateInput(sim.ECS),
	}

	for action, names := range cfg.Input.Bindings {
		if action <= cfg.ActionNone || action >= cfg.ActionCount {
			continue
		}
		for _, name := range names {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(name)); err != nil {
				return nil, fmt.Errorf("binding for action %d: %w", action, err)
			}
			rs.keys[action] = append(rs.keys[action], key)
		}
	}

	sim.ECS.AddRenderer(cfg.Default, render.DrawRange)
	sim.ECS.AddRenderer(cfg.Overlay, render.NewOverlay(board))
	return rs, nil
}

func (rs *RangeScene) Update() {
	in := components.Input.Get(rs.input)
	in.Previous = in.Current
	for action, keys := range rs.keys {
		pressed := false
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				pressed = true
				break
			}
		}
		in.Current[action] = pressed
	}

	rs.sim.Step()
}

func (rs *RangeScene) Draw(screen *ebiten.Image) {
	rs.sim.ECS.Draw(screen)
}
