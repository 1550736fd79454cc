// Package render draws the range as a side view: world z runs left to right
// and world y runs up the screen. A top-down minimap of the collision space
// sits in the corner.
package render

import (
	"image/color"

	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	kv "github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	sky         = color.RGBA{R: 24, G: 28, B: 40, A: 255}
	sceneryGrey = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	wielderBlue = color.RGBA{R: 60, G: 110, B: 220, A: 255}
	stringColor = color.RGBA{R: 230, G: 230, B: 210, A: 255}
)

// limbLength is the half-length of the drawn bow, in metres.
const limbLength = 0.6

// toScreen maps a world point onto the side view.
func toScreen(p kv.Vector) (float32, float32) {
	x := float64(cfg.Viewer.LeftMargin) + (p.Z()-cfg.Range.OriginZ)*cfg.Viewer.PixelsPerMeter
	y := float64(cfg.Viewer.GroundY) - p.Y()*cfg.Viewer.PixelsPerMeter
	return float32(x), float32(y)
}

func metres(m float64) float32 {
	return float32(m * cfg.Viewer.PixelsPerMeter)
}

// DrawRange draws every collider box, the bow and its arrows.
func DrawRange(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(sky)

	components.Collider.Each(e.World, func(entry *donburi.Entry) {
		drawBox(screen, entry)
	})
	tags.Bow.Each(e.World, func(entry *donburi.Entry) {
		drawBow(screen, entry)
	})
	tags.Arrow.Each(e.World, func(entry *donburi.Entry) {
		drawArrow(screen, entry)
	})
	tags.Explosion.Each(e.World, func(entry *donburi.Entry) {
		drawExplosion(screen, entry)
	})
}

func drawBox(screen *ebiten.Image, entry *donburi.Entry) {
	t := components.Transform.Get(entry)
	half := components.Collider.Get(entry).HalfExtents

	c := color.Color(sceneryGrey)
	switch {
	case entry.HasComponent(tags.Target):
		c = cfg.Brown
		if components.Target.Get(entry).Hits > 0 {
			c = cfg.Yellow
		}
	case entry.HasComponent(tags.Wielder):
		x, y := toScreen(t.Position.Add(kv.Vector{0, half.Y(), -half.Z()}))
		vector.StrokeRect(screen, x, y, metres(2*half.Z()), metres(2*half.Y()), 1, wielderBlue, false)
		return
	}

	x, y := toScreen(t.Position.Add(kv.Vector{0, half.Y(), -half.Z()}))
	vector.DrawFilledRect(screen, x, y, metres(2*half.Z()), metres(2*half.Y()), c, false)
}

func drawBow(screen *ebiten.Image, entry *donburi.Entry) {
	t := components.Transform.Get(entry)
	visual := components.StringVisual.Get(entry)

	top := t.Position.Add(t.Up.Scale(limbLength))
	bottom := t.Position.Sub(t.Up.Scale(limbLength))
	anchor := t.Position.Add(t.Forward.Scale(visual.AnchorZ))

	tx, ty := toScreen(top)
	bx, by := toScreen(bottom)
	mx, my := toScreen(t.Position.Add(t.Forward.Scale(limbLength / 3)))
	ax, ay := toScreen(anchor)

	vector.StrokeLine(screen, tx, ty, mx, my, 3, cfg.Brown, true)
	vector.StrokeLine(screen, mx, my, bx, by, 3, cfg.Brown, true)
	vector.StrokeLine(screen, tx, ty, ax, ay, 1, stringColor, true)
	vector.StrokeLine(screen, ax, ay, bx, by, 1, stringColor, true)
}

func drawArrow(screen *ebiten.Image, entry *donburi.Entry) {
	a := components.Arrow.Get(entry)
	t := components.Transform.Get(entry)

	c := cfg.White
	if a.Kind == components.ArrowBomb {
		c = cfg.Orange
	}

	x0, y0 := toScreen(t.Position.Sub(t.Forward.Scale(a.TipLength)))
	x1, y1 := toScreen(a.Tip(t))
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, c, true)

	// The trail streaks back to where the tail was a tick ago
	body := components.Physics.Get(entry)
	if a.Trail && body.Interpolation == components.InterpolationInterpolate && body.Previous != nil {
		tx, ty := toScreen(body.Previous.Sub(t.Forward.Scale(a.TipLength)))
		vector.StrokeLine(screen, tx, ty, x0, y0, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 80}, true)
	}
}

func drawExplosion(screen *ebiten.Image, entry *donburi.Entry) {
	ex := components.Explosion.Get(entry)
	life := components.AutoDestroy.Get(entry)

	alpha := uint8(255)
	if cfg.Bomb.MarkerTicks > 0 {
		alpha = uint8(255 * life.FramesRemaining / cfg.Bomb.MarkerTicks)
	}
	x, y := toScreen(ex.Center)
	vector.StrokeCircle(screen, x, y, metres(ex.Radius), 2, color.NRGBA{R: 255, G: 120, B: 0, A: alpha}, true)
}
