package render

import (
	"image/color"

	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/fonts"
	"github.com/automoto/bowrange/hud"
	"github.com/automoto/bowrange/systems/factory"
	"github.com/automoto/bowrange/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin      = 10
	meterWidth     = 130
	meterHeight    = 8
	minimapWidth   = 80
	minimapPadding = 4
)

// NewOverlay returns the renderer for the score, clock, bomb meter and
// minimap. Text comes from board so the viewer shows exactly what the
// simulation pushed.
func NewOverlay(board *hud.Board) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		face := fonts.HUD.Get()
		width := screen.Bounds().Dx()

		text.Draw(screen, board.Score(), face, hudMargin, hudMargin+int(cfg.Viewer.HUDFontSize), cfg.White)

		clock := board.Clock()
		clockWidth := text.BoundString(face, clock).Dx()
		text.Draw(screen, clock, face, width-clockWidth-hudMargin, hudMargin+int(cfg.Viewer.HUDFontSize), cfg.White)

		if round, ok := components.Countdown.First(e.World); ok && !components.Countdown.Get(round).Active {
			msg := "TIME UP - press Enter"
			small := fonts.HUDSmall.Get()
			msgWidth := text.BoundString(small, msg).Dx()
			text.Draw(screen, msg, small, (width-msgWidth)/2, screen.Bounds().Dy()/3, cfg.Yellow)
		}

		drawBombMeter(e, screen)
		drawMinimap(e, screen)
	}
}

func drawBombMeter(e *ecs.ECS, screen *ebiten.Image) {
	round, ok := components.BombMode.First(e.World)
	if !ok {
		return
	}
	bomb := components.BombMode.Get(round)
	if !bomb.Active {
		return
	}

	y := float32(hudMargin + 2*cfg.Viewer.HUDFontSize)
	vector.DrawFilledRect(screen, hudMargin, y, meterWidth, meterHeight, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, hudMargin, y, meterWidth*bomb.Charge, meterHeight, cfg.Orange, false)
}

// drawMinimap draws the collision space from above: x across, z down.
func drawMinimap(e *ecs.ECS, screen *ebiten.Image) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	spaceW := float32(space.Width() * space.CellWidth)
	spaceH := float32(space.Height() * space.CellHeight)
	if spaceW == 0 || spaceH == 0 {
		return
	}
	scale := minimapWidth / spaceW
	left := float32(screen.Bounds().Dx()) - minimapWidth - hudMargin
	top := float32(hudMargin + 2*cfg.Viewer.HUDFontSize)

	vector.DrawFilledRect(screen, left-minimapPadding, top-minimapPadding,
		minimapWidth+2*minimapPadding, spaceH*scale+2*minimapPadding, color.NRGBA{0, 0, 0, 140}, false)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvBody):
			c = cfg.Orange
		case obj.HasTags(tags.ResolvTarget):
			c = cfg.Brown
		case obj.HasTags(tags.ResolvWielder):
			c = wielderBlue
		case obj.HasTags(tags.ResolvSolid):
			c = sceneryGrey
		}

		w := float32(obj.W) * scale
		h := float32(obj.H) * scale
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		vector.DrawFilledRect(screen, left+float32(obj.X)*scale, top+float32(obj.Y)*scale, w, h, c, false)
	}

	tags.Arrow.Each(e.World, func(entry *donburi.Entry) {
		p := components.Transform.Get(entry).Position
		x, y := factory.ToSpace(p.X(), p.Z())
		vector.DrawFilledRect(screen, left+float32(x)*scale, top+float32(y)*scale, 2, 2, cfg.White, false)
	})
}
