package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/automoto/bowrange/assets"
	"github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/fonts"
	"github.com/automoto/bowrange/hud"
	"github.com/automoto/bowrange/logging"
	"github.com/automoto/bowrange/scenes"
	"github.com/automoto/bowrange/shared/leveldata"
	"github.com/automoto/bowrange/simulation"
	"github.com/automoto/bowrange/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Viewer.Width, config.Viewer.Height)
	return config.Viewer.Width, config.Viewer.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file with configuration overrides")
	rangePath := flag.String("range", "", "range layout (TMX) to load instead of the configured one")
	headless := flag.Int("ticks", 0, "run this many ticks without a window and exit")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	logger, err := logging.New(config.Log.Level, config.Log.Development)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Set(logger)

	err = run(*rangePath, *headless)
	if err != nil {
		logger.Error("bowrange stopped", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(rangePath string, headless int) error {
	layout, err := loadRange(rangePath)
	if err != nil {
		return err
	}

	best := 0
	if err := systems.InitPersistence(); err == nil {
		if record, err := systems.LoadRecord(); err == nil && record != nil {
			best = record.BestScore
		}
	}

	board := hud.New()
	defer board.Close()

	sim, err := simulation.New(simulation.Options{
		Range:   layout,
		Timer:   board,
		Score:   board,
		Best:    best,
		Persist: headless == 0,
	})
	if err != nil {
		return err
	}

	if headless > 0 {
		sim.Run(headless)
		score := sim.Score()
		logging.L().Info("headless run finished",
			zap.Int("ticks", sim.Ticks()),
			zap.String("clock", board.Clock()),
			zap.Int("points", score.Points),
			zap.Int("shots", score.Shots))
		return nil
	}

	if err := fonts.LoadDefaults(config.Viewer.HUDFontSize); err != nil {
		return err
	}
	scene, err := scenes.NewRangeScene(sim, board)
	if err != nil {
		return err
	}

	ebiten.SetTPS(config.Simulation.TickRate)
	ebiten.SetWindowSize(config.Viewer.Width, config.Viewer.Height)
	ebiten.SetWindowTitle("bowrange")
	return ebiten.RunGame(&Game{scene: scene})
}

func loadRange(path string) (*leveldata.RangeData, error) {
	if path == "" {
		return assets.LoadRange()
	}
	return leveldata.LoadRange(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
