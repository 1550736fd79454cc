package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidTickRate = errors.New("config: tick rate must be positive")
	ErrDegenerateBow   = errors.New("config: bow startZ and endZ must differ")
	ErrInvalidCellSize = errors.New("config: range cell size must be positive")
)

// Current snapshots the global configuration.
func Current() Config {
	return Config{
		Simulation: Simulation,
		Bow:        Bow,
		Arrow:      Arrow,
		Physics:    Physics,
		Bomb:       Bomb,
		Timer:      Timer,
		Range:      Range,
		Layers:     Layers,
		Viewer:     Viewer,
		Log:        Log,
	}
}

// Apply validates c and installs it as the global configuration.
func Apply(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	Simulation = c.Simulation
	Bow = c.Bow
	Arrow = c.Arrow
	Physics = c.Physics
	Bomb = c.Bomb
	Timer = c.Timer
	Range = c.Range
	Layers = c.Layers
	Viewer = c.Viewer
	Log = c.Log
	return nil
}

// Validate reports the first setting that would break the simulation.
func (c Config) Validate() error {
	if c.Simulation.TickRate <= 0 {
		return ErrInvalidTickRate
	}
	if c.Bow.StartZ == c.Bow.EndZ {
		return ErrDegenerateBow
	}
	if c.Range.CellSizeCM <= 0 {
		return ErrInvalidCellSize
	}
	return nil
}

// Load decodes YAML overrides on top of the current configuration. Keys
// missing from the document keep their current values.
func Load(r io.Reader) error {
	c := Current()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}
	return Apply(c)
}

// LoadFile applies the YAML overrides stored at path.
func LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := Load(f); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}
