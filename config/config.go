package config

import "image/color"

// SimulationConfig controls the fixed-step loop shared by every system.
type SimulationConfig struct {
	TickRate int `yaml:"tickRate"` // fixed ticks per second
}

// BowConfig contains the bow and bowstring layout. Z values are bow-local,
// measured along the bow's forward axis from the grip.
type BowConfig struct {
	StartZ      float64 `yaml:"startZ"`      // string rest position
	EndZ        float64 `yaml:"endZ"`        // full draw position
	NotchOffset float64 `yaml:"notchOffset"` // notch sits this far in front of the string anchor
	PullRate    float64 `yaml:"pullRate"`    // viewer only: metres per tick the hand draws back
	PitchRate   float64 `yaml:"pitchRate"`   // viewer only: radians per tick
	MaxPitch    float64 `yaml:"maxPitch"`    // viewer only: radians
}

// ArrowConfig contains projectile tuning.
type ArrowConfig struct {
	Speed     float64 `yaml:"speed"`     // impulse per unit of pull fraction
	Mass      float64 `yaml:"mass"`
	TipLength float64 `yaml:"tipLength"` // distance from arrow origin to tip
	// MinAlignSpeed is the velocity magnitude below which the arrow keeps its
	// current facing instead of turning into the velocity.
	MinAlignSpeed float64 `yaml:"minAlignSpeed"`
}

// PhysicsConfig contains rigid body integration values.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"` // m/s^2, applied along -Y
	TargetMass  float64 `yaml:"targetMass"`
	TargetDrag  float64 `yaml:"targetDrag"`
	MaxVelocity float64 `yaml:"maxVelocity"`
	KillDepth   float64 `yaml:"killDepth"` // free bodies below this y are removed
}

// BombConfig contains bomb-arrow mode configuration.
type BombConfig struct {
	Duration    float64 `yaml:"duration"` // seconds the mode stays active
	Radius      float64 `yaml:"radius"`
	Force       float64 `yaml:"force"`
	MarkerTicks int     `yaml:"markerTicks"`
}

// TimerConfig contains the round countdown configuration.
type TimerConfig struct {
	RoundSeconds float64 `yaml:"roundSeconds"`
	AutoStart    bool    `yaml:"autoStart"`
}

// RangeConfig describes the broadphase grid covering the range footprint.
// The grid lies in the X/Z plane and is measured in centimetres.
type RangeConfig struct {
	OriginX    float64 `yaml:"originX"` // world X of the grid's left edge
	OriginZ    float64 `yaml:"originZ"` // world Z of the grid's near edge
	Width      float64 `yaml:"width"`   // metres along X
	Depth      float64 `yaml:"depth"`   // metres along Z
	CellSizeCM int     `yaml:"cellSizeCM"`
	MapPath    string  `yaml:"mapPath"`
}

// LayerConfig names collider layers.
type LayerConfig struct {
	Default int `yaml:"default"`
	Target  int `yaml:"target"`
	Wielder int `yaml:"wielder"` // arrows never stick to this layer
}

// ViewerConfig contains desktop viewer configuration.
type ViewerConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	PixelsPerMeter float64 `yaml:"pixelsPerMeter"`
	GroundY        int     `yaml:"groundY"` // screen row of world y=0
	LeftMargin     int     `yaml:"leftMargin"`
	HUDFontSize    float64 `yaml:"hudFontSize"`
}

// LogConfig contains logger configuration.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Config groups every section so a YAML file can override any of them.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Bow        BowConfig        `yaml:"bow"`
	Arrow      ArrowConfig      `yaml:"arrow"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Bomb       BombConfig       `yaml:"bomb"`
	Timer      TimerConfig      `yaml:"timer"`
	Range      RangeConfig      `yaml:"range"`
	Layers     LayerConfig      `yaml:"layers"`
	Viewer     ViewerConfig     `yaml:"viewer"`
	Log        LogConfig        `yaml:"log"`
}

// Global configuration instances
var Simulation SimulationConfig
var Bow BowConfig
var Arrow ArrowConfig
var Physics PhysicsConfig
var Bomb BombConfig
var Timer TimerConfig
var Range RangeConfig
var Layers LayerConfig
var Viewer ViewerConfig
var Log LogConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Brown        = color.RGBA{R: 139, G: 90, B: 43, A: 255}
	Grey         = color.RGBA{R: 110, G: 110, B: 110, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Reset()
}

// Reset restores every section to its built-in defaults.
func Reset() {
	Simulation = SimulationConfig{
		TickRate: 60,
	}

	Bow = BowConfig{
		StartZ:      0.0,
		EndZ:        -0.6,
		NotchOffset: 0.2,
		PullRate:    0.015,
		PitchRate:   0.02,
		MaxPitch:    1.2,
	}

	Arrow = ArrowConfig{
		Speed:         10.0,
		Mass:          1.0,
		TipLength:     0.75,
		MinAlignSpeed: 0.01,
	}

	Physics = PhysicsConfig{
		Gravity:     9.81,
		TargetMass:  4.0,
		TargetDrag:  2.0,
		MaxVelocity: 200.0,
		KillDepth:   -20.0,
	}

	// Bomb arrows stay available for five seconds once granted
	Bomb = BombConfig{
		Duration:    5.0,
		Radius:      2.5,
		Force:       12.0,
		MarkerTicks: 30,
	}

	Timer = TimerConfig{
		RoundSeconds: 90,
		AutoStart:    true,
	}

	Range = RangeConfig{
		OriginX:    -10,
		OriginZ:    -5,
		Width:      20,
		Depth:      30,
		CellSizeCM: 100,
		MapPath:    "levels/range.tmx",
	}

	Layers = LayerConfig{
		Default: 0,
		Target:  8,
		Wielder: 9,
	}

	Viewer = ViewerConfig{
		Width:          960,
		Height:         360,
		PixelsPerMeter: 24,
		GroundY:        300,
		LeftMargin:     80,
		HUDFontSize:    16,
	}

	Log = LogConfig{
		Level: "info",
	}
}

// TicksFor converts seconds into whole simulation ticks.
func TicksFor(seconds float64) int {
	return int(seconds*float64(Simulation.TickRate) + 0.5)
}

// TickSeconds returns the duration of one simulation tick in seconds.
func TickSeconds() float64 {
	return 1.0 / float64(Simulation.TickRate)
}
