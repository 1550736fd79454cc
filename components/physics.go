package components

import (
	"github.com/automoto/bowrange/shared/gamemath"
	"github.com/kvartborg/vector"
	"github.com/yohamta/donburi"
)

// Interpolation selects how a body is smoothed between fixed ticks.
type Interpolation int

const (
	InterpolationNone Interpolation = iota
	InterpolationInterpolate
)

// TransformData is an entity's placement in the world. A parented transform
// follows its parent's position plus LocalOffset.
type TransformData struct {
	Position    vector.Vector
	Forward     vector.Vector
	Up          vector.Vector
	Parent      *donburi.Entry
	LocalOffset vector.Vector
}

var Transform = donburi.NewComponentType[TransformData]()

// SetParent attaches the transform to parent, keeping its current world
// position. A nil parent detaches it.
func (t *TransformData) SetParent(parent *donburi.Entry) {
	if parent == nil || !parent.Valid() || !parent.HasComponent(Transform) {
		t.Parent = nil
		t.LocalOffset = nil
		return
	}
	t.Parent = parent
	t.LocalOffset = t.Position.Sub(Transform.Get(parent).Position)
}

// PhysicsData is a rigid body. Kinematic bodies ignore impulses and gravity
// and are only moved by assigning their transform.
type PhysicsData struct {
	Velocity      vector.Vector
	Mass          float64
	Drag          float64
	UseGravity    bool
	Kinematic     bool
	Interpolation Interpolation
	Previous      vector.Vector // position before the last step, kept while interpolating
}

var Physics = donburi.NewComponentType[PhysicsData]()

// AddImpulse applies an instantaneous velocity change of impulse/mass.
func (p *PhysicsData) AddImpulse(impulse vector.Vector) {
	if p.Kinematic {
		return
	}
	p.Velocity = p.Velocity.Add(gamemath.VelocityChange(impulse, p.Mass))
}

// SetSimulated switches between a simulated body (gravity on, kinematic off)
// and a frozen one (gravity off, kinematic on).
func (p *PhysicsData) SetSimulated(simulated bool) {
	p.UseGravity = simulated
	p.Kinematic = !simulated
	if !simulated {
		p.Velocity = gamemath.Zero3()
	}
}
