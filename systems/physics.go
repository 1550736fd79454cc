package systems

import (
	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates every simulated body by one tick. Kinematic and
// parented bodies are left alone.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.TickSeconds()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Kinematic || !e.HasComponent(components.Transform) {
			return
		}
		t := components.Transform.Get(e)
		if t.Parent != nil {
			return
		}

		// Apply gravity
		if physics.UseGravity {
			physics.Velocity = physics.Velocity.Add(gamemath.Vec3(0, -cfg.Physics.Gravity*dt, 0))
		}

		if physics.Drag > 0 {
			damping := 1 - physics.Drag*dt
			if damping < 0 {
				damping = 0
			}
			physics.Velocity = physics.Velocity.Scale(damping)
		}

		if speed := physics.Velocity.Magnitude(); speed > cfg.Physics.MaxVelocity {
			physics.Velocity = physics.Velocity.Scale(cfg.Physics.MaxVelocity / speed)
		}

		if physics.Interpolation == components.InterpolationInterpolate {
			physics.Previous = t.Position.Clone()
		} else {
			physics.Previous = nil
		}
		t.Position = t.Position.Add(physics.Velocity.Scale(dt))
	})
}
