package systems

import (
	"testing"

	"github.com/automoto/bowrange/components"
	"github.com/automoto/bowrange/shared/gamemath"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func spawnBody(e *ecs.ECS, interpolation components.Interpolation) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(components.Transform, components.Physics))
	components.Transform.SetValue(entry, components.TransformData{
		Position: gamemath.Vec3(0, 5, 0),
		Forward:  gamemath.Vec3(0, 0, 1),
		Up:       gamemath.Vec3(0, 1, 0),
	})
	components.Physics.SetValue(entry, components.PhysicsData{
		Velocity:      gamemath.Vec3(0, 0, 6),
		Mass:          1,
		Interpolation: interpolation,
	})
	return entry
}

func TestUpdatePhysicsKeepsPreviousForInterpolatedBodies(t *testing.T) {
	e := newTestECS(t)
	smooth := spawnBody(e, components.InterpolationInterpolate)
	snapped := spawnBody(e, components.InterpolationNone)

	UpdatePhysics(e)

	prev := components.Physics.Get(smooth).Previous
	require.NotNil(t, prev)
	require.Equal(t, 0.0, prev.Z())
	require.InDelta(t, 0.1, components.Transform.Get(smooth).Position.Z(), 1e-9)

	require.Nil(t, components.Physics.Get(snapped).Previous)
	require.InDelta(t, 0.1, components.Transform.Get(snapped).Position.Z(), 1e-9)
}

func TestUpdatePhysicsSkipsKinematicBodies(t *testing.T) {
	e := newTestECS(t)
	entry := spawnBody(e, components.InterpolationInterpolate)
	components.Physics.Get(entry).Kinematic = true

	UpdatePhysics(e)

	require.Equal(t, 0.0, components.Transform.Get(entry).Position.Z())
}
