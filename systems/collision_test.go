package systems

import (
	"testing"

	"github.com/automoto/bowrange/components"
	cfg "github.com/automoto/bowrange/config"
	"github.com/automoto/bowrange/shared/gamemath"
	"github.com/automoto/bowrange/shared/leveldata"
	"github.com/automoto/bowrange/systems/factory"
	"github.com/kvartborg/vector"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 0, 0)
	return e
}

func TestLinecastReturnsNearest(t *testing.T) {
	e := newTestECS(t)
	far := factory.CreateScenery(e, gamemath.Vec3(0, 1, 8), gamemath.Vec3(2, 2, 0.5))
	near := factory.CreateScenery(e, gamemath.Vec3(0, 1, 4), gamemath.Vec3(2, 2, 0.5))

	hit, ok := Linecast(e, gamemath.Vec3(0, 1, 0), gamemath.Vec3(0, 1, 10))
	require.True(t, ok)
	require.Same(t, near, hit.Entry)
	require.InDelta(t, 3.5, hit.Point.Z(), 1e-9)
	require.InDelta(t, 0.35, hit.T, 1e-9)

	hit, ok = Linecast(e, gamemath.Vec3(0, 1, 6), gamemath.Vec3(0, 1, 10))
	require.True(t, ok)
	require.Same(t, far, hit.Entry)
}

func TestLinecastMisses(t *testing.T) {
	e := newTestECS(t)
	factory.CreateScenery(e, gamemath.Vec3(0, 1, 4), gamemath.Vec3(1, 1, 0.5))

	_, ok := Linecast(e, gamemath.Vec3(0, 1, 0), gamemath.Vec3(0, 1, 3))
	require.False(t, ok)

	// passes over the top
	_, ok = Linecast(e, gamemath.Vec3(0, 3, 0), gamemath.Vec3(0, 3, 10))
	require.False(t, ok)

	// beside it
	_, ok = Linecast(e, gamemath.Vec3(3, 1, 0), gamemath.Vec3(3, 1, 10))
	require.False(t, ok)
}

func TestLinecastReportsWielderFirst(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWielder(e, gamemath.Vec3(0, 1, 1), gamemath.Vec3(0.5, 1, 0.2))
	factory.CreateScenery(e, gamemath.Vec3(0, 1, 1.5), gamemath.Vec3(2, 2, 0.1))

	hit, ok := Linecast(e, gamemath.Vec3(0, 1, 0), gamemath.Vec3(0, 1, 2))
	require.True(t, ok)
	require.Equal(t, cfg.Layers.Wielder, hit.Layer)
	require.InDelta(t, 0.8, hit.Point.Z(), 1e-9)
}

// flyingArrow puts an arrow in flight along +z whose tip moved from -> to
// during the last step.
func flyingArrow(t *testing.T, e *ecs.ECS, from, to vector.Vector) *donburi.Entry {
	t.Helper()
	bow := factory.CreateBow(e, gamemath.Vec3(0, 1, -2), 0)
	arrow := factory.CreateArrow(e, bow, components.ArrowNormal)

	a := components.Arrow.Get(arrow)
	require.True(t, a.Advance(components.ArrowInFlight))

	body := components.Physics.Get(arrow)
	body.SetSimulated(true)
	body.Velocity = gamemath.Vec3(0, 0, 10)

	tr := components.Transform.Get(arrow)
	tr.Forward = gamemath.Vec3(0, 0, 1)
	tr.Position = to.Sub(tr.Forward.Scale(a.TipLength))
	a.LastTip = from.Clone()
	return arrow
}

func TestWielderShadowsSurfaceBehindIt(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWielder(e, gamemath.Vec3(0, 1, 1), gamemath.Vec3(0.5, 1, 0.2))
	factory.CreateScenery(e, gamemath.Vec3(0, 1, 1.5), gamemath.Vec3(2, 2, 0.1))

	arrow := flyingArrow(t, e, gamemath.Vec3(0, 1, 0), gamemath.Vec3(0, 1, 2))
	UpdateArrows(e)

	a := components.Arrow.Get(arrow)
	require.Equal(t, components.ArrowInFlight, a.State)
	require.Nil(t, a.AttachedTo)
	require.InDelta(t, 2.0, a.LastTip.Z(), 1e-9)
	require.Equal(t, 1, a.FlightTicks)
}

func TestArrowParentsToKinematicBody(t *testing.T) {
	e := newTestECS(t)
	target := factory.CreateTarget(e, leveldata.TargetPlacement{
		Box:     leveldata.Box{Name: "post", X: 10, Y: 1, Z: 6.5, HalfW: 1, HalfH: 1, HalfD: 0.1},
		Points:  5,
		Dynamic: true,
	})
	targetBody := components.Physics.Get(target)
	targetBody.Kinematic = true

	arrow := flyingArrow(t, e, gamemath.Vec3(0, 1, 0), gamemath.Vec3(0, 1, 2))
	UpdateArrows(e)

	a := components.Arrow.Get(arrow)
	require.Equal(t, components.ArrowAttached, a.State)
	require.Same(t, target, a.AttachedTo)
	require.Same(t, target, components.Transform.Get(arrow).Parent)
	require.Equal(t, components.InterpolationNone, components.Physics.Get(arrow).Interpolation)
	require.Zero(t, targetBody.Velocity.Magnitude())
}

func TestArrowFallingPastKillDepthIsRemoved(t *testing.T) {
	e := newTestECS(t)
	cfg.Physics.KillDepth = -1

	arrow := flyingArrow(t, e, gamemath.Vec3(0, -2, 0), gamemath.Vec3(0, -2, 0.1))
	UpdateArrows(e)
	require.False(t, arrow.Valid())
}

func TestSpaceCoversRequestedFootprint(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	e := ecs.NewECS(donburi.NewWorld())

	space := components.Space.Get(factory.CreateSpace(e, 20, 60.5))
	require.Equal(t, 20, space.Width())
	require.Equal(t, 61, space.Height())

	space = components.Space.Get(factory.CreateSpace(ecs.NewECS(donburi.NewWorld()), 0, 0))
	require.Equal(t, int(cfg.Range.Width), space.Width())
	require.Equal(t, int(cfg.Range.Depth), space.Height())
}
