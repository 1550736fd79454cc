package assets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmbeddedRangeLoads(t *testing.T) {
	data, err := LoadRange()
	require.NoError(t, err)

	require.Equal(t, "range", data.Name)
	require.InDelta(t, 20.0, data.Width, 1e-9)
	require.InDelta(t, 30.0, data.Depth, 1e-9)

	require.Len(t, data.Targets, 3)
	require.Equal(t, []string{"hay", "swing", "far"},
		[]string{data.Targets[0].Name, data.Targets[1].Name, data.Targets[2].Name})
	require.True(t, data.Targets[1].Dynamic)

	require.Len(t, data.Scenery, 2)
	require.Len(t, data.Wielders, 1)

	require.InDelta(t, 10.0, data.Bow.X, 1e-9)
	require.InDelta(t, 5.0, data.Bow.Z, 1e-9)
	require.InDelta(t, 1.4, data.Bow.Y, 1e-9)
}
