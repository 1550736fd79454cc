package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="20" tilewidth="10" tileheight="10" infinite="0">
`

func mapFS(body string) fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(header + body + "</map>\n")},
	}
}

func TestLoadRangeConvertsToMetres(t *testing.T) {
	fsys := mapFS(`
 <properties>
  <property name="pixelsPerMeter" type="float" value="10"/>
 </properties>
 <objectgroup id="1" name="Targets">
  <object id="1" name="far" x="40" y="150" width="20" height="10">
   <properties>
    <property name="elevation" type="float" value="0.5"/>
    <property name="height" type="float" value="2"/>
    <property name="points" type="int" value="30"/>
   </properties>
  </object>
  <object id="2" name="near" x="40" y="50" width="20" height="10">
   <properties>
    <property name="dynamic" type="bool" value="true"/>
    <property name="mass" type="float" value="3"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Bow">
  <object id="3" name="bow" x="50" y="20">
   <properties>
    <property name="elevation" type="float" value="1.5"/>
   </properties>
  </object>
 </objectgroup>
`)

	data, err := LoadRange(fsys, "levels/test.tmx")
	require.NoError(t, err)

	require.Equal(t, "test", data.Name)
	require.InDelta(t, 10.0, data.Width, 1e-9)
	require.InDelta(t, 20.0, data.Depth, 1e-9)

	require.Len(t, data.Targets, 2)
	near, far := data.Targets[0], data.Targets[1]
	require.Equal(t, "near", near.Name)
	require.True(t, near.Dynamic)
	require.InDelta(t, 3.0, near.Mass, 1e-9)
	// no height property falls back to one metre standing on the ground
	require.InDelta(t, 0.5, near.Y, 1e-9)
	require.InDelta(t, 0.5, near.HalfH, 1e-9)

	require.Equal(t, "far", far.Name)
	require.Equal(t, 30, far.Points)
	require.InDelta(t, 5.0, far.X, 1e-9)
	require.InDelta(t, 15.5, far.Z, 1e-9)
	require.InDelta(t, 1.5, far.Y, 1e-9)
	require.InDelta(t, 1.0, far.HalfW, 1e-9)
	require.InDelta(t, 0.5, far.HalfD, 1e-9)
	require.InDelta(t, 1.0, far.HalfH, 1e-9)

	require.InDelta(t, 5.0, data.Bow.X, 1e-9)
	require.InDelta(t, 2.0, data.Bow.Z, 1e-9)
	require.InDelta(t, 1.5, data.Bow.Y, 1e-9)
}

func TestLoadRangeRequiresScale(t *testing.T) {
	fsys := mapFS(`
 <objectgroup id="1" name="Bow">
  <object id="1" name="bow" x="0" y="0"/>
 </objectgroup>
`)
	_, err := LoadRange(fsys, "levels/test.tmx")
	require.ErrorIs(t, err, ErrMissingScale)
}

func TestLoadRangeRequiresBow(t *testing.T) {
	fsys := mapFS(`
 <properties>
  <property name="pixelsPerMeter" type="float" value="10"/>
 </properties>
`)
	_, err := LoadRange(fsys, "levels/test.tmx")
	require.ErrorIs(t, err, ErrNoBow)
}

func TestLoadRangeMissingFile(t *testing.T) {
	_, err := LoadRange(fstest.MapFS{}, "levels/none.tmx")
	require.Error(t, err)
}
