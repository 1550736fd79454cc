package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

var (
	ErrMissingScale = errors.New("leveldata: map needs a positive pixelsPerMeter property")
	ErrNoBow        = errors.New("leveldata: map has no Bow object")
)

// Object group names
const (
	GroupTargets = "Targets"
	GroupScenery = "Scenery"
	GroupWielder = "Wielder"
	GroupBow     = "Bow"
)

const defaultHeight = 1.0

// LoadRange parses a TMX range layout. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadRange(fsys fs.FS, tmxPath string) (*RangeData, error) {
	rangeMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var ppm float64
	if rangeMap.Properties != nil {
		ppm = rangeMap.Properties.GetFloat("pixelsPerMeter")
	}
	if ppm <= 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrMissingScale)
	}

	data := &RangeData{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(rangeMap.Width*rangeMap.TileWidth) / ppm,
		Depth: float64(rangeMap.Height*rangeMap.TileHeight) / ppm,
	}

	foundBow := false
	for _, og := range rangeMap.ObjectGroups {
		switch og.Name {
		case GroupTargets:
			for _, o := range og.Objects {
				data.Targets = append(data.Targets, TargetPlacement{
					Box:     toBox(o, ppm),
					Points:  o.Properties.GetInt("points"),
					Mass:    o.Properties.GetFloat("mass"),
					Dynamic: o.Properties.GetBool("dynamic"),
				})
			}
		case GroupScenery:
			for _, o := range og.Objects {
				data.Scenery = append(data.Scenery, toBox(o, ppm))
			}
		case GroupWielder:
			for _, o := range og.Objects {
				data.Wielders = append(data.Wielders, toBox(o, ppm))
			}
		case GroupBow:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			data.Bow = BowPlacement{
				X:     o.X / ppm,
				Y:     o.Properties.GetFloat("elevation"),
				Z:     o.Y / ppm,
				Pitch: o.Properties.GetFloat("pitch"),
			}
			foundBow = true
		}
	}
	if !foundBow {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoBow)
	}

	// Nearest targets first
	sort.SliceStable(data.Targets, func(i, j int) bool {
		return data.Targets[i].Z < data.Targets[j].Z
	})

	return data, nil
}

// toBox converts a rectangle object. The footprint comes from the rectangle;
// the vertical extent comes from the elevation and height properties.
func toBox(o *tiled.Object, ppm float64) Box {
	height := o.Properties.GetFloat("height")
	if height <= 0 {
		height = defaultHeight
	}
	elevation := o.Properties.GetFloat("elevation")

	return Box{
		Name:  o.Name,
		X:     (o.X + o.Width/2) / ppm,
		Y:     elevation + height/2,
		Z:     (o.Y + o.Height/2) / ppm,
		HalfW: o.Width / ppm / 2,
		HalfH: height / 2,
		HalfD: o.Height / ppm / 2,
	}
}
