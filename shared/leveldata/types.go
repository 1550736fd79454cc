// Package leveldata parses range layouts from TMX files. It has no
// dependencies on ebitengine, donburi, or resolv; pure data only.
//
// Map space is top-down: map x is world x and map y is world z. Positions are
// returned in metres relative to the map's top-left corner.
package leveldata

// Box is an axis-aligned box placement. X, Y, Z is the box center.
type Box struct {
	Name                string
	X, Y, Z             float64
	HalfW, HalfH, HalfD float64
}

// TargetPlacement is a scoring target.
type TargetPlacement struct {
	Box
	Points  int
	Mass    float64 // 0 means use the configured target mass
	Dynamic bool    // dynamic targets get a rigid body
}

// BowPlacement is where the bow is held. Pitch is in radians.
type BowPlacement struct {
	X, Y, Z float64
	Pitch   float64
}

// RangeData holds everything the range builder needs from a TMX file.
type RangeData struct {
	Name     string
	Width    float64 // metres along x
	Depth    float64 // metres along z
	Targets  []TargetPlacement
	Scenery  []Box
	Wielders []Box
	Bow      BowPlacement
}
