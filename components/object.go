package components

import (
	"github.com/kvartborg/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ColliderData is an axis-aligned box centered on the entity's transform.
// Object is the box's footprint in the broadphase grid.
type ColliderData struct {
	HalfExtents vector.Vector
	Layer       int
	Object      *resolv.Object
}

var Collider = donburi.NewComponentType[ColliderData]()

// Space is the broadphase grid covering the range's X/Z footprint.
var Space = donburi.NewComponentType[resolv.Space]()
