package tags

import "github.com/yohamta/donburi"

var (
	Bow        = donburi.NewTag().SetName("Bow")
	Arrow      = donburi.NewTag().SetName("Arrow")
	Target     = donburi.NewTag().SetName("Target")
	Scenery    = donburi.NewTag().SetName("Scenery")
	Wielder    = donburi.NewTag().SetName("Wielder")
	Interactor = donburi.NewTag().SetName("Interactor")
	Explosion  = donburi.NewTag().SetName("Explosion")
)

// Resolv tags for broadphase queries
const (
	ResolvSolid   = "solid"
	ResolvTarget  = "target"
	ResolvWielder = "wielder"
	ResolvBody    = "body" // has a rigid body
)
