package components

import (
	"github.com/automoto/bunnyhop/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors an entity's bounds into the broadphase space.
// The object sits at Bounds offset by the registry margin.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Bounds is the authoritative axis-aligned rect of an entity in world coordinates.
var Bounds = donburi.NewComponentType[gamemath.Rect]()
