package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors an entity's bounding volume into the collision space,
// in screen coordinates.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
var Space = donburi.NewComponentType[resolv.Space]()
