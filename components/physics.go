package components

import (
	"github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type TransformData struct {
	Position math.Vec2
	Scale    float64
}

// MovableData marks entities the movement integrator advances.
type MovableData struct {
	Speed float64
}

type ObjectDirectionData struct {
	Current  config.Direction
	Previous config.Direction
}

// Changed reports whether the facing changed this tick.
func (d *ObjectDirectionData) Changed() bool {
	return d.Current != d.Previous
}

var Transform = donburi.NewComponentType[TransformData]()
var Velocity = donburi.NewComponentType[math.Vec2]()
var Movable = donburi.NewComponentType[MovableData]()
var ObjectDirection = donburi.NewComponentType[ObjectDirectionData]()
