package components

import (
	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Animation *animations.Animation
	Atlas     config.AtlasID
}

var Animation = donburi.NewComponentType[AnimationData]()
