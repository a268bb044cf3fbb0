package components

import (
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// VolumeData is an axis-aligned box sized W x H, centred on the owner's
// position plus Offset.
type VolumeData struct {
	Width, Height float64
	Offset        math.Vec2
}

// Rect returns the volume's rectangle for an owner at pos.
func (v *VolumeData) Rect(pos math.Vec2) gamemath.Rect {
	return gamemath.CenteredRect(math.Vec2{X: pos.X + v.Offset.X, Y: pos.Y + v.Offset.Y}, v.Width, v.Height)
}

type HitboxData struct {
	VolumeData
	OwnerEntity *donburi.Entry          // The entity that created this hitbox
	Damage      int                     // Damage dealt per target
	HitEntities map[*donburi.Entry]bool // Entities already hit (prevent multiple hits)
}

type HurtboxData struct {
	VolumeData
}

var Hitbox = donburi.NewComponentType[HitboxData]()
var Hurtbox = donburi.NewComponentType[HurtboxData]()
