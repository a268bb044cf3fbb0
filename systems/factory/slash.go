package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateSlash spawns the player's attack hitbox in front of owner.
func CreateSlash(ecs *ecs.ECS, owner *donburi.Entry) *donburi.Entry {
	slash := archetypes.Slash.Spawn(ecs)

	w, h := cfg.Combat.SlashWidth, cfg.Combat.SlashHeight
	components.Hitbox.SetValue(slash, components.HitboxData{
		VolumeData:  components.VolumeData{Width: w, Height: h},
		OwnerEntity: owner,
		Damage:      cfg.Combat.SlashDamage,
		HitEntities: make(map[*donburi.Entry]bool),
	})
	components.Transform.SetValue(slash, components.TransformData{Scale: 1})

	obj := newVolumeObject(slash, w, h, tags.ResolvHitbox)
	addToSpace(ecs, obj)

	PlaceSlash(slash, owner)
	return slash
}

// PlaceSlash moves the slash onto its owner and sets its offset so the box
// sits just past the owner's hurtbox edge on the facing side.
func PlaceSlash(slash, owner *donburi.Entry) {
	ownerPos := components.Transform.Get(owner).Position
	components.Transform.Get(slash).Position = ownerPos

	hitbox := components.Hitbox.Get(slash)
	var ownerVolume components.VolumeData
	if owner.HasComponent(components.Hurtbox) {
		ownerVolume = components.Hurtbox.Get(owner).VolumeData
	}
	hitbox.Offset = SlashOffset(components.ObjectDirection.Get(owner).Current, ownerVolume, hitbox.VolumeData)
}

// SlashOffset returns the centre offset of a slash volume placed against
// the owner volume on the side dir points to.
func SlashOffset(dir cfg.Direction, owner, slash components.VolumeData) math.Vec2 {
	dx, dy := dir.Vector()
	return math.Vec2{
		X: owner.Offset.X + dx*(owner.Width+slash.Width)/2,
		Y: owner.Offset.Y + dy*(owner.Height+slash.Height)/2,
	}
}
