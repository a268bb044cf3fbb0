package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects mirrors each entity's bounding volume into its resolv
// object, in screen coordinates, and refreshes the object's cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			continue
		}
		rect, ok := volumeRect(e)
		if !ok {
			continue
		}
		obj.X, obj.Y = rect.ToScreen(cfg.C.Width, cfg.C.Height)
		obj.W, obj.H = rect.Width, rect.Height
		obj.Update()
	}
}

// volumeRect returns the world rectangle of e's hitbox or hurtbox.
func volumeRect(e *donburi.Entry) (gamemath.Rect, bool) {
	if !e.HasComponent(components.Transform) {
		return gamemath.Rect{}, false
	}
	pos := components.Transform.Get(e).Position
	switch {
	case e.HasComponent(components.Hitbox):
		return components.Hitbox.Get(e).Rect(pos), true
	case e.HasComponent(components.Hurtbox):
		return components.Hurtbox.Get(e).Rect(pos), true
	}
	return gamemath.Rect{}, false
}
