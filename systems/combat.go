package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/logger"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	playerHitboxes = donburi.NewQuery(filter.Contains(
		tags.FromPlayer,
		components.Hitbox,
		components.Transform,
	))
	damageable = donburi.NewQuery(filter.Contains(
		components.Hurtbox,
		components.Health,
		components.Transform,
	))
)

// UpdateAttackResolution tests every player hitbox against every damageable
// hurtbox. An overlapping target takes the hitbox's damage once and is
// removed when its health runs out. Removals are applied after the scan.
func UpdateAttackResolution(ecs *ecs.ECS) {
	var defeated []*donburi.Entry
	down := make(map[*donburi.Entry]bool)

	playerHitboxes.Each(ecs.World, func(hitEntry *donburi.Entry) {
		hitbox := components.Hitbox.Get(hitEntry)
		hitRect := hitbox.Rect(components.Transform.Get(hitEntry).Position)

		damageable.Each(ecs.World, func(target *donburi.Entry) {
			if down[target] || target == hitbox.OwnerEntity || hitbox.HitEntities[target] {
				return
			}
			hurtRect := components.Hurtbox.Get(target).Rect(components.Transform.Get(target).Position)
			if !hitRect.Intersects(hurtRect) {
				return
			}

			if hitbox.HitEntities == nil {
				hitbox.HitEntities = make(map[*donburi.Entry]bool)
			}
			hitbox.HitEntities[target] = true

			health := components.Health.Get(target)
			health.Current -= hitbox.Damage
			if health.Current <= 0 {
				down[target] = true
				defeated = append(defeated, target)
			}
		})
	})

	for _, e := range defeated {
		if e.HasComponent(components.Enemy) {
			logger.Log.Debugw("enemy defeated", "name", components.Enemy.Get(e).Name)
		}
		factory.Destroy(ecs, e)
	}
}
