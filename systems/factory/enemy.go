package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/logger"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateEnemy spawns a static damageable dummy. A health of zero or less
// uses the configured default.
func CreateEnemy(ecs *ecs.ECS, pos math.Vec2, name string, health int) *donburi.Entry {
	if health <= 0 {
		health = cfg.Enemy.Health
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	components.Enemy.SetValue(enemy, components.EnemyData{Name: name})
	components.Transform.SetValue(enemy, components.TransformData{Position: pos, Scale: 1})
	components.Hurtbox.SetValue(enemy, components.HurtboxData{
		VolumeData: components.VolumeData{
			Width:  cfg.Enemy.Width,
			Height: cfg.Enemy.Height,
		},
	})
	components.Health.SetValue(enemy, components.HealthData{Current: health, Max: health})

	obj := newVolumeObject(enemy, cfg.Enemy.Width, cfg.Enemy.Height, tags.ResolvEnemy, tags.ResolvHurtbox)
	addToSpace(ecs, obj)

	logger.Log.Debugw("spawned enemy", "name", name, "x", pos.X, "y", pos.Y, "health", health)
	return enemy
}
