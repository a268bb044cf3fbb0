package factory

import (
	"github.com/automoto/overworld/archetypes"
	"github.com/automoto/overworld/assets/animations"
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/logger"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player at pos (world units), idle and facing down.
func CreatePlayer(ecs *ecs.ECS, pos math.Vec2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{
		Position: pos,
		Scale:    cfg.Player.Scale,
	})
	components.Movable.SetValue(player, components.MovableData{Speed: cfg.Player.Speed})
	components.ObjectDirection.SetValue(player, components.ObjectDirectionData{
		Current:  cfg.Down,
		Previous: cfg.Down,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.Idle,
	})
	components.Animation.SetValue(player, components.AnimationData{
		Animation: animations.NewAnimation(cfg.Player.AnimationInterval),
		Atlas:     cfg.AtlasWalk,
	})
	components.Hurtbox.SetValue(player, components.HurtboxData{
		VolumeData: components.VolumeData{
			Width:  cfg.Player.HurtboxWidth,
			Height: cfg.Player.HurtboxHeight,
		},
	})

	obj := newVolumeObject(player, cfg.Player.HurtboxWidth, cfg.Player.HurtboxHeight, tags.ResolvPlayer, tags.ResolvHurtbox)
	addToSpace(ecs, obj)

	logger.Log.Debugw("spawned player", "x", pos.X, "y", pos.Y)
	return player
}
