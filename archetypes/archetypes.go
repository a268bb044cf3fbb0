package archetypes

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Velocity,
		components.Movable,
		components.ObjectDirection,
		components.State,
		components.Animation,
		components.Hurtbox,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Hurtbox,
		components.Health,
		components.Object,
	)
	Slash = newArchetype(
		tags.FromPlayer,
		components.Hitbox,
		components.Transform,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
