package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var movables = donburi.NewQuery(filter.Contains(
	components.Movable,
	components.Velocity,
	components.Transform,
))

// UpdateMovement integrates velocity into position for every movable
// entity. There is no clamping and no collision response.
func UpdateMovement(ecs *ecs.ECS) {
	dt := deltaTime(ecs)
	movables.Each(ecs.World, func(e *donburi.Entry) {
		transform := components.Transform.Get(e)
		velocity := components.Velocity.Get(e)
		speed := components.Movable.Get(e).Speed
		transform.Position = gamemath.Integrate(transform.Position, *velocity, speed, dt)
	})
}
