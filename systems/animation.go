package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerAnimation picks the frame range for the player's state and
// facing and advances the sprite cursor. Idle freezes on the first frame
// of the walk range without ticking the cadence timer.
func UpdatePlayerAnimation(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	state := components.State.Get(playerEntry)
	direction := components.ObjectDirection.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)
	if anim.Animation == nil {
		return
	}

	atlas, frames := cfg.PlayerRange(state.CurrentState, direction.Current)
	anim.Atlas = atlas

	if state.CurrentState == cfg.Idle {
		anim.Animation.Freeze(frames)
		return
	}
	anim.Animation.Update(frames, deltaTime(ecs))
}
