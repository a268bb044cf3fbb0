package systems

import (
	"github.com/automoto/overworld/components"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAttack keeps the player's slash hitbox in step with its state: one
// slash per attack, following the player, gone once Attacking ends.
func UpdateAttack(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)

	if player.Slash != nil && (!player.Slash.Valid() || !IsAttacking(playerEntry) || player.SlashAttack != player.Attacks) {
		factory.Destroy(ecs, player.Slash)
		player.Slash = nil
	}

	if !IsAttacking(playerEntry) {
		return
	}

	if player.Slash == nil {
		player.Slash = factory.CreateSlash(ecs, playerEntry)
		player.SlashAttack = player.Attacks
		return
	}
	factory.PlaceSlash(player.Slash, playerEntry)
}
