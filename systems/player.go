package systems

import (
	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/logger"
	"github.com/automoto/overworld/shared/gamemath"
	"github.com/automoto/overworld/shared/timer"
	"github.com/automoto/overworld/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayer resolves this tick's input into velocity and facing, then
// runs the player state machine. The player is a singleton; until it has
// spawned the tick is skipped.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}

	input := getOrCreateInput(ecs)
	velocity := components.Velocity.Get(playerEntry)
	direction := components.ObjectDirection.Get(playerEntry)
	state := components.State.Get(playerEntry)

	*velocity = resolveVelocity(input, direction)
	if direction.Changed() {
		logger.Log.Debugw("player facing", "from", direction.Previous, "to", direction.Current)
	}
	updatePlayerState(playerEntry, input, *velocity, state, deltaTime(ecs))
}

// resolveVelocity maps held direction keys to a unit (or zero) vector and
// updates the facing. Left wins over Right and Up wins over Down; when both
// axes are held the vertical key decides the facing.
func resolveVelocity(input *components.InputData, direction *components.ObjectDirectionData) math.Vec2 {
	direction.Previous = direction.Current

	var v math.Vec2
	switch {
	case GetAction(input, cfg.ActionMoveLeft).Pressed:
		direction.Current = cfg.Left
		v.X = -1
	case GetAction(input, cfg.ActionMoveRight).Pressed:
		direction.Current = cfg.Right
		v.X = 1
	}

	switch {
	case GetAction(input, cfg.ActionMoveUp).Pressed:
		direction.Current = cfg.Up
		v.Y = 1
	case GetAction(input, cfg.ActionMoveDown).Pressed:
		direction.Current = cfg.Down
		v.Y = -1
	}

	return gamemath.NormalizeOrZero(v)
}

// updatePlayerState runs Idle/Walking/Attacking. While a StateTimer is
// attached the state is locked and attack presses are dropped; the timer is
// removed on the tick it finishes and the next tick re-evaluates.
func updatePlayerState(playerEntry *donburi.Entry, input *components.InputData, velocity math.Vec2, state *components.StateData, dt float64) {
	state.PreviousState = state.CurrentState

	if playerEntry.HasComponent(components.StateTimer) {
		lock := components.StateTimer.Get(playerEntry)
		lock.Tick(dt)
		if lock.Finished() {
			playerEntry.RemoveComponent(components.StateTimer)
		}
		return
	}

	if gamemath.IsZero(velocity) {
		state.CurrentState = cfg.Idle
	} else {
		state.CurrentState = cfg.Walking
	}

	if GetAction(input, cfg.ActionAttack).JustPressed {
		state.CurrentState = cfg.Attacking
		donburi.Add(playerEntry, components.StateTimer, timer.New(cfg.Player.AttackDuration, timer.Once))
		if playerEntry.HasComponent(components.Player) {
			components.Player.Get(playerEntry).Attacks++
		}
	}

	if state.CurrentState != state.PreviousState {
		logger.Log.Debugw("player state", "from", state.PreviousState, "to", state.CurrentState)
	}
}

// IsAttacking reports whether the entry is locked in an attack.
func IsAttacking(e *donburi.Entry) bool {
	return components.State.Get(e).CurrentState == cfg.Attacking
}
