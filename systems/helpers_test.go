package systems

import (
	"testing"

	cfg "github.com/automoto/overworld/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDelta = 0.1

// newTestECS returns an empty world with a fixed 0.1 s tick and default
// config. Systems that poll Ebiten are not used; input is injected.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	e := ecs.NewECS(donburi.NewWorld())
	GetOrCreateTime(e).Delta = testDelta
	return e
}

// press replaces this tick's input with the given held actions.
func press(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
}

// tick runs the simulation systems in scene order with the given input.
func tick(e *ecs.ECS, actions ...cfg.ActionID) {
	press(e, actions...)
	UpdatePlayer(e)
	UpdatePlayerAnimation(e)
	UpdateMovement(e)
	UpdateAttack(e)
	UpdateObjects(e)
	UpdateAttackResolution(e)
	UpdateSettings(e)
}
