package systems

import (
	"testing"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems/factory"
	"github.com/automoto/overworld/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// armedPlayer spawns a player facing down with a slash already out. The
// slash covers y in [-112, -48] and x in [-32, 32].
func armedPlayer(t *testing.T, e *ecs.ECS) (*donburi.Entry, *donburi.Entry) {
	t.Helper()
	player := factory.CreatePlayer(e, dmath.Vec2{})
	slash := factory.CreateSlash(e, player)
	return player, slash
}

func TestAttackResolution(t *testing.T) {
	cases := []struct {
		name    string
		pos     dmath.Vec2
		health  int
		removed bool
		left    int
	}{
		{"overlap_removes", dmath.Vec2{X: 0, Y: -80}, 0, true, 0},
		{"partial_overlap_removes", dmath.Vec2{X: 50, Y: -60}, 0, true, 0},
		{"far_is_untouched", dmath.Vec2{X: 300, Y: 300}, 0, false, 1},
		{"touching_edge_is_untouched", dmath.Vec2{X: 56, Y: -80}, 0, false, 1},
		{"behind_player_is_untouched", dmath.Vec2{X: 0, Y: 80}, 0, false, 1},
		{"extra_health_survives", dmath.Vec2{X: 0, Y: -80}, 2, false, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newTestECS(t)
			armedPlayer(t, e)
			enemy := factory.CreateEnemy(e, c.pos, "dummy", c.health)
			start := components.Health.Get(enemy).Current

			UpdateAttackResolution(e)

			assert.Equal(t, c.removed, !enemy.Valid())
			if !c.removed {
				assert.Equal(t, c.left, components.Health.Get(enemy).Current, "started at %d", start)
			}
		})
	}
}

func TestHitboxHitsTargetOnce(t *testing.T) {
	e := newTestECS(t)
	_, slash := armedPlayer(t, e)
	enemy := factory.CreateEnemy(e, dmath.Vec2{X: 0, Y: -80}, "brute", 3)

	for i := 0; i < 5; i++ {
		UpdateAttackResolution(e)
	}

	require.True(t, enemy.Valid())
	assert.Equal(t, 2, components.Health.Get(enemy).Current)
	assert.True(t, components.Hitbox.Get(slash).HitEntities[enemy])
}

func TestOwnerIsNeverHit(t *testing.T) {
	e := newTestECS(t)
	player, _ := armedPlayer(t, e)
	// give the player health so it counts as damageable
	player.AddComponent(components.Health)
	components.Health.SetValue(player, components.HealthData{Current: 1, Max: 1})
	components.Hurtbox.Get(player).Height = 400

	UpdateAttackResolution(e)
	assert.True(t, player.Valid())
	assert.Equal(t, 1, components.Health.Get(player).Current)
}

func TestOneSlashClearsSeveralEnemies(t *testing.T) {
	e := newTestECS(t)
	spaceEntry := factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	armedPlayer(t, e)
	a := factory.CreateEnemy(e, dmath.Vec2{X: -20, Y: -80}, "a", 0)
	b := factory.CreateEnemy(e, dmath.Vec2{X: 20, Y: -90}, "b", 0)
	c := factory.CreateEnemy(e, dmath.Vec2{X: 400, Y: 0}, "c", 0)
	UpdateObjects(e)

	objects := len(components.Space.Get(spaceEntry).Objects())
	UpdateAttackResolution(e)

	assert.False(t, a.Valid())
	assert.False(t, b.Valid())
	assert.True(t, c.Valid())
	assert.Len(t, components.Space.Get(spaceEntry).Objects(), objects-2)
	assert.Equal(t, 1, enemies.Count(e.World))
	assert.True(t, c.HasComponent(tags.Enemy))
}

func TestKillThroughFullPipeline(t *testing.T) {
	e := newTestECS(t)
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreatePlayer(e, dmath.Vec2{})
	target := factory.CreateEnemy(e, dmath.Vec2{X: 0, Y: -80}, "slime", 0)
	bystander := factory.CreateEnemy(e, dmath.Vec2{X: 0, Y: 200}, "slime", 0)

	tick(e)
	assert.True(t, target.Valid())

	tick(e, cfg.ActionAttack)
	assert.False(t, target.Valid())
	assert.True(t, bystander.Valid())
}
