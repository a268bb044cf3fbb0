package systems

import (
	"testing"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/automoto/overworld/systems/factory"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestWalkingCyclesRange(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, dmath.Vec2{})
	anim := components.Animation.Get(player)

	var frames []int
	for i := 0; i < 4; i++ {
		tick(e, cfg.ActionMoveRight)
		frames = append(frames, anim.Animation.Frame())
	}

	// frame 0 is outside the right range, then 4, 5, 6 and wrap
	assert.Equal(t, []int{4, 5, 6, 4}, frames)
	assert.Equal(t, cfg.AtlasWalk, anim.Atlas)
}

func TestIdleFreezesOnFirstFrame(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, dmath.Vec2{})
	anim := components.Animation.Get(player)

	tick(e, cfg.ActionMoveLeft)
	tick(e, cfg.ActionMoveLeft)
	assert.Equal(t, 13, anim.Animation.Frame())

	for i := 0; i < 5; i++ {
		tick(e)
		assert.Equal(t, 12, anim.Animation.Frame())
	}
}

func TestAttackingUsesAttackAtlas(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, dmath.Vec2{})
	anim := components.Animation.Get(player)

	tick(e, cfg.ActionMoveUp)
	tick(e, cfg.ActionAttack)

	assert.Equal(t, cfg.AtlasAttack, anim.Atlas)
	_, want := cfg.PlayerRange(cfg.Attacking, cfg.Up)
	assert.True(t, want.Contains(anim.Animation.Frame()), "frame %d", anim.Animation.Frame())
}
