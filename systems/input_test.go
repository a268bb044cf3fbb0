package systems

import (
	"testing"

	"github.com/automoto/overworld/components"
	cfg "github.com/automoto/overworld/config"
	"github.com/stretchr/testify/assert"
)

func TestStickActions(t *testing.T) {
	cases := []struct {
		name string
		h, v float64
		want []cfg.ActionID
	}{
		{"centre", 0, 0, nil},
		{"inside_deadzone", 0.2, -0.2, nil},
		{"left", -0.9, 0, []cfg.ActionID{cfg.ActionMoveLeft}},
		{"right", 0.9, 0, []cfg.ActionID{cfg.ActionMoveRight}},
		{"up_is_negative", 0, -0.9, []cfg.ActionID{cfg.ActionMoveUp}},
		{"down", 0, 0.9, []cfg.ActionID{cfg.ActionMoveDown}},
		{"diagonal", 0.7, 0.7, []cfg.ActionID{cfg.ActionMoveRight, cfg.ActionMoveDown}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, stickActions(c.h, c.v, 0.25))
		})
	}
}

func TestGetAction(t *testing.T) {
	input := &components.InputData{}
	input.Current[cfg.ActionAttack] = true
	input.Previous[cfg.ActionMoveLeft] = true
	input.Current[cfg.ActionMoveUp] = true
	input.Previous[cfg.ActionMoveUp] = true

	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(input, cfg.ActionAttack))
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(input, cfg.ActionMoveLeft))
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(input, cfg.ActionMoveUp))
}
