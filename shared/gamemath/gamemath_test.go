package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestNormalizeOrZero(t *testing.T) {
	assert.Equal(t, dmath.Vec2{}, NormalizeOrZero(dmath.Vec2{}))
	assert.Equal(t, dmath.Vec2{X: -1}, NormalizeOrZero(dmath.Vec2{X: -1}))

	d := NormalizeOrZero(dmath.Vec2{X: 1, Y: -1})
	assert.InDelta(t, 1.0, math.Hypot(d.X, d.Y), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, d.X, 1e-12)
	assert.InDelta(t, -math.Sqrt2/2, d.Y, 1e-12)
}

func TestIntegrate(t *testing.T) {
	got := Integrate(dmath.Vec2{X: 10, Y: -5}, dmath.Vec2{X: 1, Y: 0}, 200, 0.5)
	assert.Equal(t, dmath.Vec2{X: 110, Y: -5}, got)

	// no clamping
	got = Integrate(dmath.Vec2{}, dmath.Vec2{X: 0, Y: -1}, 1e6, 1)
	assert.Equal(t, dmath.Vec2{X: 0, Y: -1e6}, got)
}

func TestRectIntersects(t *testing.T) {
	base := CenteredRect(dmath.Vec2{}, 10, 10)

	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same", base, true},
		{"contained", CenteredRect(dmath.Vec2{X: 1, Y: 1}, 2, 2), true},
		{"partial", CenteredRect(dmath.Vec2{X: 8, Y: 0}, 10, 10), true},
		{"touching_edge", CenteredRect(dmath.Vec2{X: 10, Y: 0}, 10, 10), false},
		{"apart_x", CenteredRect(dmath.Vec2{X: 30, Y: 0}, 10, 10), false},
		{"apart_y", CenteredRect(dmath.Vec2{X: 0, Y: -30}, 10, 10), false},
		{"overlap_x_only", CenteredRect(dmath.Vec2{X: 0, Y: 20}, 10, 10), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, base.Intersects(c.other))
			assert.Equal(t, c.want, c.other.Intersects(base), "symmetric")
		})
	}
}

func TestRectToScreen(t *testing.T) {
	r := CenteredRect(dmath.Vec2{X: 10, Y: 20}, 4, 6)
	x, y := r.ToScreen(100, 80)
	assert.Equal(t, 58.0, x)
	assert.Equal(t, 17.0, y)

	px, py := PointToScreen(dmath.Vec2{X: 10, Y: 20}, 100, 80)
	assert.Equal(t, 60.0, px)
	assert.Equal(t, 20.0, py)
}
