package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// NormalizeOrZero scales v to unit length. The zero vector stays zero.
func NormalizeOrZero(v dmath.Vec2) dmath.Vec2 {
	length := math.Hypot(v.X, v.Y)
	if length == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: v.X / length, Y: v.Y / length}
}

// IsZero reports whether both components are zero.
func IsZero(v dmath.Vec2) bool {
	return v.X == 0 && v.Y == 0
}

// Integrate advances pos by vel * speed * dt, per axis.
func Integrate(pos, vel dmath.Vec2, speed, dt float64) dmath.Vec2 {
	return dmath.Vec2{
		X: pos.X + vel.X*speed*dt,
		Y: pos.Y + vel.Y*speed*dt,
	}
}
