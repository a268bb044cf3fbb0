package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned rectangle in world space (y-up); X, Y is the
// bottom-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// CenteredRect builds the rectangle of size w x h centred on c.
func CenteredRect(c dmath.Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// Intersects reports whether r and other overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// ToScreen converts r to screen space (y-down, origin top-left) for a
// screenW x screenH view centred on the world origin.
func (r Rect) ToScreen(screenW, screenH int) (x, y float64) {
	x = float64(screenW)/2 + r.X
	y = float64(screenH)/2 - (r.Y + r.Height)
	return x, y
}

// PointToScreen converts a world point to screen space.
func PointToScreen(p dmath.Vec2, screenW, screenH int) (x, y float64) {
	return float64(screenW)/2 + p.X, float64(screenH)/2 - p.Y
}
