package animations

import (
	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/shared/timer"
)

// Animation is a sprite index cursor that steps through a frame range on a
// fixed cadence. The range is supplied on every update, so switching range
// (state or facing changed) is picked up on the next step.
type Animation struct {
	timer *timer.Timer
	frame int
}

// NewAnimation returns a cursor at index 0 that steps every interval seconds.
func NewAnimation(interval float64) *Animation {
	return &Animation{
		timer: timer.New(interval, timer.Repeating),
	}
}

// Update advances the cadence timer by dt and, when it fires, steps the
// frame within r. A frame outside r jumps to r's first index. Reaching the
// last index of r wraps back to the first.
func (a *Animation) Update(r config.FrameRange, dt float64) {
	a.timer.Tick(dt)
	if !a.timer.JustFinished() {
		return
	}
	a.frame = Step(a.frame, r)
}

// Freeze pins the frame to r's first index without touching the cadence.
func (a *Animation) Freeze(r config.FrameRange) {
	a.frame = r.First()
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) SetFrame(frame int) {
	a.frame = frame
}

// Step returns the index that follows frame within r.
func Step(frame int, r config.FrameRange) int {
	if !r.Contains(frame) {
		return r.First()
	}
	frame++
	if frame >= r.Last() {
		return r.First()
	}
	return frame
}
