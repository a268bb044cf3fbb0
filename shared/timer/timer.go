package timer

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Mode selects whether a Timer stops or restarts when it finishes.
type Mode int

const (
	Once Mode = iota
	Repeating
)

// tolerance absorbs float32 rounding in the tween clock, so a duration
// that is a whole number of fixed ticks finishes on that tick.
const tolerance = 1e-5

// Timer runs a linear 0..1 tween over a fixed duration in seconds. The
// tween's clock is the timer's clock.
type Timer struct {
	duration     float64
	mode         Mode
	progress     *gween.Tween
	finished     bool
	justFinished bool
}

// New returns a timer of the given duration in seconds.
func New(duration float64, mode Mode) *Timer {
	return &Timer{
		duration: duration,
		mode:     mode,
		progress: gween.New(0, 1, float32(duration), ease.Linear),
	}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	t.justFinished = false
	if t.finished {
		return
	}

	before := t.Fraction() * t.duration
	current, done := t.progress.Update(float32(dt))
	if !done && (1-float64(current))*t.duration > tolerance {
		return
	}

	t.justFinished = true
	if t.mode == Once {
		t.finished = true
		t.progress.Set(float32(t.duration))
		return
	}

	carry := math.Mod(math.Max(before+dt-t.duration, 0), t.duration)
	t.progress.Reset()
	t.progress.Set(float32(carry))
}

// JustFinished reports whether the last Tick crossed the duration.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// Finished reports whether a Once timer has run out.
func (t *Timer) Finished() bool {
	return t.finished
}

// Fraction returns elapsed/duration in [0, 1].
func (t *Timer) Fraction() float64 {
	v, _ := t.progress.Update(0)
	return float64(v)
}

func (t *Timer) Duration() float64 {
	return t.duration
}
