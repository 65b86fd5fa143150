package engine

import "time"

// Time is the per-frame wall-clock resource: it tracks the real delta
// engine's mod_time.go timeSystem: it tracks the real delta since the last
// frame and a monotonic frame counter, clamped against hitches.
type Time struct {
	last       time.Time
	Dt         float64
	FrameCount uint64
}

// maxFrameDt is a 0.25s (4fps-minimum) clamp, expressed at the
// App level rather than inside the core: pmove.FixedTimeUpdate applies its
// own clamp of the same 0.25s on the value this produces.
const maxFrameDt = 0.25

func newTime() *Time {
	return &Time{last: time.Now()}
}

func (t *Time) tick() {
	now := time.Now()
	dt := now.Sub(t.last).Seconds()
	if dt > maxFrameDt {
		dt = maxFrameDt
	}
	t.Dt = dt
	t.last = now
	t.FrameCount++
}
