package pmove

// maxFrameDt is the anti-spiral-of-death clamp on a single real-time frame
// without it, a long hitch (debugger breakpoint, GC pause,
// alt-tab) would otherwise queue hundreds of catch-up ticks in one call.
const maxFrameDt = float32(0.25)

// FixedTimeState accumulates real elapsed time and dispatches PMove at a
// fixed TickDt, decoupling simulation rate from render framerate.
type FixedTimeState struct {
	Accumulator float32
	TickCount   uint64
}

// FixedTimeUpdate advances ts by frameDt seconds of wall-clock time,
// running zero or more PMove ticks against ps. The same cmd is reused for
// every intra-frame tick — callers resample input per frame, not per tick.
func FixedTimeUpdate(ts *FixedTimeState, frameDt float32, ps *PlayerState, cmd UserCommand, world *CollisionWorld) {
	if frameDt > maxFrameDt {
		frameDt = maxFrameDt
	}
	if frameDt < 0 {
		frameDt = 0
	}

	ts.Accumulator += frameDt
	for ts.Accumulator >= TickDt {
		PMove(ps, cmd, world)
		ts.Accumulator -= TickDt
		ts.TickCount++
	}
}

// GetAlpha returns the fraction of a tick remaining in the accumulator, for
// render-side interpolation between the previous and current PlayerState.
func GetAlpha(ts *FixedTimeState) float32 {
	return ts.Accumulator / TickDt
}
