package engine

import "github.com/brushworks/pmove"

// PMoveModule installs a CollisionWorld resource so player loops created
// afterward via NewPlayerLoop can find it, matching the
// PhysicsModule (mod_physics.go / physics.go): Install just publishes the
// resource; the actual per-frame work is driven by tickers, not a single
// global system.
type PMoveModule struct {
	World *pmove.CollisionWorld
}

func (m PMoveModule) Install(app *App) {
	app.AddResource(m.World)
}

// tickLogInterval follows a physics system's periodic "log every 60
// frames" debug output (physics.go), but counts pmove ticks: 640 ticks is
// one log line every 5 seconds at 128Hz.
const tickLogInterval = 128 * 5

// PlayerLoop drives one PlayerState's pmove.FixedTimeUpdate off an App's
// per-frame Tick: the
// embedder supplies a command provider (cmdFn) and gets ticks dispatched at
// the fixed simulation rate regardless of render framerate.
type PlayerLoop struct {
	app   *App
	world *pmove.CollisionWorld
	ps    *pmove.PlayerState
	ts    pmove.FixedTimeState
	cmdFn func() pmove.UserCommand
}

// NewPlayerLoop registers a PlayerLoop with app, reading the CollisionWorld
// resource installed by PMoveModule. Panics if no world resource is present
// yet — Install order matters, the same way any system would assume
// their resources were added before the first tick.
func NewPlayerLoop(app *App, ps *pmove.PlayerState, cmdFn func() pmove.UserCommand) *PlayerLoop {
	world := resourceOf[*pmove.CollisionWorld](app)
	if world == nil {
		panic("engine: NewPlayerLoop requires a PMoveModule installed first")
	}

	loop := &PlayerLoop{app: app, world: world, ps: ps, cmdFn: cmdFn}
	app.addTicker(loop.tick)
	return loop
}

func (l *PlayerLoop) tick(frameDt float64) {
	before := l.ts.TickCount
	cmd := l.cmdFn()
	pmove.FixedTimeUpdate(&l.ts, float32(frameDt), l.ps, cmd, l.world)

	if before/tickLogInterval != l.ts.TickCount/tickLogInterval {
		l.app.Logger().Debugf("pmove: tick=%d origin=%.1f,%.1f,%.1f onGround=%v",
			l.ts.TickCount, l.ps.Origin.X(), l.ps.Origin.Y(), l.ps.Origin.Z(), l.ps.OnGround)
	}
}

// Alpha returns the render-interpolation fraction for this player's loop
// for callers that want to blend between the
// previous and current PlayerState when drawing between ticks.
func (l *PlayerLoop) Alpha() float32 { return pmove.GetAlpha(&l.ts) }

// TickCount returns how many pmove ticks this loop has run so far.
func (l *PlayerLoop) TickCount() uint64 { return l.ts.TickCount }

func resourceOf[T any](app *App) T {
	var zero T
	for _, r := range app.resources {
		if v, ok := r.(T); ok {
			return v
		}
	}
	return zero
}
