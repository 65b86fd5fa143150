package engine

import (
	"fmt"
	"reflect"
)

// Module is a single
// Install hook an embedder calls once at startup. This package deliberately
// does not carry an archetype ECS — PlayerState
// ownership is explicit and single-instance per pmove's spec, not queried
// out of a component store — only the resource-registry idiom survives;
// there are no system stages, Tick runs a flat list of tickers.
type Module interface {
	Install(app *App)
}

// App is a minimal resource registry and per-frame ticker: an embedder adds
// a Logger, a CollisionWorld, and zero or more PMoveModule-driven player
// loops, then calls Tick once per rendered frame.
type App struct {
	resources map[reflect.Type]any
	time      *Time
	tickers   []func(frameDt float64)
}

// NewApp constructs an App with its Time resource already installed, the
// way a TimeModule would for every App.
func NewApp() *App {
	return &App{
		resources: make(map[reflect.Type]any),
		time:      newTime(),
	}
}

// Use installs a Module.
func (app *App) Use(m Module) *App {
	m.Install(app)
	return app
}

// AddResource stores a value by its dynamic type, overwriting any prior
// resource of that same type.
func (app *App) AddResource(resource any) *App {
	app.resources[reflect.TypeOf(resource)] = resource
	return app
}

// Logger returns a Logger resource if one is present, otherwise a no-op
// logger; with several Logger resources of different types, which one is
// returned is not defined. Safe to call at any time; never returns nil —
// carried over directly.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	for _, r := range app.resources {
		if lg, ok := r.(Logger); ok {
			return lg
		}
	}
	return NewNopLogger()
}

// addTicker registers a per-frame callback, driven by Tick in registration
// order.
func (app *App) addTicker(fn func(frameDt float64)) {
	app.tickers = append(app.tickers, fn)
}

// Tick advances the App's Time resource and then runs every registered
// ticker (PMoveModule's being the one this package ships) with the frame's
// wall-clock delta.
func (app *App) Tick() {
	app.time.tick()
	for _, fn := range app.tickers {
		fn(app.time.Dt)
	}
}

// Time exposes the App's frame-timing resource for callers that want to
// read FrameCount/Dt directly (e.g. a renderer choosing an interpolation
// alpha alongside pmove.GetAlpha).
func (app *App) Time() *Time { return app.time }

func (app *App) String() string {
	return fmt.Sprintf("App{resources=%d, tickers=%d}", len(app.resources), len(app.tickers))
}
