package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brushworks/pmove"
)

func TestAppLoggerDefaultsToNop(t *testing.T) {
	app := NewApp()
	lg := app.Logger()
	require.NotNil(t, lg)
	assert.False(t, lg.DebugEnabled())
}

func TestAppLoggerFindsInstalledLogger(t *testing.T) {
	app := NewApp()
	app.Use(LoggingModule{Prefix: "test", Debug: true})

	lg := app.Logger()
	assert.True(t, lg.DebugEnabled())
}

func TestAppTickAdvancesFrameCount(t *testing.T) {
	app := NewApp()
	before := app.Time().FrameCount
	app.Tick()
	assert.Equal(t, before+1, app.Time().FrameCount)
}

func TestAddResourceOverwritesSameType(t *testing.T) {
	app := NewApp()
	app.AddResource(Logger(NewDefaultLogger("a", false)))
	app.AddResource(Logger(NewDefaultLogger("b", true)))

	assert.True(t, app.Logger().DebugEnabled())
}

func TestPlayerLoopPanicsWithoutWorldResource(t *testing.T) {
	app := NewApp()
	ps := &pmove.PlayerState{}
	pmove.PlayerInit(ps, pmove.Vector3{})

	assert.Panics(t, func() {
		NewPlayerLoop(app, ps, func() pmove.UserCommand { return pmove.UserCommand{} })
	})
}

func TestPlayerLoopTicksAgainstWorld(t *testing.T) {
	app := NewApp()
	world := pmove.WorldCreateTestRoom()
	app.Use(PMoveModule{World: world})

	ps := &pmove.PlayerState{}
	pmove.PlayerInit(ps, pmove.Vector3{0, 0, 100})

	loop := NewPlayerLoop(app, ps, func() pmove.UserCommand { return pmove.UserCommand{} })

	for i := 0; i < 200; i++ {
		loop.tick(float64(pmove.TickDt))
	}

	assert.True(t, ps.OnGround)
	assert.InDelta(t, 0, loop.Alpha(), 1e-4)
}
