package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriel-sdk/oriel/engine/config"
	"github.com/oriel-sdk/oriel/engine/core"
)

func headlessConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   0,
		StartPosY:   0,
		StartWidth:  640,
		StartHeight: 480,
		Name:        "engine test",
		LogLevel:    core.ErrorLevel,
		Platform:    "headless",
	}
}

func newTestEngine(t *testing.T, app *App) *Engine {
	t.Helper()
	eng, err := New(app)
	require.NoError(t, err)
	require.NoError(t, eng.Initialize())
	return eng
}

func TestNewRequiresAConfiguredApp(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&App{})
	assert.Error(t, err)
}

func TestNewRejectsUnknownBackends(t *testing.T) {
	cfg := headlessConfig()
	cfg.Platform = "hologram"
	_, err := New(&App{ApplicationConfig: cfg})
	assert.ErrorContains(t, err, "unknown platform backend")
}

func TestInitializeOpensTheMainWindow(t *testing.T) {
	app := &App{ApplicationConfig: headlessConfig()}
	eng := newTestEngine(t, app)

	assert.Equal(t, EngineStageInitialized, eng.Stage())
	require.NotNil(t, eng.MainWindow())
	assert.NotEqual(t, core.HandleNone, eng.MainWindow().Handle())
	assert.Equal(t, "engine test", eng.MainWindow().Title())
	assert.True(t, eng.Events().Attached())
	assert.NotNil(t, app.Events)

	// The open pushed the created event; nothing drained it yet.
	assert.Equal(t, 1, eng.Events().Size())

	require.NoError(t, eng.Shutdown())
}

func TestWindowTitleFallsBackToAppName(t *testing.T) {
	cfg := headlessConfig()
	cfg.WindowTitle = "Custom Title"
	app := &App{ApplicationConfig: cfg}
	eng := newTestEngine(t, app)
	defer eng.Shutdown()

	assert.Equal(t, "Custom Title", eng.MainWindow().Title())
}

func TestInitializeReportsTheStartingSize(t *testing.T) {
	var widths, heights []uint32
	app := &App{ApplicationConfig: headlessConfig()}
	app.FnOnResize = func(width, height uint32) error {
		widths = append(widths, width)
		heights = append(heights, height)
		return nil
	}

	eng := newTestEngine(t, app)
	defer eng.Shutdown()

	assert.Equal(t, []uint32{640}, widths)
	assert.Equal(t, []uint32{480}, heights)
}

func TestRunStopsOnQuitRequested(t *testing.T) {
	var updates int
	app := &App{ApplicationConfig: headlessConfig()}
	app.FnUpdate = func(deltaTime float64) error {
		updates++
		return nil
	}

	eng := newTestEngine(t, app)
	eng.Events().PushEvent(core.NewEvent(core.KindQuitRequested, core.HandleNone, nil))

	require.NoError(t, eng.Run())
	assert.False(t, eng.isRunning)
	assert.LessOrEqual(t, updates, 1)

	require.NoError(t, eng.Shutdown())
	assert.Equal(t, EngineStageShuttingDown, eng.Stage())
}

func TestRunStopsWhenUpdateFails(t *testing.T) {
	app := &App{ApplicationConfig: headlessConfig()}
	app.FnUpdate = func(deltaTime float64) error {
		return errors.New("boom")
	}

	eng := newTestEngine(t, app)
	require.NoError(t, eng.Run())
	assert.False(t, eng.isRunning)
	require.NoError(t, eng.Shutdown())
}

func TestCloseRequestOnTheMainWindowBecomesQuit(t *testing.T) {
	app := &App{ApplicationConfig: headlessConfig()}
	eng := newTestEngine(t, app)
	defer eng.Shutdown()

	eng.onEvent(core.NewEvent(core.KindWindowCloseRequested, eng.MainWindow().Handle(), nil))

	var kinds []core.EventKind
	for {
		event, ok := eng.Events().Pop()
		if !ok {
			break
		}
		kinds = append(kinds, event.Kind)
	}
	assert.Contains(t, kinds, core.KindQuitRequested)
}

func TestCloseRequestOnAnotherWindowIsIgnored(t *testing.T) {
	app := &App{ApplicationConfig: headlessConfig()}
	eng := newTestEngine(t, app)
	defer eng.Shutdown()

	eng.onEvent(core.NewEvent(core.KindWindowCloseRequested, 0xDEAD, nil))

	for {
		event, ok := eng.Events().Pop()
		if !ok {
			break
		}
		assert.NotEqual(t, core.KindQuitRequested, event.Kind)
	}
	assert.True(t, eng.isRunning)
}

func TestMinimizeAndRestoreToggleSuspension(t *testing.T) {
	app := &App{ApplicationConfig: headlessConfig()}
	eng := newTestEngine(t, app)
	defer eng.Shutdown()

	eng.onEvent(core.NewEvent(core.KindWindowMinimized, eng.MainWindow().Handle(), nil))
	assert.True(t, eng.isSuspended)

	eng.onEvent(core.NewEvent(core.KindWindowRestored, eng.MainWindow().Handle(), nil))
	assert.False(t, eng.isSuspended)
}

func TestResizeReachesTheApp(t *testing.T) {
	type size struct{ w, h uint32 }
	var sizes []size
	app := &App{ApplicationConfig: headlessConfig()}
	app.FnOnResize = func(width, height uint32) error {
		sizes = append(sizes, size{w: width, h: height})
		return nil
	}

	eng := newTestEngine(t, app)
	defer eng.Shutdown()

	eng.onEvent(core.NewEvent(core.KindWindowResized, eng.MainWindow().Handle(), core.ResizePayload{Width: 800, Height: 600}))

	require.Len(t, sizes, 2)
	assert.Equal(t, size{w: 800, h: 600}, sizes[1])

	w, h := eng.GetFramebufferSize()
	assert.Equal(t, uint32(800), w)
	assert.Equal(t, uint32(600), h)

	// The same size again does not call back.
	eng.onEvent(core.NewEvent(core.KindWindowResized, eng.MainWindow().Handle(), core.ResizePayload{Width: 800, Height: 600}))
	assert.Len(t, sizes, 2)
}

func TestZeroSizeResizeSuspends(t *testing.T) {
	app := &App{ApplicationConfig: headlessConfig()}
	eng := newTestEngine(t, app)
	defer eng.Shutdown()

	eng.onEvent(core.NewEvent(core.KindWindowResized, eng.MainWindow().Handle(), core.ResizePayload{Width: 0, Height: 0}))
	assert.True(t, eng.isSuspended)

	eng.onEvent(core.NewEvent(core.KindWindowResized, eng.MainWindow().Handle(), core.ResizePayload{Width: 640, Height: 480}))
	assert.False(t, eng.isSuspended)
}

func TestEventsFlowIntoAppAndInput(t *testing.T) {
	var seen []core.EventKind
	app := &App{ApplicationConfig: headlessConfig()}
	app.FnOnEvent = func(event core.Event) {
		seen = append(seen, event.Kind)
	}

	eng := newTestEngine(t, app)
	defer eng.Shutdown()

	eng.Events().PushEvent(core.NewEvent(core.KindKeyPressed, core.HandleNone, core.KeyPayload{Key: core.KeyW}))
	eng.Events().PollEvents()

	assert.Contains(t, seen, core.KindKeyPressed)
	assert.True(t, eng.Input().IsKeyDown(core.KeyW))
}

func TestShutdownRunsTheAppHook(t *testing.T) {
	var closed bool
	app := &App{ApplicationConfig: headlessConfig()}
	app.FnShutdown = func() error {
		closed = true
		return nil
	}

	eng := newTestEngine(t, app)
	require.NoError(t, eng.Shutdown())
	assert.True(t, closed)
	assert.False(t, eng.Events().Attached())
	assert.Nil(t, eng.MainWindow())
}

func TestFromConfigMapsEverySetting(t *testing.T) {
	cfg := config.Default()
	cfg.Application.Name = "Mapped"
	cfg.Application.LogLevel = "warn"
	cfg.Window.Title = "Mapped Window"
	cfg.Window.X = 10
	cfg.Window.Y = 20
	cfg.Window.Width = 300
	cfg.Window.Height = 200
	cfg.Window.Resizable = false
	cfg.Window.Fullscreen = true
	cfg.Events.QueueCapacity = 99
	cfg.Events.OverflowPolicy = "reject"
	cfg.Platform.Backend = "headless"
	cfg.Platform.Gamepads = false

	ac := FromConfig(cfg, "/etc/oriel.toml")

	assert.Equal(t, "Mapped", ac.Name)
	assert.Equal(t, core.WarnLevel, ac.LogLevel)
	assert.Equal(t, "Mapped Window", ac.WindowTitle)
	assert.Equal(t, uint32(10), ac.StartPosX)
	assert.Equal(t, uint32(20), ac.StartPosY)
	assert.Equal(t, uint32(300), ac.StartWidth)
	assert.Equal(t, uint32(200), ac.StartHeight)
	assert.False(t, ac.Resizable)
	assert.True(t, ac.Fullscreen)
	assert.Equal(t, 99, ac.QueueCapacity)
	assert.True(t, ac.RejectWhenFull)
	assert.Equal(t, "headless", ac.Platform)
	assert.False(t, ac.EnableGamepads)
	assert.Equal(t, "/etc/oriel.toml", ac.ConfigPath)
}
