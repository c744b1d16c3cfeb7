package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/oriel-sdk/oriel/engine/config"
	"github.com/oriel-sdk/oriel/engine/containers"
	"github.com/oriel-sdk/oriel/engine/core"
	"github.com/oriel-sdk/oriel/engine/gamepad"
	"github.com/oriel-sdk/oriel/engine/platform"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	app          *App
	events       *core.EventSystem
	bridge       core.PlatformBridge
	window       *Window
	input        *core.InputState
	pads         *gamepad.Manager
	watcher      *config.Watcher
	clock        *core.Clock
	isRunning    bool
	isSuspended  bool
	width        uint32
	height       uint32
	lastTime     float64
}

func New(app *App) (*Engine, error) {
	if app == nil || app.ApplicationConfig == nil {
		return nil, errors.New("an App with an ApplicationConfig is required")
	}
	cfg := app.ApplicationConfig
	core.SetLogLevel(cfg.LogLevel)

	policy := containers.DropOldest
	if cfg.RejectWhenFull {
		policy = containers.Reject
	}
	bridge, err := newBridge(cfg.Platform, cfg.QueueCapacity, policy)
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	events := core.NewEventSystem()
	events.AttachImpl(bridge)
	app.Events = events

	return &Engine{
		currentStage: EngineStageUninitialized,
		app:          app,
		events:       events,
		bridge:       bridge,
		input:        core.NewInputState(),
		clock:        core.NewClock(),
		isRunning:    true,
		isSuspended:  false,
		width:        cfg.StartWidth,
		height:       cfg.StartHeight,
		lastTime:     0,
	}, nil
}

func newBridge(backend string, queueCapacity int, policy containers.OverflowPolicy) (core.PlatformBridge, error) {
	switch backend {
	case "", "desktop":
		return platform.NewDesktop(queueCapacity, policy), nil
	case "terminal":
		return platform.NewTerminalBridge(queueCapacity, policy), nil
	case "headless":
		return platform.NewHeadless(queueCapacity, policy), nil
	}
	return nil, fmt.Errorf("unknown platform backend %q", backend)
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	cfg := e.app.ApplicationConfig

	if err := e.bridge.Startup(cfg.Name); err != nil {
		return err
	}

	// Every dispatched event passes through the engine before the app.
	e.events.SetEventCallback(e.onEvent)

	title := cfg.WindowTitle
	if title == "" {
		title = cfg.Name
	}
	window, err := OpenWindow(e.events, core.WindowConfig{
		Title:      title,
		X:          cfg.StartPosX,
		Y:          cfg.StartPosY,
		Width:      cfg.StartWidth,
		Height:     cfg.StartHeight,
		Resizable:  cfg.Resizable,
		Fullscreen: cfg.Fullscreen,
	})
	if err != nil {
		return err
	}
	e.window = window

	if cfg.EnableGamepads {
		if source, ok := e.bridge.(gamepad.Source); ok {
			e.pads = gamepad.NewManager(source, e.events)
		} else {
			core.LogDebug("platform has no gamepad support")
		}
	}

	if cfg.ConfigPath != "" {
		watcher, err := config.NewWatcher(cfg.ConfigPath, e.events)
		if err != nil {
			core.LogWarn("config watching disabled: %s", err)
		} else {
			e.watcher = watcher
		}
	}

	if e.app.FnInitialize != nil {
		if err := e.app.FnInitialize(); err != nil {
			return err
		}
	}
	if e.app.FnOnResize != nil {
		if err := e.app.FnOnResize(e.width, e.height); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.clock.Start()
	e.clock.Update()

	e.lastTime = e.clock.Elapsed()

	var targetFrameSeconds float64 = 1.0 / 60.0

	for e.isRunning {
		// Update clock and get delta time.
		e.clock.Update()

		var currentTime float64 = e.clock.Elapsed()
		var delta float64 = (currentTime - e.lastTime)

		// Even a suspended application keeps polling, or it would never see
		// the restore.
		e.events.PollEvents()
		if e.pads != nil {
			e.pads.Update()
		}

		if !e.isSuspended && e.app.FnUpdate != nil {
			if err := e.app.FnUpdate(delta); err != nil {
				core.LogError("application update failed, shutting down.")
				e.isRunning = false
				break
			}
		}

		// Figure out how long the frame took and, if below the target,
		// give the rest back to the OS.
		e.clock.Update()
		frameElapsedTime := e.clock.Elapsed() - currentTime
		remainingMS := (targetFrameSeconds - frameElapsedTime) * 1000
		if remainingMS > 1 {
			time.Sleep(time.Duration(remainingMS-1) * time.Millisecond)
		}

		// NOTE: Input update/state copying should always be handled
		// after any input should be recorded; I.E. before this line.
		// As a safety, input is the last thing to be updated before
		// this frame ends.
		e.input.Update()

		// Update last time
		e.lastTime = currentTime
	}

	return nil
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	if e.app.FnShutdown != nil {
		if err := e.app.FnShutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			core.LogError(err.Error())
		}
		e.watcher = nil
	}
	if e.window != nil {
		e.window.Close()
		e.window = nil
	}
	e.events.DetachImpl(e.bridge)
	return e.bridge.Shutdown()
}

func (e *Engine) Events() *core.EventSystem {
	return e.events
}

func (e *Engine) Input() *core.InputState {
	return e.input
}

func (e *Engine) MainWindow() *Window {
	return e.window
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

// GetFramebufferSize returns the width and height (in this order)
// of the application framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(event core.Event) {
	e.input.Apply(event)

	switch event.Kind {
	case core.KindQuitRequested:
		core.LogInfo("quit requested, shutting down.")
		e.isRunning = false
	case core.KindWindowCloseRequested:
		if e.window != nil && event.Handle == e.window.Handle() {
			e.events.PushEvent(core.NewEvent(core.KindQuitRequested, core.HandleNone, nil))
		}
	case core.KindWindowResized:
		if p, ok := event.Resize(); ok {
			e.onResized(p.Width, p.Height)
		}
	case core.KindWindowMinimized:
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
	case core.KindWindowRestored:
		if e.isSuspended {
			core.LogInfo("Window restored, resuming application.")
			e.isSuspended = false
		}
	case core.KindConfigReloaded:
		if p, ok := event.Config(); ok {
			e.reloadConfig(p.Path)
		}
	}

	if e.app.FnOnEvent != nil {
		e.app.FnOnEvent(event)
	}
}

func (e *Engine) onResized(width uint32, height uint32) {
	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return
	}
	e.width = width
	e.height = height

	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
	}
	if e.app.FnOnResize != nil {
		if err := e.app.FnOnResize(width, height); err != nil {
			core.LogError(err.Error())
		}
	}
}

// reloadConfig applies what can change while running. Today that is the log
// level; window and queue settings need a restart.
func (e *Engine) reloadConfig(path string) {
	cfg, err := config.Load(path)
	if err != nil {
		core.LogError("config reload failed: %s", err)
		return
	}
	core.SetLogLevel(cfg.LogLevel())
	core.LogInfo("config reloaded from %s", path)
}
