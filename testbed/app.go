package testbed

import (
	"github.com/oriel-sdk/oriel/engine"
	"github.com/oriel-sdk/oriel/engine/config"
	"github.com/oriel-sdk/oriel/engine/core"
)

// DemoApp exercises the event system end to end: keyboard, mouse,
// drag and drop, gamepads and config reloads all land in its callback.
type DemoApp struct {
	*engine.App
}

func NewDemoApp(configPath string) (*DemoApp, error) {
	var appConfig *engine.ApplicationConfig
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		appConfig = engine.FromConfig(cfg, configPath)
	} else {
		appConfig = &engine.ApplicationConfig{
			StartPosX:      100,
			StartPosY:      100,
			StartWidth:     1280,
			StartHeight:    720,
			Name:           "Oriel Demo",
			LogLevel:       core.DebugLevel,
			Resizable:      true,
			EnableGamepads: true,
		}
	}

	da := &DemoApp{
		App: &engine.App{
			ApplicationConfig: appConfig,
		},
	}
	da.App.FnInitialize = da.initialize
	da.App.FnUpdate = da.update
	da.App.FnOnEvent = da.onEvent
	da.App.FnOnResize = da.onResize
	da.App.FnShutdown = da.shutdown
	return da, nil
}

func (da *DemoApp) initialize() error {
	core.LogInfo("demo initialized")
	return nil
}

func (da *DemoApp) update(deltaTime float64) error {
	return nil
}

func (da *DemoApp) onEvent(event core.Event) {
	switch event.Kind {
	case core.KindKeyPressed:
		p, _ := event.Key()
		if p.Key == core.KeyEscape {
			// NOTE: Technically firing an event to itself, but there may be other listeners.
			da.Events.PushEvent(core.NewEvent(core.KindQuitRequested, core.HandleNone, nil))
			return
		}
		core.LogDebug("key pressed: %s", p.Key)
	case core.KindKeyReleased:
		p, _ := event.Key()
		core.LogDebug("key released: %s", p.Key)
	case core.KindTextInput:
		p, _ := event.Text()
		core.LogDebug("text input: %q", p.Rune)
	case core.KindMouseButtonPressed:
		p, _ := event.MouseButton()
		core.LogDebug("mouse button %d pressed at %.0f, %.0f", p.Button, p.X, p.Y)
	case core.KindMouseWheel:
		p, _ := event.MouseWheel()
		core.LogDebug("mouse wheel: %.1f, %.1f", p.DeltaX, p.DeltaY)
	case core.KindDropFiles:
		if p, ok := event.DropFiles(); ok {
			if paths, ok := p.TakePaths(); ok {
				for _, path := range paths {
					core.LogInfo("file dropped: %s", path)
				}
			}
		}
	case core.KindDropText:
		if p, ok := event.DropText(); ok {
			if text, ok := p.TakeText(); ok {
				core.LogInfo("text dropped: %q", text)
			}
		}
	case core.KindGamepadConnected:
		p, _ := event.GamepadDevice()
		core.LogInfo("gamepad %d connected: %s", p.Pad, p.Name)
	case core.KindGamepadDisconnected:
		p, _ := event.GamepadDevice()
		core.LogInfo("gamepad %d disconnected", p.Pad)
	case core.KindGamepadButtonPressed:
		p, _ := event.GamepadButton()
		core.LogDebug("gamepad %d button %d pressed", p.Pad, p.Button)
	}
}

func (da *DemoApp) onResize(width uint32, height uint32) error {
	core.LogDebug("demo resized to %d x %d", width, height)
	return nil
}

func (da *DemoApp) shutdown() error {
	stats := da.Events.Stats()
	core.LogInfo("demo shutting down: %d events pushed, %d dispatched, %d dropped, %d routing misses, queue peak %d",
		stats.Pushed, stats.Dispatched, stats.Dropped, stats.RoutingMisses, stats.QueuePeak)
	return nil
}
