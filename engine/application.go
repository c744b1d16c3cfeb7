package engine

import (
	"github.com/oriel-sdk/oriel/engine/config"
	"github.com/oriel-sdk/oriel/engine/containers"
	"github.com/oriel-sdk/oriel/engine/core"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name string
	// The main window title. Empty falls back to Name.
	WindowTitle string
	LogLevel    core.LogLevel
	// Whether the main window can be resized.
	Resizable bool
	// Whether the main window covers the primary monitor.
	Fullscreen bool
	// Platform backend: desktop, terminal or headless. Empty means desktop.
	Platform string
	// Event queue capacity. Zero means the default.
	QueueCapacity int
	// Reject new events when the queue is full instead of evicting the
	// oldest queued one.
	RejectWhenFull bool
	// Whether gamepads are sampled every frame.
	EnableGamepads bool
	// Config file to watch for live reloads. Empty disables watching.
	ConfigPath string
}

// FromConfig maps a loaded config file onto an ApplicationConfig. Passing
// the path it was loaded from enables live reload.
func FromConfig(cfg config.Config, path string) *ApplicationConfig {
	policy, _ := cfg.OverflowPolicy()
	return &ApplicationConfig{
		StartPosX:      cfg.Window.X,
		StartPosY:      cfg.Window.Y,
		StartWidth:     cfg.Window.Width,
		StartHeight:    cfg.Window.Height,
		Name:           cfg.Application.Name,
		WindowTitle:    cfg.Window.Title,
		LogLevel:       cfg.LogLevel(),
		Resizable:      cfg.Window.Resizable,
		Fullscreen:     cfg.Window.Fullscreen,
		Platform:       cfg.Platform.Backend,
		QueueCapacity:  cfg.Events.QueueCapacity,
		RejectWhenFull: policy == containers.Reject,
		EnableGamepads: cfg.Platform.Gamepads,
		ConfigPath:     path,
	}
}
