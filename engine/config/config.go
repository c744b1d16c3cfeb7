// Package config loads and validates the TOML application configuration.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/oriel-sdk/oriel/engine/containers"
	"github.com/oriel-sdk/oriel/engine/core"
)

type ApplicationSection struct {
	Name     string `toml:"name"`
	LogLevel string `toml:"log_level"`
}

type WindowSection struct {
	Title      string `toml:"title"`
	X          uint32 `toml:"x"`
	Y          uint32 `toml:"y"`
	Width      uint32 `toml:"width"`
	Height     uint32 `toml:"height"`
	Resizable  bool   `toml:"resizable"`
	Fullscreen bool   `toml:"fullscreen"`
}

type EventsSection struct {
	QueueCapacity  int    `toml:"queue_capacity"`
	OverflowPolicy string `toml:"overflow_policy"`
}

type PlatformSection struct {
	Backend  string `toml:"backend"`
	Gamepads bool   `toml:"gamepads"`
}

type Config struct {
	Application ApplicationSection `toml:"application"`
	Window      WindowSection      `toml:"window"`
	Events      EventsSection      `toml:"events"`
	Platform    PlatformSection    `toml:"platform"`
}

// Default is the configuration a missing file would have produced.
func Default() Config {
	return Config{
		Application: ApplicationSection{
			Name:     "Oriel Application",
			LogLevel: "info",
		},
		Window: WindowSection{
			Title:     "Oriel",
			X:         100,
			Y:         100,
			Width:     1280,
			Height:    720,
			Resizable: true,
		},
		Events: EventsSection{
			QueueCapacity:  containers.DefaultCapacity,
			OverflowPolicy: "drop-oldest",
		},
		Platform: PlatformSection{
			Backend:  "desktop",
			Gamepads: true,
		},
	}
}

// Load reads path over the defaults, so a partial file only overrides what
// it names.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Application.Name == "" {
		return fmt.Errorf("application.name must not be empty")
	}
	if _, err := core.ParseLogLevel(c.Application.LogLevel); err != nil {
		return fmt.Errorf("application.log_level: %w", err)
	}
	if c.Events.QueueCapacity <= 0 {
		return fmt.Errorf("events.queue_capacity must be positive, got %d", c.Events.QueueCapacity)
	}
	if _, err := c.OverflowPolicy(); err != nil {
		return err
	}
	switch c.Platform.Backend {
	case "desktop", "terminal", "headless":
	default:
		return fmt.Errorf("platform.backend must be desktop, terminal or headless, got %q", c.Platform.Backend)
	}
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// OverflowPolicy maps the configured policy name onto the queue policy.
func (c Config) OverflowPolicy() (containers.OverflowPolicy, error) {
	switch c.Events.OverflowPolicy {
	case "", "drop-oldest":
		return containers.DropOldest, nil
	case "reject":
		return containers.Reject, nil
	}
	return containers.DropOldest, fmt.Errorf("events.overflow_policy must be drop-oldest or reject, got %q", c.Events.OverflowPolicy)
}

// LogLevel returns the parsed log level. Validate catches bad values, so a
// validated config cannot fail here.
func (c Config) LogLevel() core.LogLevel {
	level, _ := core.ParseLogLevel(c.Application.LogLevel)
	return level
}
