package engine

import "github.com/oriel-sdk/oriel/engine/core"

// App is what an application hands the engine: configuration, optional state
// and the hooks the engine calls. Any hook may be nil. Events is injected by
// New before any hook runs.
type App struct {
	ApplicationConfig *ApplicationConfig
	Events            *core.EventSystem
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnOnEvent         OnEvent
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error
type OnEvent func(event core.Event)
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
