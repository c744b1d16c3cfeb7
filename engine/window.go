package engine

import (
	"sync/atomic"

	"github.com/oriel-sdk/oriel/engine/core"
)

// Window pairs a native window with its routing registration. Close is safe
// to repeat; only the first call tears anything down.
type Window struct {
	events *core.EventSystem
	handle core.NativeHandle
	title  string
	closed atomic.Bool
}

var _ core.Window = (*Window)(nil)

// OpenWindow asks the platform for a native window and registers the result
// for event routing.
func OpenWindow(events *core.EventSystem, config core.WindowConfig) (*Window, error) {
	handle, err := events.OpenWindow(config)
	if err != nil {
		return nil, err
	}
	w := &Window{
		events: events,
		handle: handle,
		title:  config.Title,
	}
	events.RegisterWindow(w, handle)
	return w, nil
}

func (w *Window) Handle() core.NativeHandle {
	return w.handle
}

func (w *Window) Title() string {
	return w.title
}

// SetCallback routes this window's events to callback ahead of the global
// one.
func (w *Window) SetCallback(callback core.EventCallback) {
	w.events.SetWindowCallback(w.handle, callback)
}

// Close unregisters the window and destroys its native backing. Events
// already in the queue still dispatch, to the global callback only.
func (w *Window) Close() {
	if !w.closed.CompareAndSwap(false, true) {
		return
	}
	w.events.UnregisterWindow(w.handle)
	w.events.CloseWindow(w.handle)
}
