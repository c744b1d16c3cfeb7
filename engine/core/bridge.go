package core

// Window is what the routing layer knows about a window: an opaque native
// handle and a title for logs. Applications register their own
// implementations; the SDK never looks past this interface.
type Window interface {
	Handle() NativeHandle
	Title() string
}

// WindowConfig describes the window a bridge should open.
type WindowConfig struct {
	Title      string
	X          uint32
	Y          uint32
	Width      uint32
	Height     uint32
	Resizable  bool
	Fullscreen bool
}

// EventCallback receives dispatched events. Callbacks run synchronously on
// the dispatching goroutine and must not call back into PollEvents.
type EventCallback func(event Event)

// PlatformBridge is the contract every platform backend fulfills. One bridge
// owns one event queue, one window registry and one dispatch path; the
// EventSystem facade talks to nothing else.
//
// Queue operations are safe for concurrent producers. Front, Pop and
// PollEvents assume the single consumer that owns the main loop.
type PlatformBridge interface {
	// Startup prepares the native layer. No window exists before it returns.
	Startup(appName string) error
	// Shutdown releases every native resource. The bridge is unusable after.
	Shutdown() error

	// OpenWindow creates a native window and returns its handle.
	OpenWindow(config WindowConfig) (NativeHandle, error)
	// CloseWindow destroys the native window behind handle.
	CloseWindow(handle NativeHandle)

	// RegisterWindow binds owner to handle for event routing. Registering an
	// already bound handle replaces the previous owner. A nil owner panics.
	RegisterWindow(owner Window, handle NativeHandle)
	// UnregisterWindow removes the binding. Unknown handles are a no-op.
	UnregisterWindow(handle NativeHandle)

	// PollEvents drains the native layer, translating whatever is pending
	// into queued events. It never blocks waiting for input.
	PollEvents()
	// PushEvent enqueues an event from any goroutine.
	PushEvent(event Event)

	// Front returns the oldest queued event without consuming it.
	Front() (Event, bool)
	// Pop consumes and returns the oldest queued event.
	Pop() (Event, bool)
	IsEmpty() bool
	Size() int

	// SetEventCallback installs the global sink. Every dispatched event
	// reaches it, routed or not.
	SetEventCallback(callback EventCallback)
	// SetWindowCallback installs a per-window sink on a registered handle.
	SetWindowCallback(handle NativeHandle, callback EventCallback)
	// DispatchEvent routes one event: the window callback of handle first
	// when the handle is registered, the global callback always.
	DispatchEvent(event Event, handle NativeHandle)

	// Stats reports routing counters for diagnostics.
	Stats() MetricsSnapshot
}
