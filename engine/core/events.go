package core

import "sync"

// EventSystem is the application-facing front of the routing layer. It owns
// at most one PlatformBridge and forwards to it; with none attached every
// operation is an inert no-op, so callers need no nil checks around window
// teardown or early startup.
type EventSystem struct {
	mu     sync.RWMutex
	bridge PlatformBridge
}

func NewEventSystem() *EventSystem {
	return &EventSystem{}
}

// AttachImpl installs the platform bridge. Attaching while another bridge is
// live is rejected: the first bridge keeps the queue and the registry, and
// swapping them mid-flight would strand both.
func (es *EventSystem) AttachImpl(bridge PlatformBridge) {
	if bridge == nil {
		panic("oriel: AttachImpl requires a non-nil bridge")
	}
	es.mu.Lock()
	defer es.mu.Unlock()
	if es.bridge != nil {
		LogError("a platform bridge is already attached, keeping it")
		return
	}
	es.bridge = bridge
}

// DetachImpl removes bridge and returns the system to the inert state. Only
// the attached bridge can detach itself; anything else is ignored.
func (es *EventSystem) DetachImpl(bridge PlatformBridge) {
	es.mu.Lock()
	defer es.mu.Unlock()
	if es.bridge == nil {
		return
	}
	if es.bridge != bridge {
		LogWarn("detach requested by a bridge that is not attached, ignoring")
		return
	}
	es.bridge = nil
}

func (es *EventSystem) Attached() bool {
	return es.impl() != nil
}

func (es *EventSystem) impl() PlatformBridge {
	es.mu.RLock()
	defer es.mu.RUnlock()
	return es.bridge
}

// PollEvents runs one pump and dispatch cycle: drain the native layer into
// the queue, then dispatch every queued event in arrival order. Call it once
// per frame from the main loop.
func (es *EventSystem) PollEvents() {
	bridge := es.impl()
	if bridge == nil {
		return
	}
	bridge.PollEvents()
	for {
		event, ok := bridge.Pop()
		if !ok {
			return
		}
		bridge.DispatchEvent(event, event.Handle)
	}
}

// PumpEvents drains the native layer into the queue without dispatching.
// Pair it with Front, Pop and DispatchEvent to consume events manually.
func (es *EventSystem) PumpEvents() {
	if bridge := es.impl(); bridge != nil {
		bridge.PollEvents()
	}
}

// PushEvent enqueues an event from any goroutine. Without a bridge the
// event vanishes.
func (es *EventSystem) PushEvent(event Event) {
	bridge := es.impl()
	if bridge == nil {
		LogDebug("no platform attached, dropping %s", event)
		return
	}
	bridge.PushEvent(event)
}

func (es *EventSystem) Front() (Event, bool) {
	bridge := es.impl()
	if bridge == nil {
		return Event{}, false
	}
	return bridge.Front()
}

func (es *EventSystem) Pop() (Event, bool) {
	bridge := es.impl()
	if bridge == nil {
		return Event{}, false
	}
	return bridge.Pop()
}

func (es *EventSystem) IsEmpty() bool {
	bridge := es.impl()
	if bridge == nil {
		return true
	}
	return bridge.IsEmpty()
}

func (es *EventSystem) Size() int {
	bridge := es.impl()
	if bridge == nil {
		return 0
	}
	return bridge.Size()
}

// DispatchEvent routes one event through the attached bridge using the
// handle the event itself carries.
func (es *EventSystem) DispatchEvent(event Event) {
	if bridge := es.impl(); bridge != nil {
		bridge.DispatchEvent(event, event.Handle)
	}
}

func (es *EventSystem) RegisterWindow(owner Window, handle NativeHandle) {
	if bridge := es.impl(); bridge != nil {
		bridge.RegisterWindow(owner, handle)
	}
}

func (es *EventSystem) UnregisterWindow(handle NativeHandle) {
	if bridge := es.impl(); bridge != nil {
		bridge.UnregisterWindow(handle)
	}
}

func (es *EventSystem) SetEventCallback(callback EventCallback) {
	if bridge := es.impl(); bridge != nil {
		bridge.SetEventCallback(callback)
	}
}

func (es *EventSystem) SetWindowCallback(handle NativeHandle, callback EventCallback) {
	if bridge := es.impl(); bridge != nil {
		bridge.SetWindowCallback(handle, callback)
	}
}

// OpenWindow asks the bridge for a native window. This is the one facade
// call that reports the inert state instead of swallowing it, because the
// caller needs a handle back.
func (es *EventSystem) OpenWindow(config WindowConfig) (NativeHandle, error) {
	bridge := es.impl()
	if bridge == nil {
		return HandleNone, ErrBridgeDetached
	}
	return bridge.OpenWindow(config)
}

func (es *EventSystem) CloseWindow(handle NativeHandle) {
	if bridge := es.impl(); bridge != nil {
		bridge.CloseWindow(handle)
	}
}

func (es *EventSystem) Stats() MetricsSnapshot {
	bridge := es.impl()
	if bridge == nil {
		return MetricsSnapshot{}
	}
	return bridge.Stats()
}
