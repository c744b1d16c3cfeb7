package platform

import (
	"sync"

	"github.com/oriel-sdk/oriel/engine/containers"
	"github.com/oriel-sdk/oriel/engine/core"
)

// Router is the queue, registry and dispatch core shared by every bridge.
// Backends embed it and add only their native translation layer on top.
type Router struct {
	queue    *containers.EventQueue
	registry *Registry
	metrics  *core.Metrics

	mu       sync.RWMutex
	globalCb core.EventCallback
}

func NewRouter(queueCapacity int, policy containers.OverflowPolicy) *Router {
	return &Router{
		queue:    containers.NewEventQueue(queueCapacity, policy),
		registry: NewRegistry(),
		metrics:  &core.Metrics{},
	}
}

func (r *Router) RegisterWindow(owner core.Window, handle core.NativeHandle) {
	r.registry.Register(owner, handle)
}

func (r *Router) UnregisterWindow(handle core.NativeHandle) {
	r.registry.Unregister(handle)
}

// PushEvent enqueues from any goroutine. Overflow is counted and logged at
// debug level, never surfaced to the producer: input sources cannot do
// anything useful with the failure.
func (r *Router) PushEvent(event core.Event) {
	evicted, err := r.queue.Push(event)
	if err != nil {
		r.metrics.CountDropped()
		core.LogDebug("event queue full, rejecting %s", event)
		return
	}
	if evicted {
		r.metrics.CountDropped()
		core.LogDebug("event queue full, evicted oldest for %s", event)
	}
	r.metrics.CountPushed()
	r.metrics.ObserveQueueLen(r.queue.Len())
}

func (r *Router) Front() (core.Event, bool) {
	return r.queue.Front()
}

func (r *Router) Pop() (core.Event, bool) {
	return r.queue.Pop()
}

func (r *Router) IsEmpty() bool {
	return r.queue.IsEmpty()
}

func (r *Router) Size() int {
	return r.queue.Len()
}

func (r *Router) SetEventCallback(callback core.EventCallback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.globalCb = callback
}

func (r *Router) SetWindowCallback(handle core.NativeHandle, callback core.EventCallback) {
	r.registry.SetCallback(handle, callback)
}

// DispatchEvent routes one event. The window callback fires first and only
// for a registered handle; the global callback fires for every event, with
// event.Window left nil when routing missed. Callbacks run outside all
// locks, so they may register and unregister windows freely.
func (r *Router) DispatchEvent(event core.Event, handle core.NativeHandle) {
	owner, windowCb, live := r.registry.Resolve(handle)
	if live {
		event.Window = owner
	} else if handle != core.HandleNone {
		r.metrics.CountRoutingMiss()
		core.LogDebug("no window registered for handle 0x%X, %s goes to the global callback only",
			uint64(handle), event)
	}

	if live && windowCb != nil {
		windowCb(event)
	}

	r.mu.RLock()
	globalCb := r.globalCb
	r.mu.RUnlock()
	if globalCb != nil {
		globalCb(event)
	}

	r.metrics.CountDispatched()
}

func (r *Router) Stats() core.MetricsSnapshot {
	return r.metrics.Snapshot()
}
