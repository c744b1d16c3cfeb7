package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriel-sdk/oriel/engine/containers"
	"github.com/oriel-sdk/oriel/engine/core"
)

func TestDispatchOrderWindowThenGlobal(t *testing.T) {
	r := NewRouter(16, containers.DropOldest)
	w := &stubWindow{handle: 1, title: "main"}
	r.RegisterWindow(w, 1)

	var order []string
	r.SetWindowCallback(1, func(core.Event) { order = append(order, "window") })
	r.SetEventCallback(func(core.Event) { order = append(order, "global") })

	r.DispatchEvent(core.NewEvent(core.KindWindowFocusGained, 1, nil), 1)

	assert.Equal(t, []string{"window", "global"}, order)
}

func TestDispatchSplitsBetweenWindows(t *testing.T) {
	r := NewRouter(16, containers.DropOldest)
	a := &stubWindow{handle: 0x1, title: "a"}
	b := &stubWindow{handle: 0x2, title: "b"}
	r.RegisterWindow(a, a.handle)
	r.RegisterWindow(b, b.handle)

	var aGot, bGot, global []core.EventKind
	r.SetWindowCallback(a.handle, func(event core.Event) { aGot = append(aGot, event.Kind) })
	r.SetWindowCallback(b.handle, func(event core.Event) { bGot = append(bGot, event.Kind) })
	r.SetEventCallback(func(event core.Event) { global = append(global, event.Kind) })

	r.PushEvent(core.NewEvent(core.KindMouseMoved, a.handle, core.MouseMovePayload{X: 10, Y: 20}))
	r.PushEvent(core.NewEvent(core.KindKeyPressed, b.handle, core.KeyPayload{Key: core.KeyB}))

	for {
		event, ok := r.Pop()
		if !ok {
			break
		}
		r.DispatchEvent(event, event.Handle)
	}

	// Each window sees only its own event; the global callback sees both in
	// push order.
	assert.Equal(t, []core.EventKind{core.KindMouseMoved}, aGot)
	assert.Equal(t, []core.EventKind{core.KindKeyPressed}, bGot)
	assert.Equal(t, []core.EventKind{core.KindMouseMoved, core.KindKeyPressed}, global)
	assert.Equal(t, uint64(0), r.Stats().RoutingMisses)
}

func TestDispatchMissLeavesWindowNil(t *testing.T) {
	r := NewRouter(16, containers.DropOldest)

	var dispatched core.Event
	r.SetEventCallback(func(event core.Event) { dispatched = event })

	r.DispatchEvent(core.NewEvent(core.KindWindowFocusGained, 77, nil), 77)

	assert.Nil(t, dispatched.Window)
	assert.Equal(t, core.NativeHandle(77), dispatched.Handle)
	assert.Equal(t, uint64(1), r.Stats().RoutingMisses)
}

func TestWindowlessEventsAreNotMisses(t *testing.T) {
	r := NewRouter(16, containers.DropOldest)

	var seen int
	r.SetEventCallback(func(core.Event) { seen++ })

	r.DispatchEvent(core.NewEvent(core.KindQuitRequested, core.HandleNone, nil), core.HandleNone)
	r.DispatchEvent(core.NewEvent(core.KindGamepadConnected, core.HandleNone, core.GamepadDevicePayload{Pad: 0, Name: "pad"}), core.HandleNone)

	assert.Equal(t, 2, seen)
	assert.Equal(t, uint64(0), r.Stats().RoutingMisses)
	assert.Equal(t, uint64(2), r.Stats().Dispatched)
}

func TestDispatchAfterUnregisterSkipsWindowCallback(t *testing.T) {
	r := NewRouter(16, containers.DropOldest)
	w := &stubWindow{handle: 4}
	r.RegisterWindow(w, 4)

	var windowHits, globalHits int
	r.SetWindowCallback(4, func(core.Event) { windowHits++ })
	r.SetEventCallback(func(core.Event) { globalHits++ })

	r.UnregisterWindow(4)
	r.DispatchEvent(core.NewEvent(core.KindWindowClosed, 4, nil), 4)

	assert.Equal(t, 0, windowHits)
	assert.Equal(t, 1, globalHits)
}

func TestCallbacksMayTouchTheRouter(t *testing.T) {
	r := NewRouter(16, containers.DropOldest)
	w := &stubWindow{handle: 1}
	r.RegisterWindow(w, 1)

	// Re-entrant registration from inside a callback must not deadlock.
	r.SetEventCallback(func(event core.Event) {
		if event.Kind == core.KindWindowCreated {
			r.RegisterWindow(&stubWindow{handle: 2}, 2)
			r.UnregisterWindow(1)
			r.PushEvent(core.NewEvent(core.KindCustom, core.HandleNone, core.CustomPayload{Code: 9}))
		}
	})

	r.DispatchEvent(core.NewEvent(core.KindWindowCreated, 1, nil), 1)

	_, _, live := r.registry.Resolve(2)
	assert.True(t, live)
	_, _, live = r.registry.Resolve(1)
	assert.False(t, live)
	assert.Equal(t, 1, r.Size())
}

func TestPushCountsDropsUnderPressure(t *testing.T) {
	r := NewRouter(2, containers.DropOldest)

	for i := 0; i < 5; i++ {
		r.PushEvent(core.NewEvent(core.KindCustom, core.HandleNone, core.CustomPayload{Code: uint32(i)}))
	}

	stats := r.Stats()
	assert.Equal(t, uint64(5), stats.Pushed)
	assert.Equal(t, uint64(3), stats.Dropped)
	assert.Equal(t, 2, r.Size())

	// The survivors are the newest two.
	event, ok := r.Pop()
	require.True(t, ok)
	p, _ := event.Custom()
	assert.Equal(t, uint32(3), p.Code)
}

func TestPushRejectsWhenConfigured(t *testing.T) {
	r := NewRouter(1, containers.Reject)

	r.PushEvent(core.NewEvent(core.KindCustom, core.HandleNone, core.CustomPayload{Code: 1}))
	r.PushEvent(core.NewEvent(core.KindCustom, core.HandleNone, core.CustomPayload{Code: 2}))

	stats := r.Stats()
	assert.Equal(t, uint64(1), stats.Pushed)
	assert.Equal(t, uint64(1), stats.Dropped)

	event, ok := r.Pop()
	require.True(t, ok)
	p, _ := event.Custom()
	assert.Equal(t, uint32(1), p.Code, "rejection keeps the oldest event")
}

func TestQueuePeakTracksHighWater(t *testing.T) {
	r := NewRouter(8, containers.DropOldest)

	for i := 0; i < 5; i++ {
		r.PushEvent(core.NewEvent(core.KindCustom, core.HandleNone, core.CustomPayload{Code: 0}))
	}
	for i := 0; i < 5; i++ {
		_, ok := r.Pop()
		require.True(t, ok)
	}
	r.PushEvent(core.NewEvent(core.KindCustom, core.HandleNone, core.CustomPayload{Code: 0}))

	assert.Equal(t, int64(5), r.Stats().QueuePeak)
}
