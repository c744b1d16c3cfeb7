package gamepad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriel-sdk/oriel/engine/core"
)

// fakeSource replays whatever readings the test sets.
type fakeSource struct {
	samples []Sample
}

func (s *fakeSource) SampleGamepads() []Sample { return s.samples }

// collectingPusher records every pushed event in order.
type collectingPusher struct {
	events []core.Event
}

func (p *collectingPusher) PushEvent(event core.Event) {
	p.events = append(p.events, event)
}

func (p *collectingPusher) kinds() []core.EventKind {
	kinds := make([]core.EventKind, 0, len(p.events))
	for _, event := range p.events {
		kinds = append(kinds, event.Kind)
	}
	return kinds
}

func pad(id core.GamepadID, buttons []bool, axes []float32) Sample {
	return Sample{
		ID:      id,
		GUID:    "030000005e040000ea02000000000000",
		Name:    "Test Pad",
		Buttons: buttons,
		Axes:    axes,
	}
}

func TestConnectAndDisconnect(t *testing.T) {
	source := &fakeSource{}
	pusher := &collectingPusher{}
	m := NewManager(source, pusher)

	source.samples = []Sample{pad(0, make([]bool, 4), make([]float32, 2))}
	m.Update()

	require.Equal(t, []core.EventKind{core.KindGamepadConnected}, pusher.kinds())
	p, ok := pusher.events[0].GamepadDevice()
	require.True(t, ok)
	assert.Equal(t, core.GamepadID(0), p.Pad)
	assert.Equal(t, "Test Pad", p.Name)
	assert.Equal(t, core.HandleNone, pusher.events[0].Handle)

	// Same reading again: nothing new to report.
	m.Update()
	assert.Len(t, pusher.events, 1)

	source.samples = nil
	m.Update()
	require.Len(t, pusher.events, 2)
	assert.Equal(t, core.KindGamepadDisconnected, pusher.events[1].Kind)
}

func TestButtonEdgesBecomeEvents(t *testing.T) {
	source := &fakeSource{}
	pusher := &collectingPusher{}
	m := NewManager(source, pusher)

	buttons := make([]bool, 4)
	source.samples = []Sample{pad(0, buttons, nil)}
	m.Update()
	pusher.events = nil

	buttons[2] = true
	m.Update()
	require.Len(t, pusher.events, 1)
	assert.Equal(t, core.KindGamepadButtonPressed, pusher.events[0].Kind)
	p, _ := pusher.events[0].GamepadButton()
	assert.Equal(t, core.GamepadButton(2), p.Button)

	// Held button stays silent.
	m.Update()
	assert.Len(t, pusher.events, 1)

	buttons[2] = false
	m.Update()
	require.Len(t, pusher.events, 2)
	assert.Equal(t, core.KindGamepadButtonReleased, pusher.events[1].Kind)
}

func TestDeadzoneSwallowsJitter(t *testing.T) {
	source := &fakeSource{}
	pusher := &collectingPusher{}
	m := NewManager(source, pusher)

	axes := make([]float32, 2)
	source.samples = []Sample{pad(0, nil, axes)}
	m.Update()
	pusher.events = nil

	// Idle stick noise sits below the deadzone.
	axes[0] = 0.02
	m.Update()
	assert.Empty(t, pusher.events)

	axes[0] = 0.5
	m.Update()
	require.Len(t, pusher.events, 1)
	p, _ := pusher.events[0].GamepadAxis()
	assert.Equal(t, core.GamepadAxis(0), p.Axis)
	assert.Equal(t, float32(0.5), p.Value)

	// Returning into the deadzone reports a zero once.
	axes[0] = 0.01
	m.Update()
	require.Len(t, pusher.events, 2)
	p, _ = pusher.events[1].GamepadAxis()
	assert.Equal(t, float32(0), p.Value)
}

func TestAxisValuesAreClamped(t *testing.T) {
	source := &fakeSource{}
	pusher := &collectingPusher{}
	m := NewManager(source, pusher)

	axes := []float32{0}
	source.samples = []Sample{pad(0, nil, axes)}
	m.Update()
	pusher.events = nil

	axes[0] = 1.7
	m.Update()
	require.Len(t, pusher.events, 1)
	p, _ := pusher.events[0].GamepadAxis()
	assert.Equal(t, float32(1), p.Value)
}

func TestSetDeadzoneClamps(t *testing.T) {
	source := &fakeSource{}
	pusher := &collectingPusher{}
	m := NewManager(source, pusher)

	m.SetDeadzone(-2)
	assert.Equal(t, float32(0), m.deadzone)
	m.SetDeadzone(7)
	assert.Equal(t, float32(1), m.deadzone)
	m.SetDeadzone(0.1)
	assert.Equal(t, float32(0.1), m.deadzone)
}

func TestGUIDSurvivesReconnect(t *testing.T) {
	source := &fakeSource{}
	pusher := &collectingPusher{}
	m := NewManager(source, pusher)

	// A GUID too short to parse takes the hashed path. The same device
	// must hash the same way twice.
	sample := Sample{ID: 0, GUID: "deadbeef", Name: "Pad"}
	source.samples = []Sample{sample}
	m.Update()
	source.samples = nil
	m.Update()
	source.samples = []Sample{sample}
	m.Update()

	require.Len(t, pusher.events, 3)
	first, _ := pusher.events[0].GamepadDevice()
	again, _ := pusher.events[2].GamepadDevice()
	assert.Equal(t, first.GUID, again.GUID)
}

func TestTwoPadsAreTrackedIndependently(t *testing.T) {
	source := &fakeSource{}
	pusher := &collectingPusher{}
	m := NewManager(source, pusher)

	buttonsA := make([]bool, 2)
	buttonsB := make([]bool, 2)
	source.samples = []Sample{pad(0, buttonsA, nil), pad(1, buttonsB, nil)}
	m.Update()
	pusher.events = nil

	buttonsB[0] = true
	m.Update()
	require.Len(t, pusher.events, 1)
	p, _ := pusher.events[0].GamepadButton()
	assert.Equal(t, core.GamepadID(1), p.Pad)
}
