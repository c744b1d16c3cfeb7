// Package gamepad turns polled controller readings into routed events.
// Native layers report device state, not state changes, so the manager keeps
// the previous reading per pad and emits the difference.
package gamepad

import (
	"github.com/google/uuid"

	"github.com/oriel-sdk/oriel/engine/core"
	"github.com/oriel-sdk/oriel/engine/math"
)

// DefaultDeadzone zeroes the axis jitter idle sticks report.
const DefaultDeadzone float32 = 0.05

// Sample is one device reading taken by a Source.
type Sample struct {
	ID      core.GamepadID
	GUID    string
	Name    string
	Buttons []bool
	Axes    []float32
}

// Source supplies device readings once per update. The desktop bridge is
// one; tests fake it.
type Source interface {
	SampleGamepads() []Sample
}

// Pusher is where device events go.
type Pusher interface {
	PushEvent(event core.Event)
}

type padState struct {
	guid    uuid.UUID
	name    string
	buttons []bool
	axes    []float32
}

// Manager diffs consecutive device readings into connect, disconnect,
// button and axis events. It belongs to the main loop; call Update once per
// frame.
type Manager struct {
	source   Source
	pusher   Pusher
	deadzone float32
	pads     map[core.GamepadID]*padState
}

func NewManager(source Source, pusher Pusher) *Manager {
	return &Manager{
		source:   source,
		pusher:   pusher,
		deadzone: DefaultDeadzone,
		pads:     make(map[core.GamepadID]*padState),
	}
}

// SetDeadzone adjusts the axis deadzone, clamped into [0, 1].
func (m *Manager) SetDeadzone(deadzone float32) {
	m.deadzone = math.Clamp(deadzone, 0, 1)
}

// Update reads the source and emits whatever changed since the last call.
func (m *Manager) Update() {
	samples := m.source.SampleGamepads()
	seen := make(map[core.GamepadID]bool, len(samples))

	for _, sample := range samples {
		seen[sample.ID] = true
		state, connected := m.pads[sample.ID]
		if !connected {
			state = &padState{
				guid:    parseGUID(sample.GUID, sample.Name),
				name:    sample.Name,
				buttons: make([]bool, len(sample.Buttons)),
				axes:    make([]float32, len(sample.Axes)),
			}
			m.pads[sample.ID] = state
			m.pusher.PushEvent(core.NewEvent(core.KindGamepadConnected, core.HandleNone, core.GamepadDevicePayload{
				Pad:  sample.ID,
				GUID: state.guid,
				Name: state.name,
			}))
		}
		m.diffButtons(sample, state)
		m.diffAxes(sample, state)
	}

	for id, state := range m.pads {
		if seen[id] {
			continue
		}
		delete(m.pads, id)
		m.pusher.PushEvent(core.NewEvent(core.KindGamepadDisconnected, core.HandleNone, core.GamepadDevicePayload{
			Pad:  id,
			GUID: state.guid,
			Name: state.name,
		}))
	}
}

func (m *Manager) diffButtons(sample Sample, state *padState) {
	if len(state.buttons) != len(sample.Buttons) {
		state.buttons = make([]bool, len(sample.Buttons))
	}
	for i, down := range sample.Buttons {
		if state.buttons[i] == down {
			continue
		}
		state.buttons[i] = down
		kind := core.KindGamepadButtonPressed
		if !down {
			kind = core.KindGamepadButtonReleased
		}
		m.pusher.PushEvent(core.NewEvent(kind, core.HandleNone, core.GamepadButtonPayload{
			Pad:    sample.ID,
			Button: core.GamepadButton(i),
		}))
	}
}

func (m *Manager) diffAxes(sample Sample, state *padState) {
	if len(state.axes) != len(sample.Axes) {
		state.axes = make([]float32, len(sample.Axes))
	}
	for i, raw := range sample.Axes {
		value := math.Clamp(raw, -1, 1)
		if math.Abs(value) < m.deadzone {
			value = 0
		}
		if state.axes[i] == value {
			continue
		}
		state.axes[i] = value
		m.pusher.PushEvent(core.NewEvent(core.KindGamepadAxisMoved, core.HandleNone, core.GamepadAxisPayload{
			Pad:   sample.ID,
			Axis:  core.GamepadAxis(i),
			Value: value,
		}))
	}
}

// parseGUID accepts the 32 hex character SDL form most platforms report.
// Anything unparseable hashes deterministically, so a device keeps its
// identity across reconnects.
func parseGUID(raw string, name string) uuid.UUID {
	if guid, err := uuid.Parse(raw); err == nil {
		return guid
	}
	if raw == "" {
		raw = name
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(raw))
}
