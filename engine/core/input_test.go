package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyStateFollowsEvents(t *testing.T) {
	in := NewInputState()
	assert.True(t, in.IsKeyUp(KeySpace))

	in.Apply(NewEvent(KindKeyPressed, HandleNone, KeyPayload{Key: KeySpace}))
	assert.True(t, in.IsKeyDown(KeySpace))
	assert.False(t, in.IsKeyDown(KeyA))

	in.Apply(NewEvent(KindKeyReleased, HandleNone, KeyPayload{Key: KeySpace}))
	assert.True(t, in.IsKeyUp(KeySpace))
}

func TestKeyRepeatKeepsTheKeyDown(t *testing.T) {
	in := NewInputState()

	in.Apply(NewEvent(KindKeyPressed, HandleNone, KeyPayload{Key: KeyA}))
	in.Apply(NewEvent(KindKeyRepeated, HandleNone, KeyPayload{Key: KeyA, Repeat: true}))
	assert.True(t, in.IsKeyDown(KeyA))
}

func TestUpdateRotatesFrames(t *testing.T) {
	in := NewInputState()

	in.Apply(NewEvent(KindKeyPressed, HandleNone, KeyPayload{Key: KeyW}))
	assert.True(t, in.IsKeyDown(KeyW))
	assert.False(t, in.WasKeyDown(KeyW))

	in.Update()
	assert.True(t, in.IsKeyDown(KeyW))
	assert.True(t, in.WasKeyDown(KeyW))

	in.Apply(NewEvent(KindKeyReleased, HandleNone, KeyPayload{Key: KeyW}))
	in.Update()
	assert.True(t, in.IsKeyUp(KeyW))
	assert.True(t, in.WasKeyUp(KeyW))
}

func TestFocusLossReleasesHeldKeys(t *testing.T) {
	in := NewInputState()

	in.Apply(NewEvent(KindKeyPressed, HandleNone, KeyPayload{Key: KeyLeftAlt}))
	in.Apply(NewEvent(KindKeyPressed, HandleNone, KeyPayload{Key: KeyTab}))
	in.Apply(NewEvent(KindWindowFocusLost, 3, nil))

	assert.True(t, in.IsKeyUp(KeyLeftAlt))
	assert.True(t, in.IsKeyUp(KeyTab))
}

func TestMouseButtonsAndPosition(t *testing.T) {
	in := NewInputState()

	in.Apply(NewEvent(KindMouseMoved, HandleNone, MouseMovePayload{X: 10, Y: 20}))
	x, y := in.MousePosition()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)

	in.Apply(NewEvent(KindMouseButtonPressed, HandleNone, MouseButtonPayload{Button: MouseButtonLeft, X: 10, Y: 20}))
	assert.True(t, in.IsButtonDown(MouseButtonLeft))
	assert.False(t, in.IsButtonDown(MouseButtonRight))

	in.Apply(NewEvent(KindMouseButtonReleased, HandleNone, MouseButtonPayload{Button: MouseButtonLeft, X: 11, Y: 21}))
	assert.False(t, in.IsButtonDown(MouseButtonLeft))
}

func TestMouseDeltaAcrossFrames(t *testing.T) {
	in := NewInputState()

	in.Apply(NewEvent(KindMouseMoved, HandleNone, MouseMovePayload{X: 100, Y: 100}))
	in.Update()
	in.Apply(NewEvent(KindMouseMoved, HandleNone, MouseMovePayload{X: 130, Y: 90}))

	dx, dy := in.MouseDelta()
	assert.Equal(t, 30.0, dx)
	assert.Equal(t, -10.0, dy)

	px, py := in.PreviousMousePosition()
	assert.Equal(t, 100.0, px)
	assert.Equal(t, 100.0, py)
}

func TestWheelAccumulatesThenResets(t *testing.T) {
	in := NewInputState()

	in.Apply(NewEvent(KindMouseWheel, HandleNone, MouseWheelPayload{DeltaY: 1}))
	in.Apply(NewEvent(KindMouseWheel, HandleNone, MouseWheelPayload{DeltaY: 2}))
	assert.Equal(t, 3.0, in.WheelDelta())

	in.Update()
	assert.Equal(t, 0.0, in.WheelDelta())
}

func TestOutOfRangeKeysAreIgnored(t *testing.T) {
	in := NewInputState()

	assert.NotPanics(t, func() {
		in.Apply(NewEvent(KindKeyPressed, HandleNone, KeyPayload{Key: KeyCode(0xFFFF)}))
	})
	assert.False(t, in.IsKeyDown(KeyCode(0xFF)))
}
