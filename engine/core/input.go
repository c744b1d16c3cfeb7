package core

// Keyboard state structure
type KeyboardSnapshot struct {
	Keys [KeyCodeMax]bool
}

// Mouse state structure
type MouseSnapshot struct {
	X       float64
	Y       float64
	Wheel   float64
	Buttons [MouseButtonCount]bool
}

// InputState folds dispatched events into current and previous snapshots so
// application code can ask "is down now" and "was down last frame" without
// tracking events itself. It belongs to the main loop goroutine; feed it
// from a dispatch callback and rotate it once per frame with Update.
type InputState struct {
	keyboardCurrent  KeyboardSnapshot
	keyboardPrevious KeyboardSnapshot
	mouseCurrent     MouseSnapshot
	mousePrevious    MouseSnapshot
}

func NewInputState() *InputState {
	return &InputState{}
}

// Apply folds one event into the current snapshots. Events that carry no
// input state pass through untouched.
func (in *InputState) Apply(event Event) {
	switch event.Kind {
	case KindKeyPressed, KindKeyRepeated:
		if p, ok := event.Key(); ok && p.Key < KeyCode(len(in.keyboardCurrent.Keys)) {
			in.keyboardCurrent.Keys[p.Key] = true
		}
	case KindKeyReleased:
		if p, ok := event.Key(); ok && p.Key < KeyCode(len(in.keyboardCurrent.Keys)) {
			in.keyboardCurrent.Keys[p.Key] = false
		}
	case KindMouseButtonPressed:
		if p, ok := event.MouseButton(); ok && p.Button < MouseButtonCount {
			in.mouseCurrent.Buttons[p.Button] = true
			in.mouseCurrent.X = p.X
			in.mouseCurrent.Y = p.Y
		}
	case KindMouseButtonReleased:
		if p, ok := event.MouseButton(); ok && p.Button < MouseButtonCount {
			in.mouseCurrent.Buttons[p.Button] = false
			in.mouseCurrent.X = p.X
			in.mouseCurrent.Y = p.Y
		}
	case KindMouseMoved:
		if p, ok := event.MouseMove(); ok {
			in.mouseCurrent.X = p.X
			in.mouseCurrent.Y = p.Y
		}
	case KindMouseWheel:
		if p, ok := event.MouseWheel(); ok {
			in.mouseCurrent.Wheel += p.DeltaY
		}
	case KindWindowFocusLost:
		// All keys release when focus leaves, or they stick forever.
		in.keyboardCurrent = KeyboardSnapshot{}
	}
}

// Update rotates the snapshots. Call it at the end of the frame, after all
// events are dispatched and game code has read the state.
func (in *InputState) Update() {
	// Copy current states to previous states.
	in.keyboardPrevious = in.keyboardCurrent
	in.mousePrevious = in.mouseCurrent
	in.mouseCurrent.Wheel = 0
}

// keyboard input
func (in *InputState) IsKeyDown(key KeyCode) bool {
	if key >= KeyCode(len(in.keyboardCurrent.Keys)) {
		return false
	}
	return in.keyboardCurrent.Keys[key]
}

func (in *InputState) IsKeyUp(key KeyCode) bool {
	return !in.IsKeyDown(key)
}

func (in *InputState) WasKeyDown(key KeyCode) bool {
	if key >= KeyCode(len(in.keyboardPrevious.Keys)) {
		return false
	}
	return in.keyboardPrevious.Keys[key]
}

func (in *InputState) WasKeyUp(key KeyCode) bool {
	return !in.WasKeyDown(key)
}

// mouse input
func (in *InputState) IsButtonDown(button MouseButton) bool {
	if button >= MouseButtonCount {
		return false
	}
	return in.mouseCurrent.Buttons[button]
}

func (in *InputState) WasButtonDown(button MouseButton) bool {
	if button >= MouseButtonCount {
		return false
	}
	return in.mousePrevious.Buttons[button]
}

func (in *InputState) MousePosition() (float64, float64) {
	return in.mouseCurrent.X, in.mouseCurrent.Y
}

func (in *InputState) PreviousMousePosition() (float64, float64) {
	return in.mousePrevious.X, in.mousePrevious.Y
}

// MouseDelta is the cursor travel since the previous frame.
func (in *InputState) MouseDelta() (float64, float64) {
	return in.mouseCurrent.X - in.mousePrevious.X, in.mouseCurrent.Y - in.mousePrevious.Y
}

// WheelDelta is the scroll accumulated during the current frame.
func (in *InputState) WheelDelta() float64 {
	return in.mouseCurrent.Wheel
}
