package core

import "fmt"

// EventKind discriminates every notification the SDK routes. The numeric
// space is closed and grouped by family, so logs and bridge code can tell at
// a glance where a value came from. Kinds a bridge cannot express natively
// simply never fire there; kinds this enumeration does not know still flow
// through the queue untouched.
type EventKind uint16

const KindNone EventKind = 0

// Window family.
const (
	KindWindowCreated EventKind = 0x100 + iota
	KindWindowCloseRequested
	KindWindowClosed
	KindWindowShown
	KindWindowHidden
	KindWindowExposed
	KindWindowMoved
	KindWindowResized
	KindFramebufferResized
	KindContentScaleChanged
	KindWindowMinimized
	KindWindowMaximized
	KindWindowRestored
	KindWindowFocusGained
	KindWindowFocusLost
	KindWindowEnteredFullscreen
	KindWindowExitedFullscreen
	KindWindowOcclusionChanged
	KindWindowRefresh
)

// Keyboard family.
const (
	KindKeyPressed EventKind = 0x200 + iota
	KindKeyReleased
	KindKeyRepeated
	KindTextInput
	KindTextCompositionStarted
	KindTextComposition
	KindTextCompositionEnded
	KindKeymapChanged
	KindModifiersChanged
)

// Mouse family.
const (
	KindMouseMoved EventKind = 0x300 + iota
	KindMouseRawMotion
	KindMouseButtonPressed
	KindMouseButtonReleased
	KindMouseButtonDoubleClicked
	KindMouseWheel
	KindMouseEntered
	KindMouseLeft
)

// Touch and gesture family.
const (
	KindTouchBegan EventKind = 0x400 + iota
	KindTouchMoved
	KindTouchEnded
	KindTouchCancelled
	KindGestureTap
	KindGestureDoubleTap
	KindGestureLongPress
	KindGesturePinch
	KindGestureRotate
	KindGestureSwipe
	KindGesturePanBegan
	KindGesturePan
	KindGesturePanEnded
)

// Gamepad family.
const (
	KindGamepadConnected EventKind = 0x500 + iota
	KindGamepadDisconnected
	KindGamepadRemapped
	KindGamepadButtonPressed
	KindGamepadButtonReleased
	KindGamepadAxisMoved
	KindGamepadBatteryUpdated
)

// Drag and drop family.
const (
	KindDragEntered EventKind = 0x600 + iota
	KindDragMoved
	KindDragLeft
	KindDropFiles
	KindDropText
	KindDropImage
	KindDropCompleted
)

// System family.
const (
	KindQuitRequested EventKind = 0x700 + iota
	KindAppSuspended
	KindAppResumed
	KindAppLowMemory
	KindThemeChanged
	KindLocaleChanged
	KindMonitorConnected
	KindMonitorDisconnected
	KindMonitorModeChanged
	KindClipboardUpdated
	KindPowerStateChanged
	KindConfigReloaded
)

// KindCustom wraps notifications outside the closed enumeration; the raw
// native code travels in the CustomPayload.
const KindCustom EventKind = 0x7000

// Event is one routed notification. Construct with NewEvent so the payload
// always belongs to the kind; read payloads through the kind-checked
// accessors. Kinds that carry no data have a nil payload and no accessor.
type Event struct {
	Kind EventKind
	// Timestamp is milliseconds since process start on the monotonic clock.
	Timestamp int64
	// Handle names the originating native window; HandleNone for
	// process-wide notifications.
	Handle NativeHandle
	// Window is resolved during dispatch. It stays nil for process-wide
	// events and for events whose window is no longer registered.
	Window Window

	payload Payload
}

// NewEvent stamps the event with the monotonic clock. It panics when the
// payload variant does not belong to kind: producers are SDK internals and a
// mismatch is a bug, not an input error.
func NewEvent(kind EventKind, handle NativeHandle, payload Payload) Event {
	if !payloadMatches(kind, payload) {
		panic(fmt.Sprintf("oriel: payload %T does not belong to event kind %s", payload, kind))
	}
	return Event{
		Kind:      kind,
		Timestamp: Timestamp(),
		Handle:    handle,
		payload:   payload,
	}
}

// payloadMatches is the single source of truth for the kind to payload
// variant mapping. Kinds outside the enumeration pass through unchecked so a
// foreign notification cannot corrupt the queue.
func payloadMatches(kind EventKind, p Payload) bool {
	switch kind {
	case KindKeyPressed, KindKeyReleased, KindKeyRepeated:
		_, ok := p.(KeyPayload)
		return ok
	case KindTextInput:
		_, ok := p.(TextPayload)
		return ok
	case KindTextCompositionStarted, KindTextComposition, KindTextCompositionEnded:
		_, ok := p.(CompositionPayload)
		return ok
	case KindModifiersChanged:
		_, ok := p.(ModifiersPayload)
		return ok
	case KindMouseMoved, KindMouseRawMotion:
		_, ok := p.(MouseMovePayload)
		return ok
	case KindMouseButtonPressed, KindMouseButtonReleased, KindMouseButtonDoubleClicked:
		_, ok := p.(MouseButtonPayload)
		return ok
	case KindMouseWheel:
		_, ok := p.(MouseWheelPayload)
		return ok
	case KindMouseEntered, KindMouseLeft:
		_, ok := p.(CrossingPayload)
		return ok
	case KindWindowResized, KindFramebufferResized:
		_, ok := p.(ResizePayload)
		return ok
	case KindWindowMoved:
		_, ok := p.(MovePayload)
		return ok
	case KindContentScaleChanged:
		_, ok := p.(ScalePayload)
		return ok
	case KindTouchBegan, KindTouchMoved, KindTouchEnded, KindTouchCancelled:
		_, ok := p.(TouchPayload)
		return ok
	case KindGestureTap, KindGestureDoubleTap:
		_, ok := p.(GestureTapPayload)
		return ok
	case KindGestureLongPress:
		_, ok := p.(GestureHoldPayload)
		return ok
	case KindGesturePinch:
		_, ok := p.(GesturePinchPayload)
		return ok
	case KindGestureRotate:
		_, ok := p.(GestureRotatePayload)
		return ok
	case KindGestureSwipe:
		_, ok := p.(GestureSwipePayload)
		return ok
	case KindGesturePanBegan, KindGesturePan, KindGesturePanEnded:
		_, ok := p.(GesturePanPayload)
		return ok
	case KindGamepadConnected, KindGamepadDisconnected, KindGamepadRemapped:
		_, ok := p.(GamepadDevicePayload)
		return ok
	case KindGamepadButtonPressed, KindGamepadButtonReleased:
		_, ok := p.(GamepadButtonPayload)
		return ok
	case KindGamepadAxisMoved:
		_, ok := p.(GamepadAxisPayload)
		return ok
	case KindGamepadBatteryUpdated:
		_, ok := p.(GamepadBatteryPayload)
		return ok
	case KindDragEntered, KindDragMoved, KindDragLeft:
		_, ok := p.(DragPositionPayload)
		return ok
	case KindDropFiles:
		_, ok := p.(*DropFilesPayload)
		return ok
	case KindDropText:
		_, ok := p.(*DropTextPayload)
		return ok
	case KindDropImage:
		_, ok := p.(*DropImagePayload)
		return ok
	case KindMonitorConnected, KindMonitorDisconnected, KindMonitorModeChanged:
		_, ok := p.(MonitorPayload)
		return ok
	case KindThemeChanged:
		_, ok := p.(ThemePayload)
		return ok
	case KindLocaleChanged:
		_, ok := p.(LocalePayload)
		return ok
	case KindPowerStateChanged:
		_, ok := p.(PowerPayload)
		return ok
	case KindConfigReloaded:
		_, ok := p.(ConfigPayload)
		return ok
	case KindCustom:
		_, ok := p.(CustomPayload)
		return ok
	case KindWindowCreated, KindWindowCloseRequested, KindWindowClosed,
		KindWindowShown, KindWindowHidden, KindWindowExposed,
		KindWindowMinimized, KindWindowMaximized, KindWindowRestored,
		KindWindowFocusGained, KindWindowFocusLost,
		KindWindowEnteredFullscreen, KindWindowExitedFullscreen,
		KindWindowOcclusionChanged, KindWindowRefresh,
		KindKeymapChanged, KindDropCompleted, KindQuitRequested,
		KindAppSuspended, KindAppResumed, KindAppLowMemory,
		KindClipboardUpdated:
		return p == nil
	}
	return true
}
