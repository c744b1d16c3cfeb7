package core

import "fmt"

// String is total: kinds outside the enumeration render as
// UnknownEvent(<code>) instead of panicking, so logging a foreign
// notification is always safe.
func (k EventKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindWindowCreated:
		return "WindowCreated"
	case KindWindowCloseRequested:
		return "WindowCloseRequested"
	case KindWindowClosed:
		return "WindowClosed"
	case KindWindowShown:
		return "WindowShown"
	case KindWindowHidden:
		return "WindowHidden"
	case KindWindowExposed:
		return "WindowExposed"
	case KindWindowMoved:
		return "WindowMoved"
	case KindWindowResized:
		return "WindowResized"
	case KindFramebufferResized:
		return "FramebufferResized"
	case KindContentScaleChanged:
		return "ContentScaleChanged"
	case KindWindowMinimized:
		return "WindowMinimized"
	case KindWindowMaximized:
		return "WindowMaximized"
	case KindWindowRestored:
		return "WindowRestored"
	case KindWindowFocusGained:
		return "WindowFocusGained"
	case KindWindowFocusLost:
		return "WindowFocusLost"
	case KindWindowEnteredFullscreen:
		return "WindowEnteredFullscreen"
	case KindWindowExitedFullscreen:
		return "WindowExitedFullscreen"
	case KindWindowOcclusionChanged:
		return "WindowOcclusionChanged"
	case KindWindowRefresh:
		return "WindowRefresh"
	case KindKeyPressed:
		return "KeyPressed"
	case KindKeyReleased:
		return "KeyReleased"
	case KindKeyRepeated:
		return "KeyRepeated"
	case KindTextInput:
		return "TextInput"
	case KindTextCompositionStarted:
		return "TextCompositionStarted"
	case KindTextComposition:
		return "TextComposition"
	case KindTextCompositionEnded:
		return "TextCompositionEnded"
	case KindKeymapChanged:
		return "KeymapChanged"
	case KindModifiersChanged:
		return "ModifiersChanged"
	case KindMouseMoved:
		return "MouseMoved"
	case KindMouseRawMotion:
		return "MouseRawMotion"
	case KindMouseButtonPressed:
		return "MouseButtonPressed"
	case KindMouseButtonReleased:
		return "MouseButtonReleased"
	case KindMouseButtonDoubleClicked:
		return "MouseButtonDoubleClicked"
	case KindMouseWheel:
		return "MouseWheel"
	case KindMouseEntered:
		return "MouseEntered"
	case KindMouseLeft:
		return "MouseLeft"
	case KindTouchBegan:
		return "TouchBegan"
	case KindTouchMoved:
		return "TouchMoved"
	case KindTouchEnded:
		return "TouchEnded"
	case KindTouchCancelled:
		return "TouchCancelled"
	case KindGestureTap:
		return "GestureTap"
	case KindGestureDoubleTap:
		return "GestureDoubleTap"
	case KindGestureLongPress:
		return "GestureLongPress"
	case KindGesturePinch:
		return "GesturePinch"
	case KindGestureRotate:
		return "GestureRotate"
	case KindGestureSwipe:
		return "GestureSwipe"
	case KindGesturePanBegan:
		return "GesturePanBegan"
	case KindGesturePan:
		return "GesturePan"
	case KindGesturePanEnded:
		return "GesturePanEnded"
	case KindGamepadConnected:
		return "GamepadConnected"
	case KindGamepadDisconnected:
		return "GamepadDisconnected"
	case KindGamepadRemapped:
		return "GamepadRemapped"
	case KindGamepadButtonPressed:
		return "GamepadButtonPressed"
	case KindGamepadButtonReleased:
		return "GamepadButtonReleased"
	case KindGamepadAxisMoved:
		return "GamepadAxisMoved"
	case KindGamepadBatteryUpdated:
		return "GamepadBatteryUpdated"
	case KindDragEntered:
		return "DragEntered"
	case KindDragMoved:
		return "DragMoved"
	case KindDragLeft:
		return "DragLeft"
	case KindDropFiles:
		return "DropFiles"
	case KindDropText:
		return "DropText"
	case KindDropImage:
		return "DropImage"
	case KindDropCompleted:
		return "DropCompleted"
	case KindQuitRequested:
		return "QuitRequested"
	case KindAppSuspended:
		return "AppSuspended"
	case KindAppResumed:
		return "AppResumed"
	case KindAppLowMemory:
		return "AppLowMemory"
	case KindThemeChanged:
		return "ThemeChanged"
	case KindLocaleChanged:
		return "LocaleChanged"
	case KindMonitorConnected:
		return "MonitorConnected"
	case KindMonitorDisconnected:
		return "MonitorDisconnected"
	case KindMonitorModeChanged:
		return "MonitorModeChanged"
	case KindClipboardUpdated:
		return "ClipboardUpdated"
	case KindPowerStateChanged:
		return "PowerStateChanged"
	case KindConfigReloaded:
		return "ConfigReloaded"
	case KindCustom:
		return "Custom"
	}
	return fmt.Sprintf("UnknownEvent(%d)", uint16(k))
}

func (e Event) String() string {
	if e.Handle == HandleNone {
		return fmt.Sprintf("%s @%dms", e.Kind, e.Timestamp)
	}
	return fmt.Sprintf("%s window=0x%X @%dms", e.Kind, uint64(e.Handle), e.Timestamp)
}
