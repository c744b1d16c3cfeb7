package core

import "fmt"

// KeyCode identifies a keyboard key independent of layout. The values follow
// the Win32 virtual-key table, which every bridge translates into.
type KeyCode uint16

const (
	KeyNone        KeyCode = 0x00
	KeyBackspace   KeyCode = 0x08
	KeyTab         KeyCode = 0x09
	KeyEnter       KeyCode = 0x0D
	KeyShift       KeyCode = 0x10
	KeyControl     KeyCode = 0x11
	KeyAlt         KeyCode = 0x12
	KeyPause       KeyCode = 0x13
	KeyCapsLock    KeyCode = 0x14
	KeyEscape      KeyCode = 0x1B
	KeySpace       KeyCode = 0x20
	KeyPageUp      KeyCode = 0x21
	KeyPageDown    KeyCode = 0x22
	KeyEnd         KeyCode = 0x23
	KeyHome        KeyCode = 0x24
	KeyLeft        KeyCode = 0x25
	KeyUp          KeyCode = 0x26
	KeyRight       KeyCode = 0x27
	KeyDown        KeyCode = 0x28
	KeyPrintScreen KeyCode = 0x2C
	KeyInsert      KeyCode = 0x2D
	KeyDelete      KeyCode = 0x2E
	Key0           KeyCode = 0x30
	Key1           KeyCode = 0x31
	Key2           KeyCode = 0x32
	Key3           KeyCode = 0x33
	Key4           KeyCode = 0x34
	Key5           KeyCode = 0x35
	Key6           KeyCode = 0x36
	Key7           KeyCode = 0x37
	Key8           KeyCode = 0x38
	Key9           KeyCode = 0x39
	KeyA           KeyCode = 0x41
	KeyB           KeyCode = 0x42
	KeyC           KeyCode = 0x43
	KeyD           KeyCode = 0x44
	KeyE           KeyCode = 0x45
	KeyF           KeyCode = 0x46
	KeyG           KeyCode = 0x47
	KeyH           KeyCode = 0x48
	KeyI           KeyCode = 0x49
	KeyJ           KeyCode = 0x4A
	KeyK           KeyCode = 0x4B
	KeyL           KeyCode = 0x4C
	KeyM           KeyCode = 0x4D
	KeyN           KeyCode = 0x4E
	KeyO           KeyCode = 0x4F
	KeyP           KeyCode = 0x50
	KeyQ           KeyCode = 0x51
	KeyR           KeyCode = 0x52
	KeyS           KeyCode = 0x53
	KeyT           KeyCode = 0x54
	KeyU           KeyCode = 0x55
	KeyV           KeyCode = 0x56
	KeyW           KeyCode = 0x57
	KeyX           KeyCode = 0x58
	KeyY           KeyCode = 0x59
	KeyZ           KeyCode = 0x5A
	KeyLeftSuper   KeyCode = 0x5B
	KeyRightSuper  KeyCode = 0x5C
	KeyMenu        KeyCode = 0x5D
	KeyNumpad0     KeyCode = 0x60
	KeyNumpad1     KeyCode = 0x61
	KeyNumpad2     KeyCode = 0x62
	KeyNumpad3     KeyCode = 0x63
	KeyNumpad4     KeyCode = 0x64
	KeyNumpad5     KeyCode = 0x65
	KeyNumpad6     KeyCode = 0x66
	KeyNumpad7     KeyCode = 0x67
	KeyNumpad8     KeyCode = 0x68
	KeyNumpad9     KeyCode = 0x69
	KeyMultiply    KeyCode = 0x6A
	KeyAdd         KeyCode = 0x6B
	KeySubtract    KeyCode = 0x6D
	KeyDecimal     KeyCode = 0x6E
	KeyDivide      KeyCode = 0x6F
	KeyF1          KeyCode = 0x70
	KeyF2          KeyCode = 0x71
	KeyF3          KeyCode = 0x72
	KeyF4          KeyCode = 0x73
	KeyF5          KeyCode = 0x74
	KeyF6          KeyCode = 0x75
	KeyF7          KeyCode = 0x76
	KeyF8          KeyCode = 0x77
	KeyF9          KeyCode = 0x78
	KeyF10         KeyCode = 0x79
	KeyF11         KeyCode = 0x7A
	KeyF12         KeyCode = 0x7B
	KeyF13         KeyCode = 0x7C
	KeyF14         KeyCode = 0x7D
	KeyF15         KeyCode = 0x7E
	KeyF16         KeyCode = 0x7F
	KeyF17         KeyCode = 0x80
	KeyF18         KeyCode = 0x81
	KeyF19         KeyCode = 0x82
	KeyF20         KeyCode = 0x83
	KeyF21         KeyCode = 0x84
	KeyF22         KeyCode = 0x85
	KeyF23         KeyCode = 0x86
	KeyF24         KeyCode = 0x87
	KeyNumLock     KeyCode = 0x90
	KeyScrollLock  KeyCode = 0x91
	KeyNumpadEqual KeyCode = 0x92
	KeyLeftShift   KeyCode = 0xA0
	KeyRightShift  KeyCode = 0xA1
	KeyLeftControl KeyCode = 0xA2
	KeyRightControl KeyCode = 0xA3
	KeyLeftAlt     KeyCode = 0xA4
	KeyRightAlt    KeyCode = 0xA5
	KeySemicolon   KeyCode = 0xBA
	KeyEqual       KeyCode = 0xBB
	KeyComma       KeyCode = 0xBC
	KeyMinus       KeyCode = 0xBD
	KeyPeriod      KeyCode = 0xBE
	KeySlash       KeyCode = 0xBF
	KeyGrave       KeyCode = 0xC0
	KeyLeftBracket KeyCode = 0xDB
	KeyBackslash   KeyCode = 0xDC
	KeyRightBracket KeyCode = 0xDD
	KeyApostrophe  KeyCode = 0xDE

	// KeyCodeMax bounds the keyboard snapshot arrays.
	KeyCodeMax KeyCode = 0x100
)

var keyNames = map[KeyCode]string{
	KeyNone: "KeyNone", KeyBackspace: "KeyBackspace", KeyTab: "KeyTab",
	KeyEnter: "KeyEnter", KeyShift: "KeyShift", KeyControl: "KeyControl",
	KeyAlt: "KeyAlt", KeyPause: "KeyPause", KeyCapsLock: "KeyCapsLock",
	KeyEscape: "KeyEscape", KeySpace: "KeySpace", KeyPageUp: "KeyPageUp",
	KeyPageDown: "KeyPageDown", KeyEnd: "KeyEnd", KeyHome: "KeyHome",
	KeyLeft: "KeyLeft", KeyUp: "KeyUp", KeyRight: "KeyRight", KeyDown: "KeyDown",
	KeyPrintScreen: "KeyPrintScreen", KeyInsert: "KeyInsert", KeyDelete: "KeyDelete",
	Key0: "Key0", Key1: "Key1", Key2: "Key2", Key3: "Key3", Key4: "Key4",
	Key5: "Key5", Key6: "Key6", Key7: "Key7", Key8: "Key8", Key9: "Key9",
	KeyA: "KeyA", KeyB: "KeyB", KeyC: "KeyC", KeyD: "KeyD", KeyE: "KeyE",
	KeyF: "KeyF", KeyG: "KeyG", KeyH: "KeyH", KeyI: "KeyI", KeyJ: "KeyJ",
	KeyK: "KeyK", KeyL: "KeyL", KeyM: "KeyM", KeyN: "KeyN", KeyO: "KeyO",
	KeyP: "KeyP", KeyQ: "KeyQ", KeyR: "KeyR", KeyS: "KeyS", KeyT: "KeyT",
	KeyU: "KeyU", KeyV: "KeyV", KeyW: "KeyW", KeyX: "KeyX", KeyY: "KeyY",
	KeyZ: "KeyZ", KeyLeftSuper: "KeyLeftSuper", KeyRightSuper: "KeyRightSuper",
	KeyMenu: "KeyMenu", KeyNumpad0: "KeyNumpad0", KeyNumpad1: "KeyNumpad1",
	KeyNumpad2: "KeyNumpad2", KeyNumpad3: "KeyNumpad3", KeyNumpad4: "KeyNumpad4",
	KeyNumpad5: "KeyNumpad5", KeyNumpad6: "KeyNumpad6", KeyNumpad7: "KeyNumpad7",
	KeyNumpad8: "KeyNumpad8", KeyNumpad9: "KeyNumpad9", KeyMultiply: "KeyMultiply",
	KeyAdd: "KeyAdd", KeySubtract: "KeySubtract", KeyDecimal: "KeyDecimal",
	KeyDivide: "KeyDivide", KeyF1: "KeyF1", KeyF2: "KeyF2", KeyF3: "KeyF3",
	KeyF4: "KeyF4", KeyF5: "KeyF5", KeyF6: "KeyF6", KeyF7: "KeyF7",
	KeyF8: "KeyF8", KeyF9: "KeyF9", KeyF10: "KeyF10", KeyF11: "KeyF11",
	KeyF12: "KeyF12", KeyF13: "KeyF13", KeyF14: "KeyF14", KeyF15: "KeyF15",
	KeyF16: "KeyF16", KeyF17: "KeyF17", KeyF18: "KeyF18", KeyF19: "KeyF19",
	KeyF20: "KeyF20", KeyF21: "KeyF21", KeyF22: "KeyF22", KeyF23: "KeyF23",
	KeyF24: "KeyF24", KeyNumLock: "KeyNumLock", KeyScrollLock: "KeyScrollLock",
	KeyNumpadEqual: "KeyNumpadEqual", KeyLeftShift: "KeyLeftShift",
	KeyRightShift: "KeyRightShift", KeyLeftControl: "KeyLeftControl",
	KeyRightControl: "KeyRightControl", KeyLeftAlt: "KeyLeftAlt",
	KeyRightAlt: "KeyRightAlt", KeySemicolon: "KeySemicolon", KeyEqual: "KeyEqual",
	KeyComma: "KeyComma", KeyMinus: "KeyMinus", KeyPeriod: "KeyPeriod",
	KeySlash: "KeySlash", KeyGrave: "KeyGrave", KeyLeftBracket: "KeyLeftBracket",
	KeyBackslash: "KeyBackslash", KeyRightBracket: "KeyRightBracket",
	KeyApostrophe: "KeyApostrophe",
}

func (k KeyCode) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(0x%02X)", uint16(k))
}

// ModifierKey is a bitmask of the modifiers held when an event fired.
type ModifierKey uint8

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
	ModSuper
	ModCapsLock
	ModNumLock
)

func (m ModifierKey) String() string {
	if m == 0 {
		return "None"
	}
	names := ""
	appendName := func(name string) {
		if names != "" {
			names += "|"
		}
		names += name
	}
	if m&ModShift != 0 {
		appendName("Shift")
	}
	if m&ModControl != 0 {
		appendName("Control")
	}
	if m&ModAlt != 0 {
		appendName("Alt")
	}
	if m&ModSuper != 0 {
		appendName("Super")
	}
	if m&ModCapsLock != 0 {
		appendName("CapsLock")
	}
	if m&ModNumLock != 0 {
		appendName("NumLock")
	}
	return names
}

type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButton4
	MouseButton5
	MouseButtonCount
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "MouseButtonLeft"
	case MouseButtonRight:
		return "MouseButtonRight"
	case MouseButtonMiddle:
		return "MouseButtonMiddle"
	case MouseButton4:
		return "MouseButton4"
	case MouseButton5:
		return "MouseButton5"
	}
	return fmt.Sprintf("MouseButton(%d)", uint8(b))
}

// GamepadID is the platform's instance id for one connected device.
type GamepadID int32

// GamepadButton follows the standard gamepad mapping order.
type GamepadButton uint8

const (
	GamepadButtonA GamepadButton = iota
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonLeftBumper
	GamepadButtonRightBumper
	GamepadButtonBack
	GamepadButtonStart
	GamepadButtonGuide
	GamepadButtonLeftThumb
	GamepadButtonRightThumb
	GamepadButtonDpadUp
	GamepadButtonDpadRight
	GamepadButtonDpadDown
	GamepadButtonDpadLeft
	GamepadButtonCount
)

type GamepadAxis uint8

const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
	GamepadAxisCount
)

// SwipeDirection qualifies a swipe gesture.
type SwipeDirection uint8

const (
	SwipeUp SwipeDirection = iota
	SwipeDown
	SwipeLeft
	SwipeRight
)

// PowerState qualifies a power-state change notification.
type PowerState uint8

const (
	PowerUnknown PowerState = iota
	PowerOnBattery
	PowerCharging
	PowerCharged
	PowerNoBattery
)
