package platform

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oriel-sdk/oriel/engine/containers"
	"github.com/oriel-sdk/oriel/engine/core"
	"github.com/oriel-sdk/oriel/engine/dnd"
	"github.com/oriel-sdk/oriel/engine/gamepad"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type desktopWindow struct {
	win   *glfw.Window
	drops *dnd.DropTarget
	// Last cursor position, for motion deltas. Only the GLFW callback
	// goroutine touches these.
	lastX float64
	lastY float64
}

// Desktop is the GLFW bridge. Every native callback translates into a typed
// event and lands in the shared queue; PollEvents runs the GLFW pump and so
// must stay on the main OS thread.
type Desktop struct {
	*Router
	handles core.HandleAllocator

	mu      sync.Mutex
	windows map[core.NativeHandle]*desktopWindow
}

var _ core.PlatformBridge = (*Desktop)(nil)
var _ gamepad.Source = (*Desktop)(nil)

func NewDesktop(queueCapacity int, policy containers.OverflowPolicy) *Desktop {
	return &Desktop{
		Router:  NewRouter(queueCapacity, policy),
		windows: make(map[core.NativeHandle]*desktopWindow),
	}
}

func (d *Desktop) Startup(appName string) error {
	if err := glfw.Init(); err != nil {
		core.LogError("failed to initialize glfw: %s", err)
		return err
	}
	core.LogInfo("desktop platform started for %s", appName)
	return nil
}

func (d *Desktop) Shutdown() error {
	d.mu.Lock()
	for handle, dw := range d.windows {
		dw.win.Destroy()
		delete(d.windows, handle)
	}
	d.mu.Unlock()
	glfw.Terminate()
	return nil
}

func (d *Desktop) OpenWindow(config core.WindowConfig) (core.NativeHandle, error) {
	glfw.WindowHint(glfw.Visible, glfw.False)
	if config.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}
	// No GL context. Rendering is the caller's business.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	var monitor *glfw.Monitor
	if config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	win, err := glfw.CreateWindow(int(config.Width), int(config.Height), config.Title, monitor, nil)
	if err != nil {
		return core.HandleNone, fmt.Errorf("failed to create window: %w", err)
	}

	handle := d.handles.Next()
	dw := &desktopWindow{
		win:   win,
		drops: dnd.NewDropTarget(d, handle),
	}
	dw.drops.Resize(float64(config.Width), float64(config.Height))

	d.mu.Lock()
	d.windows[handle] = dw
	d.mu.Unlock()

	d.installCallbacks(dw, handle)
	if !config.Fullscreen {
		win.SetPos(int(config.X), int(config.Y))
	}
	win.Show()

	d.PushEvent(core.NewEvent(core.KindWindowCreated, handle, nil))
	return handle, nil
}

func (d *Desktop) CloseWindow(handle core.NativeHandle) {
	d.mu.Lock()
	dw, ok := d.windows[handle]
	if ok {
		delete(d.windows, handle)
	}
	d.mu.Unlock()
	if !ok {
		return
	}
	dw.win.Destroy()
	d.PushEvent(core.NewEvent(core.KindWindowClosed, handle, nil))
}

// PollEvents runs the GLFW pump. The installed callbacks fire synchronously
// inside this call and enqueue their translated events.
func (d *Desktop) PollEvents() {
	glfw.PollEvents()
}

func (d *Desktop) installCallbacks(dw *desktopWindow, handle core.NativeHandle) {
	dw.win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		kind := core.KindKeyPressed
		switch action {
		case glfw.Release:
			kind = core.KindKeyReleased
		case glfw.Repeat:
			kind = core.KindKeyRepeated
		}
		d.PushEvent(core.NewEvent(kind, handle, core.KeyPayload{
			Key:      translateKey(key),
			Scancode: int32(scancode),
			Mods:     translateMods(mods),
			Repeat:   action == glfw.Repeat,
		}))
	})

	dw.win.SetCharCallback(func(w *glfw.Window, char rune) {
		d.PushEvent(core.NewEvent(core.KindTextInput, handle, core.TextPayload{Rune: char}))
	})

	dw.win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		x, y := w.GetCursorPos()
		kind := core.KindMouseButtonPressed
		if action == glfw.Release {
			kind = core.KindMouseButtonReleased
		}
		d.PushEvent(core.NewEvent(kind, handle, core.MouseButtonPayload{
			Button: translateMouseButton(button),
			X:      x,
			Y:      y,
			Mods:   translateMods(mods),
			Clicks: 1,
		}))
	})

	dw.win.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		dx := xpos - dw.lastX
		dy := ypos - dw.lastY
		dw.lastX, dw.lastY = xpos, ypos
		d.PushEvent(core.NewEvent(core.KindMouseMoved, handle, core.MouseMovePayload{
			X:      xpos,
			Y:      ypos,
			DeltaX: dx,
			DeltaY: dy,
		}))
	})

	dw.win.SetCursorEnterCallback(func(w *glfw.Window, entered bool) {
		x, y := w.GetCursorPos()
		kind := core.KindMouseEntered
		if !entered {
			kind = core.KindMouseLeft
		}
		d.PushEvent(core.NewEvent(kind, handle, core.CrossingPayload{X: x, Y: y}))
	})

	dw.win.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		x, y := w.GetCursorPos()
		d.PushEvent(core.NewEvent(core.KindMouseWheel, handle, core.MouseWheelPayload{
			DeltaX: xoff,
			DeltaY: yoff,
			X:      x,
			Y:      y,
		}))
	})

	dw.win.SetSizeCallback(func(w *glfw.Window, width, height int) {
		dw.drops.Resize(float64(width), float64(height))
		d.PushEvent(core.NewEvent(core.KindWindowResized, handle, core.ResizePayload{
			Width:  uint32(width),
			Height: uint32(height),
		}))
	})

	dw.win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		d.PushEvent(core.NewEvent(core.KindFramebufferResized, handle, core.ResizePayload{
			Width:  uint32(width),
			Height: uint32(height),
		}))
	})

	dw.win.SetPosCallback(func(w *glfw.Window, xpos, ypos int) {
		d.PushEvent(core.NewEvent(core.KindWindowMoved, handle, core.MovePayload{
			X: int32(xpos),
			Y: int32(ypos),
		}))
	})

	dw.win.SetFocusCallback(func(w *glfw.Window, focused bool) {
		kind := core.KindWindowFocusGained
		if !focused {
			kind = core.KindWindowFocusLost
		}
		d.PushEvent(core.NewEvent(kind, handle, nil))
	})

	dw.win.SetIconifyCallback(func(w *glfw.Window, iconified bool) {
		kind := core.KindWindowMinimized
		if !iconified {
			kind = core.KindWindowRestored
		}
		d.PushEvent(core.NewEvent(kind, handle, nil))
	})

	dw.win.SetMaximizeCallback(func(w *glfw.Window, maximized bool) {
		kind := core.KindWindowMaximized
		if !maximized {
			kind = core.KindWindowRestored
		}
		d.PushEvent(core.NewEvent(kind, handle, nil))
	})

	dw.win.SetRefreshCallback(func(w *glfw.Window) {
		d.PushEvent(core.NewEvent(core.KindWindowRefresh, handle, nil))
	})

	dw.win.SetCloseCallback(func(w *glfw.Window) {
		d.PushEvent(core.NewEvent(core.KindWindowCloseRequested, handle, nil))
	})

	dw.win.SetContentScaleCallback(func(w *glfw.Window, x float32, y float32) {
		d.PushEvent(core.NewEvent(core.KindContentScaleChanged, handle, core.ScalePayload{X: x, Y: y}))
	})

	dw.win.SetDropCallback(func(w *glfw.Window, names []string) {
		x, y := w.GetCursorPos()
		dw.drops.DropFiles(x, y, names)
	})
}

// SampleGamepads reads every connected joystick, through the standard
// gamepad mapping when the joystick has one and raw buttons otherwise.
func (d *Desktop) SampleGamepads() []gamepad.Sample {
	var samples []gamepad.Sample
	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if !joy.Present() {
			continue
		}
		sample := gamepad.Sample{
			ID:   core.GamepadID(joy),
			GUID: joy.GetGUID(),
			Name: joy.GetName(),
		}
		if state := joy.GetGamepadState(); state != nil {
			sample.Name = joy.GetGamepadName()
			sample.Buttons = make([]bool, len(state.Buttons))
			for i, action := range state.Buttons {
				sample.Buttons[i] = action == glfw.Press
			}
			sample.Axes = make([]float32, len(state.Axes))
			copy(sample.Axes, state.Axes[:])
		} else {
			buttons := joy.GetButtons()
			sample.Buttons = make([]bool, len(buttons))
			for i, action := range buttons {
				sample.Buttons[i] = action == glfw.Press
			}
			axes := joy.GetAxes()
			sample.Axes = make([]float32, len(axes))
			copy(sample.Axes, axes)
		}
		samples = append(samples, sample)
	}
	return samples
}

func translateKey(key glfw.Key) core.KeyCode {
	// Letters and digits share their ASCII codes on both sides.
	if (key >= glfw.KeyA && key <= glfw.KeyZ) || (key >= glfw.Key0 && key <= glfw.Key9) {
		return core.KeyCode(key)
	}
	if key >= glfw.KeyF1 && key <= glfw.KeyF24 {
		return core.KeyF1 + core.KeyCode(key-glfw.KeyF1)
	}
	if key >= glfw.KeyKP0 && key <= glfw.KeyKP9 {
		return core.KeyNumpad0 + core.KeyCode(key-glfw.KeyKP0)
	}
	switch key {
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyApostrophe:
		return core.KeyApostrophe
	case glfw.KeyComma:
		return core.KeyComma
	case glfw.KeyMinus:
		return core.KeyMinus
	case glfw.KeyPeriod:
		return core.KeyPeriod
	case glfw.KeySlash:
		return core.KeySlash
	case glfw.KeySemicolon:
		return core.KeySemicolon
	case glfw.KeyEqual:
		return core.KeyEqual
	case glfw.KeyLeftBracket:
		return core.KeyLeftBracket
	case glfw.KeyBackslash:
		return core.KeyBackslash
	case glfw.KeyRightBracket:
		return core.KeyRightBracket
	case glfw.KeyGraveAccent:
		return core.KeyGrave
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeyEnter:
		return core.KeyEnter
	case glfw.KeyTab:
		return core.KeyTab
	case glfw.KeyBackspace:
		return core.KeyBackspace
	case glfw.KeyInsert:
		return core.KeyInsert
	case glfw.KeyDelete:
		return core.KeyDelete
	case glfw.KeyRight:
		return core.KeyRight
	case glfw.KeyLeft:
		return core.KeyLeft
	case glfw.KeyDown:
		return core.KeyDown
	case glfw.KeyUp:
		return core.KeyUp
	case glfw.KeyPageUp:
		return core.KeyPageUp
	case glfw.KeyPageDown:
		return core.KeyPageDown
	case glfw.KeyHome:
		return core.KeyHome
	case glfw.KeyEnd:
		return core.KeyEnd
	case glfw.KeyCapsLock:
		return core.KeyCapsLock
	case glfw.KeyScrollLock:
		return core.KeyScrollLock
	case glfw.KeyNumLock:
		return core.KeyNumLock
	case glfw.KeyPrintScreen:
		return core.KeyPrintScreen
	case glfw.KeyPause:
		return core.KeyPause
	case glfw.KeyKPDecimal:
		return core.KeyDecimal
	case glfw.KeyKPDivide:
		return core.KeyDivide
	case glfw.KeyKPMultiply:
		return core.KeyMultiply
	case glfw.KeyKPSubtract:
		return core.KeySubtract
	case glfw.KeyKPAdd:
		return core.KeyAdd
	case glfw.KeyKPEnter:
		return core.KeyEnter
	case glfw.KeyKPEqual:
		return core.KeyNumpadEqual
	case glfw.KeyLeftShift:
		return core.KeyLeftShift
	case glfw.KeyLeftControl:
		return core.KeyLeftControl
	case glfw.KeyLeftAlt:
		return core.KeyLeftAlt
	case glfw.KeyLeftSuper:
		return core.KeyLeftSuper
	case glfw.KeyRightShift:
		return core.KeyRightShift
	case glfw.KeyRightControl:
		return core.KeyRightControl
	case glfw.KeyRightAlt:
		return core.KeyRightAlt
	case glfw.KeyRightSuper:
		return core.KeyRightSuper
	case glfw.KeyMenu:
		return core.KeyMenu
	}
	return core.KeyNone
}

func translateMods(mods glfw.ModifierKey) core.ModifierKey {
	var out core.ModifierKey
	if mods&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if mods&glfw.ModControl != 0 {
		out |= core.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	if mods&glfw.ModCapsLock != 0 {
		out |= core.ModCapsLock
	}
	if mods&glfw.ModNumLock != 0 {
		out |= core.ModNumLock
	}
	return out
}

func translateMouseButton(button glfw.MouseButton) core.MouseButton {
	// The first five buttons line up; anything past that folds into five.
	if button <= glfw.MouseButton5 {
		return core.MouseButton(button)
	}
	return core.MouseButton5
}
