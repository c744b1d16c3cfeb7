package platform

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/oriel-sdk/oriel/engine/containers"
	"github.com/oriel-sdk/oriel/engine/core"
)

const terminalButtonBits = tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle

var terminalButtons = []struct {
	mask   tcell.ButtonMask
	button core.MouseButton
}{
	{tcell.ButtonPrimary, core.MouseButtonLeft},
	{tcell.ButtonSecondary, core.MouseButtonRight},
	{tcell.ButtonMiddle, core.MouseButtonMiddle},
}

// TerminalBridge drives a tcell screen as the native layer. tcell delivers
// events through a blocking PollEvent, so the bridge runs a reader goroutine
// that pushes translated events into the queue as they arrive; PollEvents
// itself has nothing to pump.
//
// The terminal is one surface, so the bridge carries at most one window.
type TerminalBridge struct {
	*Router
	handles   core.HandleAllocator
	newScreen func() (tcell.Screen, error)

	mu     sync.Mutex
	screen tcell.Screen
	handle core.NativeHandle

	// Reader goroutine state.
	lastButtons tcell.ButtonMask
	lastX       int
	lastY       int
	running     atomic.Bool
	done        chan struct{}
}

var _ core.PlatformBridge = (*TerminalBridge)(nil)

func NewTerminalBridge(queueCapacity int, policy containers.OverflowPolicy) *TerminalBridge {
	return &TerminalBridge{
		Router:    NewRouter(queueCapacity, policy),
		newScreen: tcell.NewScreen,
	}
}

func (t *TerminalBridge) Startup(appName string) error {
	screen, err := t.newScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	screen.EnableMouse()
	screen.EnableFocus()

	t.mu.Lock()
	t.screen = screen
	t.mu.Unlock()

	core.LogInfo("terminal platform started for %s", appName)
	return nil
}

func (t *TerminalBridge) Shutdown() error {
	t.mu.Lock()
	screen := t.screen
	t.screen = nil
	t.handle = core.HandleNone
	t.mu.Unlock()
	if screen == nil {
		return nil
	}
	t.stopReader(screen)
	screen.Fini()
	return nil
}

func (t *TerminalBridge) OpenWindow(config core.WindowConfig) (core.NativeHandle, error) {
	t.mu.Lock()
	if t.screen == nil {
		t.mu.Unlock()
		return core.HandleNone, errors.New("terminal bridge is not started")
	}
	if t.handle != core.HandleNone {
		t.mu.Unlock()
		return core.HandleNone, errors.New("the terminal is a single window and it is already open")
	}
	handle := t.handles.Next()
	t.handle = handle
	screen := t.screen
	t.mu.Unlock()

	t.done = make(chan struct{})
	t.running.Store(true)
	go t.readLoop(screen, handle)

	t.PushEvent(core.NewEvent(core.KindWindowCreated, handle, nil))
	width, height := screen.Size()
	t.PushEvent(core.NewEvent(core.KindWindowResized, handle, core.ResizePayload{
		Width:  uint32(width),
		Height: uint32(height),
	}))
	return handle, nil
}

func (t *TerminalBridge) CloseWindow(handle core.NativeHandle) {
	t.mu.Lock()
	open := handle != core.HandleNone && t.handle == handle
	if open {
		t.handle = core.HandleNone
	}
	screen := t.screen
	t.mu.Unlock()
	if !open {
		return
	}
	t.stopReader(screen)
	t.PushEvent(core.NewEvent(core.KindWindowClosed, handle, nil))
}

// PollEvents is a no-op: the reader goroutine already pushed everything
// tcell had for us.
func (t *TerminalBridge) PollEvents() {}

// stopReader asks the reader goroutine to exit and waits for it. An
// interrupt wakes the blocking PollEvent so the stop is observed.
func (t *TerminalBridge) stopReader(screen tcell.Screen) {
	if !t.running.CompareAndSwap(true, false) {
		return
	}
	_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	<-t.done
}

func (t *TerminalBridge) readLoop(screen tcell.Screen, handle core.NativeHandle) {
	defer close(t.done)
	for {
		ev := screen.PollEvent()
		if ev == nil || !t.running.Load() {
			return
		}
		t.convertEvent(ev, handle)
	}
}

func (t *TerminalBridge) convertEvent(ev tcell.Event, handle core.NativeHandle) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		mods := translateTerminalMods(e.Modifiers())
		key := translateTerminalKey(e.Key(), e.Rune())
		if key != core.KeyNone {
			t.PushEvent(core.NewEvent(core.KindKeyPressed, handle, core.KeyPayload{Key: key, Mods: mods}))
		}
		if e.Key() == tcell.KeyRune {
			t.PushEvent(core.NewEvent(core.KindTextInput, handle, core.TextPayload{Rune: e.Rune()}))
		}
		if key != core.KeyNone {
			// Terminals report presses only, so the release follows at once.
			t.PushEvent(core.NewEvent(core.KindKeyReleased, handle, core.KeyPayload{Key: key, Mods: mods}))
		}

	case *tcell.EventMouse:
		t.convertMouse(e, handle)

	case *tcell.EventResize:
		width, height := e.Size()
		t.PushEvent(core.NewEvent(core.KindWindowResized, handle, core.ResizePayload{
			Width:  uint32(width),
			Height: uint32(height),
		}))

	case *tcell.EventFocus:
		kind := core.KindWindowFocusGained
		if !e.Focused {
			kind = core.KindWindowFocusLost
		}
		t.PushEvent(core.NewEvent(kind, handle, nil))

	case *tcell.EventPaste:
		// Paste content arrives as rune events between the brackets.

	case *tcell.EventInterrupt:
		if e.Data() == nil {
			return
		}
		t.PushEvent(core.NewEvent(core.KindCustom, handle, core.CustomPayload{Data: e.Data()}))

	case *tcell.EventError:
		core.LogError("terminal event error: %s", e.Error())
	}
}

func (t *TerminalBridge) convertMouse(e *tcell.EventMouse, handle core.NativeHandle) {
	x, y := e.Position()
	buttons := e.Buttons()
	mods := translateTerminalMods(e.Modifiers())

	if x != t.lastX || y != t.lastY {
		t.PushEvent(core.NewEvent(core.KindMouseMoved, handle, core.MouseMovePayload{
			X:      float64(x),
			Y:      float64(y),
			DeltaX: float64(x - t.lastX),
			DeltaY: float64(y - t.lastY),
		}))
		t.lastX, t.lastY = x, y
	}

	if dx, dy := terminalWheel(buttons); dx != 0 || dy != 0 {
		t.PushEvent(core.NewEvent(core.KindMouseWheel, handle, core.MouseWheelPayload{
			DeltaX: dx,
			DeltaY: dy,
			X:      float64(x),
			Y:      float64(y),
		}))
	}

	// Wheel bits are transient, only held button bits diff across events.
	pressed := (buttons &^ t.lastButtons) & terminalButtonBits
	released := (t.lastButtons &^ buttons) & terminalButtonBits
	t.lastButtons = buttons & terminalButtonBits

	for _, tb := range terminalButtons {
		if pressed&tb.mask != 0 {
			t.PushEvent(core.NewEvent(core.KindMouseButtonPressed, handle, core.MouseButtonPayload{
				Button: tb.button,
				X:      float64(x),
				Y:      float64(y),
				Mods:   mods,
				Clicks: 1,
			}))
		}
		if released&tb.mask != 0 {
			t.PushEvent(core.NewEvent(core.KindMouseButtonReleased, handle, core.MouseButtonPayload{
				Button: tb.button,
				X:      float64(x),
				Y:      float64(y),
				Mods:   mods,
				Clicks: 1,
			}))
		}
	}
}

func terminalWheel(buttons tcell.ButtonMask) (float64, float64) {
	var dx, dy float64
	if buttons&tcell.WheelUp != 0 {
		dy++
	}
	if buttons&tcell.WheelDown != 0 {
		dy--
	}
	if buttons&tcell.WheelLeft != 0 {
		dx--
	}
	if buttons&tcell.WheelRight != 0 {
		dx++
	}
	return dx, dy
}

func translateTerminalKey(key tcell.Key, r rune) core.KeyCode {
	if key == tcell.KeyRune {
		switch {
		case r >= 'a' && r <= 'z':
			return core.KeyA + core.KeyCode(r-'a')
		case r >= 'A' && r <= 'Z':
			return core.KeyA + core.KeyCode(r-'A')
		case r >= '0' && r <= '9':
			return core.Key0 + core.KeyCode(r-'0')
		case r == ' ':
			return core.KeySpace
		}
		return core.KeyNone
	}
	if key >= tcell.KeyF1 && key <= tcell.KeyF24 {
		return core.KeyF1 + core.KeyCode(key-tcell.KeyF1)
	}
	switch key {
	case tcell.KeyEscape:
		return core.KeyEscape
	case tcell.KeyEnter:
		return core.KeyEnter
	case tcell.KeyTab:
		return core.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.KeyBackspace
	case tcell.KeyDelete:
		return core.KeyDelete
	case tcell.KeyInsert:
		return core.KeyInsert
	case tcell.KeyHome:
		return core.KeyHome
	case tcell.KeyEnd:
		return core.KeyEnd
	case tcell.KeyPgUp:
		return core.KeyPageUp
	case tcell.KeyPgDn:
		return core.KeyPageDown
	case tcell.KeyUp:
		return core.KeyUp
	case tcell.KeyDown:
		return core.KeyDown
	case tcell.KeyLeft:
		return core.KeyLeft
	case tcell.KeyRight:
		return core.KeyRight
	}
	return core.KeyNone
}

func translateTerminalMods(mods tcell.ModMask) core.ModifierKey {
	var out core.ModifierKey
	if mods&tcell.ModShift != 0 {
		out |= core.ModShift
	}
	if mods&tcell.ModCtrl != 0 {
		out |= core.ModControl
	}
	if mods&tcell.ModAlt != 0 {
		out |= core.ModAlt
	}
	if mods&tcell.ModMeta != 0 {
		out |= core.ModSuper
	}
	return out
}
