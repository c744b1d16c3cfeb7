package core

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Payload marks event payload variants. The interface is sealed: variants
// live in this package only, so reading one outside its kind family is
// impossible without the accessors below.
type Payload interface {
	implementsPayload()
}

type KeyPayload struct {
	Key      KeyCode
	Scancode int32
	Mods     ModifierKey
	Repeat   bool
}

type TextPayload struct {
	Rune rune
}

type CompositionPayload struct {
	Text   string
	Cursor int
}

type ModifiersPayload struct {
	Mods ModifierKey
}

type ResizePayload struct {
	Width  uint32
	Height uint32
}

type MovePayload struct {
	X int32
	Y int32
}

type ScalePayload struct {
	X float32
	Y float32
}

type MouseMovePayload struct {
	X, Y           float64
	DeltaX, DeltaY float64
}

type MouseButtonPayload struct {
	Button MouseButton
	X, Y   float64
	Mods   ModifierKey
	Clicks uint8
}

type MouseWheelPayload struct {
	DeltaX, DeltaY float64
	X, Y           float64
}

// CrossingPayload carries where the cursor was when it entered or left.
type CrossingPayload struct {
	X, Y float64
}

type TouchPayload struct {
	Finger         int64
	X, Y           float32
	DeltaX, DeltaY float32
	Pressure       float32
}

type GestureTapPayload struct {
	X, Y float32
	Taps uint8
}

type GestureHoldPayload struct {
	X, Y     float32
	Duration time.Duration
}

type GesturePinchPayload struct {
	X, Y     float32
	Scale    float32
	Velocity float32
}

type GestureRotatePayload struct {
	X, Y     float32
	Angle    float32
	Velocity float32
}

type GestureSwipePayload struct {
	X, Y      float32
	Direction SwipeDirection
	Fingers   uint8
}

type GesturePanPayload struct {
	X, Y           float32
	DeltaX, DeltaY float32
	Fingers        uint8
}

type GamepadDevicePayload struct {
	Pad  GamepadID
	GUID uuid.UUID
	Name string
}

type GamepadButtonPayload struct {
	Pad    GamepadID
	Button GamepadButton
}

type GamepadAxisPayload struct {
	Pad   GamepadID
	Axis  GamepadAxis
	Value float32
}

type GamepadBatteryPayload struct {
	Pad      GamepadID
	Level    float32
	Charging bool
}

type DragPositionPayload struct {
	X, Y float64
}

type MonitorPayload struct {
	Name    string
	Primary bool
}

type ThemePayload struct {
	Dark bool
}

type LocalePayload struct {
	Locale string
}

type PowerPayload struct {
	State   PowerState
	Percent uint8
}

type ConfigPayload struct {
	Path string
}

// CustomPayload wraps a notification outside the closed enumeration. Code
// preserves the raw native value.
type CustomPayload struct {
	Code uint32
	Data interface{}
}

// ImageData is a decoded RGBA pixel buffer carried by image drops.
type ImageData struct {
	Width  int
	Height int
	Stride int
	Pixels []byte
}

// DropFilesPayload owns the dropped path list exclusively. TakePaths moves
// it out exactly once; the queue never copies it.
type DropFilesPayload struct {
	mu    sync.Mutex
	paths []string
	taken bool
}

func NewDropFilesPayload(paths []string) *DropFilesPayload {
	return &DropFilesPayload{paths: paths}
}

// TakePaths transfers ownership of the path list. The first caller gets the
// slice; everyone after gets nil, false.
func (p *DropFilesPayload) TakePaths() ([]string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.taken {
		return nil, false
	}
	p.taken = true
	paths := p.paths
	p.paths = nil
	return paths, true
}

// DropTextPayload owns a dropped text snippet. Same transfer rule as files.
type DropTextPayload struct {
	mu    sync.Mutex
	text  string
	taken bool
}

func NewDropTextPayload(text string) *DropTextPayload {
	return &DropTextPayload{text: text}
}

func (p *DropTextPayload) TakeText() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.taken {
		return "", false
	}
	p.taken = true
	text := p.text
	p.text = ""
	return text, true
}

// DropImagePayload owns a decoded image buffer. Same transfer rule as files.
type DropImagePayload struct {
	mu    sync.Mutex
	image *ImageData
	taken bool
}

func NewDropImagePayload(image *ImageData) *DropImagePayload {
	return &DropImagePayload{image: image}
}

func (p *DropImagePayload) TakeImage() (*ImageData, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.taken {
		return nil, false
	}
	p.taken = true
	image := p.image
	p.image = nil
	return image, true
}

func (KeyPayload) implementsPayload()           {}
func (TextPayload) implementsPayload()          {}
func (CompositionPayload) implementsPayload()   {}
func (ModifiersPayload) implementsPayload()     {}
func (ResizePayload) implementsPayload()        {}
func (MovePayload) implementsPayload()          {}
func (ScalePayload) implementsPayload()         {}
func (MouseMovePayload) implementsPayload()     {}
func (MouseButtonPayload) implementsPayload()   {}
func (MouseWheelPayload) implementsPayload()    {}
func (CrossingPayload) implementsPayload()      {}
func (TouchPayload) implementsPayload()         {}
func (GestureTapPayload) implementsPayload()    {}
func (GestureHoldPayload) implementsPayload()   {}
func (GesturePinchPayload) implementsPayload()  {}
func (GestureRotatePayload) implementsPayload() {}
func (GestureSwipePayload) implementsPayload()  {}
func (GesturePanPayload) implementsPayload()    {}
func (GamepadDevicePayload) implementsPayload() {}
func (GamepadButtonPayload) implementsPayload() {}
func (GamepadAxisPayload) implementsPayload()   {}
func (GamepadBatteryPayload) implementsPayload() {}
func (DragPositionPayload) implementsPayload()  {}
func (MonitorPayload) implementsPayload()       {}
func (ThemePayload) implementsPayload()         {}
func (LocalePayload) implementsPayload()        {}
func (PowerPayload) implementsPayload()         {}
func (ConfigPayload) implementsPayload()        {}
func (CustomPayload) implementsPayload()        {}
func (*DropFilesPayload) implementsPayload()    {}
func (*DropTextPayload) implementsPayload()     {}
func (*DropImagePayload) implementsPayload()    {}

// Kind-checked payload accessors. Each returns the variant and whether the
// event actually carries it; asking an event for a foreign variant is
// answered with ok=false, never with reinterpreted bytes.

func (e Event) Key() (KeyPayload, bool) {
	p, ok := e.payload.(KeyPayload)
	return p, ok
}

func (e Event) Text() (TextPayload, bool) {
	p, ok := e.payload.(TextPayload)
	return p, ok
}

func (e Event) Composition() (CompositionPayload, bool) {
	p, ok := e.payload.(CompositionPayload)
	return p, ok
}

func (e Event) Modifiers() (ModifiersPayload, bool) {
	p, ok := e.payload.(ModifiersPayload)
	return p, ok
}

func (e Event) Resize() (ResizePayload, bool) {
	p, ok := e.payload.(ResizePayload)
	return p, ok
}

func (e Event) Move() (MovePayload, bool) {
	p, ok := e.payload.(MovePayload)
	return p, ok
}

func (e Event) ContentScale() (ScalePayload, bool) {
	p, ok := e.payload.(ScalePayload)
	return p, ok
}

func (e Event) MouseMove() (MouseMovePayload, bool) {
	p, ok := e.payload.(MouseMovePayload)
	return p, ok
}

func (e Event) MouseButton() (MouseButtonPayload, bool) {
	p, ok := e.payload.(MouseButtonPayload)
	return p, ok
}

func (e Event) MouseWheel() (MouseWheelPayload, bool) {
	p, ok := e.payload.(MouseWheelPayload)
	return p, ok
}

func (e Event) Crossing() (CrossingPayload, bool) {
	p, ok := e.payload.(CrossingPayload)
	return p, ok
}

func (e Event) Touch() (TouchPayload, bool) {
	p, ok := e.payload.(TouchPayload)
	return p, ok
}

func (e Event) GestureTap() (GestureTapPayload, bool) {
	p, ok := e.payload.(GestureTapPayload)
	return p, ok
}

func (e Event) GestureHold() (GestureHoldPayload, bool) {
	p, ok := e.payload.(GestureHoldPayload)
	return p, ok
}

func (e Event) GesturePinch() (GesturePinchPayload, bool) {
	p, ok := e.payload.(GesturePinchPayload)
	return p, ok
}

func (e Event) GestureRotate() (GestureRotatePayload, bool) {
	p, ok := e.payload.(GestureRotatePayload)
	return p, ok
}

func (e Event) GestureSwipe() (GestureSwipePayload, bool) {
	p, ok := e.payload.(GestureSwipePayload)
	return p, ok
}

func (e Event) GesturePan() (GesturePanPayload, bool) {
	p, ok := e.payload.(GesturePanPayload)
	return p, ok
}

func (e Event) GamepadDevice() (GamepadDevicePayload, bool) {
	p, ok := e.payload.(GamepadDevicePayload)
	return p, ok
}

func (e Event) GamepadButton() (GamepadButtonPayload, bool) {
	p, ok := e.payload.(GamepadButtonPayload)
	return p, ok
}

func (e Event) GamepadAxis() (GamepadAxisPayload, bool) {
	p, ok := e.payload.(GamepadAxisPayload)
	return p, ok
}

func (e Event) GamepadBattery() (GamepadBatteryPayload, bool) {
	p, ok := e.payload.(GamepadBatteryPayload)
	return p, ok
}

func (e Event) DragPosition() (DragPositionPayload, bool) {
	p, ok := e.payload.(DragPositionPayload)
	return p, ok
}

func (e Event) DropFiles() (*DropFilesPayload, bool) {
	p, ok := e.payload.(*DropFilesPayload)
	return p, ok
}

func (e Event) DropText() (*DropTextPayload, bool) {
	p, ok := e.payload.(*DropTextPayload)
	return p, ok
}

func (e Event) DropImage() (*DropImagePayload, bool) {
	p, ok := e.payload.(*DropImagePayload)
	return p, ok
}

func (e Event) Monitor() (MonitorPayload, bool) {
	p, ok := e.payload.(MonitorPayload)
	return p, ok
}

func (e Event) Theme() (ThemePayload, bool) {
	p, ok := e.payload.(ThemePayload)
	return p, ok
}

func (e Event) Locale() (LocalePayload, bool) {
	p, ok := e.payload.(LocalePayload)
	return p, ok
}

func (e Event) Power() (PowerPayload, bool) {
	p, ok := e.payload.(PowerPayload)
	return p, ok
}

func (e Event) Config() (ConfigPayload, bool) {
	p, ok := e.payload.(ConfigPayload)
	return p, ok
}

func (e Event) Custom() (CustomPayload, bool) {
	p, ok := e.payload.(CustomPayload)
	return p, ok
}
