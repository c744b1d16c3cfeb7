// Package dnd tracks drag and drop sessions for one window and turns them
// into routed events. Native layers differ in how much of a drag they
// report: some give enter, move and leave, others only the final drop. The
// DropTarget accepts both and emits a consistent event sequence either way.
package dnd

import (
	"github.com/oriel-sdk/oriel/engine/core"
	"github.com/oriel-sdk/oriel/engine/math"
)

// Pusher is where translated drag events go.
type Pusher interface {
	PushEvent(event core.Event)
}

// DropTarget is the drag state of one window. Native callbacks for a window
// arrive on one goroutine, so the target does not lock.
type DropTarget struct {
	pusher Pusher
	handle core.NativeHandle

	width  float64
	height float64

	inside bool
	x, y   float64
}

func NewDropTarget(pusher Pusher, handle core.NativeHandle) *DropTarget {
	return &DropTarget{
		pusher: pusher,
		handle: handle,
	}
}

// Resize updates the bounds drag positions are clamped into.
func (d *DropTarget) Resize(width, height float64) {
	d.width = width
	d.height = height
}

func (d *DropTarget) clamp(x, y float64) (float64, float64) {
	if d.width > 0 && d.height > 0 {
		x = math.Clamp(x, 0, d.width)
		y = math.Clamp(y, 0, d.height)
	}
	return x, y
}

// Enter opens a drag session over the window.
func (d *DropTarget) Enter(x, y float64) {
	x, y = d.clamp(x, y)
	d.inside = true
	d.x, d.y = x, y
	d.pusher.PushEvent(core.NewEvent(core.KindDragEntered, d.handle, core.DragPositionPayload{X: x, Y: y}))
}

// Move reports drag motion. Motion without an open session opens one, for
// native layers that never report the enter.
func (d *DropTarget) Move(x, y float64) {
	if !d.inside {
		d.Enter(x, y)
		return
	}
	x, y = d.clamp(x, y)
	d.x, d.y = x, y
	d.pusher.PushEvent(core.NewEvent(core.KindDragMoved, d.handle, core.DragPositionPayload{X: x, Y: y}))
}

// Leave closes the session without a drop. Without an open session there is
// nothing to leave and no event fires.
func (d *DropTarget) Leave() {
	if !d.inside {
		return
	}
	d.inside = false
	d.pusher.PushEvent(core.NewEvent(core.KindDragLeft, d.handle, core.DragPositionPayload{X: d.x, Y: d.y}))
}

// DropFiles completes the session with a file list. A bare drop with no
// session synthesizes the enter first, so consumers always see a full
// sequence. Empty drops are ignored.
func (d *DropTarget) DropFiles(x, y float64, paths []string) {
	if len(paths) == 0 {
		return
	}
	d.begin(x, y)
	d.pusher.PushEvent(core.NewEvent(core.KindDropFiles, d.handle, core.NewDropFilesPayload(paths)))
	d.complete()
}

// DropText completes the session with a text snippet.
func (d *DropTarget) DropText(x, y float64, text string) {
	if text == "" {
		return
	}
	d.begin(x, y)
	d.pusher.PushEvent(core.NewEvent(core.KindDropText, d.handle, core.NewDropTextPayload(text)))
	d.complete()
}

// DropImage completes the session with a decoded image.
func (d *DropTarget) DropImage(x, y float64, image *core.ImageData) {
	if image == nil {
		return
	}
	d.begin(x, y)
	d.pusher.PushEvent(core.NewEvent(core.KindDropImage, d.handle, core.NewDropImagePayload(image)))
	d.complete()
}

func (d *DropTarget) begin(x, y float64) {
	if !d.inside {
		d.Enter(x, y)
		return
	}
	d.x, d.y = d.clamp(x, y)
}

func (d *DropTarget) complete() {
	d.inside = false
	d.pusher.PushEvent(core.NewEvent(core.KindDropCompleted, d.handle, nil))
}
