package core

import "sync/atomic"

// NativeHandle identifies a native window to the routing layer. Values are
// opaque: bridges mint them and keep the mapping to the real platform object
// private, so a handle never doubles as a pointer.
type NativeHandle uint64

// HandleNone marks events that do not originate from any window.
const HandleNone NativeHandle = 0

// HandleAllocator mints NativeHandle values. Allocation is monotonic and a
// value is never reused, so an event still in flight after its window closed
// can never resolve to a different window that recycled the handle.
type HandleAllocator struct {
	last atomic.Uint64
}

func (a *HandleAllocator) Next() NativeHandle {
	return NativeHandle(a.last.Add(1))
}
