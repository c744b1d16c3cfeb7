package platform

import (
	"github.com/oriel-sdk/oriel/engine/containers"
	"github.com/oriel-sdk/oriel/engine/core"
)

// Headless is a bridge with no native layer behind it. Windows are records,
// events arrive only through PushEvent. It drives tests and server-side
// tools that want the routing behavior without a display.
type Headless struct {
	*Router
	handles core.HandleAllocator
}

var _ core.PlatformBridge = (*Headless)(nil)

func NewHeadless(queueCapacity int, policy containers.OverflowPolicy) *Headless {
	return &Headless{
		Router: NewRouter(queueCapacity, policy),
	}
}

func (h *Headless) Startup(appName string) error {
	core.LogInfo("headless platform started for %s", appName)
	return nil
}

func (h *Headless) Shutdown() error {
	return nil
}

func (h *Headless) OpenWindow(config core.WindowConfig) (core.NativeHandle, error) {
	handle := h.handles.Next()
	h.PushEvent(core.NewEvent(core.KindWindowCreated, handle, nil))
	return handle, nil
}

func (h *Headless) CloseWindow(handle core.NativeHandle) {
	h.PushEvent(core.NewEvent(core.KindWindowClosed, handle, nil))
}

// PollEvents is a no-op: there is no native source to drain.
func (h *Headless) PollEvents() {}
