package platform

import (
	"sync"

	"github.com/oriel-sdk/oriel/engine/core"
)

type registryEntry struct {
	owner    core.Window
	callback core.EventCallback
}

// Registry maps native handles to registered window owners and their
// optional per-window callbacks. Handles arrive from the bridge, owners from
// the application; the registry just binds them for dispatch.
type Registry struct {
	mu      sync.RWMutex
	entries map[core.NativeHandle]registryEntry
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[core.NativeHandle]registryEntry),
	}
}

// Register binds owner to handle. A second registration on a live handle
// replaces the first completely, per-window callback included: the callback
// belonged to the old owner and must not fire for the new one.
func (r *Registry) Register(owner core.Window, handle core.NativeHandle) {
	if owner == nil {
		panic("oriel: RegisterWindow requires a non-nil owner")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, live := r.entries[handle]; live {
		core.LogWarn("handle 0x%X is already registered, replacing owner", uint64(handle))
	}
	r.entries[handle] = registryEntry{owner: owner}
}

// Unregister removes the binding for handle. Unknown handles are a no-op,
// so teardown paths can unregister without tracking registration state.
func (r *Registry) Unregister(handle core.NativeHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, handle)
}

// SetCallback installs a per-window callback on a registered handle. The
// callback lives and dies with the registration.
func (r *Registry) SetCallback(handle core.NativeHandle, callback core.EventCallback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, live := r.entries[handle]
	if !live {
		core.LogWarn("no window registered for handle 0x%X, callback ignored", uint64(handle))
		return
	}
	entry.callback = callback
	r.entries[handle] = entry
}

// Resolve looks up handle and copies the entry out under the read lock, so
// dispatch never invokes a callback while holding it.
func (r *Registry) Resolve(handle core.NativeHandle) (core.Window, core.EventCallback, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, live := r.entries[handle]
	if !live {
		return nil, nil, false
	}
	return entry.owner, entry.callback, true
}

func (r *Registry) Contains(handle core.NativeHandle) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, live := r.entries[handle]
	return live
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
