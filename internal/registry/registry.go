// Package registry implements the mapping from a connected socket handle to
// the application's per-connection context, per SPEC_FULL.md §4.2.
package registry

import "sync"

// Entry pairs a socket handle with the application context attached to it.
type Entry struct {
	Handle uint64
	Ctx    interface{}
}

// Registry holds the server's live connections. All operations hold a
// single mutex; none may call back into application code while holding it.
type Registry struct {
	mu  sync.Mutex
	byH map[uint64]interface{}
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{byH: make(map[uint64]interface{})}
}

// Insert records ctx for handle, overwriting any previous entry.
func (r *Registry) Insert(handle uint64, ctx interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byH[handle] = ctx
}

// Remove deletes handle's entry and returns its context, if any.
func (r *Registry) Remove(handle uint64) (interface{}, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ctx, ok := r.byH[handle]
	if ok {
		delete(r.byH, handle)
	}
	return ctx, ok
}

// Get returns handle's context without removing it.
func (r *Registry) Get(handle uint64) (interface{}, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ctx, ok := r.byH[handle]
	return ctx, ok
}

// Snapshot returns a point-in-time copy of all entries.
func (r *Registry) Snapshot() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, 0, len(r.byH))
	for h, c := range r.byH {
		out = append(out, Entry{Handle: h, Ctx: c})
	}
	return out
}

// Sockets returns the currently registered handles.
func (r *Registry) Sockets() []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint64, 0, len(r.byH))
	for h := range r.byH {
		out = append(out, h)
	}
	return out
}

// Len reports the number of live entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byH)
}

// Clear drains the Registry and returns everything that was in it. Intended
// for shutdown: the caller invokes clientDisconnected for each entry and
// closes its socket outside the lock this method already released.
func (r *Registry) Clear() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, 0, len(r.byH))
	for h, c := range r.byH {
		out = append(out, Entry{Handle: h, Ctx: c})
	}
	r.byH = make(map[uint64]interface{})
	return out
}
