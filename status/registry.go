package status

import (
	"sort"
	"sync"
)

// Registry maps attachment keys to the widget that owns them.
// Invariant: a key is present iff a live widget currently claims it. Entries
// are inserted on successful Attach and removed on Destroy.
//
// Widget methods run on the host's update loop, but tea commands (and host
// goroutines) may call Find concurrently, so the table is mutex-guarded.
type Registry struct {
	mu      sync.RWMutex
	widgets map[string]*Widget
}

// NewRegistry returns an empty registry. Applications that want full control
// over widget scoping create one and pass it via WithRegistry; everyone else
// gets the process-wide default.
func NewRegistry() *Registry {
	return &Registry{widgets: make(map[string]*Widget)}
}

var (
	defaultMu  sync.Mutex
	defaultReg = NewRegistry()
)

// Default returns the process-wide registry used when no WithRegistry option
// is given.
func Default() *Registry {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultReg
}

// ResetDefault destroys every widget in the default registry and installs a
// fresh one. Call at application shutdown or test teardown.
func ResetDefault() {
	defaultMu.Lock()
	old := defaultReg
	defaultReg = NewRegistry()
	defaultMu.Unlock()
	old.Reset()
}

// Find returns the widget registered under key in the default registry.
func Find(key string) (*Widget, bool) {
	return Default().Find(key)
}

// Find returns the widget registered under key, if any.
func (r *Registry) Find(key string) (*Widget, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.widgets[key]
	return w, ok
}

// Len returns the number of registered widgets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.widgets)
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.widgets))
	for k := range r.widgets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset destroys every registered widget and empties the table.
func (r *Registry) Reset() {
	r.mu.Lock()
	ws := make([]*Widget, 0, len(r.widgets))
	for _, w := range r.widgets {
		ws = append(ws, w)
	}
	r.widgets = make(map[string]*Widget)
	r.mu.Unlock()

	// Widgets are already out of the table; discard skips the release step.
	for _, w := range ws {
		w.discard()
	}
}

// claim inserts w under key iff the key is free.
func (r *Registry) claim(key string, w *Widget) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.widgets[key]; taken {
		return false
	}
	r.widgets[key] = w
	return true
}

// replace swaps the owner of key to w and returns the previous owner.
// Used by overwrite attach to transfer visual ownership.
func (r *Registry) replace(key string, w *Widget) (*Widget, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.widgets[key]
	r.widgets[key] = w
	return old, ok
}

// release removes key iff w still owns it. A superseded widget calling
// Destroy must not evict the widget that took over its key.
func (r *Registry) release(key string, w *Widget) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.widgets[key] != w {
		return false
	}
	delete(r.widgets, key)
	return true
}
