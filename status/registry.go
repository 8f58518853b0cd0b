// Package status is the telemetry facade: named atomic counters that systems cache at
// construction and bump from the tick loop, read back by the sandbox and diagnostics.
package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Metric is a sampled counter value
type Metric struct {
	Name  string
	Value int64
}

// Registry holds named int64 counters
// Registration uses mutex; cached pointer access is lock-free
type Registry struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[string]*atomic.Int64),
	}
}

// Int returns the counter for name, creating it on first use
func (r *Registry) Int(name string) *atomic.Int64 {
	r.mu.RLock()
	if ptr, ok := r.items[name]; ok {
		r.mu.RUnlock()
		return ptr
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if ptr, ok := r.items[name]; ok {
		return ptr
	}
	ptr := new(atomic.Int64)
	r.items[name] = ptr
	return ptr
}

// Value reads a counter without creating it
func (r *Registry) Value(name string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if ptr, ok := r.items[name]; ok {
		return ptr.Load()
	}
	return 0
}

// Snapshot returns all counters sorted by name
func (r *Registry) Snapshot() []Metric {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Metric, 0, len(r.items))
	for name, ptr := range r.items {
		out = append(out, Metric{Name: name, Value: ptr.Load()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Count returns the number of registered counters
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
