// Package status holds the live gauges the renderer's panel and status bar
// read. Writers are engine-side, readers are render-side; all cells are
// atomic so no lock spans the two.
package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Registry is the central gauge facade
// Consumers cache cell pointers once and read/write atomics directly
type Registry struct {
	mu    sync.RWMutex
	ints  map[string]*atomic.Int64
	bools map[string]*atomic.Bool
	texts map[string]*Text
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		ints:  make(map[string]*atomic.Int64),
		bools: make(map[string]*atomic.Bool),
		texts: make(map[string]*Text),
	}
}

// Int returns (creating if needed) the named integer gauge
func (r *Registry) Int(name string) *atomic.Int64 {
	r.mu.RLock()
	g, ok := r.ints[name]
	r.mu.RUnlock()
	if ok {
		return g
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok = r.ints[name]; ok {
		return g
	}
	g = &atomic.Int64{}
	r.ints[name] = g
	return g
}

// Bool returns (creating if needed) the named flag
func (r *Registry) Bool(name string) *atomic.Bool {
	r.mu.RLock()
	f, ok := r.bools[name]
	r.mu.RUnlock()
	if ok {
		return f
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok = r.bools[name]; ok {
		return f
	}
	f = &atomic.Bool{}
	r.bools[name] = f
	return f
}

// Text returns (creating if needed) the named text cell
func (r *Registry) Text(name string) *Text {
	r.mu.RLock()
	t, ok := r.texts[name]
	r.mu.RUnlock()
	if ok {
		return t
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok = r.texts[name]; ok {
		return t
	}
	t = &Text{}
	r.texts[name] = t
	return t
}

// IntSnapshot returns all integer gauges in name order, for the panel
func (r *Registry) IntSnapshot() []IntSample {
	r.mu.RLock()
	defer r.mu.RUnlock()
	samples := make([]IntSample, 0, len(r.ints))
	for name, g := range r.ints {
		samples = append(samples, IntSample{Name: name, Value: g.Load()})
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples
}

// IntSample is one gauge reading
type IntSample struct {
	Name  string
	Value int64
}

// Text is an atomic string cell. Zero value holds ""
type Text struct {
	v atomic.Value
}

// Set stores s atomically
func (t *Text) Set(s string) {
	t.v.Store(s)
}

// Get loads the stored string
func (t *Text) Get() string {
	if s, ok := t.v.Load().(string); ok {
		return s
	}
	return ""
}
