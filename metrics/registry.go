package metrics

import (
	"maps"
	"slices"
	"sync"
)

// Registry holds metrics keyed by name with get-or-create semantics, so
// callers never check for nil.
type Registry struct {
	mu         sync.RWMutex
	counters   map[string]*Counter
	gauges     map[string]*Gauge
	histograms map[string]*Histogram
}

// DefaultRegistry is the process-wide registry behind the metrics declared
// in standard.go.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		counters:   make(map[string]*Counter),
		gauges:     make(map[string]*Gauge),
		histograms: make(map[string]*Histogram),
	}
}

func lookup[T any](mu *sync.RWMutex, m map[string]*T, name string, create func(string) *T) *T {
	mu.RLock()
	v := m[name]
	mu.RUnlock()
	if v != nil {
		return v
	}
	mu.Lock()
	defer mu.Unlock()
	if v = m[name]; v == nil {
		v = create(name)
		m[name] = v
	}
	return v
}

// Counter returns the Counter registered under name, creating it on first use.
func (r *Registry) Counter(name string) *Counter {
	return lookup(&r.mu, r.counters, name, NewCounter)
}

// Gauge returns the Gauge registered under name, creating it on first use.
func (r *Registry) Gauge(name string) *Gauge {
	return lookup(&r.mu, r.gauges, name, NewGauge)
}

// Histogram returns the Histogram registered under name, creating it on
// first use.
func (r *Registry) Histogram(name string) *Histogram {
	return lookup(&r.mu, r.histograms, name, NewHistogram)
}

// Names returns the sorted names of every registered metric.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := slices.Collect(maps.Keys(r.counters))
	names = slices.AppendSeq(names, maps.Keys(r.gauges))
	names = slices.AppendSeq(names, maps.Keys(r.histograms))
	slices.Sort(names)
	return names
}

// Snapshot copies every metric value: int64 for counters and gauges, a
// Summary for histograms. The result encodes directly as JSON.
func (r *Registry) Snapshot() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := make(map[string]any, len(r.counters)+len(r.gauges)+len(r.histograms))
	for name, c := range r.counters {
		snap[name] = c.Value()
	}
	for name, g := range r.gauges {
		snap[name] = g.Value()
	}
	for name, h := range r.histograms {
		snap[name] = h.Summary()
	}
	return snap
}
