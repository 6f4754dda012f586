package obs

import (
	"sort"
	"strings"
	"sync"
)

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, value float64, labels ...Label)
	Histogram(name string, value float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// MapMeter accumulates counters in memory, keyed by name plus sorted
// labels. Histograms record count and sum only. Useful for tests and
// for a one-shot summary dump.
type MapMeter struct {
	mu       sync.Mutex
	counters map[string]float64
	hists    map[string]histStat
}

type histStat struct {
	Count int64
	Sum   float64
}

func NewMapMeter() *MapMeter {
	return &MapMeter{
		counters: make(map[string]float64),
		hists:    make(map[string]histStat),
	}
}

func (m *MapMeter) Counter(name string, value float64, labels ...Label) {
	k := seriesKey(name, labels)
	m.mu.Lock()
	m.counters[k] += value
	m.mu.Unlock()
}

func (m *MapMeter) Histogram(name string, value float64, labels ...Label) {
	k := seriesKey(name, labels)
	m.mu.Lock()
	h := m.hists[k]
	h.Count++
	h.Sum += value
	m.hists[k] = h
	m.mu.Unlock()
}

// CounterValue returns the accumulated total for a series, summed over
// every label combination of the given name.
func (m *MapMeter) CounterValue(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var total float64
	for k, v := range m.counters {
		if k == name || strings.HasPrefix(k, name+"{") {
			total += v
		}
	}
	return total
}

// Snapshot returns a copy of every counter series.
func (m *MapMeter) Snapshot() map[string]float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]float64, len(m.counters))
	for k, v := range m.counters {
		out[k] = v
	}
	return out
}

func seriesKey(name string, labels []Label) string {
	if len(labels) == 0 {
		return name
	}
	ls := make([]string, len(labels))
	for i, l := range labels {
		ls[i] = l.Key + "=" + l.Value
	}
	sort.Strings(ls)
	return name + "{" + strings.Join(ls, ",") + "}"
}
