package status

import (
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric keys written by the player loop
const (
	KeyFrames = "player.frames"
	KeyErrors = "player.errors"
	KeyFPS    = "player.fps"
	KeyState  = "player.state"
)

// Registry groups metrics by value type
// Writers cache pointers at setup; readers call Format or Range
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Format renders every metric as sorted key=value pairs on one line
func (r *Registry) Format() string {
	var parts []string
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, k+"="+strconv.FormatFloat(v.Get(), 'f', 1, 64))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		parts = append(parts, k+"="+v.Load())
	})
	slices.Sort(parts)
	return strings.Join(parts, " ")
}
