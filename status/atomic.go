package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 updated with atomic bit operations
// Zero value is ready to use
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Add atomically adds delta and returns the new value
func (f *AtomicFloat) Add(delta float64) float64 {
	for {
		old := f.bits.Load()
		next := math.Float64frombits(old) + delta
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// AtomicString holds a short label such as a playback state
// Zero value is ready to use
type AtomicString struct {
	ptr atomic.Pointer[string]
}

func (s *AtomicString) Store(val string) {
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
