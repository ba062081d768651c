package engine

import (
	"sync"
	"time"
)

// TimeProvider is the time source tick sources measure against
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock, monotonic reading included
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a real-time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// ManualClock is a TimeProvider that only moves when told to
// Used by tests and by deterministic export where playback must not depend on wall time
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set jumps to t, backwards jumps are allowed
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
