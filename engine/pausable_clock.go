package engine

import (
	"sync"
	"time"
)

// PausableClock is a TimeProvider whose time stands still while paused
// Tickers driven by it stop producing ticks during a pause and resume without a jump
type PausableClock struct {
	mu sync.RWMutex

	base   TimeProvider
	paused bool
	// pausedAt is base time when the current pause began
	pausedAt time.Time
	// offset is the cumulative duration spent paused
	offset time.Duration
}

// NewPausableClock wraps base, nil means the system clock
func NewPausableClock(base TimeProvider) *PausableClock {
	if base == nil {
		base = NewMonotonicTimeProvider()
	}
	return &PausableClock{base: base}
}

// Now returns base time minus all paused time, frozen at the pause point while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pausedAt.Add(-pc.offset)
	}
	return pc.base.Now().Add(-pc.offset)
}

// Pause freezes time, no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pausedAt = pc.base.Now()
}

// Resume continues time from where it froze, no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.offset += pc.base.Now().Sub(pc.pausedAt)
	pc.paused = false
	pc.pausedAt = time.Time{}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// TotalPauseDuration returns cumulative paused time, including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.offset
	if pc.paused {
		total += pc.base.Now().Sub(pc.pausedAt)
	}
	return total
}
