package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInterval is returned for non-positive tick intervals or rates
var ErrInvalidInterval = errors.New("engine: tick interval must be positive")

// Ticker converts elapsed time into whole fixed-size ticks
// Poll consumes: the sub-interval remainder carries over, whole intervals are reported once
// Not safe for concurrent polling; one animation owns one Ticker
type Ticker struct {
	interval time.Duration
	clock    TimeProvider
	last     time.Time
}

// NewTicker creates a ticker counting from now
func NewTicker(interval time.Duration, clock TimeProvider) (*Ticker, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Ticker{
		interval: interval,
		clock:    clock,
		last:     clock.Now(),
	}, nil
}

// TimePerSecond creates a ticker firing rate times per second
func TimePerSecond(rate float64, clock TimeProvider) (*Ticker, error) {
	if !(rate > 0) {
		return nil, fmt.Errorf("%w: rate %v", ErrInvalidInterval, rate)
	}
	return NewTicker(time.Duration(float64(time.Second)/rate), clock)
}

// Poll returns whole intervals elapsed since the previous poll
// Time moving backwards yields 0 and does not rewind the reference point
func (t *Ticker) Poll() uint {
	elapsed := t.clock.Now().Sub(t.last)
	if elapsed < t.interval {
		return 0
	}
	n := elapsed / t.interval
	t.last = t.last.Add(n * t.interval)
	return uint(n)
}

// Reset drops accumulated time, the next tick is one full interval from now
func (t *Ticker) Reset() {
	t.last = t.clock.Now()
}

// Interval returns the tick length
func (t *Ticker) Interval() time.Duration {
	return t.interval
}
