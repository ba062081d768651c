package animation

import (
	"fmt"
	"math/bits"
)

// TickSource reports fixed-size intervals elapsed since the previous poll
// Poll is consuming: a second poll with no new elapsed time returns 0
type TickSource interface {
	Poll() uint
	Reset()
}

// FrameCountFunc returns the current number of frames for a state
// Must be > 0 whenever the animation is advanced
type FrameCountFunc[T any] func(state *T) uint

// FrameClock folds elapsed ticks into a frame index bounded by a state-dependent frame count
// Frame count is re-read on every advance, never cached
type FrameClock[T any] struct {
	index uint
	ticks TickSource
	count FrameCountFunc[T]
}

// NewFrameClock creates a clock starting at frame 0
func NewFrameClock[T any](ticks TickSource, count FrameCountFunc[T]) *FrameClock[T] {
	if ticks == nil {
		panic("animation: nil tick source")
	}
	if count == nil {
		panic("animation: nil frame count function")
	}
	return &FrameClock[T]{ticks: ticks, count: count}
}

// Advance polls the tick source once and returns the updated frame index
// Panics when the frame count is zero
func (c *FrameClock[T]) Advance(state *T) uint {
	passed := c.ticks.Poll()
	n := c.frameCount(state)

	if sum, carry := bits.Add(c.index, passed, 0); carry == 0 {
		c.index = sum % n
		return c.index
	}

	// index + passed does not fit: reduce the ticks first, then fold in the index
	// The frame count is queried again for the second reduction
	bounded := passed % n
	m := c.frameCount(state)
	c.index = addMod(bounded%m, c.index%m, m)
	return c.index
}

// Index returns the last computed frame index without polling
func (c *FrameClock[T]) Index() uint {
	return c.index
}

// Reset rewinds to frame 0 and drops accumulated ticks
func (c *FrameClock[T]) Reset() {
	c.index = 0
	c.ticks.Reset()
}

func (c *FrameClock[T]) frameCount(state *T) uint {
	n := c.count(state)
	if n == 0 {
		panic(fmt.Sprintf("animation: frame count is zero (index %d)", c.index))
	}
	return n
}

// addMod returns (a + b) mod m for a, b < m without overflowing
func addMod(a, b, m uint) uint {
	if a >= m-b {
		return a - (m - b)
	}
	return a + b
}
