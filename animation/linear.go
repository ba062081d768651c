package animation

import (
	"github.com/lixenwraith/reel/render"
)

// DrawFunc renders one frame of state into target at shape
// May mutate state and target; must not retain either beyond the call
type DrawFunc[T, S any] func(state *T, frame uint, target render.Target, shape S) error

// Config describes a Linear animation before it starts playing
type Config[T, S any] struct {
	// State is the initial animation state, owned by the animation afterwards
	State T
	// Ticks controls playback speed
	Ticks TickSource
	// Draw renders the current frame
	Draw DrawFunc[T, S]
	// FrameCount returns how many frames the animation has before it loops
	FrameCount FrameCountFunc[T]
}

// Animation converts the config into a ready-to-draw Linear animation
func (c Config[T, S]) Animation() *Linear[T, S] {
	return NewLinear(c)
}

// Linear ties a state, a draw strategy and a FrameClock into a drawable unit
type Linear[T, S any] struct {
	state T
	draw  DrawFunc[T, S]
	clock *FrameClock[T]
}

// NewLinear creates a Linear animation, panics on a nil strategy, frame count or tick source
func NewLinear[T, S any](cfg Config[T, S]) *Linear[T, S] {
	if cfg.Draw == nil {
		panic("animation: nil draw strategy")
	}
	return &Linear[T, S]{
		state: cfg.State,
		draw:  cfg.Draw,
		clock: NewFrameClock(cfg.Ticks, cfg.FrameCount),
	}
}

// Draw advances playback and renders the resulting frame
// Strategy errors are returned unchanged; the frame index is not rolled back
func (l *Linear[T, S]) Draw(target render.Target, shape S) error {
	frame := l.clock.Advance(&l.state)
	return l.draw(&l.state, frame, target, shape)
}

// Reset rewinds playback to the first frame, state is left untouched
func (l *Linear[T, S]) Reset() {
	l.clock.Reset()
}

// SetState replaces the animation state, playback position is kept
func (l *Linear[T, S]) SetState(state T) {
	l.state = state
}

// State returns the live animation state
func (l *Linear[T, S]) State() *T {
	return &l.state
}

// Frame returns the most recently drawn frame index
func (l *Linear[T, S]) Frame() uint {
	return l.clock.Index()
}

var (
	_ BasicAnimation[struct{}] = (*Linear[int, struct{}])(nil)
	_ Resettable               = (*Linear[int, struct{}])(nil)
	_ EditableState[int]       = (*Linear[int, struct{}])(nil)
)
