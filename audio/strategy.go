package audio

import (
	"github.com/lixenwraith/reel/animation"
	"github.com/lixenwraith/reel/render"
)

// Clicker is anything that can play a loop cue, usually *Cue
type Clicker interface {
	Click()
}

// WithCue decorates a draw strategy so cue clicks whenever playback wraps to an earlier frame
func WithCue[T, S any](cue Clicker, draw animation.DrawFunc[T, S]) animation.DrawFunc[T, S] {
	var (
		last    uint
		started bool
	)
	return func(state *T, frame uint, target render.Target, shape S) error {
		if started && frame < last {
			cue.Click()
		}
		last, started = frame, true
		return draw(state, frame, target, shape)
	}
}
