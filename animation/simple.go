package animation

import (
	"fmt"
	"image"

	"github.com/lixenwraith/reel/render"
	"github.com/lixenwraith/reel/vmath"
)

// Frames is the state of a simple sequence animation
type Frames = []image.Image

// SimpleConfig is the easiest animation: images drawn in order, switching on each tick
type SimpleConfig struct {
	// Frames make up the animation, in playback order
	Frames Frames
	// Ticks controls how fast the animation plays
	Ticks TickSource
}

// Animation converts the config into a rectangle-placed sequence animation
func (c SimpleConfig) Animation() *Linear[Frames, vmath.Rect] {
	return NewLinear(Config[Frames, vmath.Rect]{
		State:      c.Frames,
		Ticks:      c.Ticks,
		Draw:       DrawFrame,
		FrameCount: CountFrames,
	})
}

// SimpleCircleConfig is SimpleConfig for circle placement, frames fill the circle's bounding square
type SimpleCircleConfig SimpleConfig

// Animation converts the config into a circle-placed sequence animation
func (c SimpleCircleConfig) Animation() *Linear[Frames, vmath.Circle] {
	return NewLinear(Config[Frames, vmath.Circle]{
		State: c.Frames,
		Ticks: c.Ticks,
		Draw: func(state *Frames, frame uint, target render.Target, shape vmath.Circle) error {
			return DrawFrame(state, frame, target, shape.Bounds())
		},
		FrameCount: CountFrames,
	})
}

// DrawFrame is the draw strategy of SimpleConfig, exported for decoration
func DrawFrame(state *Frames, frame uint, target render.Target, shape vmath.Rect) error {
	target.DrawImage(frameAt(*state, frame), shape)
	return nil
}

// CountFrames is the frame count of SimpleConfig
func CountFrames(state *Frames) uint {
	return uint(len(*state))
}

// frameAt panics instead of clamping: an out-of-range index means the frame
// count function and the sequence disagree
func frameAt(frames Frames, frame uint) image.Image {
	if frame >= uint(len(frames)) {
		panic(fmt.Sprintf("animation: frame %d out of range, sequence has %d frames", frame, len(frames)))
	}
	return frames[frame]
}
