package asset

import (
	"fmt"
	"image"
	"image/gif"
	"os"
	"time"

	"golang.org/x/image/draw"
)

// Clip is a decoded animated GIF with every frame composited to full size
type Clip struct {
	Frames []image.Image
	Delays []time.Duration
}

// Duration returns the total playback time of one loop
func (c Clip) Duration() time.Duration {
	var d time.Duration
	for _, delay := range c.Delays {
		d += delay
	}
	return d
}

// LoadGIF decodes an animated GIF from disk
func LoadGIF(path string) (Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return Clip{}, fmt.Errorf("load gif %s: %w", path, err)
	}
	defer f.Close()

	g, err := gif.DecodeAll(f)
	if err != nil {
		return Clip{}, fmt.Errorf("decode gif %s: %w", path, err)
	}
	return Composite(g)
}

// Composite flattens GIF frames, applying each frame's disposal method
// GIF frames are deltas over the previous frame; the result frames are standalone
func Composite(g *gif.GIF) (Clip, error) {
	if len(g.Image) == 0 {
		return Clip{}, ErrNoFrames
	}

	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}

	canvas := image.NewRGBA(bounds)
	clip := Clip{
		Frames: make([]image.Image, 0, len(g.Image)),
		Delays: make([]time.Duration, 0, len(g.Image)),
	}

	for i, frame := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var previous *image.RGBA
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		clip.Frames = append(clip.Frames, cloneRGBA(canvas))

		delay := 0
		if i < len(g.Delay) {
			delay = g.Delay[i]
		}
		// Delays are in hundredths of a second
		clip.Delays = append(clip.Delays, time.Duration(delay)*10*time.Millisecond)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return clip, nil
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
