package asset

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Spinner draws n frames of a rotating arc, shown while real frames load
// or when a configuration names no frame source
func Spinner(size, n int, fg color.Color) []image.Image {
	if size <= 0 || n <= 0 {
		return nil
	}

	frames := make([]image.Image, n)
	c := float64(size) / 2
	radius := c * 0.7
	for i := range frames {
		dc := gg.NewContext(size, size)
		start := 2 * math.Pi * float64(i) / float64(n)

		dc.SetColor(fg)
		dc.SetLineWidth(math.Max(1, float64(size)/8))
		dc.SetLineCapRound()
		dc.DrawArc(c, c, radius, start, start+math.Pi*1.5)
		dc.Stroke()

		frames[i] = dc.Image()
	}
	return frames
}

// Checker draws a two-colour checkerboard, used to make scaling visible
func Checker(w, h, cell int, a, b color.Color) image.Image {
	dc := gg.NewContext(w, h)
	if cell <= 0 {
		cell = 1
	}
	for y := 0; y < h; y += cell {
		for x := 0; x < w; x += cell {
			if (x/cell+y/cell)%2 == 0 {
				dc.SetColor(a)
			} else {
				dc.SetColor(b)
			}
			dc.DrawRectangle(float64(x), float64(y), float64(cell), float64(cell))
			dc.Fill()
		}
	}
	return dc.Image()
}
