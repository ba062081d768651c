package render

import (
	"image"
	"image/color"

	"github.com/lixenwraith/reel/vmath"
)

// Target is the drawing surface handed to animation draw strategies
// Coordinates are target pixels; the current transform applies to every DrawImage
type Target interface {
	// DrawImage maps img's bounds onto dst, then through the current transform
	DrawImage(img image.Image, dst vmath.Rect)
	SetTransform(m vmath.Affine)
	Transform() vmath.Affine
	Clear(c color.Color)
	// Present pushes the composed frame to its destination
	Present() error
}
