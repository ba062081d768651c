package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/lixenwraith/reel/vmath"
)

// Canvas is an in-memory RGBA surface implementing every Target operation except Present
// Backends embed it and add their own Present
type Canvas struct {
	img       *image.RGBA
	transform vmath.Affine
	interp    draw.Interpolator
}

// NewCanvas creates a transparent w x h canvas with identity transform
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		transform: vmath.Identity,
		interp:    draw.ApproxBiLinear,
	}
}

// Image exposes the backing pixels, valid until the next Resize
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the canvas pixel rectangle
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// Resize reallocates the surface when dimensions change, content is discarded
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if b := c.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// SetInterpolator selects the resampling kernel used by DrawImage
func (c *Canvas) SetInterpolator(interp draw.Interpolator) {
	c.interp = interp
}

func (c *Canvas) SetTransform(m vmath.Affine) {
	c.transform = m
}

func (c *Canvas) Transform() vmath.Affine {
	return c.transform
}

func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawImage composites img over the canvas, scaled to dst and transformed
// Empty images and degenerate rectangles draw nothing
func (c *Canvas) DrawImage(img image.Image, dst vmath.Rect) {
	sb := img.Bounds()
	if sb.Empty() || dst.W <= 0 || dst.H <= 0 {
		return
	}

	// source pixels -> unit placement in dst -> current transform
	m := c.transform.
		Mul(vmath.Translation(dst.Position())).
		Mul(vmath.Scaling(dst.W/float64(sb.Dx()), dst.H/float64(sb.Dy()))).
		Mul(vmath.Translation(vmath.V2(-float64(sb.Min.X), -float64(sb.Min.Y))))

	c.interp.Transform(c.img, f64.Aff3(m), img, sb, draw.Over, nil)
}

var _ interface {
	DrawImage(image.Image, vmath.Rect)
	SetTransform(vmath.Affine)
	Transform() vmath.Affine
	Clear(color.Color)
} = (*Canvas)(nil)
