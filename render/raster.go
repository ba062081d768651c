package render

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
)

// FrameSink receives each presented frame as PNG bytes
type FrameSink interface {
	WriteFrame(n int, png []byte) error
}

// FrameSinkFunc adapts a function to FrameSink
type FrameSinkFunc func(n int, png []byte) error

func (f FrameSinkFunc) WriteFrame(n int, png []byte) error {
	return f(n, png)
}

// DirSink writes frames as numbered PNG files under Dir
type DirSink struct {
	Dir string
	// Pattern is a fmt verb taking the frame number, default "frame-%05d.png"
	Pattern string
}

func (d DirSink) WriteFrame(n int, png []byte) error {
	pattern := d.Pattern
	if pattern == "" {
		pattern = "frame-%05d.png"
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(d.Dir, fmt.Sprintf(pattern, n))
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Raster is an offscreen target; each Present emits one PNG frame to its sink
type Raster struct {
	*Canvas
	ctx    *gg.Context
	sink   FrameSink
	frames int
}

// NewRaster creates a w x h offscreen target
func NewRaster(w, h int, sink FrameSink) *Raster {
	c := NewCanvas(w, h)
	return &Raster{
		Canvas: c,
		ctx:    gg.NewContextForRGBA(c.Image()),
		sink:   sink,
	}
}

// Clear fills the surface through the gg context
func (r *Raster) Clear(col color.Color) {
	r.ctx.SetColor(col)
	r.ctx.Clear()
}

// Resize reallocates the surface and rebinds the gg context
func (r *Raster) Resize(w, h int) {
	r.Canvas.Resize(w, h)
	r.ctx = gg.NewContextForRGBA(r.Image())
}

// Present encodes the current surface and hands it to the sink
func (r *Raster) Present() error {
	var buf bytes.Buffer
	if err := r.ctx.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode frame %d: %w", r.frames, err)
	}
	if err := r.sink.WriteFrame(r.frames, buf.Bytes()); err != nil {
		return fmt.Errorf("sink frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns how many frames have been presented
func (r *Raster) Frames() int {
	return r.frames
}

var _ Target = (*Raster)(nil)
