package asset

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ErrSheetBounds is returned when a sheet request reaches past the image
var ErrSheetBounds = errors.New("asset: sheet request out of bounds")

// Sheet selects a run of equally sized frames from a sprite sheet
// Frames are read left to right starting at (Row, ColStart) and continue onto following rows
type Sheet struct {
	FrameW   int `yaml:"frame_w"`
	FrameH   int `yaml:"frame_h"`
	Row      int `yaml:"row"`
	ColStart int `yaml:"col_start"`
	Count    int `yaml:"count"`
}

// SliceSheet cuts frames out of img as described by s
func SliceSheet(img image.Image, s Sheet) ([]image.Image, error) {
	if s.FrameW <= 0 || s.FrameH <= 0 {
		return nil, fmt.Errorf("asset: invalid frame size %dx%d", s.FrameW, s.FrameH)
	}
	if s.Count <= 0 {
		return nil, ErrNoFrames
	}
	if s.Row < 0 || s.ColStart < 0 {
		return nil, fmt.Errorf("%w: start row %d col %d", ErrSheetBounds, s.Row, s.ColStart)
	}

	b := img.Bounds()
	cols, rows := b.Dx()/s.FrameW, b.Dy()/s.FrameH
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("%w: %v smaller than one %dx%d frame", ErrSheetBounds, b.Size(), s.FrameW, s.FrameH)
	}

	first := s.Row*cols + s.ColStart
	if s.ColStart >= cols || first+s.Count > cols*rows {
		return nil, fmt.Errorf("%w: %d frames from row %d col %d, sheet is %dx%d", ErrSheetBounds, s.Count, s.Row, s.ColStart, cols, rows)
	}

	frames := make([]image.Image, s.Count)
	for i := range frames {
		n := first + i
		x, y := b.Min.X+(n%cols)*s.FrameW, b.Min.Y+(n/cols)*s.FrameH
		frames[i] = crop(img, image.Rect(x, y, x+s.FrameW, y+s.FrameH))
	}
	return frames, nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// crop shares pixels with img when the image type allows it, copies otherwise
func crop(img image.Image, r image.Rectangle) image.Image {
	if sub, ok := img.(subImager); ok {
		return sub.SubImage(r)
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst
}
