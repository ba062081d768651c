package render

import (
	"fmt"
	"image/color"

	"github.com/mazznoer/csscolorparser"
)

// ParseColor accepts any CSS color string: names, #hex, rgb(), hsl()
func ParseColor(s string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// MustParseColor is ParseColor for literals, panics on error
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
