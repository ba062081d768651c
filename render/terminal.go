package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// halfBlock paints the upper pixel as foreground and the lower as background
const halfBlock = '▀'

// Terminal draws into a tcell screen at two vertical pixels per cell
// Canvas size is cols x 2*rows
type Terminal struct {
	*Canvas
	screen tcell.Screen
}

// NewTerminal wraps an initialized screen
func NewTerminal(screen tcell.Screen) *Terminal {
	w, h := screen.Size()
	return &Terminal{
		Canvas: NewCanvas(w, h*2),
		screen: screen,
	}
}

// Screen returns the underlying tcell screen
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Resize matches the canvas to the current screen dimensions
func (t *Terminal) Resize() {
	w, h := t.screen.Size()
	t.Canvas.Resize(w, h*2)
}

// Present packs pixel pairs into half-block cells and shows the screen
func (t *Terminal) Present() error {
	img := t.Image()
	b := img.Bounds()
	cols, rows := t.screen.Size()
	cols = min(cols, b.Dx())
	rows = min(rows, b.Dy()/2)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := img.RGBAAt(x, 2*y)
			bottom := img.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(cellColor(top)).
				Background(cellColor(bottom))
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var _ Target = (*Terminal)(nil)
