// A single image rotated by a custom draw strategy instead of a series of images
// Rotation is computed per frame, allowing much smaller steps than pre-rendered frames
//
// Usage:
//
//	linear square.png
//	linear -step 2 -tps 60    # no image: rotates a generated checkerboard
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/fogleman/ease"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reel/animation"
	"github.com/lixenwraith/reel/asset"
	"github.com/lixenwraith/reel/core"
	"github.com/lixenwraith/reel/engine"
	"github.com/lixenwraith/reel/player"
	"github.com/lixenwraith/reel/render"
	"github.com/lixenwraith/reel/vmath"
)

var (
	tps    = flag.Float64("tps", 30, "Animation frames per second")
	step   = flag.Float64("step", 5, "Degrees per frame at constant speed")
	eased  = flag.Bool("ease", true, "Accelerate and decelerate over each turn")
	circle = flag.Bool("circle", false, "Place the image in a circle instead of a square")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	flag.Parse()

	img, err := loadImage(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := run(img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadImage(path string) (image.Image, error) {
	if path == "" {
		return asset.Checker(64, 64, 16, color.RGBA{R: 30, G: 30, B: 120, A: 255}, color.RGBA{R: 240, G: 200, B: 40, A: 255}), nil
	}
	frames, err := asset.Load(context.Background(), path)
	if err != nil {
		return nil, err
	}
	return frames[0], nil
}

// steps is the number of frames in one full turn
func steps(stepDeg float64) uint {
	return uint(math.Ceil(360 / stepDeg))
}

// angle maps a frame to its rotation in degrees
func angle(frame, n uint, eased bool) float64 {
	t := float64(frame) / float64(n)
	if eased {
		t = ease.InOutQuad(t)
	}
	return 360 * t
}

// rotate draws the image turned about the center of shape
func rotate(n uint, eased bool) animation.DrawFunc[image.Image, vmath.Rect] {
	return func(state *image.Image, frame uint, target render.Target, shape vmath.Rect) error {
		target.SetTransform(vmath.RotateAbout(shape.Center(), angle(frame, n, eased)))
		target.DrawImage(*state, shape)
		target.SetTransform(vmath.Identity)
		return nil
	}
}

func run(img image.Image) error {
	if !(*step > 0) {
		return fmt.Errorf("step must be positive, got %v", *step)
	}
	n := steps(*step)

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()

	clock := engine.NewPausableClock(nil)
	ticks, err := engine.TimePerSecond(*tps, clock)
	if err != nil {
		return err
	}

	term := render.NewTerminal(screen)
	b := term.Bounds()
	side := float64(min(b.Dx(), b.Dy())) / 2
	place := vmath.R((float64(b.Dx())-side)/2, (float64(b.Dy())-side)/2, side, side)

	draw := rotate(n, *eased)
	frameCount := func(*image.Image) uint { return n }

	var d player.Drawable
	if *circle {
		anim := animation.Config[image.Image, vmath.Circle]{
			State: img,
			Ticks: ticks,
			Draw: func(state *image.Image, frame uint, target render.Target, shape vmath.Circle) error {
				return draw(state, frame, target, shape.Bounds())
			},
			FrameCount: frameCount,
		}.Animation()
		d = animation.ContainCircle(anim, vmath.Circle{X: place.Center().X, Y: place.Center().Y, R: side / 2})
	} else {
		anim := animation.Config[image.Image, vmath.Rect]{
			State:      img,
			Ticks:      ticks,
			Draw:       draw,
			FrameCount: frameCount,
		}.Animation()
		d = animation.ContainRect(anim, place)
	}

	loop := &player.Loop{
		Target:     term,
		Background: color.White,
		Drawables:  []player.Drawable{d},
		Events:     player.TerminalEvents(screen),
		Clock:      clock,
	}
	return loop.Run(context.Background())
}
