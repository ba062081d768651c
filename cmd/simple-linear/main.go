// The simplest animation: a series of images, a timer decides which one is shown
//
// Usage:
//
//	simple-linear img1.png img2.png img3.png img4.png
//	simple-linear -fps 4      # no images: plays a generated spinner
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reel/animation"
	"github.com/lixenwraith/reel/asset"
	"github.com/lixenwraith/reel/core"
	"github.com/lixenwraith/reel/engine"
	"github.com/lixenwraith/reel/player"
	"github.com/lixenwraith/reel/render"
	"github.com/lixenwraith/reel/vmath"
)

var fps = flag.Float64("fps", 8, "Images shown per second")

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	flag.Parse()

	frames, err := loadFrames(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(frames); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadFrames(paths []string) (animation.Frames, error) {
	if len(paths) == 0 {
		return asset.Spinner(64, 4, color.RGBA{R: 200, G: 40, B: 40, A: 255}), nil
	}
	return asset.Load(context.Background(), paths...)
}

func run(frames animation.Frames) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	core.SetCrashScreen(screen)
	defer screen.Fini()

	ticks, err := engine.TimePerSecond(*fps, nil)
	if err != nil {
		return err
	}
	anim := animation.SimpleConfig{Frames: frames, Ticks: ticks}.Animation()

	term := render.NewTerminal(screen)
	loop := &player.Loop{
		Target:     term,
		Background: color.White,
		Drawables:  []player.Drawable{animation.ContainRect(anim, centered(term))},
		Events:     player.TerminalEvents(screen),
	}
	return loop.Run(context.Background())
}

// centered places a square of half the shorter side in the middle of the target
func centered(t *render.Terminal) vmath.Rect {
	b := t.Bounds()
	side := float64(min(b.Dx(), b.Dy())) / 2
	return vmath.R((float64(b.Dx())-side)/2, (float64(b.Dy())-side)/2, side, side)
}
