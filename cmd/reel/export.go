package main

import (
	"context"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/lixenwraith/reel/config"
	"github.com/lixenwraith/reel/engine"
	"github.com/lixenwraith/reel/player"
	"github.com/lixenwraith/reel/render"
	"github.com/lixenwraith/reel/status"
)

// ExportCmd renders frames to numbered PNG files on a simulated clock
// Output is identical between runs for the same configuration
type ExportCmd struct {
	Frames    []string `arg:"" optional:"" type:"existingfile" help:"Images to play in order, overrides the configured source."`
	Out       string   `short:"o" type:"path" help:"Output directory, overrides output_dir."`
	Width     int      `help:"Image width, defaults to fit the shape."`
	Height    int      `help:"Image height, defaults to fit the shape."`
	MaxFrames int      `help:"Frames to render, defaults to max_frames or one full loop."`
}

func (c *ExportCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g, c.Frames)
	if err != nil {
		return err
	}
	if c.Out != "" {
		cfg.OutputDir = c.Out
	}
	if c.MaxFrames > 0 {
		cfg.MaxFrames = c.MaxFrames
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	frames, err := loadFrames(context.Background(), cfg)
	if err != nil {
		return err
	}

	w, h := c.Width, c.Height
	if w <= 0 || h <= 0 {
		w, h = canvasSize(cfg)
	}
	raster := render.NewRaster(w, h, render.DirSink{Dir: cfg.OutputDir})

	n, err := export(cfg, frames, raster)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d frames to %s\n", n, cfg.OutputDir)
	return nil
}

// export renders onto target, advancing a manual clock by one render interval per frame
func export(cfg *config.Config, frames []image.Image, target render.Target) (int, error) {
	wall := engine.NewManualClock(time.Unix(0, 0))
	ticks, err := engine.NewTicker(cfg.TickInterval(), wall)
	if err != nil {
		return 0, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return 0, err
	}

	loop := &player.Loop{
		Target:     target,
		Background: bg,
		Drawables:  []player.Drawable{drawable(cfg, frames, ticks, nil)},
		Metrics:    status.NewRegistry(),
	}

	n := cfg.MaxFrames
	if n <= 0 {
		n = loopLength(len(frames), cfg)
	}
	for i := 0; i < n; i++ {
		if err := loop.Step(); err != nil {
			return loop.Frames(), err
		}
		wall.Advance(cfg.RenderInterval())
	}
	return loop.Frames(), nil
}

// loopLength is the number of rendered frames that covers one pass over the sequence
func loopLength(frames int, cfg *config.Config) int {
	return max(1, int(math.Ceil(float64(frames)*cfg.RenderFPS/cfg.FPS)))
}

// canvasSize fits the configured shape with its origin offset
func canvasSize(cfg *config.Config) (int, int) {
	b := cfg.Rect().Image()
	if cfg.Circle {
		b = cfg.CircleShape().Bounds().Image()
	}
	return max(1, b.Max.X), max(1, b.Max.Y)
}
