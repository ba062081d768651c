package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reel/animation"
	"github.com/lixenwraith/reel/asset"
	"github.com/lixenwraith/reel/config"
	"github.com/lixenwraith/reel/core"
	"github.com/lixenwraith/reel/engine"
	"github.com/lixenwraith/reel/player"
	"github.com/lixenwraith/reel/render"
	"github.com/lixenwraith/reel/status"
)

// PlayCmd plays in the terminal; space pauses, r rewinds, q or Esc quits
type PlayCmd struct {
	Frames []string `arg:"" optional:"" type:"existingfile" help:"Images to play in order, overrides the configured source."`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := loadConfig(g, c.Frames)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		screen.Fini()
		core.SetCrashScreen(nil)
	}()

	term := render.NewTerminal(screen)
	clock := engine.NewPausableClock(nil)
	ticks, err := engine.TimePerSecond(cfg.FPS, clock)
	if err != nil {
		return err
	}
	cue, stopCue := startCue(cfg)
	defer stopCue()

	// Spinner plays until the real frames are decoded
	d := drawable(cfg, asset.Spinner(64, 12, render.MustParseColor("lightsteelblue")), ticks, cue)

	var loadErr error
	tasks := make(chan func(), 1)
	results := loadFramesAsync(ctx, cfg)
	core.Go(func() {
		res := <-results
		tasks <- func() {
			if err := swapFrames(d, res); err != nil {
				loadErr = err
				cancel()
			}
		}
	})

	metrics := status.NewRegistry()
	loop := &player.Loop{
		Target:     term,
		Background: bg,
		Interval:   cfg.RenderInterval(),
		Drawables:  []player.Drawable{d},
		Metrics:    metrics,
		MaxFrames:  cfg.MaxFrames,
		Events:     player.TerminalEvents(screen),
		Clock:      clock,
		Tasks:      tasks,
	}

	err = loop.Run(ctx)
	log.Printf("play: %s", metrics.Format())
	if loadErr != nil {
		return loadErr
	}
	return err
}

// loadFramesAsync decodes the configured source in the background
func loadFramesAsync(ctx context.Context, cfg *config.Config) <-chan asset.Result {
	if len(cfg.Frames) > 0 {
		return asset.LoadAsync(ctx, cfg.Frames...)
	}
	out := make(chan asset.Result, 1)
	core.Go(func() {
		frames, err := loadFrames(ctx, cfg)
		out <- asset.Result{Frames: frames, Err: err}
		close(out)
	})
	return out
}

// swapFrames replaces the placeholder frames of d with a finished load and rewinds it
func swapFrames(d player.Drawable, res asset.Result) error {
	if res.Err != nil {
		return res.Err
	}
	if err := animation.SetState(d, res.Frames); err != nil {
		return fmt.Errorf("swap frames: %w", err)
	}
	if err := animation.Reset(d); err != nil {
		return fmt.Errorf("rewind after swap: %w", err)
	}
	log.Printf("play: swapped in %d frames", len(res.Frames))
	return nil
}
