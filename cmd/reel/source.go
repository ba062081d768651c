package main

import (
	"context"
	"fmt"
	"log"

	"github.com/lixenwraith/reel/animation"
	"github.com/lixenwraith/reel/asset"
	"github.com/lixenwraith/reel/audio"
	"github.com/lixenwraith/reel/config"
	"github.com/lixenwraith/reel/player"
	"github.com/lixenwraith/reel/render"
	"github.com/lixenwraith/reel/vmath"
)

// loadConfig reads the configuration file and applies command line overrides
func loadConfig(g *Globals, frames []string) (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.FPS > 0 {
		cfg.FPS = g.FPS
	}
	if g.Sound {
		cfg.Sound = true
	}
	if len(frames) > 0 {
		cfg.Frames, cfg.GIF, cfg.Sheet = frames, "", nil
	}
	return cfg, nil
}

// loadFrames decodes the configured frame source, frames take precedence over gif and sheet
func loadFrames(ctx context.Context, cfg *config.Config) (animation.Frames, error) {
	switch {
	case len(cfg.Frames) > 0:
		return asset.Load(ctx, cfg.Frames...)

	case cfg.GIF != "":
		clip, err := asset.LoadGIF(cfg.GIF)
		if err != nil {
			return nil, err
		}
		log.Printf("gif %s: %d frames, %v per loop", cfg.GIF, len(clip.Frames), clip.Duration())
		return clip.Frames, nil

	case cfg.Sheet != nil && cfg.Sheet.Path != "":
		imgs, err := asset.Load(ctx, cfg.Sheet.Path)
		if err != nil {
			return nil, err
		}
		return asset.SliceSheet(imgs[0], cfg.Sheet.Sheet)
	}
	return nil, fmt.Errorf("%w: nothing to play", asset.ErrNoFrames)
}

// drawable builds the contained sequence animation described by cfg
// A non-nil cue clicks each time the sequence loops
func drawable(cfg *config.Config, frames animation.Frames, ticks animation.TickSource, cue audio.Clicker) player.Drawable {
	if cfg.Circle {
		var draw animation.DrawFunc[animation.Frames, vmath.Circle] = func(state *animation.Frames, frame uint, target render.Target, shape vmath.Circle) error {
			return animation.DrawFrame(state, frame, target, shape.Bounds())
		}
		if cue != nil {
			draw = audio.WithCue(cue, draw)
		}
		anim := animation.Config[animation.Frames, vmath.Circle]{
			State:      frames,
			Ticks:      ticks,
			Draw:       draw,
			FrameCount: animation.CountFrames,
		}.Animation()
		return animation.ContainCircle(anim, cfg.CircleShape())
	}

	var draw animation.DrawFunc[animation.Frames, vmath.Rect] = animation.DrawFrame
	if cue != nil {
		draw = audio.WithCue(cue, draw)
	}
	anim := animation.Config[animation.Frames, vmath.Rect]{
		State:      frames,
		Ticks:      ticks,
		Draw:       draw,
		FrameCount: animation.CountFrames,
	}.Animation()
	return animation.ContainRect(anim, cfg.Rect())
}

// startCue opens the speaker when sound is enabled; playback continues silently on failure
func startCue(cfg *config.Config) (audio.Clicker, func()) {
	if !cfg.Sound {
		return nil, func() {}
	}
	cue := audio.NewCue()
	if err := cue.Initialize(); err != nil {
		// Non-fatal, animation plays without sound
		log.Printf("audio initialization failed: %v", err)
		return nil, func() {}
	}
	return cue, cue.Cleanup
}
