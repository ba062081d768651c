package player

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/lixenwraith/reel/animation"
	"github.com/lixenwraith/reel/engine"
	"github.com/lixenwraith/reel/render"
	"github.com/lixenwraith/reel/status"
)

// DefaultInterval is used when Loop.Interval is unset, ~30 FPS
const DefaultInterval = 33 * time.Millisecond

// Drawable is anything that renders itself onto a target, typically a contained animation
type Drawable interface {
	Draw(target render.Target) error
}

// Loop redraws a set of drawables onto one target at a fixed rate
type Loop struct {
	Target     render.Target
	Background color.Color
	// Interval between rendered frames, DefaultInterval when zero
	Interval  time.Duration
	Drawables []Drawable
	// Metrics is optional
	Metrics *status.Registry
	// MaxFrames stops the loop after that many presented frames, 0 runs until cancelled
	MaxFrames int
	// Events is optional; a closed channel is ignored
	Events <-chan Command
	// Clock is paused and resumed by CmdTogglePause when set
	Clock *engine.PausableClock
	// Tasks run on the loop goroutine between frames, e.g. swapping in loaded frames
	Tasks <-chan func()

	frames int
}

// Run renders until ctx is cancelled, MaxFrames is reached, a quit command arrives or a draw fails
// Draw and present errors stop the loop and are returned wrapped; the other exits return nil
func (l *Loop) Run(ctx context.Context) error {
	if l.Target == nil {
		return errors.New("player: nil target")
	}
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("player: started, %d drawables every %v", len(l.Drawables), interval)
	defer func() { log.Printf("player: stopped after %d frames", l.frames) }()

	l.setState("playing")
	events, tasks := l.Events, l.Tasks
	lastFrame := time.Now()

	// First frame without waiting a full interval
	if err := l.Step(); err != nil {
		return err
	}

	for !l.done() {
		select {
		case <-ctx.Done():
			return nil

		case cmd, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if !l.Handle(cmd) {
				return nil
			}

		case task, ok := <-tasks:
			if !ok {
				tasks = nil
				continue
			}
			task()

		case now := <-ticker.C:
			if err := l.Step(); err != nil {
				return err
			}
			l.recordFPS(now.Sub(lastFrame))
			lastFrame = now
		}
	}
	return nil
}

// Step renders exactly one frame: clear, draw every drawable in order, present
func (l *Loop) Step() error {
	if l.Background != nil {
		l.Target.Clear(l.Background)
	}
	for i, d := range l.Drawables {
		if err := d.Draw(l.Target); err != nil {
			l.countError()
			return fmt.Errorf("draw %d: %w", i, err)
		}
	}
	if err := l.Target.Present(); err != nil {
		l.countError()
		return fmt.Errorf("present frame %d: %w", l.frames, err)
	}

	l.frames++
	if l.Metrics != nil {
		l.Metrics.Ints.Get(status.KeyFrames).Add(1)
	}
	return nil
}

// Frames returns how many frames have been presented
func (l *Loop) Frames() int {
	return l.frames
}

// Handle applies a command, false means the loop should stop
func (l *Loop) Handle(cmd Command) bool {
	switch cmd {
	case CmdQuit:
		return false

	case CmdResize:
		if r, ok := l.Target.(interface{ Resize() }); ok {
			r.Resize()
		}

	case CmdTogglePause:
		if l.Clock == nil {
			return true
		}
		if l.Clock.Toggle() {
			l.setState("paused")
		} else {
			l.setState("playing")
		}

	case CmdReset:
		for _, d := range l.Drawables {
			// Drawables without a reset capability keep playing
			if err := animation.Reset(d); err != nil && !errors.Is(err, animation.ErrNotSupported) {
				log.Printf("player: reset: %v", err)
			}
		}
	}
	return true
}

func (l *Loop) done() bool {
	return l.MaxFrames > 0 && l.frames >= l.MaxFrames
}

func (l *Loop) countError() {
	if l.Metrics != nil {
		l.Metrics.Ints.Get(status.KeyErrors).Add(1)
	}
}

func (l *Loop) recordFPS(elapsed time.Duration) {
	if l.Metrics == nil || elapsed <= 0 {
		return
	}
	l.Metrics.Floats.Get(status.KeyFPS).Set(float64(time.Second) / float64(elapsed))
}

func (l *Loop) setState(s string) {
	if l.Metrics != nil {
		l.Metrics.Strings.Get(status.KeyState).Store(s)
	}
}
