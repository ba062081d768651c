package player

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/reel/animation"
	"github.com/lixenwraith/reel/engine"
	"github.com/lixenwraith/reel/render"
	"github.com/lixenwraith/reel/status"
	"github.com/lixenwraith/reel/vmath"
)

// traceTarget logs every call so tests can check ordering
type traceTarget struct {
	ops        []string
	presentErr error
}

func (t *traceTarget) DrawImage(img image.Image, dst vmath.Rect) {
	t.ops = append(t.ops, fmt.Sprintf("draw %v", dst.Position()))
}
func (t *traceTarget) SetTransform(vmath.Affine) {}
func (t *traceTarget) Transform() vmath.Affine   { return vmath.Identity }
func (t *traceTarget) Clear(color.Color)         { t.ops = append(t.ops, "clear") }
func (t *traceTarget) Present() error {
	t.ops = append(t.ops, "present")
	return t.presentErr
}

type failing struct{ err error }

func (f failing) Draw(render.Target) error { return f.err }

func sequence(n int, ticks ...uint) *animation.Linear[animation.Frames, vmath.Rect] {
	frames := make(animation.Frames, n)
	for i := range frames {
		frames[i] = image.NewRGBA(image.Rect(0, 0, 1, 1))
	}
	return animation.SimpleConfig{Frames: frames, Ticks: engine.NewManualTicks(ticks...)}.Animation()
}

func TestStepOrder(t *testing.T) {
	target := &traceTarget{}
	l := &Loop{
		Target:     target,
		Background: color.Black,
		Drawables: []Drawable{
			animation.ContainRect(sequence(2), vmath.R(1, 1, 1, 1)),
			animation.ContainRect(sequence(2), vmath.R(5, 5, 1, 1)),
		},
	}

	require.NoError(t, l.Step())
	require.Equal(t, []string{"clear", "draw {1 1}", "draw {5 5}", "present"}, target.ops)
	require.Equal(t, 1, l.Frames())
}

func TestRunStopsAtMaxFrames(t *testing.T) {
	metrics := status.NewRegistry()
	l := &Loop{
		Target:    &traceTarget{},
		Interval:  time.Millisecond,
		Drawables: []Drawable{animation.ContainRect(sequence(3), vmath.R(0, 0, 1, 1))},
		Metrics:   metrics,
		MaxFrames: 4,
	}

	require.NoError(t, l.Run(context.Background()))
	require.Equal(t, 4, l.Frames())
	require.Equal(t, int64(4), metrics.Ints.Get(status.KeyFrames).Load())
	require.Equal(t, "playing", metrics.Strings.Get(status.KeyState).Load())
}

func TestRunReturnsDrawError(t *testing.T) {
	boom := errors.New("boom")
	metrics := status.NewRegistry()
	l := &Loop{
		Target:    &traceTarget{},
		Drawables: []Drawable{failing{boom}},
		Metrics:   metrics,
	}

	err := l.Run(context.Background())
	require.ErrorIs(t, err, boom)
	require.Equal(t, int64(1), metrics.Ints.Get(status.KeyErrors).Load())
	require.Equal(t, 0, l.Frames())
}

func TestRunReturnsPresentError(t *testing.T) {
	boom := errors.New("screen gone")
	l := &Loop{Target: &traceTarget{presentErr: boom}}
	require.ErrorIs(t, l.Run(context.Background()), boom)
}

func TestRunNilTarget(t *testing.T) {
	require.Error(t, (&Loop{}).Run(context.Background()))
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := &Loop{Target: &traceTarget{}, Interval: time.Hour}
	require.NoError(t, l.Run(ctx))
	require.Equal(t, 1, l.Frames())
}

func TestRunStopsOnQuit(t *testing.T) {
	events := make(chan Command, 1)
	events <- CmdQuit

	l := &Loop{Target: &traceTarget{}, Interval: time.Hour, Events: events}
	require.NoError(t, l.Run(context.Background()))
}

func TestRunSurvivesClosedEvents(t *testing.T) {
	events := make(chan Command)
	close(events)

	l := &Loop{Target: &traceTarget{}, Interval: time.Millisecond, Events: events, MaxFrames: 3}
	require.NoError(t, l.Run(context.Background()))
	require.Equal(t, 3, l.Frames())
}

func TestHandleTogglePause(t *testing.T) {
	wall := engine.NewManualClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := engine.NewPausableClock(wall)
	metrics := status.NewRegistry()
	l := &Loop{Target: &traceTarget{}, Clock: clock, Metrics: metrics}

	require.True(t, l.Handle(CmdTogglePause))
	require.True(t, clock.IsPaused())
	require.Equal(t, "paused", metrics.Strings.Get(status.KeyState).Load())

	require.True(t, l.Handle(CmdTogglePause))
	require.False(t, clock.IsPaused())
	require.Equal(t, "playing", metrics.Strings.Get(status.KeyState).Load())

	// No clock configured: ignored
	require.True(t, (&Loop{}).Handle(CmdTogglePause))
}

func TestHandleReset(t *testing.T) {
	anim := sequence(4, 3)
	l := &Loop{
		Target:    &traceTarget{},
		Drawables: []Drawable{animation.ContainRect(anim, vmath.R(0, 0, 1, 1)), failing{}},
	}

	require.NoError(t, l.Drawables[0].Draw(l.Target))
	require.Equal(t, uint(3), anim.Frame())

	require.True(t, l.Handle(CmdReset))
	require.Equal(t, uint(0), anim.Frame())
	require.False(t, l.Handle(CmdQuit))
}

func TestHandleResizeTerminal(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(10, 5)

	term := render.NewTerminal(screen)
	l := &Loop{Target: term}

	screen.SetSize(20, 6)
	require.True(t, l.Handle(CmdResize))
	require.Equal(t, image.Rect(0, 0, 20, 12), term.Bounds())
}

func TestRunExecutesTasksBetweenFrames(t *testing.T) {
	anim := sequence(2)
	drawable := animation.ContainRect(anim, vmath.R(0, 0, 1, 1))

	replacement := make(animation.Frames, 5)
	for i := range replacement {
		replacement[i] = image.NewRGBA(image.Rect(0, 0, 2, 2))
	}

	tasks := make(chan func(), 1)
	events := make(chan Command, 1)
	tasks <- func() {
		require.NoError(t, animation.SetState(drawable, replacement))
		events <- CmdQuit
	}

	l := &Loop{
		Target:    &traceTarget{},
		Interval:  time.Hour,
		Drawables: []Drawable{drawable},
		Events:    events,
		Tasks:     tasks,
	}
	require.NoError(t, l.Run(context.Background()))
	require.Len(t, *anim.State(), 5)
}
