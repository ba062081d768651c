package main

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/draw"

	"github.com/lixenwraith/reel/animation"
	"github.com/lixenwraith/reel/asset"
	"github.com/lixenwraith/reel/config"
	"github.com/lixenwraith/reel/engine"
	"github.com/lixenwraith/reel/render"
)

func solidPNG(t *testing.T, dir, name string, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

// discard is a full target whose frames go nowhere
func discard(w, h int) *render.Raster {
	return render.NewRaster(w, h, render.FrameSinkFunc(func(int, []byte) error { return nil }))
}

type countingClicker struct{ n int }

func (c *countingClicker) Click() { c.n++ }

func TestLoadConfigOverrides(t *testing.T) {
	g := &Globals{Config: filepath.Join(t.TempDir(), "none.yaml"), FPS: 5, Sound: true}
	cfg, err := loadConfig(g, []string{"a.png"})
	require.NoError(t, err)
	require.Equal(t, 5.0, cfg.FPS)
	require.True(t, cfg.Sound)
	require.Equal(t, []string{"a.png"}, cfg.Frames)
	require.Empty(t, cfg.GIF)
}

func TestLoadFramesFromSheet(t *testing.T) {
	dir := t.TempDir()
	sheet := image.NewRGBA(image.Rect(0, 0, 8, 4))
	f, err := os.Create(filepath.Join(dir, "sheet.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, sheet))
	require.NoError(t, f.Close())

	cfg := config.Defaults()
	cfg.Sheet = &config.SheetConfig{
		Path:  filepath.Join(dir, "sheet.png"),
		Sheet: asset.Sheet{FrameW: 4, FrameH: 4, Count: 2},
	}

	frames, err := loadFrames(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, frames, 2)
}

func TestLoadFramesWithoutSource(t *testing.T) {
	_, err := loadFrames(context.Background(), config.Defaults())
	require.ErrorIs(t, err, asset.ErrNoFrames)
}

func TestDrawableLoopsWithCue(t *testing.T) {
	cfg := config.Defaults()
	cfg.Shape = config.ShapeConfig{W: 2, H: 2}
	frames := animation.Frames{image.NewRGBA(image.Rect(0, 0, 1, 1)), image.NewRGBA(image.Rect(0, 0, 1, 1))}

	cue := &countingClicker{}
	d := drawable(cfg, frames, engine.NewManualTicks(0, 1, 1, 1), cue)
	target := discard(2, 2)
	for i := 0; i < 4; i++ {
		require.NoError(t, d.Draw(target))
	}
	// 0 1 0 1: one wrap
	require.Equal(t, 1, cue.n)

	cfg.Circle = true
	d = drawable(cfg, frames, engine.NewManualTicks(), nil)
	require.NoError(t, d.Draw(target))
}

func TestSwapFramesReplacesPlaceholder(t *testing.T) {
	cfg := config.Defaults()
	cfg.Shape = config.ShapeConfig{W: 2, H: 2}
	placeholder := asset.Spinner(4, 3, color.White)
	d := drawable(cfg, placeholder, engine.NewManualTicks(0, 1, 1), nil)

	target := discard(2, 2)
	target.SetInterpolator(draw.NearestNeighbor)
	require.NoError(t, d.Draw(target))
	require.NoError(t, d.Draw(target))

	red, blue := color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255}
	loaded := animation.Frames{solid(red), solid(blue)}
	require.NoError(t, swapFrames(d, asset.Result{Frames: loaded}))

	state, err := animation.State[animation.Frames](d)
	require.NoError(t, err)
	require.Len(t, *state, 2)

	// Rewound to frame 0, one tick later the second loaded frame shows
	require.NoError(t, d.Draw(target))
	require.Equal(t, blue, target.Image().RGBAAt(1, 1))
}

func solid(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, c)
	return img
}

func TestSwapFramesErrors(t *testing.T) {
	cfg := config.Defaults()
	d := drawable(cfg, asset.Spinner(4, 2, color.White), engine.NewManualTicks(), nil)

	require.ErrorIs(t, swapFrames(d, asset.Result{Err: asset.ErrNoFrames}), asset.ErrNoFrames)

	// A drawable without playback state cannot take frames
	err := swapFrames(stillDrawable{}, asset.Result{Frames: animation.Frames{image.NewRGBA(image.Rect(0, 0, 1, 1))}})
	require.ErrorIs(t, err, animation.ErrNotSupported)
}

type stillDrawable struct{}

func (stillDrawable) Draw(render.Target) error { return nil }

func TestExportIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Defaults()
	cfg.Frames = []string{
		solidPNG(t, dir, "r.png", color.RGBA{R: 255, A: 255}),
		solidPNG(t, dir, "g.png", color.RGBA{G: 255, A: 255}),
	}
	cfg.FPS, cfg.RenderFPS = 10, 20
	cfg.Shape = config.ShapeConfig{W: 4, H: 4}

	frames, err := loadFrames(context.Background(), cfg)
	require.NoError(t, err)

	run := func() [][]byte {
		var out [][]byte
		sink := render.FrameSinkFunc(func(_ int, data []byte) error {
			out = append(out, data)
			return nil
		})
		n, err := export(cfg, frames, render.NewRaster(4, 4, sink))
		require.NoError(t, err)
		require.Equal(t, 4, n, "two frames at half the render rate")
		return out
	}

	require.Equal(t, run(), run())
}

func TestLoopLengthAndCanvasSize(t *testing.T) {
	cfg := config.Defaults()
	cfg.FPS, cfg.RenderFPS = 12, 30
	require.Equal(t, 8, loopLength(3, cfg))

	cfg.Shape = config.ShapeConfig{X: 2, Y: 1, W: 10.5, H: 6}
	w, h := canvasSize(cfg)
	require.Equal(t, 13, w)
	require.Equal(t, 7, h)
}

func TestStreamApplyStretchesShape(t *testing.T) {
	cfg := config.Defaults()
	cfg.Circle = true
	(&StreamCmd{Broker: "tcp://broker:1883", Pixels: 60}).apply(cfg)

	require.Equal(t, "tcp://broker:1883", cfg.MQTT.URL)
	require.Equal(t, 60, cfg.MQTT.Pixels)
	require.False(t, cfg.Circle)
	require.Equal(t, config.ShapeConfig{W: 60, H: 1}, cfg.Shape)
}
