package asset

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"sync"
	"time"

	"github.com/fogleman/gg"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/lixenwraith/reel/core"
)

// ErrNoFrames is returned when a load request names no images
var ErrNoFrames = errors.New("asset: no frames")

// Result is the outcome of an asynchronous load
type Result struct {
	Frames []image.Image
	Err    error
}

// Load decodes every path concurrently and returns the images in argument order
// The first failure cancels the remaining decodes and is returned wrapped with its path
func Load(ctx context.Context, paths ...string) ([]image.Image, error) {
	if len(paths) == 0 {
		return nil, ErrNoFrames
	}

	start := time.Now()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	frames := make([]image.Image, len(paths))
	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i, path := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			img, err := gg.LoadImage(path)
			if err != nil {
				fail(fmt.Errorf("load %s: %w", path, err))
				return
			}
			frames[i] = img
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	// Only the caller can have cancelled at this point
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Printf("asset: loaded %d frames in %v", len(frames), time.Since(start).Round(time.Millisecond))
	return frames, nil
}

// LoadAsync runs Load in the background; the channel yields exactly one Result
func LoadAsync(ctx context.Context, paths ...string) <-chan Result {
	out := make(chan Result, 1)
	core.Go(func() {
		frames, err := Load(ctx, paths...)
		out <- Result{Frames: frames, Err: err}
		close(out)
	})
	return out
}
