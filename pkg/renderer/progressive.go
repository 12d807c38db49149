package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/log"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// ProgressiveRaytracer renders a frame in several passes. Each pass adds
// samples to every pixel through a pool of tile workers, and a snapshot of
// the frame is published after each pass.
type ProgressiveRaytracer struct {
	scene        *scene.Scene
	config       Config
	tiles        []*Tile
	frame        [][]Accumulator // Shared pixel accumulators (global image coordinates)
	tileRenderer *TileRenderer
	toneMapper   ToneMapper
	logger       log.Logger
	stats        FrameStats
	started      bool
}

// NewProgressiveRaytracer creates a new progressive raytracer. A nil
// integrator selects path tracing and a nil logger discards output.
func NewProgressiveRaytracer(s *scene.Scene, config Config, integratorInst integrator.Integrator, logger log.Logger) (*ProgressiveRaytracer, error) {
	if s == nil {
		return nil, ErrNoScene
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if integratorInst == nil {
		integratorInst = integrator.NewPathTracingIntegrator()
	}
	if logger == nil {
		logger = log.Discard()
	}

	frame := make([][]Accumulator, config.Height)
	for y := range frame {
		frame[y] = make([]Accumulator, config.Width)
	}

	tiles := NewTileGrid(config.Width, config.Height, config.TileSize)

	return &ProgressiveRaytracer{
		scene:        s,
		config:       config,
		tiles:        tiles,
		frame:        frame,
		tileRenderer: NewTileRenderer(s, integratorInst, config),
		toneMapper:   ToneMapper{Gamma: config.Gamma, Exposure: config.Exposure},
		logger:       logger,
		stats: FrameStats{
			Width:   config.Width,
			Height:  config.Height,
			Workers: config.workers(),
			Tiles:   len(tiles),
		},
	}, nil
}

// RenderProgressive starts rendering and returns channels for events. The
// caller should drain the pass channel; the error channel yields at most one
// error and is closed when rendering stops. A raytracer renders only once.
func (pr *ProgressiveRaytracer) RenderProgressive(ctx context.Context) (<-chan PassResult, <-chan error) {
	passChan := make(chan PassResult, 1)
	errChan := make(chan error, 1)

	if pr.started {
		errChan <- ErrAlreadyRendered
		close(passChan)
		close(errChan)
		return passChan, errChan
	}
	pr.started = true

	go func() {
		defer close(passChan)
		defer close(errChan)

		pool := NewWorkerPool(pr.tileRenderer, pr.config.Seed, len(pr.tiles), pr.stats.Workers)
		pool.Start(ctx)
		defer pool.Stop()

		passes := pr.config.PassCount()
		pr.logger.Infof("starting progressive rendering with %d passes (%d workers, %d tiles)",
			passes, pool.GetNumWorkers(), len(pr.tiles))

		totalSamples := 0
		for pass := 1; pass <= passes; pass++ {
			if err := ctx.Err(); err != nil {
				pr.logger.Warningf("rendering cancelled before pass %d", pass)
				errChan <- fmt.Errorf("%w: %v", ErrInterrupted, err)
				return
			}

			result, err := pr.renderPass(pool, pass)
			if err != nil {
				pr.logger.Warningf("rendering cancelled during pass %d", pass)
				errChan <- fmt.Errorf("%w: %v", ErrInterrupted, err)
				return
			}
			totalSamples += result.Samples
			result.TotalSamples = totalSamples
			result.IsLast = pass == passes
			pr.stats.addPass(result)
			result.Image = pr.Image()

			pr.logger.Infof("pass %d completed in %v (%d samples/pixel)", pass, result.Duration, totalSamples)

			// The last pass is fully merged, so the frame is complete even if
			// ctx was cancelled meanwhile
			if result.IsLast {
				passChan <- result
				return
			}

			select {
			case passChan <- result:
			case <-ctx.Done():
				errChan <- fmt.Errorf("%w: %v", ErrInterrupted, ctx.Err())
				return
			}
		}
	}()

	return passChan, errChan
}

// Render runs every pass to completion and returns the frame statistics.
// onPass, if not nil, is called after each pass.
func (pr *ProgressiveRaytracer) Render(ctx context.Context, onPass func(PassResult)) (FrameStats, error) {
	passChan, errChan := pr.RenderProgressive(ctx)
	for result := range passChan {
		if onPass != nil {
			onPass(result)
		}
	}
	if err := <-errChan; err != nil {
		return pr.stats, err
	}
	return pr.stats, nil
}

// renderPass submits every tile for one pass and waits for all of them
func (pr *ProgressiveRaytracer) renderPass(pool *WorkerPool, pass int) (PassResult, error) {
	start := time.Now()
	samples := pr.config.samplesForPass(pass)

	pr.logger.Debugf("pass %d: adding %d samples per pixel", pass, samples)

	for taskID, tile := range pr.tiles {
		pool.SubmitTask(TileTask{
			Tile:    tile,
			Pass:    pass,
			Samples: samples,
			TaskID:  taskID,
			Frame:   pr.frame,
		})
	}

	result := PassResult{PassNumber: pass, Samples: samples}
	var firstErr error
	for i := 0; i < len(pr.tiles); i++ {
		tileResult, ok := pool.GetResult()
		if !ok {
			return result, fmt.Errorf("worker pool closed unexpectedly")
		}
		if tileResult.Error != nil {
			if firstErr == nil {
				firstErr = tileResult.Error
			}
			continue
		}
		pr.tiles[tileResult.TaskID].PassesCompleted++
		result.Counters.Merge(tileResult.Counters)
	}
	if firstErr != nil {
		return result, firstErr
	}

	result.Duration = time.Since(start)
	return result, nil
}

// Stats returns the statistics collected so far
func (pr *ProgressiveRaytracer) Stats() FrameStats {
	return pr.stats
}

// Colors returns the mean linear radiance of every pixel in row-major order.
// It must not be called while a render is in progress; use the pass
// snapshots instead.
func (pr *ProgressiveRaytracer) Colors() []core.Color {
	colors := make([]core.Color, 0, pr.config.Width*pr.config.Height)
	for y := range pr.frame {
		for x := range pr.frame[y] {
			colors = append(colors, pr.frame[y][x].Mean())
		}
	}
	return colors
}

// Frame returns the tone mapped pixels in row-major order
func (pr *ProgressiveRaytracer) Frame() []color.RGBA {
	colors := pr.Colors()
	pixels := make([]color.RGBA, len(colors))
	for i, c := range colors {
		pixels[i] = pr.toneMapper.RGBA(c)
	}
	return pixels
}

// Image returns the tone mapped frame as an image
func (pr *ProgressiveRaytracer) Image() *image.RGBA {
	return frameImage(pr.config.Width, pr.config.Height, pr.Frame())
}

// frameImage copies row-major pixels into an image
func frameImage(width, height int, pixels []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, pixel := range pixels {
		img.SetRGBA(i%width, i/width, pixel)
	}
	return img
}
