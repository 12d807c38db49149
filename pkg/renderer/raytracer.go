package renderer

import (
	"image/color"
	"math/rand"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// Raytracer renders a frame on the calling goroutine by walking the camera's
// ray iterator once. It is the reference for the parallel renderer.
type Raytracer struct {
	scene      *scene.Scene
	config     Config
	integrator integrator.Integrator
	random     *rand.Rand
}

// NewRaytracer creates a new single-threaded raytracer
func NewRaytracer(s *scene.Scene, config Config, integratorInst integrator.Integrator) (*Raytracer, error) {
	if s == nil {
		return nil, ErrNoScene
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if integratorInst == nil {
		integratorInst = integrator.NewPathTracingIntegrator()
	}
	return &Raytracer{
		scene:      s,
		config:     config,
		integrator: integratorInst,
		random:     rand.New(rand.NewSource(config.Seed)),
	}, nil
}

// RenderPass takes SamplesPerPixel samples for every pixel and returns the
// tone mapped pixels in row-major order
func (rt *Raytracer) RenderPass() ([]color.RGBA, FrameStats) {
	start := time.Now()
	width, height := rt.config.Width, rt.config.Height
	toneMapper := ToneMapper{Gamma: rt.config.Gamma, Exposure: rt.config.Exposure}

	var counters integrator.Counters
	pixels := make([]color.RGBA, 0, width*height)

	rays := rt.scene.Camera().Rays(width, height, rt.config.SamplesPerPixel, rt.random)
	for {
		_, samples, ok := rays.Next()
		if !ok {
			break
		}

		var accum Accumulator
		for _, ray := range samples {
			accum.Add(rt.castSample(ray, &counters))
		}
		pixels = append(pixels, toneMapper.RGBA(accum.Mean()))
	}

	duration := time.Since(start)
	stats := FrameStats{Width: width, Height: height, Workers: 1, Tiles: 1}
	stats.addPass(PassResult{
		PassNumber:   1,
		Samples:      rt.config.SamplesPerPixel,
		TotalSamples: rt.config.SamplesPerPixel,
		Duration:     duration,
		Counters:     counters,
		IsLast:       true,
	})

	return pixels, stats
}

func (rt *Raytracer) castSample(ray core.Ray, counters *integrator.Counters) core.Color {
	return rt.integrator.Cast(ray, rt.scene, rt.config.MaxDepth, rt.random, counters)
}
