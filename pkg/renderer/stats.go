package renderer

import (
	"image"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
)

// PassResult contains the result of a single progressive pass
type PassResult struct {
	PassNumber   int
	Samples      int // Samples per pixel added by this pass
	TotalSamples int // Samples per pixel accumulated so far
	Duration     time.Duration
	Counters     integrator.Counters // Path counters for this pass only
	Image        *image.RGBA         // Snapshot of the frame after this pass
	IsLast       bool
}

// FrameStats contains statistics about a complete render
type FrameStats struct {
	Width, Height int
	Workers       int
	Tiles         int
	Passes        []PassResult
	Counters      integrator.Counters // Path counters over all passes
	RenderTime    time.Duration
}

// SamplesPerPixel returns the number of samples accumulated in every pixel
func (fs FrameStats) SamplesPerPixel() int {
	if len(fs.Passes) == 0 {
		return 0
	}
	return fs.Passes[len(fs.Passes)-1].TotalSamples
}

// RaysPerSecond returns the primary ray throughput of the render
func (fs FrameStats) RaysPerSecond() float64 {
	if fs.RenderTime <= 0 {
		return 0
	}
	return float64(fs.Counters.Rays) / fs.RenderTime.Seconds()
}

func (fs *FrameStats) addPass(result PassResult) {
	result.Image = nil
	fs.Passes = append(fs.Passes, result)
	fs.Counters.Merge(result.Counters)
	fs.RenderTime += result.Duration
}
