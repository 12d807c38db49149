package renderer

import (
	"runtime"

	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	// Frame dims.
	Width  int
	Height int

	// Number of rays per pixel, split across the progressive passes.
	SamplesPerPixel int

	// Maximum number of bounces per path.
	MaxDepth int

	// Number of progressive passes.
	Passes int

	// Edge length of the square tiles handed to workers.
	TileSize int

	// Number of parallel workers (0 = use CPU count).
	NumWorkers int

	// Seed for the per-tile random generators.
	Seed int64

	// Tone mapping.
	Gamma    float64
	Exposure float64
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           256,
		Height:          144,
		SamplesPerPixel: 32,
		MaxDepth:        16,
		Passes:          4,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
		Gamma:           2.0,
		Exposure:        1.0,
	}
}

// ConfigForScene returns the default configuration with the scene's
// recommended sampling applied
func ConfigForScene(s *scene.Scene) Config {
	config := DefaultConfig()
	sampling := s.SamplingConfig
	if sampling.Width > 0 {
		config.Width = sampling.Width
	}
	if sampling.Height > 0 {
		config.Height = sampling.Height
	}
	if sampling.SamplesPerPixel > 0 {
		config.SamplesPerPixel = sampling.SamplesPerPixel
	}
	if sampling.MaxDepth > 0 {
		config.MaxDepth = sampling.MaxDepth
	}
	return config
}

// Validate checks the configuration at the driver boundary
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return ErrInvalidDimensions
	case c.SamplesPerPixel <= 0:
		return ErrInvalidSamples
	case c.MaxDepth < 0:
		return ErrInvalidDepth
	case c.Passes <= 0:
		return ErrInvalidPasses
	case c.TileSize <= 0:
		return ErrInvalidTileSize
	case c.Gamma <= 0:
		return ErrInvalidGamma
	}
	return nil
}

// workers resolves the worker count
func (c Config) workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// PassCount returns the number of passes actually rendered. Every pass takes
// at least one sample per pixel, so it never exceeds SamplesPerPixel.
func (c Config) PassCount() int {
	return max(1, min(c.Passes, c.SamplesPerPixel))
}

// samplesForPass returns how many samples per pixel pass (1-based) adds.
// The remainder of SamplesPerPixel/passes goes to the earliest passes.
func (c Config) samplesForPass(pass int) int {
	passes := c.PassCount()
	samples := c.SamplesPerPixel / passes
	if pass <= c.SamplesPerPixel%passes {
		samples++
	}
	return samples
}
