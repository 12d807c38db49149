package renderer

import (
	"image/color"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Accumulator is a running sum of linear radiance samples. Accumulators merge
// associatively, so partial sums from any number of workers can be combined
// in any order.
type Accumulator struct {
	Sum   core.Color
	Count int
}

// Add adds a new radiance sample
func (a *Accumulator) Add(sample core.Color) {
	a.Sum = a.Sum.Add(sample)
	a.Count++
}

// Merge adds another partial sum into this one
func (a *Accumulator) Merge(other Accumulator) {
	a.Sum = a.Sum.Add(other.Sum)
	a.Count += other.Count
}

// Mean returns the mean radiance, or black if no samples were taken
func (a Accumulator) Mean() core.Color {
	if a.Count == 0 {
		return core.Black
	}
	return a.Sum.Multiply(1.0 / float64(a.Count))
}

// ToneMapper converts averaged linear radiance to display colors
type ToneMapper struct {
	Gamma    float64
	Exposure float64
}

// RGBA applies exposure, gamma correction and clamping, in that order
func (tm ToneMapper) RGBA(c core.Color) color.RGBA {
	c = c.Multiply(tm.Exposure).GammaCorrect(tm.Gamma).Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: 255,
	}
}
