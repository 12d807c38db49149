package core

import "math"

// Color is linear-space radiance. Channels are unbounded above until the
// final tone mapping step.
type Color struct {
	R, G, B float64
}

var (
	Black   = Color{0, 0, 0}
	White   = Color{1, 1, 1}
	SkyBlue = Color{0.5, 0.7, 1.0}
	Red     = Color{1, 0, 0}
	Gray    = Color{0.5, 0.5, 0.5}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add accumulates radiance
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every channel by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor attenuates radiance channel by channel
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Lerp blends from c (t=0) to other (t=1)
func Lerp(from, to Color, t float64) Color {
	return from.Multiply(1.0 - t).Add(to.Multiply(t))
}

// GammaCorrect applies gamma correction to each channel
func (c Color) GammaCorrect(gamma float64) Color {
	invGamma := 1.0 / gamma
	return Color{
		R: math.Pow(math.Max(c.R, 0), invGamma),
		G: math.Pow(math.Max(c.G, 0), invGamma),
		B: math.Pow(math.Max(c.B, 0), invGamma),
	}
}

// Clamp returns a color with channels clamped to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// Luminance returns the perceptual luminance of the color
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Equals checks whether two colors are equal within a small tolerance
func (c Color) Equals(other Color) bool {
	const tolerance = 1e-9
	return math.Abs(c.R-other.R) < tolerance &&
		math.Abs(c.G-other.G) < tolerance &&
		math.Abs(c.B-other.B) < tolerance
}
