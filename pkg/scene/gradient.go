package scene

import "github.com/df07/go-sphere-pathtracer/pkg/core"

// Gradient is the background radiance seen by rays that escape the scene.
// It blends vertically from Bottom (straight down) to Top (straight up).
type Gradient struct {
	Bottom core.Color
	Top    core.Color
}

// DefaultGradient returns the white-to-sky-blue background
func DefaultGradient() Gradient {
	return Gradient{Bottom: core.White, Top: core.SkyBlue}
}

// Sample returns the background radiance in the given direction
func (g Gradient) Sample(direction core.Vec3) core.Color {
	unitDirection := direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return core.Lerp(g.Bottom, g.Top, t)
}
