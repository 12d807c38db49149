package integrator

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Cast returns the radiance carried back along ray. depth is the number of
	// bounces the path may still take. counters may be nil.
	Cast(ray core.Ray, scene *scene.Scene, depth int, random *rand.Rand, counters *Counters) core.Color
}

// Counters tallies how paths end. Each worker keeps its own and merges it
// into a total once its work is done.
type Counters struct {
	Rays      int64 // Primary rays cast
	Bounces   int64 // Successful scatter events
	Escaped   int64 // Paths that reached the background
	Absorbed  int64 // Paths terminated by a material
	Exhausted int64 // Paths that hit a surface with no depth left
}

// Merge adds other into c
func (c *Counters) Merge(other Counters) {
	c.Rays += other.Rays
	c.Bounces += other.Bounces
	c.Escaped += other.Escaped
	c.Absorbed += other.Absorbed
	c.Exhausted += other.Exhausted
}
