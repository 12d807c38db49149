package integrator

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// PathTracingIntegrator implements unidirectional path tracing with plain
// recursion. The call depth of Cast is at most depth+1.
type PathTracingIntegrator struct {
	// Terminal is returned when a path hits a surface with no bounces left.
	// It is black by default, so finite depth only ever removes energy.
	Terminal core.Color
}

// NewPathTracingIntegrator creates a path tracer that terminates exhausted
// paths with black
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{Terminal: core.Black}
}

// Cast computes the radiance for a single ray
func (pt *PathTracingIntegrator) Cast(ray core.Ray, scene *scene.Scene, depth int, random *rand.Rand, counters *Counters) core.Color {
	if counters == nil {
		counters = &Counters{}
	}
	counters.Rays++
	return pt.rayColor(ray, scene, depth, random, counters)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, scene *scene.Scene, depth int, random *rand.Rand, counters *Counters) core.Color {
	hit, isHit := scene.Hit(ray)
	if !isHit {
		counters.Escaped++
		return scene.Background.Sample(ray.Direction)
	}

	if depth <= 0 {
		counters.Exhausted++
		return pt.Terminal
	}

	bounce, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		counters.Absorbed++
		return core.Black
	}
	counters.Bounces++

	// Radiance composes multiplicatively along the path
	return bounce.Attenuation.MultiplyColor(
		pt.rayColor(bounce.Ray, scene, depth-1, random, counters))
}
