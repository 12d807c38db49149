package scene

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// Epsilon is the minimum hit distance accepted during scene resolution.
// Scattered rays start on the surface they left and must not hit it again.
const Epsilon = 0.001

// Scene contains all the elements needed for rendering. It is built once and
// only read while rendering, so it can be shared by any number of workers.
type Scene struct {
	Name           string
	Spheres        []*geometry.Sphere
	CameraConfig   geometry.CameraConfig
	Background     Gradient
	SamplingConfig SamplingConfig
}

// SamplingConfig is the rendering configuration a scene recommends
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns the configuration used when a scene does not
// provide one
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           256,
		Height:          144,
		SamplesPerPixel: 32,
		MaxDepth:        16,
	}
}

// NewScene creates an empty scene with the default camera and sky
func NewScene(name string) *Scene {
	return &Scene{
		Name:           name,
		Spheres:        make([]*geometry.Sphere, 0),
		CameraConfig:   geometry.DefaultCameraConfig(),
		Background:     DefaultGradient(),
		SamplingConfig: DefaultSamplingConfig(),
	}
}

// Add appends spheres to the scene
func (s *Scene) Add(spheres ...*geometry.Sphere) {
	s.Spheres = append(s.Spheres, spheres...)
}

// Hit finds the nearest front-facing intersection in [Epsilon, +Inf).
// Back-face hits are ignored.
func (s *Scene) Hit(ray core.Ray) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := math.Inf(1)

	for _, sphere := range s.Spheres {
		hit, isHit := sphere.Hit(ray, Epsilon, closestSoFar)
		if !isHit || !hit.FrontFace {
			continue
		}
		closest = hit
		closestSoFar = hit.T
	}

	return closest, closest != nil
}

// Camera builds the scene camera
func (s *Scene) Camera() *geometry.Camera {
	return geometry.NewCamera(s.CameraConfig)
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres)
}

// MaterialCount returns the number of distinct material instances
func (s *Scene) MaterialCount() int {
	seen := make(map[material.Material]struct{})
	for _, sphere := range s.Spheres {
		seen[sphere.Material] = struct{}{}
	}
	return len(seen)
}
