package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// CameraConfig describes a pinhole camera looking through a view plane
// placed Focal units in front of the eye
type CameraConfig struct {
	Center core.Vec3 // Eye position
	Aim    core.Vec3 // Viewing direction (need not be unit length)
	Up     core.Vec3 // Approximate up direction
	Width  float64   // View plane width in world units
	Height float64   // View plane height in world units
	Focal  float64   // Distance from the eye to the view plane
}

// DefaultCameraConfig returns the standard camera: eye at
// the origin looking down -Z through a 16:9 view plane one unit away
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		Aim:    core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		Width:  2.0 * 16.0 / 9.0,
		Height: 2.0,
		Focal:  1.0,
	}
}

// MergeCameraConfig overlays the non-zero fields of override on base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Center != (core.Vec3{}) {
		result.Center = override.Center
	}
	if override.Aim != (core.Vec3{}) {
		result.Aim = override.Aim
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.Focal != 0 {
		result.Focal = override.Focal
	}
	return result
}

// Camera generates primary rays. It is immutable and safe for concurrent use.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a camera from its configuration
func NewCamera(config CameraConfig) *Camera {
	// Orthonormal basis: forward, right, up
	forward := config.Aim.Normalize()
	right := forward.Cross(config.Up)
	if right.NearZero() {
		// Aim is parallel to Up; find another up axis not parallel to forward
		right = forward.Cross(fallbackUp(forward))
	}
	right = right.Normalize()
	up := right.Cross(forward)

	horizontal := right.Multiply(config.Width)
	vertical := up.Multiply(config.Height)
	planeCenter := config.Center.Add(forward.Multiply(config.Focal))
	lowerLeftCorner := planeCenter.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5))

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
	}
}

// fallbackUp returns an up axis for a camera whose configured Up is
// parallel to forward. Looking straight down, the top of the image faces -Z.
func fallbackUp(forward core.Vec3) core.Vec3 {
	if math.Abs(forward.Z) < 0.9 {
		return core.NewVec3(0, 0, -1)
	}
	return core.NewVec3(0, 1, 0)
}

// GetRay generates a ray through view plane coordinates (s, t) where
// (0, 0) is the lower left corner and (1, 1) the upper right
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// PixelRay returns the ray through pixel (x, y) of a width×height grid offset
// by (du, dv) in [0, 1) inside the pixel footprint. Row 0 is the top of the
// image.
func (c *Camera) PixelRay(x, y, width, height int, du, dv float64) core.Ray {
	s := (float64(x) + du) / float64(width)
	t := 1.0 - (float64(y)+dv)/float64(height)
	return c.GetRay(s, t)
}

// SampleRays returns samples independently jittered rays for pixel (x, y)
func (c *Camera) SampleRays(x, y, width, height, samples int, random *rand.Rand) []core.Ray {
	rays := make([]core.Ray, samples)
	for i := range rays {
		rays[i] = c.PixelRay(x, y, width, height, random.Float64(), random.Float64())
	}
	return rays
}

// Pixel identifies an image pixel. Y grows downwards.
type Pixel struct {
	X, Y int
}

// RayIterator walks a pixel grid in row-major order yielding the sample rays
// of one pixel per call. It is a one-shot cursor.
type RayIterator struct {
	camera  *Camera
	width   int
	height  int
	samples int
	random  *rand.Rand
	x, y    int
}

// Rays returns an iterator over every pixel of a width×height grid
func (c *Camera) Rays(width, height, samples int, random *rand.Rand) *RayIterator {
	return &RayIterator{
		camera:  c,
		width:   width,
		height:  height,
		samples: samples,
		random:  random,
	}
}

// Next returns the next pixel and its sample rays, or false once all
// width*height pixels have been produced
func (it *RayIterator) Next() (Pixel, []core.Ray, bool) {
	if it.width <= 0 || it.y >= it.height {
		return Pixel{}, nil, false
	}

	pixel := Pixel{X: it.x, Y: it.y}
	rays := it.camera.SampleRays(it.x, it.y, it.width, it.height, it.samples, it.random)

	it.x++
	if it.x >= it.width {
		it.x = 0
		it.y++
	}

	return pixel, rays, true
}

// Remaining returns the number of pixels not yet produced
func (it *RayIterator) Remaining() int {
	if it.width <= 0 || it.y >= it.height {
		return 0
	}
	return (it.height-it.y)*it.width - it.x
}
