package geometry

import (
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

func TestCamera_GetRay(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	halfWidth := 16.0 / 9.0

	tests := []struct {
		name     string
		s, t     float64
		expected core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-halfWidth, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(halfWidth, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t)
			if !ray.Origin.Equals(core.Vec3{}) {
				t.Errorf("Expected origin at the eye, got %v", ray.Origin)
			}
			if !ray.Direction.Equals(tt.expected) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_Basis(t *testing.T) {
	camera := NewCamera(CameraConfig{
		Center: core.NewVec3(1, 2, 3),
		Aim:    core.NewVec3(5, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		Width:  2,
		Height: 2,
		Focal:  1,
	})

	center := camera.GetRay(0.5, 0.5)
	if !center.Origin.Equals(core.NewVec3(1, 2, 3)) {
		t.Errorf("Expected origin (1, 2, 3), got %v", center.Origin)
	}
	if !center.Direction.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected center direction (1, 0, 0), got %v", center.Direction)
	}

	// Right of the image is forward × up
	right := camera.GetRay(1, 0.5)
	if !right.Direction.Equals(core.NewVec3(1, 0, 1)) {
		t.Errorf("Expected right edge direction (1, 0, 1), got %v", right.Direction)
	}
}

func TestCamera_Basis_AimParallelToUp(t *testing.T) {
	tests := []struct {
		name  string
		aim   core.Vec3
		up    core.Vec3
		right core.Vec3 // GetRay(1, 0.5)
		top   core.Vec3 // GetRay(0.5, 1)
	}{
		{
			name:  "looking straight down",
			aim:   core.NewVec3(0, -1, 0),
			up:    core.NewVec3(0, 1, 0),
			right: core.NewVec3(1, -1, 0),
			top:   core.NewVec3(0, -1, -1),
		},
		{
			name:  "looking straight up",
			aim:   core.NewVec3(0, 2, 0),
			up:    core.NewVec3(0, 1, 0),
			right: core.NewVec3(-1, 1, 0),
			top:   core.NewVec3(0, 1, -1),
		},
		{
			name:  "zero up",
			aim:   core.NewVec3(0, -1, 0),
			up:    core.Vec3{},
			right: core.NewVec3(1, -1, 0),
			top:   core.NewVec3(0, -1, -1),
		},
		{
			name:  "looking down -Z with up along -Z",
			aim:   core.NewVec3(0, 0, -1),
			up:    core.NewVec3(0, 0, -1),
			right: core.NewVec3(1, 0, -1),
			top:   core.NewVec3(0, 1, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera := NewCamera(CameraConfig{Aim: tt.aim, Up: tt.up, Width: 2, Height: 2, Focal: 1})

			if got := camera.GetRay(1, 0.5).Direction; !got.Equals(tt.right) {
				t.Errorf("Expected right edge direction %v, got %v", tt.right, got)
			}
			if got := camera.GetRay(0.5, 1).Direction; !got.Equals(tt.top) {
				t.Errorf("Expected top edge direction %v, got %v", tt.top, got)
			}
			if camera.GetRay(0, 0).Direction.Equals(camera.GetRay(1, 1).Direction) {
				t.Error("Opposite corners should not share a direction")
			}
		})
	}
}

func TestCamera_PixelRay(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())

	// Top row points up, bottom row points down, left column points left
	for _, du := range []float64{0, 0.5, 0.999} {
		top := camera.PixelRay(0, 0, 3, 2, du, du)
		if top.Direction.Y <= 0 {
			t.Errorf("Top row ray should point up, got %v", top.Direction)
		}
		if top.Direction.X >= 0 {
			t.Errorf("Left column ray should point left, got %v", top.Direction)
		}
		bottom := camera.PixelRay(2, 1, 3, 2, du, du)
		if bottom.Direction.Y > 0 {
			t.Errorf("Bottom row ray should not point up, got %v", bottom.Direction)
		}
		if bottom.Direction.X <= 0 {
			t.Errorf("Right column ray should point right, got %v", bottom.Direction)
		}
	}
}

func TestRayIterator(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	random := rand.New(rand.NewSource(42))
	width, height, samples := 3, 2, 4

	it := camera.Rays(width, height, samples, random)
	if it.Remaining() != width*height {
		t.Fatalf("Expected %d remaining, got %d", width*height, it.Remaining())
	}

	var pixels []Pixel
	for {
		pixel, rays, ok := it.Next()
		if !ok {
			break
		}
		if len(rays) != samples {
			t.Errorf("Pixel %v: expected %d rays, got %d", pixel, samples, len(rays))
		}
		pixels = append(pixels, pixel)
		if it.Remaining() != width*height-len(pixels) {
			t.Errorf("After %d pixels expected %d remaining, got %d", len(pixels), width*height-len(pixels), it.Remaining())
		}
	}

	expected := []Pixel{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if len(pixels) != len(expected) {
		t.Fatalf("Expected %d pixels, got %d", len(expected), len(pixels))
	}
	for i := range expected {
		if pixels[i] != expected[i] {
			t.Errorf("Pixel %d: expected %v, got %v", i, expected[i], pixels[i])
		}
	}

	// Exhausted iterators stay exhausted
	if _, _, ok := it.Next(); ok {
		t.Error("Exhausted iterator should not yield more pixels")
	}
}

func TestRayIterator_Empty(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	it := camera.Rays(0, 5, 1, rand.New(rand.NewSource(1)))
	if _, _, ok := it.Next(); ok {
		t.Error("Zero-width grid should yield no pixels")
	}
	if it.Remaining() != 0 {
		t.Errorf("Expected 0 remaining, got %d", it.Remaining())
	}
}

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{Focal: 2, Center: core.NewVec3(0, 1, 0)})

	if merged.Focal != 2 {
		t.Errorf("Expected focal 2, got %f", merged.Focal)
	}
	if merged.Center != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected overridden center, got %v", merged.Center)
	}
	if merged.Aim != base.Aim || merged.Up != base.Up || merged.Width != base.Width || merged.Height != base.Height {
		t.Errorf("Zero fields should keep base values, got %+v", merged)
	}
}
