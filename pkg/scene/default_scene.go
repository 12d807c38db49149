package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// NewDefaultScene creates a gray diffuse sphere resting on a large ground
// sphere, seen from the origin
func NewDefaultScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene("default")
	if len(cameraOverrides) > 0 {
		s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, cameraOverrides[0])
	}

	gray := material.NewDiffuse(1.0, core.Gray)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(2, -100.5, -1), 100, gray),
	)

	return s
}
