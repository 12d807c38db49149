package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// NewMaterialsScene shows one sphere per material model over a diffuse
// ground. The ground and the small foreground spheres reuse the material
// instances of the large spheres.
func NewMaterialsScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene("materials")
	s.CameraConfig = geometry.CameraConfig{
		Center: core.NewVec3(0, 0.3, 1),
		Aim:    core.NewVec3(0, -0.15, -1),
		Up:     core.NewVec3(0, 1, 0),
		Width:  2.0 * 16.0 / 9.0,
		Height: 2.0,
		Focal:  1.0,
	}
	if len(cameraOverrides) > 0 {
		s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, cameraOverrides[0])
	}
	s.SamplingConfig = SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 64,
		MaxDepth:        24,
	}

	ground := material.NewDiffuse(1.0, core.NewColor(0.8, 0.8, 0.0))
	matte := material.NewDiffuse(1.0, core.NewColor(0.7, 0.3, 0.3))
	glass := material.NewDielectric(1.5, core.NewColor(0.95, 0.95, 1.0))
	gold := material.NewMetal(0.3, core.NewColor(0.8, 0.6, 0.2))
	mirror := material.NewMetal(0.0, core.NewColor(0.8, 0.8, 0.8))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, matte),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
		geometry.NewSphere(core.NewVec3(-0.35, -0.35, -0.4), 0.15, mirror),
		geometry.NewSphere(core.NewVec3(0.35, -0.4, -0.45), 0.1, matte),
		geometry.NewSphere(core.NewVec3(0.0, -0.42, -0.3), 0.08, glass),
	)

	return s
}
