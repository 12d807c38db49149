package scene

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to linear RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(r, g, blue).Clamp(0, 1)
}

// NewSphereGridScene creates a grid of small spheres cycling through the
// three material models, with hue varying across X and chroma across Z
func NewSphereGridScene(cameraOverrides ...geometry.CameraConfig) *Scene {
	s := NewScene("grid")
	s.CameraConfig = geometry.CameraConfig{
		Center: core.NewVec3(0, 4, 7),
		Aim:    core.NewVec3(0, -4, -8),
		Up:     core.NewVec3(0, 1, 0),
		Width:  2.0 * 16.0 / 9.0,
		Height: 2.0,
		Focal:  1.5,
	}
	if len(cameraOverrides) > 0 {
		s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, cameraOverrides[0])
	}
	s.SamplingConfig = SamplingConfig{
		Width:           480,
		Height:          270,
		SamplesPerPixel: 48,
		MaxDepth:        20,
	}

	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewDiffuse(1.0, core.Gray)))

	gridSize := 8
	targetArea := 6.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := spacing * 0.35

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0
			z := float64(j)*spacing - targetArea/2.0 - 2.0
			position := core.NewVec3(x, sphereRadius, z)

			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)
			color := oklchToRGB(lightness, chroma, hue)

			var mat material.Material
			switch (i + j) % 3 {
			case 0:
				mat = material.NewDiffuse(1.0, color)
			case 1:
				mat = material.NewMetal(0.05+0.1*float64(i%3)/2.0, color)
			default:
				mat = material.NewDielectric(1.5, color)
			}

			s.Add(geometry.NewSphere(position, sphereRadius, mat))
		}
	}

	return s
}
