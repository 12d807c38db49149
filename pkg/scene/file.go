package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
)

var (
	ErrUnknownMaterialType = errors.New("scene: unknown material type")
	ErrUndefinedMaterial   = errors.New("scene: sphere references undefined material")
	ErrInvalidRadius       = errors.New("scene: sphere radius must be positive")
	ErrInvalidIOR          = errors.New("scene: refractive index must be positive")
)

// vec3JSON is a [x, y, z] triple
type vec3JSON [3]float64

func (v vec3JSON) vec() core.Vec3    { return core.NewVec3(v[0], v[1], v[2]) }
func (v vec3JSON) color() core.Color { return core.NewColor(v[0], v[1], v[2]) }

// orZero returns the zero vector for an omitted field
func (v *vec3JSON) orZero() core.Vec3 {
	if v == nil {
		return core.Vec3{}
	}
	return v.vec()
}

type cameraJSON struct {
	Center *vec3JSON `json:"center"`
	Aim    *vec3JSON `json:"aim"`
	Up     *vec3JSON `json:"up"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Focal  float64   `json:"focal"`
}

type gradientJSON struct {
	Bottom vec3JSON `json:"bottom"`
	Top    vec3JSON `json:"top"`
}

type samplingJSON struct {
	Width           int `json:"width"`
	Height          int `json:"height"`
	SamplesPerPixel int `json:"spp"`
	MaxDepth        int `json:"depth"`
}

type materialJSON struct {
	Type            string   `json:"type"`
	Albedo          vec3JSON `json:"albedo"`
	Roughness       float64  `json:"roughness"`
	RefractiveIndex float64  `json:"ior"`
}

type sphereJSON struct {
	Center   vec3JSON `json:"center"`
	Radius   float64  `json:"radius"`
	Material string   `json:"material"`
}

type sceneJSON struct {
	Name       string                  `json:"name"`
	Camera     *cameraJSON             `json:"camera"`
	Background *gradientJSON           `json:"background"`
	Sampling   *samplingJSON           `json:"sampling"`
	Materials  map[string]materialJSON `json:"materials"`
	Spheres    []sphereJSON            `json:"spheres"`
}

// LoadFile reads a JSON scene description from disk
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Load decodes a JSON scene description. Materials are declared once by name
// and every sphere naming a material shares that instance.
func Load(r io.Reader) (*Scene, error) {
	var doc sceneJSON
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}

	s := NewScene(doc.Name)

	if doc.Camera != nil {
		s.CameraConfig = geometry.MergeCameraConfig(s.CameraConfig, geometry.CameraConfig{
			Center: doc.Camera.Center.orZero(),
			Aim:    doc.Camera.Aim.orZero(),
			Up:     doc.Camera.Up.orZero(),
			Width:  doc.Camera.Width,
			Height: doc.Camera.Height,
			Focal:  doc.Camera.Focal,
		})
	}
	if doc.Background != nil {
		s.Background = Gradient{
			Bottom: doc.Background.Bottom.color(),
			Top:    doc.Background.Top.color(),
		}
	}
	if doc.Sampling != nil {
		s.SamplingConfig = mergeSampling(s.SamplingConfig, *doc.Sampling)
	}

	materials := make(map[string]material.Material, len(doc.Materials))
	for name, m := range doc.Materials {
		mat, err := m.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	for i, sp := range doc.Spheres {
		mat, ok := materials[sp.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w: %q", i, ErrUndefinedMaterial, sp.Material)
		}
		if sp.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: %w", i, ErrInvalidRadius)
		}
		s.Add(geometry.NewSphere(sp.Center.vec(), sp.Radius, mat))
	}

	return s, nil
}

func (m materialJSON) build() (material.Material, error) {
	switch strings.ToLower(m.Type) {
	case "diffuse":
		return material.NewDiffuse(m.Roughness, m.Albedo.color()), nil
	case "metal":
		return material.NewMetal(m.Roughness, m.Albedo.color()), nil
	case "dielectric", "glass":
		if m.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("%w: %g", ErrInvalidIOR, m.RefractiveIndex)
		}
		return material.NewDielectric(m.RefractiveIndex, m.Albedo.color()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMaterialType, m.Type)
	}
}

func mergeSampling(base SamplingConfig, override samplingJSON) SamplingConfig {
	if override.Width > 0 {
		base.Width = override.Width
	}
	if override.Height > 0 {
		base.Height = override.Height
	}
	if override.SamplesPerPixel > 0 {
		base.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		base.MaxDepth = override.MaxDepth
	}
	return base
}
