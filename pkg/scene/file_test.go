package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

const sampleScene = `{
	"camera": {"center": [0, 1, 2], "focal": 1.5},
	"background": {"bottom": [1, 1, 1], "top": [0.2, 0.3, 0.9]},
	"sampling": {"width": 64, "spp": 8},
	"materials": {
		"floor": {"type": "diffuse", "albedo": [0.5, 0.5, 0.5], "roughness": 1},
		"chrome": {"type": "metal", "albedo": [0.9, 0.9, 0.9]},
		"glass": {"type": "glass", "albedo": [1, 1, 1], "ior": 1.5}
	},
	"spheres": [
		{"center": [0, -100.5, -1], "radius": 100, "material": "floor"},
		{"center": [-1, 0, -1], "radius": 0.5, "material": "chrome"},
		{"center": [1, 0, -1], "radius": 0.5, "material": "chrome"},
		{"center": [0, 0, -1], "radius": 0.5, "material": "glass"}
	]
}`

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(sampleScene))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if s.GetPrimitiveCount() != 4 {
		t.Errorf("Expected 4 spheres, got %d", s.GetPrimitiveCount())
	}
	if s.MaterialCount() != 3 {
		t.Errorf("Expected 3 materials, got %d", s.MaterialCount())
	}
	if s.Spheres[1].Material != s.Spheres[2].Material {
		t.Error("Spheres naming the same material should share one instance")
	}

	if s.CameraConfig.Center != core.NewVec3(0, 1, 2) || s.CameraConfig.Focal != 1.5 {
		t.Errorf("Camera overrides not applied: %+v", s.CameraConfig)
	}
	if s.CameraConfig.Aim != core.NewVec3(0, 0, -1) {
		t.Errorf("Omitted camera fields should keep defaults, got aim %v", s.CameraConfig.Aim)
	}
	if s.Background.Top != core.NewColor(0.2, 0.3, 0.9) {
		t.Errorf("Expected custom sky, got %v", s.Background.Top)
	}

	expectedSampling := DefaultSamplingConfig()
	expectedSampling.Width = 64
	expectedSampling.SamplesPerPixel = 8
	if s.SamplingConfig != expectedSampling {
		t.Errorf("Expected sampling %+v, got %+v", expectedSampling, s.SamplingConfig)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name:    "unknown material type",
			doc:     `{"materials": {"m": {"type": "plastic"}}, "spheres": []}`,
			wantErr: ErrUnknownMaterialType,
		},
		{
			name:    "glass without ior",
			doc:     `{"materials": {"g": {"type": "glass", "albedo": [1, 1, 1]}}, "spheres": []}`,
			wantErr: ErrInvalidIOR,
		},
		{
			name:    "negative ior",
			doc:     `{"materials": {"g": {"type": "dielectric", "ior": -1.5}}, "spheres": []}`,
			wantErr: ErrInvalidIOR,
		},
		{
			name:    "undefined material",
			doc:     `{"materials": {}, "spheres": [{"center": [0, 0, 0], "radius": 1, "material": "m"}]}`,
			wantErr: ErrUndefinedMaterial,
		},
		{
			name:    "non-positive radius",
			doc:     `{"materials": {"m": {"type": "diffuse"}}, "spheres": [{"center": [0, 0, 0], "radius": 0, "material": "m"}]}`,
			wantErr: ErrInvalidRadius,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(strings.NewReader(tt.doc)); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		if _, err := Load(strings.NewReader(`{"lights": []}`)); err == nil {
			t.Error("Expected an error for an unknown field")
		}
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "three-spheres.json")
	if err := os.WriteFile(path, []byte(sampleScene), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if s.Name != "three-spheres" {
		t.Errorf("Expected name from file, got %q", s.Name)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}
