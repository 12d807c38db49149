package renderer

import (
	"errors"
	"image"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrInvalidDimensions},
		{"zero samples", func(c *Config) { c.SamplesPerPixel = 0 }, ErrInvalidSamples},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }, ErrInvalidDepth},
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }, nil},
		{"zero passes", func(c *Config) { c.Passes = 0 }, ErrInvalidPasses},
		{"zero tile size", func(c *Config) { c.TileSize = 0 }, ErrInvalidTileSize},
		{"zero gamma", func(c *Config) { c.Gamma = 0 }, ErrInvalidGamma},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			if err := config.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfig_SamplesForPass(t *testing.T) {
	tests := []struct {
		name     string
		spp      int
		passes   int
		expected []int
	}{
		{"even split", 8, 4, []int{2, 2, 2, 2}},
		{"remainder goes first", 10, 4, []int{3, 3, 2, 2}},
		{"more passes than samples", 3, 8, []int{1, 1, 1}},
		{"single pass", 5, 1, []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.SamplesPerPixel = tt.spp
			config.Passes = tt.passes

			if config.PassCount() != len(tt.expected) {
				t.Fatalf("Expected %d passes, got %d", len(tt.expected), config.PassCount())
			}
			total := 0
			for i, want := range tt.expected {
				got := config.samplesForPass(i + 1)
				if got != want {
					t.Errorf("Pass %d: expected %d samples, got %d", i+1, want, got)
				}
				total += got
			}
			if total != tt.spp {
				t.Errorf("Passes should add up to %d samples, got %d", tt.spp, total)
			}
		})
	}
}

func TestConfigForScene(t *testing.T) {
	s := scene.NewScene("test")
	s.SamplingConfig = scene.SamplingConfig{Width: 10, SamplesPerPixel: 3}

	config := ConfigForScene(s)
	if config.Width != 10 || config.SamplesPerPixel != 3 {
		t.Errorf("Scene sampling not applied: %+v", config)
	}
	if config.Height != DefaultConfig().Height || config.MaxDepth != DefaultConfig().MaxDepth {
		t.Errorf("Unset scene fields should keep defaults: %+v", config)
	}
}

func TestNewTileGrid(t *testing.T) {
	width, height := 70, 40
	tiles := NewTileGrid(width, height, 32)

	if len(tiles) != 6 {
		t.Fatalf("Expected 6 tiles, got %d", len(tiles))
	}
	if last := tiles[len(tiles)-1].Bounds; last != image.Rect(64, 32, 70, 40) {
		t.Errorf("Expected last tile clipped to the image, got %v", last)
	}

	// Every pixel is covered by exactly one tile
	coverage := make([]int, width*height)
	for i, tile := range tiles {
		if tile.ID != i {
			t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
		}
		for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
			for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
				coverage[y*width+x]++
			}
		}
	}
	for i, count := range coverage {
		if count != 1 {
			t.Fatalf("Pixel (%d, %d) covered %d times", i%width, i/width, count)
		}
	}
}
