package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID              int             // Unique tile identifier
	Bounds          image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	PassesCompleted int             // Number of passes completed for this tile
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// tileRandom returns the random generator for one tile in one pass. Results
// depend only on the seed, never on which worker picked the tile up.
func tileRandom(seed int64, tileID, pass int) *rand.Rand {
	return rand.New(rand.NewSource(seed + int64(tileID)*1_000_003 + int64(pass)*7_919))
}

// TileRenderer evaluates samples for the pixels of a tile. It holds only
// read-only state and is shared by all workers.
type TileRenderer struct {
	scene         *scene.Scene
	camera        *geometry.Camera
	integrator    integrator.Integrator
	width, height int
	maxDepth      int
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator, config Config) *TileRenderer {
	return &TileRenderer{
		scene:      s,
		camera:     s.Camera(),
		integrator: integratorInst,
		width:      config.Width,
		height:     config.Height,
		maxDepth:   config.MaxDepth,
	}
}

// RenderTileBounds takes samples new samples for every pixel in bounds and
// merges them into frame. Tiles never overlap, so concurrent calls on
// distinct bounds are safe.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, frame [][]Accumulator, random *rand.Rand, samples int) integrator.Counters {
	var counters integrator.Counters

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			partial := tr.samplePixel(x, y, random, samples, &counters)
			frame[y][x].Merge(partial)
		}
	}

	return counters
}

// samplePixel returns the partial sum of samples radiance estimates for one pixel
func (tr *TileRenderer) samplePixel(x, y int, random *rand.Rand, samples int, counters *integrator.Counters) Accumulator {
	var partial Accumulator
	for _, ray := range tr.camera.SampleRays(x, y, tr.width, tr.height, samples, random) {
		partial.Add(tr.integrator.Cast(ray, tr.scene, tr.maxDepth, random, counters))
	}
	return partial
}
