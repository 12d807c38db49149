package material

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Diffuse scatters light around the surface normal
type Diffuse struct {
	Roughness float64    // Scale of the random offset added to the normal
	Albedo    core.Color // Reflectance
}

// NewDiffuse creates a new diffuse material
func NewDiffuse(roughness float64, albedo core.Color) *Diffuse {
	return &Diffuse{Roughness: roughness, Albedo: albedo}
}

// Scatter implements the Material interface for diffuse scattering.
// Diffuse surfaces never absorb.
func (d *Diffuse) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (Bounce, bool) {
	direction := hit.Normal.Add(core.RandomInUnitSphere(random).Multiply(d.Roughness))

	// The offset can cancel the normal almost exactly
	if direction.NearZero() {
		direction = hit.Normal
	}

	return Bounce{
		Ray:         core.NewRay(hit.Point, direction),
		Attenuation: d.Albedo,
	}, true
}

func (d *Diffuse) sealed() {}
