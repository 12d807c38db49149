package material

import (
	"math"
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass.
// It always refracts; there is no Fresnel reflection or total internal
// reflection branch.
type Dielectric struct {
	RefractiveIndex float64    // Index of refraction (e.g., 1.5 for glass)
	Albedo          core.Color // Tint applied to transmitted light
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64, albedo core.Color) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Albedo: albedo}
}

// RefractionRatio returns eta_i / eta_t for a ray entering (front face) or
// leaving the material
func (d *Dielectric) RefractionRatio(frontFace bool) float64 {
	if frontFace {
		return 1.0 / d.RefractiveIndex
	}
	return d.RefractiveIndex
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (Bounce, bool) {
	ratio := d.RefractionRatio(hit.FrontFace)
	direction := Refract(rayIn.Direction.Normalize(), hit.Normal, ratio)

	return Bounce{
		Ray:         core.NewRay(hit.Point, direction),
		Attenuation: d.Albedo,
	}, true
}

func (d *Dielectric) sealed() {}

// Refract bends the unit vector uv through a surface with unit normal n using
// Snell's law. Past the critical angle the parallel component uses |1 - perp²|.
func Refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
