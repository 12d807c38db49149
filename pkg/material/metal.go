package material

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Roughness float64    // 0.0 = perfect mirror, larger values blur the reflection
	Albedo    core.Color // Metal color
}

// NewMetal creates a new metal material
func NewMetal(roughness float64, albedo core.Color) *Metal {
	return &Metal{Roughness: roughness, Albedo: albedo}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (Bounce, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Glossy reflection
	if m.Roughness != 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Roughness))
	}

	// A perturbed direction below the surface would pass through it
	if reflected.Dot(hit.Normal) <= 0 {
		return Bounce{}, false
	}

	return Bounce{
		Ray:         core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo,
	}, true
}

func (m *Metal) sealed() {}

// Reflect calculates the reflection of v off a surface with unit normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
