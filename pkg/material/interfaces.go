package material

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Material scatters rays that strike a surface. The set of implementations is
// closed: Diffuse, Metal and Dielectric.
type Material interface {
	// Scatter returns the next bounce of the path, or false if the surface
	// absorbed the ray
	Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (Bounce, bool)

	sealed()
}

// Bounce is one scatter event: the outgoing ray and the attenuation to
// multiply into the path radiance
type Bounce struct {
	Ray         core.Ray
	Attenuation core.Color
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64   // Parameter t along the ray
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the ray
	FrontFace bool      // Whether the ray struck the outward side
	Material  Material  // Material of the hit object
}

// SetFaceNormal records which side was struck and orients the normal against
// the incoming ray
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
