package core

import "math/rand"

// RandomInUnitSphere generates a uniformly distributed point inside or on the
// unit sphere by rejection sampling the enclosing cube
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}
