package material

import (
	"math/rand/v2"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material, clamping fuzz to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: max(0.0, min(1.0, fuzz))}
}

// Scatter reflects the ray about the normal and perturbs it by the fuzz.
// The ray is absorbed when the perturbed direction points into the surface.
func (m *Metal) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz))
	}

	if reflected.Dot(hit.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, reflected, rayIn.Time),
		Attenuation: m.Albedo,
	}, true
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
