package material

import (
	"math/rand/v2"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Lambertian represents a diffuse material
type Lambertian struct {
	Albedo core.ColorSource // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedoTexture core.ColorSource) *Lambertian {
	return &Lambertian{Albedo: albedoTexture}
}

// Scatter bounces the ray towards normal + a random point inside the unit
// sphere. Lambertian surfaces never absorb.
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomInUnitSphere(random))

	return core.ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, scatterDirection, rayIn.Time),
		Attenuation: l.Albedo.Evaluate(hit.UV, hit.Point),
	}, true
}
