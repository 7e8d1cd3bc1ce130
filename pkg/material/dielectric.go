package material

import (
	"math"
	"math/rand/v2"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Dielectric represents a clear refractive material like glass
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts the ray by Snell's law, falling back to specular
// reflection on total internal reflection. Glass never absorbs and never
// tints, so attenuation is always white.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// The hit normal always points out of the object; a positive dot product
	// means the ray is leaving it
	var outwardNormal core.Vec3
	var niOverNt float64
	if rayIn.Direction.Dot(hit.Normal) > 0 {
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
	}

	direction, refracted := Refract(rayIn.Direction, outwardNormal, niOverNt)
	if !refracted {
		direction = Reflect(rayIn.Direction, hit.Normal)
	}

	return core.ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// Refract bends v through a surface with unit normal n facing the incoming
// side, niOverNt being the ratio of refractive indices. It returns false on
// total internal reflection (non-positive discriminant).
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	refracted := uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant)))
	return refracted, true
}
