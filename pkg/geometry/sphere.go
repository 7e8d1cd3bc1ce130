package geometry

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Sphere represents a static sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// hitSphere solves |ray(t) - center|² = radius² for the nearest root in
// (tMin, tMax). The direction may be unnormalized, hence the full a term.
func hitSphere(center core.Vec3, radius float64, material core.Material, ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := b*b - a*c
	if discriminant <= 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first, then the farther one
	root := (-b - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-b + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(center).Divide(radius)

	return &core.HitRecord{
		T:        root,
		Point:    point,
		Normal:   normal,
		UV:       sphereUV(normal),
		Material: material,
	}, true
}

// sphereUV maps a unit normal to (u, v) in [0,1]², u around the Y axis and
// v from the south to the north pole
func sphereUV(normal core.Vec3) core.Vec2 {
	phi := math.Atan2(normal.Z, normal.X)
	theta := math.Asin(max(-1, min(1, normal.Y)))
	return core.NewVec2(
		1-(phi+math.Pi)/(2*math.Pi),
		(theta+math.Pi/2)/math.Pi,
	)
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := core.Splat(math.Abs(radius))
	return core.NewAABB(center.Subtract(r), center.Add(r))
}
