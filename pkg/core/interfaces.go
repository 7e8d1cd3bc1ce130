package core

import (
	"math/rand/v2"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64  // Parameter t along the ray
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Outward unit surface normal
	UV       Vec2     // Surface texture coordinates
	Material Material // Material of the hit object, owned by the scene
}

// Hitable is implemented by everything a ray can be intersected with:
// primitives, collections and BVH trees
type Hitable interface {
	// Hit returns the nearest intersection with t strictly inside (tMin, tMax)
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns a box containing the object for every ray time in
	// [time0, time1], or false if the object cannot be bounded
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// Material interface for surfaces that scatter rays.
// A false result means the ray was absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	Evaluate(uv Vec2, point Vec3) Vec3
}

// Camera generates primary rays for normalized screen coordinates (s, t)
type Camera interface {
	GetRay(s, t float64, random *rand.Rand) Ray
}
