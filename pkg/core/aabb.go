package core

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	box := AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		box.Min = box.Min.Min(point)
		box.Max = box.Max.Max(point)
	}
	return box
}

// Hit tests if a ray intersects with this AABB using the slab method.
//
// A zero direction component yields a signed infinity from the division,
// which is what makes axis-parallel rays work without a special case. When
// the origin also lies exactly on a slab plane the division gives NaN.
// ffmin/ffmax return their second operand whenever a comparison involves
// NaN, which rejects a ray lying in the min plane and accepts one lying in
// the max plane. Such a ray can only graze a sphere tangentially.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		minT := (aabb.Min.Axis(axis) - origin) / direction
		maxT := (aabb.Max.Axis(axis) - origin) / direction
		t0 := ffmin(minT, maxT)
		t1 := ffmax(minT, maxT)

		tMin = ffmax(t0, tMin)
		tMax = ffmin(t1, tMax)

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// SurroundingBox returns the smallest AABB that bounds both this AABB and another
func (aabb AABB) SurroundingBox(other AABB) AABB {
	return AABB{
		Min: aabb.Min.Min(other.Min),
		Max: aabb.Max.Max(other.Max),
	}
}

// OptionalSurroundingBox merges two boxes that may each be absent.
// Both present gives the merged box, exactly one present gives that box,
// neither gives no box.
func OptionalSurroundingBox(a AABB, okA bool, b AABB, okB bool) (AABB, bool) {
	switch {
	case okA && okB:
		return a.SurroundingBox(b), true
	case okA:
		return a, true
	case okB:
		return b, true
	default:
		return AABB{}, false
	}
}

// Contains reports whether the point lies inside or on the boundary of the AABB
func (aabb AABB) Contains(p Vec3) bool {
	return p.X >= aabb.Min.X && p.X <= aabb.Max.X &&
		p.Y >= aabb.Min.Y && p.Y <= aabb.Max.Y &&
		p.Z >= aabb.Min.Z && p.Z <= aabb.Max.Z
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

func ffmin(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func ffmax(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
