package core

// HitableList is a flat collection of hitables searched linearly
type HitableList []Hitable

// Hit returns the closest hit over all members, narrowing the upper bound
// to the best t found so far
func (l HitableList) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := tMax

	for _, item := range l {
		if hit, isHit := item.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox folds the members' boxes together, skipping members without one
func (l HitableList) BoundingBox(time0, time1 float64) (AABB, bool) {
	var box AABB
	hasBox := false

	for _, item := range l {
		itemBox, ok := item.BoundingBox(time0, time1)
		box, hasBox = OptionalSurroundingBox(box, hasBox, itemBox, ok)
	}

	return box, hasBox
}
