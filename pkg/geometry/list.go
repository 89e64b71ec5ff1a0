package geometry

import (
	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// HittableList is an unbounded container of hittables. Children are held by
// shared reference; a BVH built from the list references the same leaves.
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates an empty list
func NewHittableList() *HittableList {
	return &HittableList{}
}

// Add appends an object to the list
func (l *HittableList) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit scans all children and keeps the closest hit, shrinking tMax as it
// goes so later children can early-reject farther intersections
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all children's boxes. An empty list or
// any child without a box yields no box.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	first := true
	for _, object := range l.Objects {
		childBox, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			box = childBox
			first = false
		} else {
			box = core.SurroundingBox(box, childBox)
		}
	}

	return box, true
}
