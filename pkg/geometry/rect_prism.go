package geometry

import (
	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// RectPrism is an axis-aligned box built from six rectangles. Intersection
// delegates to the internal list; the bounding box is the two corner points
// directly, avoiding the rectangles' padding epsilon.
type RectPrism struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewRectPrism creates a box spanning the two opposite corners
func NewRectPrism(min, max core.Vec3, material core.Material) *RectPrism {
	sides := NewHittableList()

	sides.Add(NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material))
	sides.Add(NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material))

	sides.Add(NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material))
	sides.Add(NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material))

	sides.Add(NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material))
	sides.Add(NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material))

	return &RectPrism{Min: min, Max: max, sides: sides}
}

// Hit tests if a ray intersects any of the six faces
func (p *RectPrism) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return p.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box's own corners
func (p *RectPrism) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(p.Min, p.Max), true
}
