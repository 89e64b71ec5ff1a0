package core

import "math"

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

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects this AABB using the slab method. A zero
// direction component divides to ±Inf, which the comparisons handle without
// a special case.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / ray.Direction.Axis(axis)
		t0 := (aabb.Min.Axis(axis) - ray.Origin.Axis(axis)) * invD
		t1 := (aabb.Max.Axis(axis) - ray.Origin.Axis(axis)) * invD

		// Keep t0 <= t1 in ray-parameter order regardless of direction sign
		if invD < 0 {
			t0, t1 = t1, t0
		}

		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// SurroundingBox returns the tightest AABB containing both input boxes
func SurroundingBox(box0, box1 AABB) AABB {
	small := Vec3{
		X: math.Min(box0.Min.X, box1.Min.X),
		Y: math.Min(box0.Min.Y, box1.Min.Y),
		Z: math.Min(box0.Min.Z, box1.Min.Z),
	}
	big := Vec3{
		X: math.Max(box0.Max.X, box1.Max.X),
		Y: math.Max(box0.Max.Y, box1.Max.Y),
		Z: math.Max(box0.Max.Z, box1.Max.Z),
	}
	return AABB{Min: small, Max: big}
}
