package geometry

import (
	"math"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// Triangle is a single triangle defined by three vertices. The unit normal
// is precomputed at construction.
type Triangle struct {
	V0, V1, V2 core.Vec3
	Normal     core.Vec3
	Material   core.Material
}

// NewTriangle creates a triangle from three vertices in counter-clockwise
// winding order
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	normal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Normal:   normal,
		Material: material,
	}
}

// Hit intersects the ray with the triangle's plane, then checks the point
// against all three edges
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(tr.Normal)

	// Near-parallel rays blow up the plane solve; treat them as misses
	if math.Abs(denominator) < 1e-4 {
		return nil, false
	}

	t := tr.V0.Subtract(ray.Origin).Dot(tr.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	p := ray.At(t)

	// Edge tests: the hit point must be on the inner side of every edge
	edge0 := tr.V1.Subtract(tr.V0).Cross(p.Subtract(tr.V0))
	edge1 := tr.V2.Subtract(tr.V1).Cross(p.Subtract(tr.V1))
	edge2 := tr.V0.Subtract(tr.V2).Cross(p.Subtract(tr.V2))
	if edge0.Dot(tr.Normal) < 0 || edge1.Dot(tr.Normal) < 0 || edge2.Dot(tr.Normal) < 0 {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        t,
		Point:    p,
		Material: tr.Material,
	}
	hit.SetFaceNormal(ray, tr.Normal)
	return hit, true
}

// BoundingBox bounds the three vertices, padded so axis-aligned triangles
// keep a nonzero extent
func (tr *Triangle) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box := core.NewAABBFromPoints(tr.V0, tr.V1, tr.V2)
	pad := core.NewVec3(rectPadding, rectPadding, rectPadding)
	return core.NewAABB(box.Min.Subtract(pad), box.Max.Add(pad)), true
}
