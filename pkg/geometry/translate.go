package geometry

import (
	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// Translate shifts a wrapped hittable by a fixed offset. The ray is moved
// backward into object space, and the resulting hit point moved forward.
type Translate struct {
	Offset core.Vec3
	child  core.Hittable
}

// NewTranslate wraps a hittable with a translation
func NewTranslate(offset core.Vec3, child core.Hittable) *Translate {
	return &Translate{Offset: offset, child: child}
}

// Hit tests the offset ray against the child and shifts the hit back
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	moved := core.NewTimedRay(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, isHit := tr.child.Hit(moved, tMin, tMax)
	if !isHit {
		return nil, false
	}

	translated := *hit
	translated.Point = hit.Point.Add(tr.Offset)
	translated.SetFaceNormal(moved, hit.Normal)
	return &translated, true
}

// BoundingBox is the child's box shifted by the offset
func (tr *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := tr.child.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(tr.Offset), box.Max.Add(tr.Offset)), true
}
