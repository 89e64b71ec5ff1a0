package geometry

import (
	"math"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// RotateY rotates a wrapped hittable around the Y axis. Sin/cos of the angle
// and the rotated bounding box are computed once at construction; rotation is
// not box-preserving, so the box cannot be derived lazily from the child's.
type RotateY struct {
	child    core.Hittable
	sinTheta float64
	cosTheta float64
	box      core.AABB
	hasBox   bool
}

// NewRotateY wraps a hittable with a rotation of the given angle in degrees
func NewRotateY(angleDegrees float64, child core.Hittable) *RotateY {
	radians := angleDegrees * math.Pi / 180
	r := &RotateY{
		child:    child,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	childBox, ok := child.BoundingBox(0, 1)
	r.hasBox = ok
	if !ok {
		return r
	}

	// Rotate all 8 corners and take the min/max of the results
	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*childBox.Max.X + float64(1-i)*childBox.Min.X
				y := float64(j)*childBox.Max.Y + float64(1-j)*childBox.Min.Y
				z := float64(k)*childBox.Max.Z + float64(1-k)*childBox.Min.Z

				newX := r.cosTheta*x + r.sinTheta*z
				newZ := -r.sinTheta*x + r.cosTheta*z

				min.X = math.Min(min.X, newX)
				min.Y = math.Min(min.Y, y)
				min.Z = math.Min(min.Z, newZ)
				max.X = math.Max(max.X, newX)
				max.Y = math.Max(max.Y, y)
				max.Z = math.Max(max.Z, newZ)
			}
		}
	}

	r.box = core.NewAABB(min, max)
	return r
}

// Hit rotates the ray into object space, delegates, and rotates the hit
// point and normal back into world space
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	origin := ray.Origin
	direction := ray.Direction

	origin.X = r.cosTheta*ray.Origin.X - r.sinTheta*ray.Origin.Z
	origin.Z = r.sinTheta*ray.Origin.X + r.cosTheta*ray.Origin.Z

	direction.X = r.cosTheta*ray.Direction.X - r.sinTheta*ray.Direction.Z
	direction.Z = r.sinTheta*ray.Direction.X + r.cosTheta*ray.Direction.Z

	rotated := core.NewTimedRay(origin, direction, ray.Time)

	hit, isHit := r.child.Hit(rotated, tMin, tMax)
	if !isHit {
		return nil, false
	}

	point := hit.Point
	normal := hit.Normal

	point.X = r.cosTheta*hit.Point.X + r.sinTheta*hit.Point.Z
	point.Z = -r.sinTheta*hit.Point.X + r.cosTheta*hit.Point.Z

	normal.X = r.cosTheta*hit.Normal.X + r.sinTheta*hit.Normal.Z
	normal.Z = -r.sinTheta*hit.Normal.X + r.cosTheta*hit.Normal.Z

	world := *hit
	world.Point = point
	world.SetFaceNormal(rotated, normal)
	return &world, true
}

// BoundingBox returns the box computed at construction
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}
