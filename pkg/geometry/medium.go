package geometry

import (
	"math"
	"math/rand"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// ConstantMedium is a participating medium of uniform density filling a
// boundary shape. Rays scatter at an exponentially-sampled distance inside
// the boundary instead of at its surface.
//
// Precondition: the boundary must be convex, so that any ray crosses it at
// most twice. Concave boundaries would need interval lists and are not
// supported.
type ConstantMedium struct {
	boundary      core.Hittable
	phaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium wraps a boundary shape with a medium of the given
// density and phase-function material
func NewConstantMedium(boundary core.Hittable, density float64, phaseFunction core.Material) *ConstantMedium {
	return &ConstantMedium{
		boundary:      boundary,
		phaseFunction: phaseFunction,
		negInvDensity: -1.0 / density,
	}
}

// Hit finds the ray's entry and exit against the boundary, samples a
// free-flight distance and reports a scatter event if it falls inside
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Entry point, searching the whole ray so origins inside the medium work
	hit1, ok := m.boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}

	// Exit point, starting just past the entry
	hit2, ok := m.boundary.Hit(ray, hit1.T+1e-4, math.Inf(1))
	if !ok {
		return nil, false
	}

	t1 := math.Max(hit1.T, tMin)
	t2 := math.Min(hit2.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength

	// Hit carries no per-worker generator, so draw from the locked global
	// source; the medium is the only traversal-time consumer of randomness
	hitDistance := m.negInvDensity * math.Log(rand.Float64())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary; unused by isotropic scattering
		FrontFace: true,
		Material:  m.phaseFunction,
	}, true
}

// BoundingBox is the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.boundary.BoundingBox(time0, time1)
}
