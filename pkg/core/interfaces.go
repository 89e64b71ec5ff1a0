package core

import "math/rand"

// HitRecord contains information about a ray-object intersection.
// It is created fresh per successful intersection and never mutated after.
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always oriented against the incoming ray
	T         float64  // Parameter t along the ray
	U, V      float64  // Texture coordinates
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object, shared by reference
}

// SetFaceNormal orients the normal against the incoming ray and records
// whether the front face was hit
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray intersection test can be run against.
// Implementations are immutable after construction and safe for concurrent
// use by render workers.
type Hittable interface {
	// Hit reports the nearest intersection with t in [tMin, tMax], if any
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox reports a box containing every point reachable by Hit
	// over [time0, time1]. The second result is false when no finite box
	// exists (e.g. an empty list).
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// ScatterResult contains the outgoing ray and attenuation from a scatter event
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation applied to light carried by it
}

// Material decides how an incoming ray scatters at a surface point
type Material interface {
	// Scatter returns the scattered ray and attenuation, or false when the
	// ray is absorbed
	Scatter(rayIn Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light. The integrator
// type-asserts for it; materials without it contribute zero emission.
type Emitter interface {
	Emitted(u, v float64, p Vec3) Vec3
}
