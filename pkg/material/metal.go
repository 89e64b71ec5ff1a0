package material

import (
	"math/rand"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// Metal represents a reflective material with optional fuzz
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // 0 = perfect mirror, 1 = very fuzzy
}

// NewMetal creates a metal material; fuzz is clamped to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter reflects the ray about the normal and perturbs it by the fuzz
// radius. Rays perturbed into the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzz))
	}

	scattered := core.NewTimedRay(hit.Point, reflected, rayIn.Time)
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}
