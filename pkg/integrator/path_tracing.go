// Package integrator computes radiance along camera rays.
package integrator

import (
	"math"
	"math/rand"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// PathTracer estimates radiance by following a single ray through repeated
// scattering events, accumulating emission weighted by the running
// attenuation product.
type PathTracer struct {
	Background core.Vec3 // Radiance returned when a ray escapes the world
	MaxDepth   int       // Maximum number of scattering events per ray
}

// NewPathTracer creates a path tracer with the given background and depth
func NewPathTracer(background core.Vec3, maxDepth int) *PathTracer {
	return &PathTracer{Background: background, MaxDepth: maxDepth}
}

// RayColor returns the radiance arriving along ray from the world.
//
// The loop carries two accumulators: output holds emission gathered so
// far, product holds the attenuation of every bounce taken to reach the
// current ray. A ray that exhausts its depth contributes nothing further.
func (pt *PathTracer) RayColor(ray core.Ray, world core.Hittable, random *rand.Rand) core.Vec3 {
	output := core.NewVec3(0, 0, 0)
	product := core.NewVec3(1, 1, 1)
	depth := pt.MaxDepth

	for {
		depth--
		if depth < 0 {
			return output
		}

		// tMin 0.001 avoids re-hitting the surface just left (shadow acne)
		hit, ok := world.Hit(ray, 0.001, math.Inf(1))
		if !ok {
			output = output.Add(product.MultiplyVec(pt.Background))
			return output
		}

		if emitter, ok := hit.Material.(core.Emitter); ok {
			emitted := emitter.Emitted(hit.U, hit.V, hit.Point)
			output = output.Add(product.MultiplyVec(emitted))
		}

		scatter, scattered := hit.Material.Scatter(ray, hit, random)
		if !scattered {
			return output
		}

		product = product.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}
}
