package material

import (
	"math/rand"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// DiffuseLight is a pure emitter: it never scatters, it only radiates its
// texture's value
type DiffuseLight struct {
	Emission Texture
}

// NewDiffuseLight creates a light emitting a solid color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light emitting a texture's value
func NewTexturedDiffuseLight(emission Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter absorbs every incoming ray
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the emitted radiance at the given surface point
func (dl *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return dl.Emission.Value(u, v, p)
}
