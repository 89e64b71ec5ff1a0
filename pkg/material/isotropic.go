package material

import (
	"math/rand"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// Isotropic is the phase function for participating media: it scatters in
// a uniformly random direction regardless of the incoming ray
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic material with a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniformly random direction inside the unit sphere
func (iso *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Scattered:   core.NewTimedRay(hit.Point, core.RandomInUnitSphere(random), rayIn.Time),
		Attenuation: iso.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}
