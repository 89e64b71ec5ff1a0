package geometry

import (
	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// gravity acceleration used by GravitySphere, in scene units per time²
var gravity = core.NewVec3(0, -9.8, 0)

// GravitySphere is a sphere following a ballistic trajectory: it starts at
// Center with the given initial velocity at ReleaseTime and falls under
// constant acceleration. Used for physically-simulated motion blur.
type GravitySphere struct {
	Center      core.Vec3
	Velocity    core.Vec3
	ReleaseTime float64
	Radius      float64
	Material    core.Material
}

// NewGravitySphere creates a sphere dropped from rest at the given time
func NewGravitySphere(center core.Vec3, releaseTime, radius float64, material core.Material) *GravitySphere {
	return &GravitySphere{
		Center:      center,
		ReleaseTime: releaseTime,
		Radius:      radius,
		Material:    material,
	}
}

// NewThrownSphere creates a sphere launched with an initial velocity
func NewThrownSphere(center, velocity core.Vec3, releaseTime, radius float64, material core.Material) *GravitySphere {
	s := NewGravitySphere(center, releaseTime, radius, material)
	s.Velocity = velocity
	return s
}

// CenterAt returns the ballistic center at the given time. Before the
// release time the sphere has not moved yet.
func (s *GravitySphere) CenterAt(time float64) core.Vec3 {
	dt := time - s.ReleaseTime
	if dt <= 0 {
		return s.Center
	}
	return s.Center.
		Add(s.Velocity.Multiply(dt)).
		Add(gravity.Multiply(0.5 * dt * dt))
}

// Hit tests if a ray intersects with the sphere at the ray's time
func (s *GravitySphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return sphereHit(ray, tMin, tMax, s.CenterAt(ray.Time), s.Radius, s.Material)
}

// BoundingBox bounds the trajectory over [time0, time1]. The path is
// parabolic, so the endpoints suffice except when the vertical turning point
// falls inside the window; that apex box is unioned in as well.
func (s *GravitySphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box := core.SurroundingBox(s.boxAt(time0), s.boxAt(time1))

	// Vertical extremum at v_y + g_y*dt = 0
	if gravity.Y != 0 {
		apex := s.ReleaseTime - s.Velocity.Y/gravity.Y
		if apex > time0 && apex < time1 {
			box = core.SurroundingBox(box, s.boxAt(apex))
		}
	}
	return box, true
}

func (s *GravitySphere) boxAt(time float64) core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	center := s.CenterAt(time)
	return core.NewAABB(center.Subtract(radius), center.Add(radius))
}
