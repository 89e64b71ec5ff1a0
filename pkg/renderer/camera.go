package renderer

import (
	"math"
	"math/rand"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// Camera generates primary rays through a thin-lens model with an open
// shutter interval for motion blur
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// CameraConfig holds the parameters needed to build a camera
type CameraConfig struct {
	LookFrom    core.Vec3
	LookAt      core.Vec3
	VUp         core.Vec3 // Camera-relative up direction
	VFov        float64   // Vertical field of view, in degrees
	AspectRatio float64
	Aperture    float64 // Lens diameter; 0 gives a pinhole camera
	FocusDist   float64 // Distance to the plane of perfect focus
	Time0       float64 // Shutter open time
	Time1       float64 // Shutter close time
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth * config.FocusDist)
	vertical := v.Multiply(viewportHeight * config.FocusDist)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(config.FocusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}
}

// GetRay returns a ray through viewport coordinates (s, t) in [0,1]², with
// origin jittered over the lens disk and time drawn uniformly from the
// shutter interval
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	offset := core.NewVec3(0, 0, 0)
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.time0 + random.Float64()*(c.time1-c.time0)
	return core.NewTimedRay(origin, direction, time)
}
