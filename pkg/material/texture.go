package material

import (
	"math"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// Texture provides spatially-varying colors for materials. Value is a pure
// function: UV coordinates drive image textures, the 3D point drives
// procedural ones.
type Texture interface {
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor is a uniform color texture
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two textures in a 3D checkerboard pattern
type Checker struct {
	Even Texture
	Odd  Texture
}

// NewChecker creates a checker from two textures
func NewChecker(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// NewCheckerFromColors creates a checker from two solid colors
func NewCheckerFromColors(even, odd core.Vec3) *Checker {
	return NewChecker(NewSolidColor(even), NewSolidColor(odd))
}

// Value picks the even or odd texture based on the sign of a sine product
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

// Noise is a marble-like procedural texture driven by Perlin turbulence
type Noise struct {
	noise *Perlin
	scale float64
}

// NewNoise creates a noise texture with the given frequency scale
func NewNoise(scale float64) *Noise {
	return &Noise{noise: NewPerlin(), scale: scale}
}

// Value modulates a sine along Z with turbulence for a marble pattern
func (n *Noise) Value(u, v float64, p core.Vec3) core.Vec3 {
	t := 0.5 * (1.0 + math.Sin(n.scale*p.Z+10*n.noise.Turbulence(p, 7)))
	return core.NewVec3(1, 1, 1).Multiply(t)
}

// ImageTexture samples a pixel grid by UV coordinates. Pixels hold colors
// in [0,1], row 0 at the top of the image.
type ImageTexture struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewImageTexture creates an image texture from pixel data in row-major
// order; len(pixels) must be width*height
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{width: width, height: height, pixels: pixels}
}

// Value clamps UV into [0,1], flips V (image rows grow downward) and
// returns the nearest pixel
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if len(t.pixels) == 0 {
		// Missing data renders as cyan to make the failure visible
		return core.NewVec3(0, 1, 1)
	}

	u = math.Max(0, math.Min(1, u))
	v = 1.0 - math.Max(0, math.Min(1, v))

	i := min(int(u*float64(t.width)), t.width-1)
	j := min(int(v*float64(t.height)), t.height-1)

	return t.pixels[j*t.width+i]
}
