package material

import (
	"math"
	"math/rand"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

const perlinPointCount = 256

// Perlin generates gradient noise from a fixed table of random unit-cube
// vectors and three permutation tables
type Perlin struct {
	ranvec []core.Vec3
	permX  []int
	permY  []int
	permZ  []int
}

// NewPerlin creates a Perlin generator with freshly shuffled tables
func NewPerlin() *Perlin {
	random := rand.New(rand.NewSource(rand.Int63()))

	ranvec := make([]core.Vec3, perlinPointCount)
	for i := range ranvec {
		ranvec[i] = core.RandomVec3Range(-1, 1, random)
	}

	return &Perlin{
		ranvec: ranvec,
		permX:  generatePerm(random),
		permY:  generatePerm(random),
		permZ:  generatePerm(random),
	}
}

// Noise returns smoothed gradient noise in [-1,1] at the given point
func (pl *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = pl.ranvec[pl.permX[(i+di)&255]^
					pl.permY[(j+dj)&255]^
					pl.permZ[(k+dk)&255]]
			}
		}
	}

	return trilinearInterp(c, u, v, w)
}

// Turbulence sums octaves of noise with halving weights
func (pl *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * pl.Noise(p)
		weight *= 0.5
		p = p.Multiply(2)
	}

	return math.Abs(accum)
}

func generatePerm(random *rand.Rand) []int {
	p := make([]int, perlinPointCount)
	for i := range p {
		p[i] = i
	}
	random.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}

// trilinearInterp blends the eight corner gradients with Hermite smoothing
func trilinearInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}
