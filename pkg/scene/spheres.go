package scene

import (
	"math"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
	"github.com/patrickzbhe/go-path-tracer/pkg/geometry"
	"github.com/patrickzbhe/go-path-tracer/pkg/material"
	"github.com/patrickzbhe/go-path-tracer/pkg/renderer"
)

// RandomSpheres is the classic field of small random spheres around three
// large ones. Most diffuse and metal spheres drift upward during the
// shutter interval for motion blur.
func RandomSpheres(opts Options) (*Scene, error) {
	random := opts.Random
	list := geometry.NewHittableList()

	ground := material.NewTexturedLambertian(material.NewCheckerFromColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))
	list.Add(geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var sphereMaterial core.Material
			switch {
			case chooseMat < 0.3:
				albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.6:
				albedo := core.RandomVec3Range(0.5, 1, random)
				sphereMaterial = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				sphereMaterial = material.NewDielectric(1.5)
			}

			if chooseMat < 0.8 {
				center2 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				list.Add(geometry.NewMovingSphere(center, center2, 0, 1, 0.2, sphereMaterial))
				continue
			}

			list.Add(geometry.NewSphere(center, 0.2, sphereMaterial))
		}
	}

	list.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	list.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	list.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	world, err := geometry.NewBVH(list, 0, 1)
	if err != nil {
		return nil, err
	}

	return &Scene{
		World:      world,
		Camera:     distantCamera(opts.AspectRatio, 0.1, 0, 1),
		Background: skyBlue,
	}, nil
}

// BouncingSpheres scatters small spheres in the air and lets them fall
// under gravity over a long shutter interval
func BouncingSpheres(opts Options) (*Scene, error) {
	const maxTime = 100.0
	random := opts.Random
	list := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	list.Add(geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			// Keep the air above the large spheres clear
			if math.Abs(float64(a)) <= 1 && math.Abs(float64(b)) <= 1 {
				continue
			}
			if math.Abs(float64(a)-4) <= 1 && math.Abs(float64(b)) <= 1 {
				continue
			}

			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				1.7+2*random.Float64(),
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var sphereMaterial core.Material
			switch {
			case chooseMat < 0.3:
				albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
				sphereMaterial = material.NewLambertian(albedo)
			case chooseMat < 0.6:
				albedo := core.RandomVec3Range(0.5, 1, random)
				sphereMaterial = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				sphereMaterial = material.NewDielectric(1.5)
			}

			list.Add(geometry.NewGravitySphere(center, 0, 0.2, sphereMaterial))
		}
	}

	list.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	list.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	list.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	world, err := geometry.NewBVH(list, 0, maxTime)
	if err != nil {
		return nil, err
	}

	return &Scene{
		World:      world,
		Camera:     distantCamera(opts.AspectRatio, 0.1, 0, maxTime),
		Background: skyBlue,
	}, nil
}

// CheckeredSpheres is two large touching checkered spheres
func CheckeredSpheres(opts Options) (*Scene, error) {
	checker := material.NewTexturedLambertian(material.NewCheckerFromColors(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
	))

	list := geometry.NewHittableList()
	list.Add(geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker))
	list.Add(geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker))

	return &Scene{
		World:      list,
		Camera:     distantCamera(opts.AspectRatio, 0, 0, 1),
		Background: skyBlue,
	}, nil
}

// PerlinSpheres is a marble ground sphere with a marble sphere resting on it
func PerlinSpheres(opts Options) (*Scene, error) {
	marble := material.NewTexturedLambertian(material.NewNoise(4))

	list := geometry.NewHittableList()
	list.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble))
	list.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble))

	return &Scene{
		World:      list,
		Camera:     distantCamera(opts.AspectRatio, 0, 0, 1),
		Background: skyBlue,
	}, nil
}

// Earth maps a PPM texture onto a globe resting on a matching ground sphere
func Earth(opts Options) (*Scene, error) {
	texture, err := loadImageTexture(opts.EarthMap)
	if err != nil {
		return nil, err
	}
	surface := material.NewTexturedLambertian(texture)

	list := geometry.NewHittableList()
	list.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, surface))
	list.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, surface))

	return &Scene{
		World:      list,
		Camera:     distantCamera(opts.AspectRatio, 0, 0, 1),
		Background: skyBlue,
	}, nil
}

// SimpleLight is a marble sphere lit by a rectangle and an overhead sphere
// against a black background
func SimpleLight(opts Options) (*Scene, error) {
	marble := material.NewTexturedLambertian(material.NewNoise(4))

	list := geometry.NewHittableList()
	list.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble))
	list.Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble))

	light := material.NewDiffuseLight(core.NewVec3(10, 10, 10))
	list.Add(geometry.NewXYRect(3, 5, 1, 3, -2, light))
	list.Add(geometry.NewSphere(core.NewVec3(0, 10, 0), 3, light))

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: opts.AspectRatio,
		Aperture:    0,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})

	return &Scene{
		World:      list,
		Camera:     camera,
		Background: core.NewVec3(0, 0, 0),
	}, nil
}
