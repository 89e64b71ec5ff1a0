package scene

import (
	"fmt"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
	"github.com/patrickzbhe/go-path-tracer/pkg/geometry"
	"github.com/patrickzbhe/go-path-tracer/pkg/loaders"
	"github.com/patrickzbhe/go-path-tracer/pkg/material"
	"github.com/patrickzbhe/go-path-tracer/pkg/renderer"
)

// Showcase combines everything: a ground of random-height boxes, a ceiling
// light, moving, glass and fuzzy-metal spheres, subsurface and atmospheric
// media, a textured globe, a marble sphere and a rotated cube of small
// white spheres
func Showcase(opts Options) (*Scene, error) {
	random := opts.Random
	list := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := geometry.NewHittableList()
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			x1 := x0 + w
			y1 := 1 + 100*random.Float64()
			z1 := z0 + w
			boxes.Add(geometry.NewRectPrism(core.NewVec3(x0, 0, z0), core.NewVec3(x1, y1, z1), ground))
		}
	}
	groundBVH, err := geometry.NewBVH(boxes, 0, 1)
	if err != nil {
		return nil, err
	}
	list.Add(groundBVH)

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	list.Add(geometry.NewXZRect(123, 432, 147, 412, 554, light))

	center1 := core.NewVec3(400, 400, 400)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	list.Add(geometry.NewMovingSphere(center1, center2, 0, 1, 50,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 1))))

	list.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	list.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1)))

	// Glass sphere filled with blue haze for a subsurface look
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	list.Add(boundary)
	list.Add(geometry.NewConstantMedium(boundary, 0.2, material.NewIsotropic(core.NewVec3(0.2, 0.4, 0.9))))

	// Thin mist filling the whole scene
	mistBoundary := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	list.Add(geometry.NewConstantMedium(mistBoundary, 0.0001, material.NewIsotropic(core.NewVec3(1, 1, 1))))

	texture, err := loadImageTexture(opts.EarthMap)
	if err != nil {
		return nil, err
	}
	list.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(texture)))

	list.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80,
		material.NewTexturedLambertian(material.NewNoise(0.1))))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := geometry.NewHittableList()
	for i := 0; i < 1000; i++ {
		cluster.Add(geometry.NewSphere(core.RandomVec3Range(0, 165, random), 10, white))
	}
	clusterBVH, err := geometry.NewBVH(cluster, 0, 1)
	if err != nil {
		return nil, err
	}
	list.Add(geometry.NewTranslate(core.NewVec3(-100, 270, 395),
		geometry.NewRotateY(15, clusterBVH)))

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(478, 278, -600),
		LookAt:      core.NewVec3(278, 278, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1,
		Aperture:    0,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})

	return &Scene{
		World:       list,
		Camera:      camera,
		Background:  core.NewVec3(0, 0, 0),
		AspectRatio: 1,
	}, nil
}

// Mesh renders a triangle mesh loaded from a PLY file, lit from above
func Mesh(opts Options) (*Scene, error) {
	if opts.MeshPath == "" {
		return nil, fmt.Errorf("the mesh scene needs a model, pass one with -mesh")
	}

	gray := material.NewLambertian(core.NewVec3(0.2, 0.2, 0.2))
	triangles, err := loaders.LoadPLY(opts.MeshPath, 1, gray)
	if err != nil {
		return nil, err
	}

	mesh, err := geometry.NewBVH(triangles, 0, 1)
	if err != nil {
		return nil, err
	}

	list := geometry.NewHittableList()
	list.Add(mesh)
	list.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
		material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))))
	list.Add(geometry.NewSphere(core.NewVec3(0, 10, 0), 3,
		material.NewDiffuseLight(core.NewVec3(10, 10, 10))))

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 1, 0),
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
