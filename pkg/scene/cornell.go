package scene

import (
	"github.com/patrickzbhe/go-path-tracer/pkg/core"
	"github.com/patrickzbhe/go-path-tracer/pkg/geometry"
	"github.com/patrickzbhe/go-path-tracer/pkg/material"
	"github.com/patrickzbhe/go-path-tracer/pkg/renderer"
)

// cornellWalls builds the standard 555-unit Cornell box: green and red
// side walls, white floor, ceiling and back wall, and a ceiling light
func cornellWalls() *geometry.HittableList {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	list := geometry.NewHittableList()
	list.Add(geometry.NewYZRect(0, 555, 0, 555, 555, green))
	list.Add(geometry.NewYZRect(0, 555, 0, 555, 0, red))
	list.Add(geometry.NewXZRect(213, 343, 227, 332, 554, light))
	list.Add(geometry.NewXZRect(0, 555, 0, 555, 0, white))
	list.Add(geometry.NewXZRect(0, 555, 0, 555, 555, white))
	list.Add(geometry.NewXYRect(0, 555, 0, 555, 555, white))
	return list
}

// cornellBlocks returns the two rotated prisms inside the box
func cornellBlocks() (tall, short core.Hittable) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	tall = geometry.NewTranslate(core.NewVec3(265, 0, 295),
		geometry.NewRotateY(15,
			geometry.NewRectPrism(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)))

	short = geometry.NewTranslate(core.NewVec3(130, 0, 65),
		geometry.NewRotateY(-18,
			geometry.NewRectPrism(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)))

	return tall, short
}

// cornellCamera views the open face of the box head-on
func cornellCamera() *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: 1,
		Aperture:    0,
		FocusDist:   10,
		Time0:       0,
		Time1:       1,
	})
}

// CornellBox is the classic Cornell box with two rotated white blocks
func CornellBox(opts Options) (*Scene, error) {
	list := cornellWalls()
	tall, short := cornellBlocks()
	list.Add(tall)
	list.Add(short)

	return &Scene{
		World:       list,
		Camera:      cornellCamera(),
		Background:  core.NewVec3(0, 0, 0),
		AspectRatio: 1,
	}, nil
}

// CornellSmoke replaces the Cornell blocks with volumes of dark and
// light smoke
func CornellSmoke(opts Options) (*Scene, error) {
	list := cornellWalls()
	tall, short := cornellBlocks()

	list.Add(geometry.NewConstantMedium(tall, 0.01, material.NewIsotropic(core.NewVec3(0, 0, 0))))
	list.Add(geometry.NewConstantMedium(short, 0.01, material.NewIsotropic(core.NewVec3(1, 1, 1))))

	return &Scene{
		World:       list,
		Camera:      cornellCamera(),
		Background:  core.NewVec3(0, 0, 0),
		AspectRatio: 1,
	}, nil
}
