// Package scene holds the built-in world and camera setups.
package scene

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
	"github.com/patrickzbhe/go-path-tracer/pkg/material"
	"github.com/patrickzbhe/go-path-tracer/pkg/renderer"
)

// Scene bundles everything the renderer needs besides the image parameters
type Scene struct {
	World       core.Hittable
	Camera      *renderer.Camera
	Background  core.Vec3
	AspectRatio float64 // Matches the camera; the box scenes are square
}

// Options carries inputs the builders cannot hard-code
type Options struct {
	AspectRatio float64
	Random      *rand.Rand
	EarthMap    string // Path to a PPM texture for the earth scenes
	MeshPath    string // Path to an ASCII PLY model for the mesh scene
}

// skyBlue is the daylight background shared by the outdoor scenes
var skyBlue = core.NewVec3(0.7, 0.8, 1)

var builders = map[string]func(Options) (*Scene, error){
	"random-spheres":    RandomSpheres,
	"bouncing-spheres":  BouncingSpheres,
	"checkered-spheres": CheckeredSpheres,
	"perlin-spheres":    PerlinSpheres,
	"earth":             Earth,
	"simple-light":      SimpleLight,
	"cornell-box":       CornellBox,
	"cornell-smoke":     CornellSmoke,
	"showcase":          Showcase,
	"mesh":              Mesh,
}

// Build constructs the named scene
func Build(name string, opts Options) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	s, err := builder(opts)
	if err != nil {
		return nil, err
	}
	if s.AspectRatio == 0 {
		s.AspectRatio = opts.AspectRatio
	}
	return s, nil
}

// Names lists the available scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadImageTexture reads a PPM file into an image texture. An empty path
// returns an empty texture, which renders as cyan.
func loadImageTexture(path string) (*material.ImageTexture, error) {
	if path == "" {
		return material.NewImageTexture(0, 0, nil), nil
	}

	screen, err := renderer.ReadPPMFile(path)
	if err != nil {
		return nil, err
	}

	// Screen rows grow upward, image texture rows grow downward
	pixels := make([]core.Vec3, 0, screen.Width*screen.Height)
	for row := screen.Height - 1; row >= 0; row-- {
		for col := 0; col < screen.Width; col++ {
			pixels = append(pixels, screen.Get(row, col))
		}
	}

	return material.NewImageTexture(screen.Width, screen.Height, pixels), nil
}

// distantCamera is the standard viewpoint shared by the sphere scenes
func distantCamera(aspectRatio, aperture, time0, time1 float64) *renderer.Camera {
	return renderer.NewCamera(renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: aspectRatio,
		Aperture:    aperture,
		FocusDist:   10,
		Time0:       time0,
		Time1:       time1,
	})
}
