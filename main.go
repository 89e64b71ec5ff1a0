package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/patrickzbhe/go-path-tracer/pkg/renderer"
	"github.com/patrickzbhe/go-path-tracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "random-spheres",
		fmt.Sprintf("scene to render (%s)", strings.Join(scene.Names(), ", ")))
	width := flag.Int("width", 400, "image width in pixels")
	samples := flag.Int("samples", 400, "samples per pixel")
	depth := flag.Int("depth", 50, "maximum ray bounces")
	threads := flag.Int("threads", runtime.NumCPU(), "render workers")
	output := flag.String("output", "out.ppm", "output PPM file")
	earthMap := flag.String("earthmap", "", "PPM texture for the earth scenes")
	meshPath := flag.String("mesh", "", "ASCII PLY model for the mesh scene")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for scene generation")
	flag.Parse()

	start := time.Now()

	s, err := scene.Build(*sceneName, scene.Options{
		AspectRatio: 16.0 / 9.0,
		Random:      rand.New(rand.NewSource(*seed)),
		EarthMap:    *earthMap,
		MeshPath:    *meshPath,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	config := renderer.Config{
		AspectRatio:     s.AspectRatio,
		ImageWidth:      *width,
		SamplesPerPixel: *samples,
		MaxDepth:        *depth,
		Threads:         *threads,
	}

	screen, err := renderer.Render(s.World, s.Camera, s.Background, config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := screen.WritePPMFile(*output); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "wrote %s in %.3fs\n", *output, time.Since(start).Seconds())
}
