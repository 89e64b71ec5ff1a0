// Package renderer turns a world and camera into a pixel buffer using a
// pool of row-partitioned workers.
package renderer

import (
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
	"github.com/patrickzbhe/go-path-tracer/pkg/integrator"
)

// Config holds the render parameters
type Config struct {
	AspectRatio     float64
	ImageWidth      int
	SamplesPerPixel int
	MaxDepth        int
	Threads         int
}

// Validate reports the first invalid parameter, if any
func (c Config) Validate() error {
	if c.AspectRatio <= 0 {
		return fmt.Errorf("aspect ratio must be positive, got %g", c.AspectRatio)
	}
	if c.ImageWidth <= 0 {
		return fmt.Errorf("image width must be positive, got %d", c.ImageWidth)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must be non-negative, got %d", c.MaxDepth)
	}
	if c.Threads <= 0 {
		return fmt.Errorf("threads must be positive, got %d", c.Threads)
	}
	return nil
}

// ImageHeight derives the pixel height from the width and aspect ratio
func (c Config) ImageHeight() int {
	height := int(float64(c.ImageWidth) / c.AspectRatio)
	if height < 1 {
		height = 1
	}
	return height
}

// pixel is a finished pixel sent from a worker to the aggregator
type pixel struct {
	row, col int
	color    core.Vec3
}

// Render traces the world through the camera and returns the finished
// screen. Rows are split into contiguous ranges, one per worker; the last
// worker absorbs the remainder so every row is rendered exactly once. A
// single aggregator goroutine owns all screen writes.
func Render(world core.Hittable, camera *Camera, background core.Vec3, config Config) (*Screen, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	width := config.ImageWidth
	height := config.ImageHeight()
	screen := NewScreen(width, height)
	tracer := integrator.NewPathTracer(background, config.MaxDepth)

	threads := config.Threads
	if threads > height {
		threads = height
	}

	pixels := make(chan pixel, width)
	var wg sync.WaitGroup

	chunk := height / threads
	for i := 0; i < threads; i++ {
		rowStart := i * chunk
		rowEnd := rowStart + chunk
		if i == threads-1 {
			rowEnd = height
		}

		wg.Add(1)
		go func(rowStart, rowEnd int, seed int64) {
			defer wg.Done()
			random := rand.New(rand.NewSource(seed))

			for row := rowStart; row < rowEnd; row++ {
				for col := 0; col < width; col++ {
					color := core.NewVec3(0, 0, 0)
					for s := 0; s < config.SamplesPerPixel; s++ {
						u := (float64(col) + random.Float64()) / float64(width-1)
						v := (float64(row) + random.Float64()) / float64(height-1)
						ray := camera.GetRay(u, v, random)
						color = color.Add(tracer.RayColor(ray, world, random))
					}
					pixels <- pixel{row: row, col: col, color: color.NormalizedColor(config.SamplesPerPixel)}
				}
			}
		}(rowStart, rowEnd, time.Now().UnixNano()+int64(i))
	}

	go func() {
		wg.Wait()
		close(pixels)
	}()

	total := width * height
	done := 0
	lastReport := -1
	for p := range pixels {
		screen.Update(p.row, p.col, p.color)
		done++
		if percent := done * 100 / total; percent != lastReport && percent%5 == 0 {
			fmt.Fprintf(os.Stderr, "\rrendering: %3d%%", percent)
			lastReport = percent
		}
	}
	fmt.Fprintln(os.Stderr)

	return screen, nil
}
