package renderer

import (
	"strings"
	"testing"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
	"github.com/patrickzbhe/go-path-tracer/pkg/geometry"
	"github.com/patrickzbhe/go-path-tracer/pkg/material"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Threads:         8,
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Valid", func(c *Config) {}, ""},
		{"Zero aspect ratio", func(c *Config) { c.AspectRatio = 0 }, "aspect ratio"},
		{"Negative width", func(c *Config) { c.ImageWidth = -1 }, "image width"},
		{"Zero samples", func(c *Config) { c.SamplesPerPixel = 0 }, "samples"},
		{"Negative depth", func(c *Config) { c.MaxDepth = -1 }, "max depth"},
		{"Zero threads", func(c *Config) { c.Threads = 0 }, "threads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)
			err := config.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfig_ImageHeight(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected int
	}{
		{"16:9", Config{AspectRatio: 16.0 / 9.0, ImageWidth: 400}, 225},
		{"Square", Config{AspectRatio: 1, ImageWidth: 300}, 300},
		{"Extreme ratio floors to one", Config{AspectRatio: 100, ImageWidth: 10}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.ImageHeight(); got != tt.expected {
				t.Errorf("Expected height %d, got %d", tt.expected, got)
			}
		})
	}
}

// emissiveWorld surrounds the camera with light so every ray terminates
// immediately with a known color
func emissiveWorld() *geometry.HittableList {
	world := geometry.NewHittableList()
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 100,
		material.NewDiffuseLight(core.NewVec3(2, 2, 2))))
	return world
}

func testCamera(aspectRatio float64) *Camera {
	return NewCamera(CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        40,
		AspectRatio: aspectRatio,
		Aperture:    0,
		FocusDist:   1,
		Time0:       0,
		Time1:       1,
	})
}

func TestRender_CoversEveryPixel(t *testing.T) {
	config := Config{
		AspectRatio:     1,
		ImageWidth:      8,
		SamplesPerPixel: 2,
		MaxDepth:        5,
		Threads:         3,
	}

	screen, err := Render(emissiveWorld(), testCamera(1), core.NewVec3(0, 0, 0), config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if screen.Width != 8 || screen.Height != 8 {
		t.Fatalf("Expected 8x8 screen, got %dx%d", screen.Width, screen.Height)
	}

	// Every ray hits the surrounding light: emission 2 averages to 2,
	// gamma-corrects to sqrt(2) and clamps to 0.999
	expected := core.NewVec3(0.999, 0.999, 0.999)
	for row := 0; row < screen.Height; row++ {
		for col := 0; col < screen.Width; col++ {
			if got := screen.Get(row, col); got != expected {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", row, col, expected, got)
			}
		}
	}
}

func TestRender_RowRemainderIsNotDropped(t *testing.T) {
	// 10 rows over 4 workers leaves a remainder; the last worker must
	// absorb rows 8 and 9
	config := Config{
		AspectRatio:     0.8,
		ImageWidth:      8,
		SamplesPerPixel: 1,
		MaxDepth:        2,
		Threads:         4,
	}

	screen, err := Render(emissiveWorld(), testCamera(0.8), core.NewVec3(0, 0, 0), config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if screen.Height != 10 {
		t.Fatalf("Expected 10 rows, got %d", screen.Height)
	}

	expected := core.NewVec3(0.999, 0.999, 0.999)
	for row := 0; row < screen.Height; row++ {
		if got := screen.Get(row, 0); got != expected {
			t.Fatalf("Row %d was not rendered: got %v", row, got)
		}
	}
}

func TestRender_MoreThreadsThanRows(t *testing.T) {
	config := Config{
		AspectRatio:     1,
		ImageWidth:      4,
		SamplesPerPixel: 1,
		MaxDepth:        2,
		Threads:         64,
	}

	screen, err := Render(emissiveWorld(), testCamera(1), core.NewVec3(0, 0, 0), config)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := core.NewVec3(0.999, 0.999, 0.999)
	for row := 0; row < screen.Height; row++ {
		for col := 0; col < screen.Width; col++ {
			if got := screen.Get(row, col); got != expected {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", row, col, expected, got)
			}
		}
	}
}

func TestRender_InvalidConfig(t *testing.T) {
	config := Config{
		AspectRatio:     1,
		ImageWidth:      0,
		SamplesPerPixel: 1,
		MaxDepth:        1,
		Threads:         1,
	}

	if _, err := Render(emissiveWorld(), testCamera(1), core.NewVec3(0, 0, 0), config); err == nil {
		t.Error("Expected an error for an invalid config")
	}
}
