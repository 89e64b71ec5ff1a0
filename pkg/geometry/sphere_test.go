package geometry

import (
	"math"
	"testing"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
	"github.com/patrickzbhe/go-path-tracer/pkg/material"
)

const tolerance = 1e-9

var testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
		frontFace bool
	}{
		{
			name:      "Head-on hit from outside",
			ray:       core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0)),
			expectHit: true,
			expectedT: 4,
			frontFace: true,
		},
		{
			name:      "Hit from inside picks the far root",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			expectHit: true,
			expectedT: 1,
			frontFace: false,
		},
		{
			name:      "Grazing miss",
			ray:       core.NewRay(core.NewVec3(-5, 1.001, 0), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:      "Ray pointing away",
			ray:       core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(-1, 0, 0)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(tt.ray, 0, math.Inf(1))
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if !isHit {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > tolerance {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.frontFace {
				t.Errorf("Expected frontFace=%v, got %v", tt.frontFace, hit.FrontFace)
			}

			// The hit point must lie on the sphere's surface
			distance := hit.Point.Subtract(sphere.Center).Length()
			if math.Abs(distance-sphere.Radius) > tolerance {
				t.Errorf("Expected hit point on surface, distance %v from center", distance)
			}

			// The normal must oppose the ray
			if hit.Normal.Dot(tt.ray.Direction) >= 0 {
				t.Errorf("Expected normal against the ray, got %v", hit.Normal)
			}
		})
	}
}

func TestSphere_HitRespectsRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))

	// Both roots at t=4 and t=6; excluding the near one selects the far one
	hit, isHit := sphere.Hit(ray, 5, math.Inf(1))
	if !isHit {
		t.Fatal("Expected a hit on the far side")
	}
	if math.Abs(hit.T-6) > tolerance {
		t.Errorf("Expected t=6, got %v", hit.T)
	}

	if _, isHit := sphere.Hit(ray, 0, 3); isHit {
		t.Error("Expected no hit before the sphere")
	}
}

func TestSphereUV(t *testing.T) {
	tests := []struct {
		name      string
		point     core.Vec3
		expectedU float64
		expectedV float64
	}{
		{"Top pole", core.NewVec3(0, 1, 0), 0.5, 1},
		{"Bottom pole", core.NewVec3(0, -1, 0), 0.5, 0},
		{"Positive X on equator", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"Negative Z on equator", core.NewVec3(0, 0, -1), 0.75, 0.5},
		{"Positive Z on equator", core.NewVec3(0, 0, 1), 0.25, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := sphereUV(tt.point)
			if math.Abs(u-tt.expectedU) > tolerance || math.Abs(v-tt.expectedV) > tolerance {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tt.expectedU, tt.expectedV, u, v)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, testMaterial)

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected a bounding box")
	}

	expected := core.NewAABB(core.NewVec3(-1, 0, 1), core.NewVec3(3, 4, 5))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}
