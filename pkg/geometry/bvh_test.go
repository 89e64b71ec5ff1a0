package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

func TestNewBVH_EmptyList(t *testing.T) {
	if _, err := NewBVH(NewHittableList(), 0, 1); err == nil {
		t.Error("Expected an error for an empty list")
	}
}

func TestNewBVH_SingleObject(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial))

	bvh, err := NewBVH(list, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hit, isHit := bvh.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected a hit through the single-object tree")
	}
	if math.Abs(hit.T-4) > tolerance {
		t.Errorf("Expected t=4, got %v", hit.T)
	}
}

func TestBVH_MatchesBruteForce(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	list := NewHittableList()
	for i := 0; i < 100; i++ {
		center := core.RandomVec3Range(-10, 10, random)
		radius := 0.1 + random.Float64()
		list.Add(NewSphere(center, radius, testMaterial))
	}

	bvh, err := NewBVH(list, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Fire random rays and compare against the linear scan
	for i := 0; i < 1000; i++ {
		origin := core.RandomVec3Range(-20, 20, random)
		direction := core.RandomUnitVector(random)
		ray := core.NewRay(origin, direction)

		expected, expectedHit := list.Hit(ray, 0.001, math.Inf(1))
		got, gotHit := bvh.Hit(ray, 0.001, math.Inf(1))

		if expectedHit != gotHit {
			t.Fatalf("Ray %d: expected hit=%v, got %v", i, expectedHit, gotHit)
		}
		if expectedHit && math.Abs(expected.T-got.T) > tolerance {
			t.Fatalf("Ray %d: expected t=%v, got %v", i, expected.T, got.T)
		}
	}
}

func TestBVH_DoesNotReorderInput(t *testing.T) {
	list := NewHittableList()
	spheres := []*Sphere{
		NewSphere(core.NewVec3(5, 0, 0), 1, testMaterial),
		NewSphere(core.NewVec3(-5, 0, 0), 1, testMaterial),
		NewSphere(core.NewVec3(0, 5, 0), 1, testMaterial),
	}
	for _, s := range spheres {
		list.Add(s)
	}

	if _, err := NewBVH(list, 0, 1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i, s := range spheres {
		if list.Objects[i] != core.Hittable(s) {
			t.Fatalf("Expected list order preserved at index %d", i)
		}
	}
}

func TestBVH_BoundingBox(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(-5, 0, 0), 1, testMaterial))
	list.Add(NewSphere(core.NewVec3(5, 0, 0), 1, testMaterial))

	bvh, err := NewBVH(list, 0, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	box, ok := bvh.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	expected := core.NewAABB(core.NewVec3(-6, -1, -1), core.NewVec3(6, 1, 1))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

func TestBVH_MovingSpheres(t *testing.T) {
	list := NewHittableList()
	list.Add(NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0), 0, 10, 1, testMaterial))

	bvh, err := NewBVH(list, 0, 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The tree's box must cover the whole trajectory, so a hit at the late
	// position still resolves
	ray := core.NewTimedRay(core.NewVec3(10, 0, -5), core.NewVec3(0, 0, 1), 10)
	if _, isHit := bvh.Hit(ray, 0.001, math.Inf(1)); !isHit {
		t.Error("Expected a hit at the end of the trajectory")
	}
}
