package geometry

import (
	"math"
	"testing"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

func TestTranslate_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	moved := NewTranslate(core.NewVec3(10, 0, 0), sphere)

	// A ray at the original position misses
	if _, isHit := moved.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 0, math.Inf(1)); isHit {
		t.Error("Expected no hit at the original position")
	}

	// A ray at the translated position hits, with the hit point in world space
	hit, isHit := moved.Hit(core.NewRay(core.NewVec3(10, 0, -5), core.NewVec3(0, 0, 1)), 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected a hit at the translated position")
	}
	expected := core.NewVec3(10, 0, -1)
	if hit.Point.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected hit point %v, got %v", expected, hit.Point)
	}
}

func TestTranslate_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	moved := NewTranslate(core.NewVec3(1, 2, 3), sphere)

	box, ok := moved.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	expected := core.NewAABB(core.NewVec3(0, 1, 2), core.NewVec3(2, 3, 4))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

func TestRotateY_Hit(t *testing.T) {
	// A sphere at (2, 0, 0) rotated 90 degrees about Y moves to (0, 0, -2)
	sphere := NewSphere(core.NewVec3(2, 0, 0), 1, testMaterial)
	rotated := NewRotateY(90, sphere)

	hit, isHit := rotated.Hit(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected a hit at the rotated position")
	}
	expected := core.NewVec3(0, 0, -3)
	if hit.Point.Subtract(expected).Length() > 1e-6 {
		t.Errorf("Expected hit point %v, got %v", expected, hit.Point)
	}

	if _, isHit := rotated.Hit(core.NewRay(core.NewVec3(2, 0, -5), core.NewVec3(0, 0, 1)), 0, math.Inf(1)); isHit {
		t.Error("Expected no hit at the original position")
	}
}

func TestRotateY_ZeroAngleIsIdentity(t *testing.T) {
	sphere := NewSphere(core.NewVec3(2, 0, 0), 1, testMaterial)
	rotated := NewRotateY(0, sphere)

	original, okOriginal := sphere.Hit(core.NewRay(core.NewVec3(2, 0, -5), core.NewVec3(0, 0, 1)), 0, math.Inf(1))
	wrapped, okWrapped := rotated.Hit(core.NewRay(core.NewVec3(2, 0, -5), core.NewVec3(0, 0, 1)), 0, math.Inf(1))

	if !okOriginal || !okWrapped {
		t.Fatal("Expected both rays to hit")
	}
	if wrapped.Point.Subtract(original.Point).Length() > tolerance {
		t.Errorf("Expected identical hit points, got %v and %v", original.Point, wrapped.Point)
	}
}

func TestRotateY_BoundingBox(t *testing.T) {
	// A unit cube from the origin rotated 45 degrees spans ±sqrt(2)/2 wider in X
	prism := NewRectPrism(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), testMaterial)
	rotated := NewRotateY(45, prism)

	box, ok := rotated.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected a bounding box")
	}

	halfDiagonal := math.Sqrt2 / 2
	if math.Abs(box.Max.X-2*halfDiagonal) > 1e-6 {
		t.Errorf("Expected max X %v, got %v", 2*halfDiagonal, box.Max.X)
	}
	if math.Abs(box.Min.Y) > tolerance || math.Abs(box.Max.Y-1) > tolerance {
		t.Errorf("Expected Y range unchanged, got [%v, %v]", box.Min.Y, box.Max.Y)
	}
}

func TestHittableList_Hit(t *testing.T) {
	list := NewHittableList()

	if _, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0, math.Inf(1)); isHit {
		t.Error("Expected no hit from an empty list")
	}

	list.Add(NewSphere(core.NewVec3(0, 0, 10), 1, testMaterial))
	list.Add(NewSphere(core.NewVec3(0, 0, 5), 1, testMaterial))
	list.Add(NewSphere(core.NewVec3(0, 0, 20), 1, testMaterial))

	// The closest of the three spheres wins regardless of insertion order
	hit, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected a hit")
	}
	if math.Abs(hit.T-4) > tolerance {
		t.Errorf("Expected the closest sphere at t=4, got %v", hit.T)
	}

	if _, isHit := list.Hit(core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, 1)), 0, math.Inf(1)); isHit {
		t.Error("Expected no hit for a ray missing everything")
	}
}

func TestHittableList_BoundingBox(t *testing.T) {
	list := NewHittableList()

	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("Expected no box for an empty list")
	}

	list.Add(NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial))
	list.Add(NewSphere(core.NewVec3(5, 0, 0), 1, testMaterial))

	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	expected := core.NewAABB(core.NewVec3(-1, -1, -1), core.NewVec3(6, 1, 1))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}
