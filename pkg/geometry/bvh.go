package geometry

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/patrickzbhe/go-path-tracer/pkg/core"
)

// BVHNode is a node in the bounding volume hierarchy. Left and right are
// shared references and point at the same object when a subtree holds a
// single leaf. Built once per static scene subset, never mutated.
type BVHNode struct {
	left  core.Hittable
	right core.Hittable
	box   core.AABB
}

// NewBVH builds a BVH over the list's objects for the given time window.
// Returns an error if any object lacks a bounding box, since such objects
// cannot participate in box comparisons.
func NewBVH(list *HittableList, time0, time1 float64) (*BVHNode, error) {
	if len(list.Objects) == 0 {
		return nil, fmt.Errorf("bvh: cannot build from empty list")
	}

	// Copy so sorting never reorders the caller's list
	objects := make([]core.Hittable, len(list.Objects))
	copy(objects, list.Objects)

	return buildBVH(objects, time0, time1)
}

// buildBVH recursively splits the span at the median along a randomly
// chosen axis. Random axis selection avoids systematic worst-case splits
// without the cost of a surface-area heuristic; the tree is built once and
// reused for the whole render.
func buildBVH(objects []core.Hittable, time0, time1 float64) (*BVHNode, error) {
	axis := rand.Intn(3)
	less := boxCompare(axis, time0, time1)

	node := &BVHNode{}
	var err error

	switch len(objects) {
	case 1:
		// Degenerate leaf: both children are the same object
		node.left = objects[0]
		node.right = objects[0]
	case 2:
		if less(objects[0], objects[1]) {
			node.left = objects[0]
			node.right = objects[1]
		} else {
			node.left = objects[1]
			node.right = objects[0]
		}
	default:
		sort.Slice(objects, func(i, j int) bool {
			return less(objects[i], objects[j])
		})
		mid := len(objects) / 2
		if node.left, err = buildBVH(objects[:mid], time0, time1); err != nil {
			return nil, err
		}
		if node.right, err = buildBVH(objects[mid:], time0, time1); err != nil {
			return nil, err
		}
	}

	leftBox, okLeft := node.left.BoundingBox(time0, time1)
	rightBox, okRight := node.right.BoundingBox(time0, time1)
	if !okLeft || !okRight {
		return nil, fmt.Errorf("bvh: child without bounding box")
	}
	node.box = core.SurroundingBox(leftBox, rightBox)

	return node, nil
}

// boxCompare orders hittables by bounding-box minimum along one axis.
// Objects without a box sort as equal; the union step rejects them anyway.
func boxCompare(axis int, time0, time1 float64) func(a, b core.Hittable) bool {
	return func(a, b core.Hittable) bool {
		boxA, okA := a.BoundingBox(time0, time1)
		boxB, okB := b.BoundingBox(time0, time1)
		if !okA || !okB {
			return false
		}
		return boxA.Min.Axis(axis) < boxB.Min.Axis(axis)
	}
}

// Hit prunes via the node's box, then tests the left subtree; a left hit
// narrows the right subtree's tMax so only a closer right hit can override
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, okLeft := n.left.Hit(ray, tMin, tMax)
	if okLeft {
		if rightHit, okRight := n.right.Hit(ray, tMin, leftHit.T); okRight {
			return rightHit, true
		}
		return leftHit, true
	}

	return n.right.Hit(ray, tMin, tMax)
}

// BoundingBox returns the precomputed union of both children's boxes
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.box, true
}
