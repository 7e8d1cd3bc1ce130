package core

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/go-weekend-pathtracer/pkg/log"
)

var bvhLogger = log.New("bvh")

// NodeID is a stable index into the BVH node store
type NodeID int

// bvhNode is either a leaf wrapping one primitive or an internal node with
// two children referenced by id
type bvhNode struct {
	BoundingBox AABB
	Left        NodeID
	Right       NodeID
	Leaf        Hitable // nil for internal nodes
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection.
// All nodes live in a single slice and reference each other by NodeID.
type BVH struct {
	nodes []bvhNode
	root  NodeID
}

// boxedHitable caches a primitive's bounding box over the build interval
type boxedHitable struct {
	hitable Hitable
	box     AABB
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	Nodes      int
	Leaves     int
	MaxDepth   int
	Primitives int
}

// NewBVH constructs a BVH over primitives for rays with times in [time0, time1].
//
// Each level sorts its primitives by bounding box minimum along a randomly
// chosen axis and splits at the midpoint, so two builds over the same input
// may produce different trees. Every primitive must report a bounding box;
// the caller's slice is left untouched.
func NewBVH(primitives []Hitable, time0, time1 float64, random *rand.Rand) (*BVH, error) {
	if len(primitives) == 0 {
		return nil, ErrEmptyPrimitives
	}

	work := make([]boxedHitable, len(primitives))
	for i, primitive := range primitives {
		box, ok := primitive.BoundingBox(time0, time1)
		if !ok {
			return nil, errors.Wrapf(ErrNoBoundingBox, "primitive %d (%T)", i, primitive)
		}
		work[i] = boxedHitable{hitable: primitive, box: box}
	}

	bvh := &BVH{
		nodes: make([]bvhNode, 0, 2*len(work)-1),
	}

	start := time.Now()
	bvh.root = bvh.build(work, random)

	stats := bvh.Stats()
	bvhLogger.Debugf(
		"BVH build time: %d ms, primitives: %d, nodes: %d, leaves: %d, maxDepth: %d",
		time.Since(start).Milliseconds(), stats.Primitives, stats.Nodes, stats.Leaves, stats.MaxDepth,
	)

	return bvh, nil
}

// build recursively partitions work and returns the id of the subtree root
func (bvh *BVH) build(work []boxedHitable, random *rand.Rand) NodeID {
	axis := random.IntN(3)
	sort.Slice(work, func(i, j int) bool {
		return work[i].box.Min.Axis(axis) < work[j].box.Min.Axis(axis)
	})

	switch len(work) {
	case 1:
		return bvh.addLeaf(work[0])
	case 2:
		left := bvh.addLeaf(work[0])
		right := bvh.addLeaf(work[1])
		return bvh.addInternal(left, right)
	default:
		mid := len(work) / 2
		left := bvh.build(work[:mid], random)
		right := bvh.build(work[mid:], random)
		return bvh.addInternal(left, right)
	}
}

func (bvh *BVH) addLeaf(item boxedHitable) NodeID {
	bvh.nodes = append(bvh.nodes, bvhNode{
		BoundingBox: item.box,
		Leaf:        item.hitable,
	})
	return NodeID(len(bvh.nodes) - 1)
}

func (bvh *BVH) addInternal(left, right NodeID) NodeID {
	bvh.nodes = append(bvh.nodes, bvhNode{
		BoundingBox: bvh.nodes[left].BoundingBox.SurroundingBox(bvh.nodes[right].BoundingBox),
		Left:        left,
		Right:       right,
	})
	return NodeID(len(bvh.nodes) - 1)
}

// Hit tests if a ray intersects any primitive in the BVH and returns the closest hit
func (bvh *BVH) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	return bvh.HitNode(bvh.root, ray, tMin, tMax)
}

// HitNode returns the closest hit within the subtree rooted at id.
//
// The right child is queried with tMax narrowed to the left child's hit, which
// can only shrink the accepted interval and so returns the same record as
// querying both children over the full interval.
func (bvh *BVH) HitNode(id NodeID, ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	node := &bvh.nodes[id]
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.Leaf != nil {
		return node.Leaf.Hit(ray, tMin, tMax)
	}

	leftHit, hitLeft := bvh.HitNode(node.Left, ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}

	if rightHit, hitRight := bvh.HitNode(node.Right, ray, tMin, tMax); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the root box; the tree was built for a fixed interval
// so the requested times are ignored
func (bvh *BVH) BoundingBox(time0, time1 float64) (AABB, bool) {
	return bvh.nodes[bvh.root].BoundingBox, true
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{}
	bvh.collectStats(bvh.root, 0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(id NodeID, depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	node := &bvh.nodes[id]
	if node.Leaf != nil {
		stats.Leaves++
		stats.Primitives++
		return
	}

	bvh.collectStats(node.Left, depth+1, stats)
	bvh.collectStats(node.Right, depth+1, stats)
}
