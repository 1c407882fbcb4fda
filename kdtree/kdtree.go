// Package kdtree implements a balanced two-dimensional kd-tree for nearest neighbour queries over plot points.
package kdtree

import (
	"sort"

	"github.com/tdewolff/labels"
)

// Options configures how the tree splits and which distance a search minimises.
type Options struct {
	// Axes is the cyclic order of splitting axes, one per depth. Defaults to X then Y.
	Axes   []Axis
	Metric Metric
}

// DefaultOptions splits on X then Y and searches by radial distance.
var DefaultOptions = Options{
	Axes:   []Axis{X, Y},
	Metric: Radial,
}

// Node is a node of the tree. All points in Left have a coordinate along the node's splitting axis smaller than or equal to the node's, all points in Right greater than or equal.
type Node struct {
	Point       labels.Point
	Left, Right *Node
}

// Tree is an immutable kd-tree. Rebuild it when the point set changes.
type Tree struct {
	root   *Node
	points []labels.Point // backing slice in tree order
	axes   []Axis
	metric Metric
}

// Result is the outcome of a nearest neighbour search.
type Result struct {
	Point labels.Point
	Dist  Distance
}

// Build returns a tree over the given points. The input slice is copied and left untouched. The point at the median of every sorted range becomes the node, so that the tree is balanced regardless of input order. Ties are broken by the order in the input.
func Build(points []labels.Point, opts Options) *Tree {
	axes := opts.Axes
	if len(axes) == 0 {
		axes = DefaultOptions.Axes
	}

	t := &Tree{
		points: make([]labels.Point, len(points)),
		axes:   axes,
		metric: opts.Metric,
	}
	copy(t.points, points)
	t.root = t.build(0, len(t.points), 0)
	return t
}

func (t *Tree) build(lo, hi, depth int) *Node {
	if hi <= lo {
		return nil
	}

	axis := t.axes[depth%len(t.axes)]
	part := t.points[lo:hi]
	sort.SliceStable(part, func(i, j int) bool {
		return coord(part[i], axis) < coord(part[j], axis)
	})

	median := lo + (hi-lo)/2
	return &Node{
		Point: t.points[median],
		Left:  t.build(lo, median, depth+1),
		Right: t.build(median+1, hi, depth+1),
	}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of points in the tree.
func (t *Tree) Len() int {
	return len(t.points)
}

// Points returns the points in the order they were partitioned in.
func (t *Tree) Points() []labels.Point {
	return t.points
}

// Metric returns the distance metric minimised by Nearest.
func (t *Tree) Metric() Metric {
	return t.metric
}

// Depth returns the number of levels of the tree.
func (t *Tree) Depth() int {
	var depth func(*Node) int
	depth = func(n *Node) int {
		if n == nil {
			return 0
		}
		return 1 + max(depth(n.Left), depth(n.Right))
	}
	return depth(t.root)
}

// Nearest returns the point closest to q according to the tree's metric. It returns false if the tree is empty.
func (t *Tree) Nearest(q labels.Point) (Result, bool) {
	if t.root == nil {
		return Result{}, false
	}
	return t.search(q, t.root, 0), true
}

func (t *Tree) search(q labels.Point, n *Node, depth int) Result {
	axis := t.axes[depth%len(t.axes)]
	best := Result{n.Point, Dist(q, n.Point)}

	// descend first into the side holding q
	tdist := coord(q, axis) - coord(n.Point, axis)
	near, far := n.Right, n.Left
	if tdist < 0.0 {
		near, far = n.Left, n.Right
	}

	if near != nil {
		if r := t.search(q, near, depth+1); r.Dist.Get(t.metric) < best.Dist.Get(t.metric) {
			best = r
		}
	}
	if far != nil && t.metric.bound(axis, tdist) < best.Dist.Get(t.metric) {
		if r := t.search(q, far, depth+1); r.Dist.Get(t.metric) < best.Dist.Get(t.metric) {
			best = r
		}
	}
	return best
}
