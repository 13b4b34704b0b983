// Copyright 2026 The kd3 (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kd3

import (
	"fmt"
	"sort"
)

// A point is one entry in the tree's point cache: a copy of the
// caller's coordinates plus idx, the point's position in the original
// coordinate slices. The cache, not the caller's slices, is what the
// builder sorts, so original positions survive construction.
type point struct {
	x, y, z float64
	idx     int
}

// coord returns the point's coordinate on the given axis.
func (p *point) coord(a axis) float64 {
	switch a {
	case axisX:
		return p.x
	case axisY:
		return p.y
	default:
		return p.z
	}
}

// noChild marks the child slots of a leaf node.
const noChild = -1

// A node is one record in the tree's node arena. Nodes form a tagged
// variant: a leaf has left == noChild and references a point cache
// slot through pt, while a branch carries a split threshold and the
// arena indices of its two children. Arena indices are used instead of
// pointers so a rebuild can recycle the arena wholesale.
type node struct {
	// split is the branch's threshold on the axis selected by the
	// branch's depth. Unused in leaves.
	split float64
	// left and right are arena indices of the children, or noChild in
	// a leaf.
	left, right int
	// pt is the point cache index referenced by a leaf. Unused in
	// branches.
	pt int
}

// leaf reports whether the node is a leaf.
func (n *node) leaf() bool {
	return n.left == noChild
}

// A Tree is a balanced static 3-D k-d tree over a fixed set of points.
// Build a Tree with Build, query it with Search or SearchCube.
//
// A Tree owns two allocations: a point cache of count entries and a
// node arena of exactly 2·count−1 node records (count leaves plus
// count−1 branches, the node total of any full binary tree with count
// leaves). Both are recycled in place when the tree is rebuilt with an
// unchanged point count.
//
// The zero Tree is not usable; Tree values are only obtained from
// Build.
type Tree struct {
	// count is the number of indexed points.
	count int
	// points is the point cache, sorted piecewise by the builder.
	points []point
	// nodes is the node arena. Records are handed out in bump order by
	// nextNode during a build.
	nodes []node
	// next is the arena index of the next free node record.
	next int
	// root is the arena index of the root node. The root is always a
	// branch because Build requires at least two points.
	root int
}

// Build constructs a balanced 3-D k-d tree over the points whose
// coordinates are given in the three parallel slices x, y, and z.
// Point i is (x[i], y[i], z[i]), and search results refer to points by
// these indices.
//
// Build is the single entry point for both first construction and
// rebuild, in the style of append: pass nil to construct a new Tree,
// or pass a previously built Tree to rebuild it after the points have
// moved, and use the returned Tree either way:
//
//	var tree *kd3.Tree
//	for i := 0; i < iterations; i++ {
//		tree = kd3.Build(x, y, z, tree)
//	}
//
// A rebuild reuses the old tree's point cache and node arena as long
// as the point count is unchanged; a rebuild with a different count
// discards the old allocations and makes fresh ones at the new size.
// Rebuilding invalidates everything derived from the previous build,
// including its sort order. Iterators are unaffected: they are pure
// snapshots.
//
// Panics if the slices disagree in length or hold fewer than two
// points.
func Build(x, y, z []float64, t *Tree) *Tree {
	count := len(x)
	if len(y) != count || len(z) != count {
		fmtPanic("coordinate slice lengths disagree (x:%d y:%d z:%d)", len(x), len(y), len(z))
	}
	if count < 2 {
		fmtPanic("too few points (%d, need at least 2)", count)
	}

	// Allocate a new tree unless the old one's cache and arena can be
	// recycled at the same size.
	if t == nil || t.count != count {
		t = &Tree{
			count:  count,
			points: make([]point, count),
			nodes:  make([]node, 2*count-1),
		}
	}
	t.next = 0

	// Cache the coordinates of each point along with its position in
	// the caller's slices.
	for i := 0; i < count; i++ {
		t.points[i] = point{x: x[i], y: y[i], z: z[i], idx: i}
	}

	t.root = t.build(0, count-1, 0)
	return t
}

// Delete releases the tree's point cache and node arena by zeroing the
// receiver, so the allocations become collectable even while the
// caller still holds the handle. Safe to call on a nil Tree. The tree
// must not be used again after Delete; pass nil to Build to start
// over.
func (t *Tree) Delete() {
	if t == nil {
		return
	}
	*t = Tree{}
}

// Count returns the number of points indexed by the tree.
func (t *Tree) Count() int {
	return t.count
}

// String returns a summary description of the tree.
func (t *Tree) String() string {
	return fmt.Sprintf("Tree{Count:%d,Nodes:%d}", t.count, len(t.nodes))
}

// nextNode hands out the next free record in the node arena and
// returns its index. The arena is sized for exactly the node count of
// a full build, so exhaustion indicates a builder bug.
func (t *Tree) nextNode() int {
	if t.next == len(t.nodes) {
		fmtPanic("node arena exhausted (%d nodes)", len(t.nodes))
	}
	i := t.next
	t.next++
	return i
}

// newLeaf allocates a leaf node referencing point cache slot pt.
func (t *Tree) newLeaf(pt int) int {
	i := t.nextNode()
	t.nodes[i] = node{left: noChild, right: noChild, pt: pt}
	return i
}

// newBranch allocates a branch node with the given split threshold.
// The children are attached by the caller once built.
func (t *Tree) newBranch(split float64) int {
	i := t.nextNode()
	t.nodes[i] = node{split: split}
	return i
}

// axisSortable sorts a sub-range of the point cache by one coordinate
// axis. It implements sort.Interface so the builder can use the
// reflection-free sort.Sort instead of sort.Slice.
//
// Points with equal coordinates on the axis compare equal and end up
// in unspecified relative order; comparing further axes to break ties
// costs more than it gains here.
type axisSortable struct {
	points []point
	ax     axis
}

func (as *axisSortable) Len() int {
	return len(as.points)
}

func (as *axisSortable) Less(i, j int) bool {
	return as.points[i].coord(as.ax) < as.points[j].coord(as.ax)
}

func (as *axisSortable) Swap(i, j int) {
	as.points[i], as.points[j] = as.points[j], as.points[i]
}

// build recursively constructs the subtree over the inclusive point
// cache range [from, to] and returns the arena index of its root.
//
// The split axis cycles with depth (x, y, z, x, ...). The sub-range is
// fully sorted on the axis and split at the lower median, so the two
// child ranges differ in size by at most one point and the finished
// tree is balanced. Sorting the whole sub-range to find one median is
// asymptotically beatable by linear-time selection, but any substitute
// must split at the same lower-median value to produce the same tree.
func (t *Tree) build(from, to, depth int) int {
	if from == to {
		return t.newLeaf(from)
	}

	ax := axis(depth % int(numAxes))
	sort.Sort(&axisSortable{points: t.points[from : to+1], ax: ax})

	mid := from + (to-from)/2
	split := t.points[mid].coord(ax)

	n := t.newBranch(split)
	left := t.build(from, mid, depth+1)
	right := t.build(mid+1, to, depth+1)
	t.nodes[n].left = left
	t.nodes[n].right = right
	return n
}

// Search finds every indexed point lying within the query box b,
// bounds inclusive on all axes, and returns an Iterator over the
// matching point indices in traversal order (call Iterator.Sort for
// ascending order).
//
// Search follows the same reuse idiom as Build: pass nil to get a
// fresh Iterator, or pass an existing one to have it reset and
// refilled without reallocating its buffer, and use the returned
// Iterator either way.
//
// Panics if the tree is nil or has not been built.
func (t *Tree) Search(b Box, it *Iterator) *Iterator {
	if t == nil || t.count == 0 {
		textPanic("search on unbuilt tree")
	}

	if it == nil {
		it = NewIterator()
	} else {
		it.Reset()
	}

	// The root domain is all of space; each branch taken narrows it on
	// one axis.
	domain := Unbounded
	t.searchBranch(t.root, 0, &b, &domain, it)
	return it
}

// SearchCube is a convenience form of Search for cubic query volumes:
// it searches the axis-aligned cube centered at (x, y, z) with the
// given apothem. Panics if the apothem is negative or the tree is nil
// or unbuilt.
func (t *Tree) SearchCube(x, y, z, apothem float64, it *Iterator) *Iterator {
	return t.Search(Cube(x, y, z, apothem), it)
}

// searchBranch recurses through the branch node at arena index ni,
// whose subtree is known to lie within domain, collecting matches into
// it. The query box b never changes; the domain is narrowed by copy
// for each child, so ancestors' domains are never disturbed.
func (t *Tree) searchBranch(ni, depth int, b, domain *Box, it *Iterator) {
	n := &t.nodes[ni]
	ax := axis(depth % int(numAxes))
	sub := *domain

	// Points left of the split lie at or below it on the axis.
	sub.Max[ax] = n.split
	t.exploreChild(n.left, depth, b, &sub, it)

	// And points right of the split lie at or above it.
	sub.Max[ax] = domain.Max[ax]
	sub.Min[ax] = n.split
	t.exploreChild(n.right, depth, b, &sub, it)
}

// exploreChild visits one child of a branch. A leaf child's point is
// tested against the query box directly. A branch child is pruned
// outright when its domain cannot intersect the box, reported
// wholesale when its domain is enclosed by the box (the split
// thresholds bounding the domain are actual point coordinates, so
// enclosure of the domain proves membership of every point under it),
// and recursed into otherwise.
func (t *Tree) exploreChild(ni, depth int, b, domain *Box, it *Iterator) {
	n := &t.nodes[ni]
	if n.leaf() {
		p := &t.points[n.pt]
		if b.contains(p.x, p.y, p.z) {
			it.push(p.idx)
		}
	} else if b.intersects(domain) {
		if b.encloses(domain) {
			t.reportAll(ni, it)
		} else {
			t.searchBranch(ni, depth+1, b, domain, it)
		}
	}
}

// reportAll emits every point under the subtree rooted at arena index
// ni without testing any of them.
func (t *Tree) reportAll(ni int, it *Iterator) {
	n := &t.nodes[ni]
	if n.leaf() {
		it.push(t.points[n.pt].idx)
		return
	}
	t.reportAll(n.left, it)
	t.reportAll(n.right, it)
}
