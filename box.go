// Copyright 2026 The kd3 (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kd3

import (
	"fmt"
	"math"
)

// An axis identifies one of the three coordinate axes. The builder and
// the search traversal cycle through axes by depth, so axis values are
// used to index the Min and Max arrays of a Box.
type axis int

const (
	axisX axis = iota
	axisY
	axisZ
	numAxes
)

// A Box is an axis-aligned rectangular volume, described by an
// inclusive (Min, Max) interval pair per axis. A Box plays two roles:
// it is the query volume handed to Tree.Search, and it is the domain a
// search traversal accumulates while descending the tree (the volume
// every point in the current subtree is guaranteed to lie within).
type Box struct {
	// Min contains the lower bound on each axis, indexed X, Y, Z.
	Min [3]float64
	// Max contains the upper bound on each axis, indexed X, Y, Z.
	Max [3]float64
}

// Unbounded is the Box which spans all of space on every axis. It is
// the domain of the root of any tree.
var Unbounded = Box{
	Min: [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	Max: [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)},
}

// Cube returns the Box spanning the axis-aligned cube centered at
// (x, y, z) whose apothem (perpendicular distance from center to each
// face, i.e. half the edge length) is the given value. Panics if the
// apothem is negative.
func Cube(x, y, z, apothem float64) Box {
	if apothem < 0 {
		fmtPanic("negative cube apothem %v", apothem)
	}
	return Box{
		Min: [3]float64{x - apothem, y - apothem, z - apothem},
		Max: [3]float64{x + apothem, y + apothem, z + apothem},
	}
}

// String returns a compact text representation of the box in the form
// [xmin,ymin,zmin,xmax,ymax,zmax].
func (b *Box) String() string {
	return fmt.Sprintf("[%.8g,%.8g,%.8g,%.8g,%.8g,%.8g]",
		b.Min[axisX], b.Min[axisY], b.Min[axisZ],
		b.Max[axisX], b.Max[axisY], b.Max[axisZ])
}

// contains reports whether the point (x, y, z) lies within the box.
// All bounds are inclusive, so a point exactly on a face, edge, or
// corner of the box counts as contained.
func (b *Box) contains(x, y, z float64) bool {
	return x >= b.Min[axisX] && x <= b.Max[axisX] &&
		y >= b.Min[axisY] && y <= b.Max[axisY] &&
		z >= b.Min[axisZ] && z <= b.Max[axisZ]
}

// encloses reports whether the domain box o lies entirely within b on
// every axis. When a subtree's domain is enclosed by the query box,
// every point under the subtree matches and per-point testing can be
// skipped.
func (b *Box) encloses(o *Box) bool {
	for a := axisX; a < numAxes; a++ {
		if o.Min[a] < b.Min[a] || o.Max[a] > b.Max[a] {
			return false
		}
	}
	return true
}

// intersects reports whether b and the domain box o share at least one
// point. Two boxes are separate exactly when their intervals fail to
// overlap on some axis, so the test checks for separation and negates.
func (b *Box) intersects(o *Box) bool {
	for a := axisX; a < numAxes; a++ {
		if b.Min[a] > o.Max[a] || b.Max[a] < o.Min[a] {
			return false
		}
	}
	return true
}
