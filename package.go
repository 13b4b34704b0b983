// Copyright 2026 The kd3 (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package kd3 provides a balanced static 3-D k-d tree supporting
// axis-aligned box range queries.
//
// The package is tuned for a simulation-style workload where the
// indexed points move every iteration: the tree is rebuilt from
// scratch each iteration, and many range queries are issued against
// each rebuild. Both the tree and the result iterator are designed to
// be reused across calls so that a steady-state rebuild/query loop
// performs no allocation at all:
//
//	var tree *kd3.Tree
//	var it *kd3.Iterator
//	for step := 0; step < steps; step++ {
//		movePoints(x, y, z)
//		tree = kd3.Build(x, y, z, tree)
//		for _, q := range queries {
//			it = tree.SearchCube(q.X, q.Y, q.Z, q.Apothem, it)
//			for i := it.Next(); i != kd3.End; i = it.Next() {
//				// i is an index into x, y, z.
//			}
//		}
//	}
//
// The package is fully synchronous and performs no internal locking.
// A Tree must not be rebuilt while a search against it is in flight,
// and a single Iterator must not be shared between concurrent
// searches.
package kd3
