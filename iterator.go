// Copyright 2026 The kd3 (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package kd3

import (
	"fmt"
	"sort"
)

// initialCap is the capacity an Iterator's buffer starts out with.
// Searches whose result sets fit within it never grow the buffer.
const initialCap = 50

// End is the value Next returns once an Iterator is exhausted. Point
// indices are never negative, so End cannot collide with a result.
const End = -1

// An Iterator holds the results of one search: the original indices of
// the matching points, consumed pull-style through Next. An Iterator
// is a pure snapshot. It keeps no reference into the Tree that filled
// it, and stays valid after the tree is rebuilt or deleted.
//
// The buffer survives Reset, so one Iterator passed back into Search
// over and over services any number of queries with at most a handful
// of allocations ever. That is the intended usage in a workload that
// issues many queries per rebuild.
type Iterator struct {
	// data holds the collected point indices. Its capacity is the
	// buffer being recycled across searches.
	data []int
	// cursor is the read position of Next within data.
	cursor int
}

// NewIterator returns an empty Iterator with a small pre-sized buffer.
// Callers rarely need it: Search allocates one when handed nil.
func NewIterator() *Iterator {
	return &Iterator{data: make([]int, 0, initialCap)}
}

// Reset empties the iterator and rewinds it, retaining the buffer for
// reuse. Search calls it on every iterator it is handed.
func (it *Iterator) Reset() {
	it.data = it.data[:0]
	it.cursor = 0
}

// push appends a point index, growing the buffer as needed. Growth is
// the amortized-constant doubling of append.
func (it *Iterator) push(v int) {
	if it.data == nil {
		it.data = make([]int, 0, initialCap)
	}
	it.data = append(it.data, v)
}

// Next returns the next point index and advances the iterator, or
// returns End once all results have been consumed. After exhaustion,
// further calls keep returning End.
func (it *Iterator) Next() int {
	if it.cursor == len(it.data) {
		return End
	}
	v := it.data[it.cursor]
	it.cursor++
	return v
}

// Rewind moves the read position back to the first result without
// disturbing the contents, so the results can be consumed again.
func (it *Iterator) Rewind() {
	it.cursor = 0
}

// Sort sorts the results in ascending index order, in place. Search
// fills the iterator in traversal order, which depends on tree shape;
// Sort gives a canonical order for comparison or merging.
func (it *Iterator) Sort() {
	sort.Ints(it.data)
}

// Len returns the number of results held.
func (it *Iterator) Len() int {
	return len(it.data)
}

// Cap returns the current buffer capacity.
func (it *Iterator) Cap() int {
	return cap(it.data)
}

// Delete releases the iterator's buffer by zeroing the receiver. Safe
// to call on a nil Iterator. The iterator must not be used again after
// Delete; pass nil to Search to start over.
func (it *Iterator) Delete() {
	if it == nil {
		return
	}
	*it = Iterator{}
}

// String returns a summary description of the iterator.
func (it *Iterator) String() string {
	return fmt.Sprintf("Iterator{Len:%d,Cap:%d,Cursor:%d}", len(it.data), cap(it.data), it.cursor)
}
