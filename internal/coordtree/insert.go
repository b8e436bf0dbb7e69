// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package coordtree

import "github.com/cockroachdb/errors"

// Insert inserts (coord, val) into the tree. If an entry already exists at
// coord, merge folds val into the existing payload and Insert returns
// false; otherwise a new entry is appended and Insert returns true.
func (t *Tree[T, V]) Insert(coord Coordinate[T], val V) bool {
	return t.Emplace(coord, func() V { return val })
}

// Emplace is Insert with the payload produced by make: make is called once
// per Emplace, and its result either becomes the new entry's payload or, if
// an entry already exists at coord, is folded into that entry by merge.
func (t *Tree[T, V]) Emplace(coord Coordinate[T], make_ func() V) bool {
	if len(coord) != int(t.dim) {
		panic(errors.AssertionFailedf("coordtree: coordinate has %d components, want %d", len(coord), t.dim))
	}
	n := t.root
	for {
		if !n.leaf {
			n = child(n, coord)
			continue
		}
		if i, found := findInBucket(n.bucket, coord); found {
			t.merge(&n.bucket[i].val, make_())
			return false
		}
		if len(n.bucket) < t.arity() {
			n.bucket = append(n.bucket, entry[T, V]{coord: coord.Clone(), val: make_()})
			t.size++
			return true
		}
		n = t.split(n)
	}
}

// findInBucket linearly scans a leaf's bucket for coord, returning its
// index if present.
func findInBucket[T Component[T], V any](bucket []entry[T, V], coord Coordinate[T]) (int, bool) {
	for i := range bucket {
		if bucket[i].coord.Equal(coord) {
			return i, true
		}
	}
	return 0, false
}

// split converts a saturated leaf into an internal node with 2^D fresh
// leaf children at level-1, redistributes the leaf's entries among them,
// and returns n itself, now internal, so the caller's descent for the
// triggering coordinate continues from it. n must currently be a leaf at level >=
// 1; splitting at level 0 is a hard precondition violation, since it can
// only happen if more than 2^D entries share every coordinate bit, which
// invariant I1 combined with merge-on-collision rules out.
func (t *Tree[T, V]) split(n *node[T, V]) *node[T, V] {
	if n.level == 0 {
		panic(errors.AssertionFailedf("coordtree: attempted to split a leaf at level 0"))
	}
	childLevel := n.level - 1
	arity := t.arity()
	n.children = make([]*node[T, V], arity)
	for i := range n.children {
		c := newLeaf[T, V](childLevel)
		c.parent = n
		c.pos = i
		n.children[i] = c
	}
	for _, e := range n.bucket {
		dst := child(n, e.coord)
		dst.bucket = append(dst.bucket, e)
	}
	n.bucket = nil
	n.leaf = false
	t.generation++
	return n
}
