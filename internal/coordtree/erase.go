// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package coordtree

import "github.com/cockroachdb/errors"

// locate descends to the leaf that would hold coord and reports whether an
// entry already lives there.
func (t *Tree[T, V]) locate(coord Coordinate[T]) (*node[T, V], int, bool) {
	if len(coord) != int(t.dim) {
		panic(errors.AssertionFailedf("coordtree: coordinate has %d components, want %d", len(coord), t.dim))
	}
	n := t.root
	for !n.leaf {
		n = child(n, coord)
	}
	idx, found := findInBucket(n.bucket, coord)
	return n, idx, found
}

// Contains reports whether coord has an entry.
func (t *Tree[T, V]) Contains(coord Coordinate[T]) bool {
	_, _, found := t.locate(coord)
	return found
}

// Find returns the payload stored at coord, if any.
func (t *Tree[T, V]) Find(coord Coordinate[T]) (V, bool) {
	n, idx, found := t.locate(coord)
	if !found {
		var zero V
		return zero, false
	}
	return n.bucket[idx].val, true
}

// FindPtr returns a pointer to the payload stored at coord, if any, usable
// to mutate it in place without altering the tree's shape.
func (t *Tree[T, V]) FindPtr(coord Coordinate[T]) (*V, bool) {
	n, idx, found := t.locate(coord)
	if !found {
		return nil, false
	}
	return &n.bucket[idx].val, true
}

// Erase removes the entry at coord, if any, and reports whether it existed.
// Buckets are unordered, so removal is a swap with the bucket's last entry
// followed by a truncation, not a shift.
func (t *Tree[T, V]) Erase(coord Coordinate[T]) bool {
	n, idx, found := t.locate(coord)
	if !found {
		return false
	}
	t.eraseAt(n, idx)
	return true
}

func (t *Tree[T, V]) eraseAt(n *node[T, V], idx int) {
	last := len(n.bucket) - 1
	n.bucket[idx] = n.bucket[last]
	n.bucket = n.bucket[:last]
	t.size--
	t.generation++
}

// EraseAt removes the entry it currently references and advances it to an
// entry not yet visited. The removal moves the bucket's former last entry
// into the erased slot, so the iterator stays at that slot when an entry was
// moved there and otherwise moves to the first entry of the next
// non-empty leaf; the entries Next would have visited are still all ahead of
// the iterator, although within the current leaf the moved entry now comes
// first. It is a precondition violation to call EraseAt on
// an iterator that is not Valid; after EraseAt returns, the iterator is
// either Valid at the following entry or has reached the end.
func (t *Tree[T, V]) EraseAt(it *MutIterator[T, V]) {
	it.base.checkValid("EraseAt")
	leaf, idx := it.base.leaf, it.base.pos
	t.eraseAt(leaf, idx)
	if idx < len(leaf.bucket) {
		// The former last entry was swapped into idx; that's the next entry
		// to visit in bucket order.
		it.base.leaf, it.base.pos = leaf, idx
		it.base.stamp()
		return
	}
	l := leaf
	for {
		l = nextLeaf(l)
		if l == nil {
			it.base.leaf, it.base.pos = nil, 0
			it.base.stamp()
			return
		}
		if len(l.bucket) > 0 {
			it.base.leaf, it.base.pos = l, 0
			it.base.stamp()
			return
		}
	}
}
