// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package coordtree

import "github.com/cockroachdb/errors"

// Resize halves every coordinate axis (a logical right shift by one bit)
// across the whole tree and fuses any entries whose shifted coordinates
// collide. When Resize returns, NumResizes has been incremented by exactly
// one and Size reduced by the number of merges performed. Its only panics
// are invariant checks on a malformed tree; such a panic can fire after
// part of the tree has already been shifted, leaving that partial state.
func (t *Tree[T, V]) Resize() {
	if t.width == 0 {
		panic(errors.AssertionFailedf("coordtree: resize called on a zero-width tree"))
	}
	removed := t.resizeNode(t.root)
	t.size -= removed
	t.resizeCount++
	t.generation++
}

// resizeNode implements the recursive rule from the resize contract:
//   - leaf: shift every entry, then dedup-in-place, merging later
//     duplicates into the earliest surviving entry in bucket order;
//   - internal at level > 1: recurse into every child;
//   - internal at level == 1: collapse — every child is a leaf whose
//     post-shift entries are pairwise identical, so each becomes at most
//     one representative entry on the new leaf this node turns into.
//
// It returns the number of merge operations it performed, so the caller
// can adjust Size once for the whole tree.
func (t *Tree[T, V]) resizeNode(n *node[T, V]) int {
	if n.leaf {
		for i := range n.bucket {
			n.bucket[i].coord = n.bucket[i].coord.shr1()
		}
		removed := dedupBucket(n.bucket, t.merge)
		n.bucket = n.bucket[:len(n.bucket)-removed]
		// A leaf already at level 0 has no coarser level below it; further
		// resizes keep shifting its entries but leave level pinned at 0
		// rather than underflowing the uint8.
		if n.level > 0 {
			n.level--
		}
		return removed
	}

	if n.level == 0 {
		panic(errors.AssertionFailedf("coordtree: resize reached an internal node at level 0"))
	}

	var removed int
	if n.level == 1 {
		removed = t.collapse(n)
	} else {
		for _, c := range n.children {
			removed += t.resizeNode(c)
		}
	}
	n.level--
	return removed
}

// dedupBucket merges, in place, every later entry whose coordinate matches
// an earlier one, sliding survivors down to close the gaps left behind. The
// survivor of any merge group is always the earliest entry in bucket order
// (merge is called as merge(survivor, later)), matching the semantics of a
// normal Insert where the first insertion of a coordinate is the
// accumulator. It returns the number of entries removed; the caller is
// responsible for truncating bucket by that count.
func dedupBucket[T Component[T], V any](bucket []entry[T, V], merge Merge[V]) int {
	end := len(bucket)
	head := 0
	for head < end {
		target := &bucket[head].val
		targetCoord := bucket[head].coord
		head++
		keep := head
		for iter := head; iter < end; iter++ {
			if bucket[iter].coord.Equal(targetCoord) {
				merge(target, bucket[iter].val)
			} else {
				bucket[keep] = bucket[iter]
				keep++
			}
		}
		end = keep
	}
	return len(bucket) - end
}

// collapse implements the level-1 internal-node collapse: each non-empty
// child leaf contributes at most one representative entry (its bucket's
// entries merged together and its coordinate shifted), and the node itself
// becomes a leaf at level 0 holding those representatives. It returns the
// number of merges performed across all children.
func (t *Tree[T, V]) collapse(n *node[T, V]) int {
	removed := 0
	bucket := make([]entry[T, V], 0, len(n.children))
	for _, c := range n.children {
		if !c.leaf {
			panic(errors.AssertionFailedf("coordtree: level-1 internal node has a non-leaf child"))
		}
		if len(c.bucket) == 0 {
			continue
		}
		rep := c.bucket[0]
		rep.coord = rep.coord.shr1()
		for _, other := range c.bucket[1:] {
			t.merge(&rep.val, other.val)
			removed++
		}
		bucket = append(bucket, rep)
	}
	n.children = nil
	n.leaf = true
	n.bucket = bucket
	return removed
}
