// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package coordtree

// Prune walks the tree top-down, replacing any subtree whose total entry
// count is at most 2^D with a single leaf holding those entries. It is
// legal to call at any quiescent state and is idempotent: a second call
// immediately after the first observes nothing left to collapse.
func (t *Tree[T, V]) Prune() {
	if t.pruneNode(t.root) {
		t.generation++
	}
}

// pruneNode returns whether it performed a collapse anywhere in n's
// subtree, so Prune can bump the generation counter only when something
// actually changed.
func (t *Tree[T, V]) pruneNode(n *node[T, V]) bool {
	if n.leaf {
		return false
	}
	if subtreeSize(n) <= t.arity() {
		bucket := collect(n, make([]entry[T, V], 0, t.arity()))
		n.children = nil
		n.leaf = true
		n.bucket = bucket
		return true
	}
	collapsedAny := false
	for _, c := range n.children {
		if t.pruneNode(c) {
			collapsedAny = true
		}
	}
	return collapsedAny
}
