// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package coordtree

import "github.com/cockroachdb/errors"

// Merge folds incoming into *acc on a coordinate collision. It must not
// panic under normal operation and should be associative enough that the
// caller is content with resize's merge ordering (the earlier bucket entry
// is always the survivor; see Resize).
type Merge[V any] func(acc *V, incoming V)

// Tree is the hierarchical bit-partitioned coordinate store underlying
// cmap.Map. It is not safe for concurrent use.
type Tree[T Component[T], V any] struct {
	dim         uint8
	width       uint8
	merge       Merge[V]
	root        *node[T, V]
	size        int
	resizeCount uint8

	// generation increments on every structural mutation (insert-with-split,
	// emplace-with-split, resize, prune-that-collapses, clear). Iterators
	// stamp the generation they were built under and, in invariants builds,
	// assert it hasn't moved on dereference. See iterator.go.
	generation uint64
}

// New constructs an empty tree over dimension dim (1 <= dim <= 8) with the
// given merge operation. A component's Width (8, 16, 32, 64, 128, or 256)
// fixes the number of tree levels: the root starts at level Width()-1.
//
// An invalid dimension or a nil merge function is a precondition violation,
// per the container's error taxonomy: not a recoverable error, but a panic.
func New[T Component[T], V any](dim uint8, merge Merge[V]) *Tree[T, V] {
	if dim < 1 || dim > 8 {
		panic(errors.AssertionFailedf("coordtree: dimension %d out of range [1, 8]", dim))
	}
	if merge == nil {
		panic(errors.AssertionFailedf("coordtree: merge function must not be nil"))
	}
	var zero T
	width := zero.Width()
	switch width {
	case 8, 16, 32, 64, 128, 256:
	default:
		panic(errors.AssertionFailedf("coordtree: unsupported component width %d", width))
	}
	t := &Tree[T, V]{dim: dim, width: width, merge: merge}
	t.root = newLeaf[T, V](width - 1)
	return t
}

// Options is the functional-options config surface for New, mirroring
// pebble.Options's shape at a much smaller scale: there is nothing
// file-backed to load, so it is just the two knobs the tree actually needs.
type Options[T Component[T], V any] struct {
	Dimension uint8
	Merge     Merge[V]
}

// NewWithOptions is equivalent to New(opts.Dimension, opts.Merge).
func NewWithOptions[T Component[T], V any](opts Options[T, V]) *Tree[T, V] {
	return New[T, V](opts.Dimension, opts.Merge)
}

// Dim returns the tree's dimension D.
func (t *Tree[T, V]) Dim() uint8 { return t.dim }

// Width returns the tree's component bit width W.
func (t *Tree[T, V]) Width() uint8 { return t.width }

// Size returns the number of live entries.
func (t *Tree[T, V]) Size() int { return t.size }

// Empty reports whether the tree holds no entries.
func (t *Tree[T, V]) Empty() bool { return t.size == 0 }

// NumResizes returns the number of times Resize has been called.
func (t *Tree[T, V]) NumResizes() uint8 { return t.resizeCount }

// Generation returns the current structural generation counter, used by
// debug-build iterator invalidation checks.
func (t *Tree[T, V]) Generation() uint64 { return t.generation }

// arity returns 2^D, the bucket capacity and child count of every node.
func (t *Tree[T, V]) arity() int { return 1 << t.dim }

// Clear resets the tree to a single empty leaf at level Width()-1, with
// Size and NumResizes both zero.
func (t *Tree[T, V]) Clear() {
	t.root = newLeaf[T, V](t.width - 1)
	t.size = 0
	t.resizeCount = 0
	t.generation++
}
