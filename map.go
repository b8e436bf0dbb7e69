// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package cmap

import "github.com/cockroachdb/cmap/internal/coordtree"

// Map is a resizable coordinate map keyed by D-dimensional coordinates of
// W-bit components T, storing payloads of type V. The zero value is not
// usable; construct with New.
type Map[T Component[T], V any] struct {
	tree *coordtree.Tree[T, V]
}

// New constructs an empty Map over the given dimension (1 <= dim <= 8),
// combining colliding payloads with merge. An invalid dimension, a nil
// merge, or a component width New does not recognize is a precondition
// violation and panics.
func New[T Component[T], V any](dim uint8, merge Merge[V]) *Map[T, V] {
	return &Map[T, V]{tree: coordtree.New[T, V](dim, merge)}
}

// NewWithOptions is equivalent to New(opts.Dimension, opts.Merge).
func NewWithOptions[T Component[T], V any](opts Options[T, V]) *Map[T, V] {
	return &Map[T, V]{tree: coordtree.NewWithOptions[T, V](opts)}
}

// Dim returns the map's dimension D.
func (m *Map[T, V]) Dim() uint8 { return m.tree.Dim() }

// Width returns the map's coordinate component bit width W.
func (m *Map[T, V]) Width() uint8 { return m.tree.Width() }

// Size returns the number of entries currently stored.
func (m *Map[T, V]) Size() int { return m.tree.Size() }

// Empty reports whether the map holds no entries.
func (m *Map[T, V]) Empty() bool { return m.tree.Empty() }

// NumResizes returns the number of times Resize has been called.
func (m *Map[T, V]) NumResizes() uint8 { return m.tree.NumResizes() }

// Generation returns the structural generation counter backing iterator
// invalidation checks.
func (m *Map[T, V]) Generation() uint64 { return m.tree.Generation() }

// Insert inserts (coord, val). If coord already has an entry, the map's
// Merge folds val into the existing payload and Insert returns false;
// otherwise a new entry is added and Insert returns true.
func (m *Map[T, V]) Insert(coord Coordinate[T], val V) bool {
	return m.tree.Insert(coord, val)
}

// Emplace is Insert with the payload produced by make: make is invoked once
// per Emplace, and its result either becomes the new entry's payload or, if
// coord already has an entry, is folded into it with the map's Merge.
func (m *Map[T, V]) Emplace(coord Coordinate[T], make_ func() V) bool {
	return m.tree.Emplace(coord, make_)
}

// Find returns the payload stored at coord, if any.
func (m *Map[T, V]) Find(coord Coordinate[T]) (V, bool) {
	return m.tree.Find(coord)
}

// Contains reports whether coord has an entry.
func (m *Map[T, V]) Contains(coord Coordinate[T]) bool {
	return m.tree.Contains(coord)
}

// Get returns the payload at coord, inserting a zero-value entry there
// first if none exists — the operator[] behavior. Get is total: it never
// fails and never reports a miss, unlike Find.
func (m *Map[T, V]) Get(coord Coordinate[T]) *V {
	if p, ok := m.tree.FindPtr(coord); ok {
		return p
	}
	var zero V
	m.tree.Insert(coord, zero)
	p, _ := m.tree.FindPtr(coord)
	return p
}

// Erase removes the entry at coord, if any, and reports whether it
// existed. A successful Erase is followed by a top-down Prune of the
// affected root, per this container's collapse-eagerly policy.
func (m *Map[T, V]) Erase(coord Coordinate[T]) bool {
	if !m.tree.Erase(coord) {
		return false
	}
	m.tree.Prune()
	return true
}

// EraseAt removes the entry it currently references, advances it to the
// entry that follows, and prunes the tree. It is a precondition violation
// to call EraseAt on an iterator that is not Valid.
func (m *Map[T, V]) EraseAt(it *MutIterator[T, V]) {
	m.tree.EraseAt(it)
	if !it.Valid() {
		m.tree.Prune()
		return
	}
	// A collapsing Prune can detach the leaf the iterator now references, so
	// re-locate the following entry by its coordinate in that case.
	next := it.Coord()
	gen := m.tree.Generation()
	m.tree.Prune()
	if m.tree.Generation() != gen {
		*it = m.tree.MutIterAt(next)
	}
}

// EraseRange erases every entry in [first, last) in forward traversal
// order, tolerating first and last referencing the same leaf (in which
// case only the entries between their positions in that leaf are
// removed), and returns the number of entries erased.
func (m *Map[T, V]) EraseRange(first, last Iterator[T, V]) int {
	coords := collectRange(first, last)
	for _, c := range coords {
		m.tree.Erase(c)
	}
	if len(coords) > 0 {
		m.tree.Prune()
	}
	return len(coords)
}

// EraseRangeReverse is EraseRange for a pair of ReverseIterators, erasing
// every entry from first up to but not including last in reverse
// traversal order.
func (m *Map[T, V]) EraseRangeReverse(first, last ReverseIterator[T, V]) int {
	var coords []Coordinate[T]
	it := first
	for it.Valid() && !it.Equal(&last) {
		coords = append(coords, it.Coord())
		it.Next()
	}
	for _, c := range coords {
		m.tree.Erase(c)
	}
	if len(coords) > 0 {
		m.tree.Prune()
	}
	return len(coords)
}

func collectRange[T Component[T], V any](first, last Iterator[T, V]) []Coordinate[T] {
	var coords []Coordinate[T]
	it := first
	for it.Valid() && !it.Equal(&last) {
		coords = append(coords, it.Coord())
		it.Next()
	}
	return coords
}

// Prune collapses every subtree left small enough by prior erases back
// into a single leaf. Erase, EraseAt, EraseRange and EraseRangeReverse
// already prune after removing entries; Resize does not, so subtrees whose
// entries Resize fused stay split until Prune is called.
func (m *Map[T, V]) Prune() { m.tree.Prune() }

// Resize halves every coordinate axis and fuses entries whose shifted
// coordinates collide, merging colliding payloads with Merge. It is a
// single logical step: NumResizes is incremented by exactly one and Size
// is reduced by the number of merges performed.
func (m *Map[T, V]) Resize() { m.tree.Resize() }

// Clear removes every entry, resetting Size and NumResizes to zero.
func (m *Map[T, V]) Clear() { m.tree.Clear() }

// Iter returns a read-only iterator over m, initially invalid; call First
// or Last to position it.
func (m *Map[T, V]) Iter() Iterator[T, V] { return m.tree.Iter() }

// MutIter returns a mutable iterator over m, initially invalid; call First
// or Last to position it.
func (m *Map[T, V]) MutIter() MutIterator[T, V] { return m.tree.MutIter() }

// IterAt returns a read-only iterator positioned at coord, or an invalid
// iterator if coord has no entry.
func (m *Map[T, V]) IterAt(coord Coordinate[T]) Iterator[T, V] {
	return m.tree.IterAt(coord)
}

// MutIterAt returns a mutable iterator positioned at coord, or an invalid
// iterator if coord has no entry.
func (m *Map[T, V]) MutIterAt(coord Coordinate[T]) MutIterator[T, V] {
	return m.tree.MutIterAt(coord)
}

// RIter returns a read-only reverse iterator over m, initially invalid;
// call First or Last to position it.
func (m *Map[T, V]) RIter() ReverseIterator[T, V] {
	return ReverseIterator[T, V]{it: m.tree.Iter()}
}

// MutRIter returns a mutable reverse iterator over m, initially invalid;
// call First or Last to position it.
func (m *Map[T, V]) MutRIter() MutReverseIterator[T, V] {
	return MutReverseIterator[T, V]{it: m.tree.MutIter()}
}

// RIterAt returns a read-only reverse iterator positioned at coord, or an
// invalid iterator if coord has no entry.
func (m *Map[T, V]) RIterAt(coord Coordinate[T]) ReverseIterator[T, V] {
	return ReverseIterator[T, V]{it: m.tree.IterAt(coord)}
}

// MutRIterAt returns a mutable reverse iterator positioned at coord, or an
// invalid iterator if coord has no entry.
func (m *Map[T, V]) MutRIterAt(coord Coordinate[T]) MutReverseIterator[T, V] {
	return MutReverseIterator[T, V]{it: m.tree.MutIterAt(coord)}
}
