// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package coordtree

import (
	"github.com/cockroachdb/cmap/internal/invariants"
	"github.com/cockroachdb/errors"
)

// iterBase is the shared cursor mechanics for Iterator and MutIterator: a
// (leaf, pos) pair plus, in invariants builds, the tree generation the
// cursor was last positioned under. Any structural mutation of the tree
// (split, resize, a prune that collapses, clear) bumps the generation, and
// dereferencing a stale cursor is a precondition violation rather than
// silently returning garbage.
type iterBase[T Component[T], V any] struct {
	t    *Tree[T, V]
	leaf *node[T, V]
	pos  int
	gen  invariants.Value[uint64]
}

func (it *iterBase[T, V]) stamp() {
	if invariants.Enabled {
		it.gen.Set(it.t.generation)
	}
}

func (it *iterBase[T, V]) checkValid(op string) {
	if it.leaf == nil {
		panic(errors.AssertionFailedf("coordtree: %s called on an exhausted iterator", op))
	}
	if invariants.Enabled && it.gen.Get() != it.t.generation {
		panic(errors.AssertionFailedf("coordtree: iterator used after a structural mutation invalidated it"))
	}
}

func (it *iterBase[T, V]) first() {
	it.leaf = firstLeaf(it.t.root)
	it.pos = 0
	it.stamp()
}

func (it *iterBase[T, V]) last() {
	it.leaf = lastLeaf(it.t.root)
	if it.leaf != nil {
		it.pos = len(it.leaf.bucket) - 1
	}
	it.stamp()
}

func (it *iterBase[T, V]) next() {
	if invariants.Enabled && it.gen.Get() != it.t.generation {
		panic(errors.AssertionFailedf("coordtree: iterator used after a structural mutation invalidated it"))
	}
	it.leaf, it.pos = advance[T, V](it.leaf, it.pos)
}

func (it *iterBase[T, V]) prev() {
	if invariants.Enabled && it.gen.Get() != it.t.generation {
		panic(errors.AssertionFailedf("coordtree: iterator used after a structural mutation invalidated it"))
	}
	it.leaf, it.pos = retreat[T, V](it.leaf, it.pos)
}

func (it *iterBase[T, V]) valid() bool {
	return it.leaf != nil && (!invariants.Enabled || it.gen.Get() == it.t.generation)
}

func (it *iterBase[T, V]) equal(other *iterBase[T, V]) bool {
	return it.leaf == other.leaf && it.pos == other.pos
}

// Iterator is a read-only cursor over a Tree's entries in tree traversal
// order: leaves in ascending child-index order along the root-to-leaf path
// (the axes' bits interleaved from the most significant level down), and
// entries within a leaf in bucket order, which is not sorted by coordinate.
type Iterator[T Component[T], V any] struct {
	base iterBase[T, V]
}

func newIterator[T Component[T], V any](t *Tree[T, V]) Iterator[T, V] {
	return Iterator[T, V]{base: iterBase[T, V]{t: t}}
}

// First positions the iterator at the first entry, or makes it invalid if
// the tree is empty.
func (it *Iterator[T, V]) First() { it.base.first() }

// Last positions the iterator at the last entry, or makes it invalid if the
// tree is empty.
func (it *Iterator[T, V]) Last() { it.base.last() }

// Next advances the iterator by one entry. It is a precondition violation
// to call Next on an iterator that is not Valid.
func (it *Iterator[T, V]) Next() { it.base.checkValid("Next"); it.base.next() }

// Prev retreats the iterator by one entry. It is a precondition violation
// to call Prev on an iterator that is not Valid.
func (it *Iterator[T, V]) Prev() { it.base.checkValid("Prev"); it.base.prev() }

// Valid reports whether the iterator currently references an entry.
func (it *Iterator[T, V]) Valid() bool { return it.base.valid() }

// Coord returns the coordinate at the iterator's current position. It is a
// precondition violation to call Coord on an iterator that is not Valid.
func (it *Iterator[T, V]) Coord() Coordinate[T] {
	it.base.checkValid("Coord")
	return it.base.leaf.bucket[it.base.pos].coord
}

// Value returns the payload at the iterator's current position. It is a
// precondition violation to call Value on an iterator that is not Valid.
func (it *Iterator[T, V]) Value() V {
	it.base.checkValid("Value")
	return it.base.leaf.bucket[it.base.pos].val
}

// Equal reports whether it and other reference the same entry. Iterators
// from different trees are never equal.
func (it *Iterator[T, V]) Equal(other *Iterator[T, V]) bool {
	return it.base.t == other.base.t && it.base.equal(&other.base)
}

// MutIterator is a mutable cursor over a Tree's entries: like Iterator, but
// ValuePtr grants in-place mutation of the payload without changing its
// coordinate or the tree's shape.
type MutIterator[T Component[T], V any] struct {
	base iterBase[T, V]
}

func newMutIterator[T Component[T], V any](t *Tree[T, V]) MutIterator[T, V] {
	return MutIterator[T, V]{base: iterBase[T, V]{t: t}}
}

// First positions the iterator at the first entry, or makes it invalid if
// the tree is empty.
func (it *MutIterator[T, V]) First() { it.base.first() }

// Last positions the iterator at the last entry, or makes it invalid if the
// tree is empty.
func (it *MutIterator[T, V]) Last() { it.base.last() }

// Next advances the iterator by one entry.
func (it *MutIterator[T, V]) Next() { it.base.checkValid("Next"); it.base.next() }

// Prev retreats the iterator by one entry.
func (it *MutIterator[T, V]) Prev() { it.base.checkValid("Prev"); it.base.prev() }

// Valid reports whether the iterator currently references an entry.
func (it *MutIterator[T, V]) Valid() bool { return it.base.valid() }

// Coord returns the coordinate at the iterator's current position.
func (it *MutIterator[T, V]) Coord() Coordinate[T] {
	it.base.checkValid("Coord")
	return it.base.leaf.bucket[it.base.pos].coord
}

// ValuePtr returns a pointer to the payload at the iterator's current
// position, usable to mutate it in place. The pointer is invalidated by any
// subsequent structural mutation of the tree, exactly like the iterator
// itself.
func (it *MutIterator[T, V]) ValuePtr() *V {
	it.base.checkValid("ValuePtr")
	return &it.base.leaf.bucket[it.base.pos].val
}

// Const returns a read-only Iterator positioned identically to it.
func (it *MutIterator[T, V]) Const() Iterator[T, V] {
	return Iterator[T, V]{base: it.base}
}

// Iter returns a read-only iterator over t, initially invalid; call First
// or Last to position it.
func (t *Tree[T, V]) Iter() Iterator[T, V] { return newIterator(t) }

// MutIter returns a mutable iterator over t, initially invalid; call First
// or Last to position it.
func (t *Tree[T, V]) MutIter() MutIterator[T, V] { return newMutIterator(t) }

// IterAt returns a read-only iterator positioned at coord, or an invalid
// iterator if coord has no entry.
func (t *Tree[T, V]) IterAt(coord Coordinate[T]) Iterator[T, V] {
	it := newIterator(t)
	if n, idx, found := t.locate(coord); found {
		it.base.leaf, it.base.pos = n, idx
		it.base.stamp()
	}
	return it
}

// MutIterAt returns a mutable iterator positioned at coord, or an invalid
// iterator if coord has no entry.
func (t *Tree[T, V]) MutIterAt(coord Coordinate[T]) MutIterator[T, V] {
	it := newMutIterator(t)
	if n, idx, found := t.locate(coord); found {
		it.base.leaf, it.base.pos = n, idx
		it.base.stamp()
	}
	return it
}
