// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package cmap

// ReverseIterator is a read-only cursor over a Map's entries in the
// opposite of coordinate-tree order: First lands on what Iterator.Last
// would, and Next walks the way Iterator.Prev does. It is a thin adapter
// over Iterator rather than a distinct cursor implementation, the same way
// a C++ std::reverse_iterator wraps a forward iterator instead of
// reimplementing traversal.
type ReverseIterator[T Component[T], V any] struct {
	it Iterator[T, V]
}

// First positions the iterator at the last entry in forward order (the
// first entry visited in reverse), or makes it invalid if the map is
// empty.
func (r *ReverseIterator[T, V]) First() { r.it.Last() }

// Last positions the iterator at the first entry in forward order, or
// makes it invalid if the map is empty.
func (r *ReverseIterator[T, V]) Last() { r.it.First() }

// Next moves the iterator one step backward in forward order.
func (r *ReverseIterator[T, V]) Next() { r.it.Prev() }

// Prev moves the iterator one step forward in forward order.
func (r *ReverseIterator[T, V]) Prev() { r.it.Next() }

// Valid reports whether the iterator currently references an entry.
func (r *ReverseIterator[T, V]) Valid() bool { return r.it.Valid() }

// Coord returns the coordinate at the iterator's current position.
func (r *ReverseIterator[T, V]) Coord() Coordinate[T] { return r.it.Coord() }

// Value returns the payload at the iterator's current position.
func (r *ReverseIterator[T, V]) Value() V { return r.it.Value() }

// Equal reports whether r and other reference the same entry.
func (r *ReverseIterator[T, V]) Equal(other *ReverseIterator[T, V]) bool {
	return r.it.Equal(&other.it)
}

// MutReverseIterator is the mutable counterpart of ReverseIterator.
type MutReverseIterator[T Component[T], V any] struct {
	it MutIterator[T, V]
}

// First positions the iterator at the last entry in forward order.
func (r *MutReverseIterator[T, V]) First() { r.it.Last() }

// Last positions the iterator at the first entry in forward order.
func (r *MutReverseIterator[T, V]) Last() { r.it.First() }

// Next moves the iterator one step backward in forward order.
func (r *MutReverseIterator[T, V]) Next() { r.it.Prev() }

// Prev moves the iterator one step forward in forward order.
func (r *MutReverseIterator[T, V]) Prev() { r.it.Next() }

// Valid reports whether the iterator currently references an entry.
func (r *MutReverseIterator[T, V]) Valid() bool { return r.it.Valid() }

// Coord returns the coordinate at the iterator's current position.
func (r *MutReverseIterator[T, V]) Coord() Coordinate[T] { return r.it.Coord() }

// ValuePtr returns a pointer to the payload at the iterator's current
// position.
func (r *MutReverseIterator[T, V]) ValuePtr() *V { return r.it.ValuePtr() }

// Const returns a read-only ReverseIterator positioned identically to r.
func (r *MutReverseIterator[T, V]) Const() ReverseIterator[T, V] {
	return ReverseIterator[T, V]{it: r.it.Const()}
}
