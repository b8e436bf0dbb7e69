// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package cmap

import "github.com/cockroachdb/cmap/internal/coordtree"

// Component is the interface a coordinate axis element type must
// implement. See coordtree.Component for the exact contract.
type Component[T any] = coordtree.Component[T]

// U8 exports the coordtree.U8 8-bit coordinate component.
type U8 = coordtree.U8

// U16 exports the coordtree.U16 16-bit coordinate component.
type U16 = coordtree.U16

// U32 exports the coordtree.U32 32-bit coordinate component.
type U32 = coordtree.U32

// U64 exports the coordtree.U64 64-bit coordinate component.
type U64 = coordtree.U64

// U128 exports the coordtree.U128 128-bit coordinate component.
type U128 = coordtree.U128

// U256 exports the coordtree.U256 256-bit coordinate component.
type U256 = coordtree.U256

// Coordinate is a D-tuple of W-bit unsigned components, one per axis.
type Coordinate[T Component[T]] = coordtree.Coordinate[T]

// Merge folds an incoming payload into an existing one on a coordinate
// collision, whether from Insert/Emplace or from Resize fusing two
// previously distinct coordinates into one.
type Merge[V any] = coordtree.Merge[V]

// Options configures New: the lattice's dimension and the collision-merge
// function. Both are required.
type Options[T Component[T], V any] = coordtree.Options[T, V]

// Iterator is a read-only cursor over a Map's entries.
type Iterator[T Component[T], V any] = coordtree.Iterator[T, V]

// MutIterator is a mutable cursor over a Map's entries, allowing in-place
// payload mutation via ValuePtr.
type MutIterator[T Component[T], V any] = coordtree.MutIterator[T, V]
