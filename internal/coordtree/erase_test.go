// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package coordtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEraseRemovesEntry(t *testing.T) {
	tr := New[U8, int](2, sumMerge)
	tr.Insert(c2(1, 1), 5)
	require.True(t, tr.Erase(c2(1, 1)))
	require.False(t, tr.Contains(c2(1, 1)))
	require.Equal(t, 0, tr.Size())
}

func TestEraseMissingCoordinateReturnsFalse(t *testing.T) {
	tr := New[U8, int](2, sumMerge)
	require.False(t, tr.Erase(c2(1, 1)))
}

func TestEraseAtDrainsWholeTree(t *testing.T) {
	tr := New[U8, int](2, sumMerge)
	n := 0
	for i := uint8(0); i < 200; i += 5 {
		tr.Insert(c2(i, i), 1)
		n++
	}
	it := tr.MutIter()
	count := 0
	for it.First(); it.Valid(); {
		tr.EraseAt(&it)
		count++
	}
	require.Equal(t, n, count)
	require.Equal(t, 0, tr.Size())
	tr.Verify(t)
}

func TestFindPtrMutatesInPlace(t *testing.T) {
	tr := New[U8, int](1, sumMerge)
	tr.Insert(Coordinate[U8]{U8(4)}, 1)
	p, ok := tr.FindPtr(Coordinate[U8]{U8(4)})
	require.True(t, ok)
	*p = 99
	v, _ := tr.Find(Coordinate[U8]{U8(4)})
	require.Equal(t, 99, v)
}
