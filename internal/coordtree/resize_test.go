// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package coordtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResizeHalvesCoordinates(t *testing.T) {
	tr := New[U8, int](2, sumMerge)
	tr.Insert(c2(4, 6), 1)
	tr.Resize()
	v, ok := tr.Find(c2(2, 3))
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, uint8(1), tr.NumResizes())
	tr.Verify(t)
}

func TestResizeMergesCollidingEntries(t *testing.T) {
	tr := New[U8, int](2, sumMerge)
	tr.Insert(c2(4, 6), 10)
	tr.Insert(c2(5, 7), 3)
	require.Equal(t, 2, tr.Size())
	tr.Resize()
	// Both (4,6) and (5,7) shift to (2,3).
	require.Equal(t, 1, tr.Size())
	v, ok := tr.Find(c2(2, 3))
	require.True(t, ok)
	require.Equal(t, 13, v)
	tr.Verify(t)
}

func TestResizeSurvivorIsEarliestInsert(t *testing.T) {
	var order []int
	merge := func(acc *int, incoming int) {
		order = append(order, incoming)
		*acc += incoming
	}
	tr := New[U8, int](1, merge)
	tr.Insert(Coordinate[U8]{U8(8)}, 1)
	tr.Insert(Coordinate[U8]{U8(9)}, 2)
	tr.Resize()
	require.Equal(t, []int{2}, order, "merge must fold the later entry into the earlier one")
}

func TestResizePastFullCollapseDoesNotPanic(t *testing.T) {
	tr := New[U8, int](1, sumMerge)
	tr.Insert(Coordinate[U8]{U8(200)}, 1)
	tr.Insert(Coordinate[U8]{U8(3)}, 4)
	require.NotPanics(t, func() {
		for i := 0; i < 12; i++ {
			tr.Resize()
		}
	})
	require.Equal(t, uint8(12), tr.NumResizes())
	require.Equal(t, uint8(0), tr.root.level)
	v, ok := tr.Find(Coordinate[U8]{U8(0)})
	require.True(t, ok)
	require.Equal(t, 5, v, "both entries shift to 0 by the eighth resize and must merge")
	tr.Verify(t)
}

func TestResizeRandomizedPreservesTotalAndInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := New[U8, int](3, sumMerge)
	total := 0
	for i := 0; i < 3000; i++ {
		c := Coordinate[U8]{U8(rng.Intn(256)), U8(rng.Intn(256)), U8(rng.Intn(256))}
		if tr.Insert(c, 1) {
			total++
		}
	}
	for r := 0; r < 4; r++ {
		tr.Resize()
		tr.Verify(t)
		sum := 0
		it := tr.Iter()
		for it.First(); it.Valid(); it.Next() {
			sum += it.Value()
		}
		require.Equal(t, total, sum, "resize must be conservative: total payload mass never changes")
	}
}
