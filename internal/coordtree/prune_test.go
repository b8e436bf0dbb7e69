// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package coordtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPruneCollapsesSmallSubtree(t *testing.T) {
	tr := New[U8, int](2, sumMerge)
	coords := []Coordinate[U8]{c2(0, 0), c2(1, 0), c2(0, 1), c2(1, 1), c2(64, 64)}
	for _, c := range coords {
		tr.Insert(c, 1)
	}
	require.False(t, tr.root.leaf)
	tr.Erase(c2(64, 64))
	require.Equal(t, 4, tr.Size())
	tr.Prune()
	require.True(t, tr.root.leaf, "a subtree with <= 2^D entries left must collapse back to a leaf")
	tr.Verify(t)
}

func TestPruneIsIdempotent(t *testing.T) {
	tr := New[U8, int](2, sumMerge)
	for i := uint8(0); i < 250; i += 3 {
		tr.Insert(c2(i, i), 1)
	}
	tr.Prune()
	genAfterFirst := tr.Generation()
	tr.Prune()
	require.Equal(t, genAfterFirst, tr.Generation(), "a second Prune with nothing to collapse must not bump generation")
	tr.Verify(t)
}

func TestPruneLeavesLevelUnchanged(t *testing.T) {
	tr := New[U8, int](2, sumMerge)
	coords := []Coordinate[U8]{c2(0, 0), c2(1, 0), c2(0, 1), c2(1, 1), c2(64, 64)}
	for _, c := range coords {
		tr.Insert(c, 1)
	}
	level := tr.root.level
	tr.Erase(c2(64, 64))
	tr.Prune()
	require.Equal(t, level, tr.root.level, "prune must not change the level of the node it collapses")
}
