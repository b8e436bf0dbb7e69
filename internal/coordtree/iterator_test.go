// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package coordtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIteratorEmptyTreeIsInvalid(t *testing.T) {
	tr := New[U8, int](2, sumMerge)
	it := tr.Iter()
	it.First()
	require.False(t, it.Valid())
	it.Last()
	require.False(t, it.Valid())
}

func TestIteratorVisitsEveryEntryExactlyOnce(t *testing.T) {
	tr := New[U8, int](2, sumMerge)
	want := map[string]bool{}
	for i := uint8(0); i < 250; i += 3 {
		c := c2(i, i*2)
		tr.Insert(c, 1)
		want[coordKey(c)] = true
	}
	got := map[string]bool{}
	it := tr.Iter()
	for it.First(); it.Valid(); it.Next() {
		got[coordKey(it.Coord())] = true
	}
	require.Equal(t, want, got)
	require.Equal(t, tr.Size(), len(got))
}

func TestIteratorForwardMatchesReverseOfBackward(t *testing.T) {
	tr := New[U8, int](2, sumMerge)
	for i := uint8(0); i < 100; i += 7 {
		tr.Insert(c2(i, i), 1)
	}
	var forward, backward []string
	it := tr.Iter()
	for it.First(); it.Valid(); it.Next() {
		forward = append(forward, coordKey(it.Coord()))
	}
	for it.Last(); it.Valid(); it.Prev() {
		backward = append(backward, coordKey(it.Coord()))
	}
	require.Len(t, backward, len(forward))
	for i := range forward {
		require.Equal(t, forward[i], backward[len(backward)-1-i])
	}
}

func TestIterAtFindsExistingSkipsMissing(t *testing.T) {
	tr := New[U8, int](2, sumMerge)
	tr.Insert(c2(9, 9), 3)
	it := tr.IterAt(c2(9, 9))
	require.True(t, it.Valid())
	require.Equal(t, 3, it.Value())

	miss := tr.IterAt(c2(1, 2))
	require.False(t, miss.Valid())
}

func TestMutIteratorValuePtrMutates(t *testing.T) {
	tr := New[U8, int](1, sumMerge)
	tr.Insert(Coordinate[U8]{U8(5)}, 1)
	it := tr.MutIter()
	it.First()
	*it.ValuePtr() = 42
	v, _ := tr.Find(Coordinate[U8]{U8(5)})
	require.Equal(t, 42, v)
}

func TestIteratorEqual(t *testing.T) {
	tr := New[U8, int](1, sumMerge)
	tr.Insert(Coordinate[U8]{U8(1)}, 1)
	tr.Insert(Coordinate[U8]{U8(2)}, 1)
	a := tr.Iter()
	a.First()
	b := tr.Iter()
	b.First()
	require.True(t, a.Equal(&b))
	b.Next()
	require.False(t, a.Equal(&b))
}

func TestDereferenceInvalidIteratorPanics(t *testing.T) {
	tr := New[U8, int](2, sumMerge)
	it := tr.Iter()
	require.Panics(t, func() { it.Coord() })
	require.Panics(t, func() { it.Value() })
	require.Panics(t, func() { it.Next() })
}
