// Copyright 2020 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build !invariants

package invariants

// Enabled is true if we were built with the "invariants" build tag.
const Enabled = false

// Value is a generic container for a value that should only exist in
// invariant builds. In non-invariant builds, storing a value is a no-op,
// retrieving a value returns the type parameter's zero value, and the Value
// struct takes up no space.
type Value[V any] struct{}

// Get the current value, or the zero value if invariants are disabled.
func (*Value[V]) Get() V {
	var v V
	return v
}

// Set the value; no-op in non-invariant builds.
func (*Value[V]) Set(v V) {}
