// Copyright 2024 The cmap Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

// Command cmapdemo exercises cmap.Map over a synthetic workload: it inserts
// a batch of random coordinates, resizes and prunes a few times, and walks
// the result forward and backward, logging a summary at each step. It plays
// a thin CLI over cmap.Map, mirroring pebble's cmd/pebble relationship to
// the pebble package: not part of the library itself.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cockroachdb/cmap"
)

var (
	dim     uint8
	width   uint8
	count   int
	resizes int
	seed    int64
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cmapdemo",
	Short: "exercises cmap.Map over a synthetic coordinate workload",
	RunE: func(cmd *cobra.Command, args []string) error {
		configureLogging()
		return run()
	},
}

func configureLogging() {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func main() {
	rootCmd.Flags().Uint8Var(&dim, "dim", 2, "lattice dimension D (1-8)")
	rootCmd.Flags().Uint8Var(&width, "width", 32, "coordinate component width W (8, 16, 32, or 64)")
	rootCmd.Flags().IntVar(&count, "count", 10_000, "number of coordinates to insert")
	rootCmd.Flags().IntVar(&resizes, "resizes", 3, "number of Resize passes to run after loading")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "random seed for the workload generator")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	rng := rand.New(rand.NewSource(seed))

	switch width {
	case 8:
		return runDemo[cmap.U8](rng, func() cmap.U8 { return cmap.U8(rng.Intn(1 << 8)) })
	case 16:
		return runDemo[cmap.U16](rng, func() cmap.U16 { return cmap.U16(rng.Intn(1 << 16)) })
	case 32:
		return runDemo[cmap.U32](rng, func() cmap.U32 { return cmap.U32(rng.Uint32()) })
	case 64:
		return runDemo[cmap.U64](rng, func() cmap.U64 { return cmap.U64(rng.Uint64()) })
	default:
		return fmt.Errorf("unsupported width %d (want 8, 16, 32, or 64)", width)
	}
}

// runDemo is generic over the component type so a single workload driver
// serves every --width choice; draw is the per-width random axis
// generator, since math/rand has no generic uniform-integer primitive that
// spans all of them uniformly.
func runDemo[T cmap.Component[T]](rng *rand.Rand, draw func() T) error {
	m := cmap.New[T, int](dim, func(acc *int, incoming int) { *acc += incoming })

	for i := 0; i < count; i++ {
		coord := make(cmap.Coordinate[T], dim)
		for a := range coord {
			coord[a] = draw()
		}
		m.Insert(coord, 1)
	}
	log.Info().Int("requested", count).Int("size", m.Size()).Msg("loaded workload")

	for i := 0; i < resizes; i++ {
		before := m.Size()
		m.Resize()
		log.Info().
			Int("pass", i+1).
			Int("before", before).
			Int("after", m.Size()).
			Uint8("num_resizes", m.NumResizes()).
			Msg("resized")
	}

	m.Prune()

	forward := 0
	fwd := m.Iter()
	for fwd.First(); fwd.Valid(); fwd.Next() {
		forward++
	}

	reverse := 0
	rev := m.RIter()
	for rev.First(); rev.Valid(); rev.Next() {
		reverse++
	}

	log.Info().
		Int("size", m.Size()).
		Int("forward_walk", forward).
		Int("reverse_walk", reverse).
		Msg("traversal complete")

	if forward != m.Size() || reverse != m.Size() {
		return fmt.Errorf("traversal mismatch: size=%d forward=%d reverse=%d", m.Size(), forward, reverse)
	}
	return nil
}
