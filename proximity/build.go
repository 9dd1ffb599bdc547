// SPDX-License-Identifier: MIT
// Package: wavefront/proximity
//
// build.go — implementation of the Build(n, width, height, radius) constructor.
//
// Canonical model:
//   - Random geometric graph: sample n positions uniformly over the world
//     rectangle, then connect every pair closer than the proximity radius.
//   - Undirected simple graph: iterate unordered pairs {i,j} with i<j and
//     record both directions; no self-loops by construction.
//
// Contract:
//   - n ≥ 0 (else ErrNegativeNodeCount); n == 0 yields an empty graph.
//   - width, height, radius > 0 (else ErrNonPositiveDimension).
//   - cfg.rng must be non-nil for n > 0 (else ErrNeedRandSource).
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Stable position draw order: i asc, x before y.
//   - Stable pair-scan order: i asc, then j asc with j > i.
//   - Per-node neighbor lists come out in ascending ID order (smaller
//     partners are appended during their own outer iteration, larger
//     partners during i's), so expansion order is reproducible.
//
// Complexity:
//   - Time: O(n) draws + O(n²) distance checks.
//   - Space: O(n + E) for the resulting graph.

package proximity

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Build constructs a random geometric graph of n nodes over a
// width×height world centered on the origin: x is uniform in
// [-width/2, width/2], y in [-height/2, height/2], and nodes i, j are
// adjacent iff the Euclidean distance between them is strictly below
// radius. An RNG must be supplied via WithSeed or WithRand.
func Build(n int, width, height, radius float64, opts ...Option) (*Graph, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodBuild, n, ErrNegativeNodeCount)
	}
	if width <= 0 || height <= 0 || radius <= 0 {
		return nil, fmt.Errorf("%s: width=%g height=%g radius=%g: %w",
			methodBuild, width, height, radius, ErrNonPositiveDimension)
	}

	// 2) Resolve options; position sampling needs a real RNG.
	cfg := newBuildConfig(opts...)
	if cfg.rng == nil && n > 0 {
		return nil, fmt.Errorf("%s: %w", methodBuild, ErrNeedRandSource)
	}

	// 3) Draw positions in ID order, uniform over the centered rectangle.
	positions := make([]r2.Vec, n)
	for i := 0; i < n; i++ {
		positions[i] = r2.Vec{
			X: (cfg.rng.Float64() - 0.5) * width,
			Y: (cfg.rng.Float64() - 0.5) * height,
		}
	}

	// 4) Derive adjacency from the sampled positions.
	return &Graph{positions: positions, adjacency: connect(positions, radius)}, nil
}

// FromPositions constructs a proximity graph over caller-supplied node
// positions: node i sits at positions[i], and nodes are adjacent iff
// their Euclidean distance is strictly below radius. The positions
// slice is copied. Useful for deterministic fixtures and for callers
// that lay nodes out themselves.
// Returns ErrNonPositiveDimension if radius is not > 0.
// Complexity: O(n²) distance checks.
func FromPositions(positions []r2.Vec, radius float64) (*Graph, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("FromPositions: radius=%g: %w", radius, ErrNonPositiveDimension)
	}
	pts := make([]r2.Vec, len(positions))
	copy(pts, positions)

	return &Graph{positions: pts, adjacency: connect(pts, radius)}, nil
}

// connect runs the all-pairs scan over unordered pairs {i,j} with i<j,
// recording both directions so adjacency is symmetric by construction
// and each per-node neighbor list comes out in ascending ID order.
func connect(positions []r2.Vec, radius float64) [][]NodeID {
	n := len(positions)
	adjacency := make([][]NodeID, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r2.Norm(r2.Sub(positions[i], positions[j])) < radius {
				adjacency[i] = append(adjacency[i], NodeID(j))
				adjacency[j] = append(adjacency[j], NodeID(i))
			}
		}
	}

	return adjacency
}
