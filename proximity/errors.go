// SPDX-License-Identifier: MIT
// Package: wavefront/proximity
//
// errors.go — sentinel errors for the proximity package.
//
// Error policy (matches the rest of wavefront):
//   • Only package-level sentinel variables are exposed.
//   • Callers branch with errors.Is(err, ErrX); never compare strings.
//   • Implementations attach context via fmt.Errorf("...: %w", ErrX).
//   • Build and accessors never panic at runtime; validation panics are
//     confined to option constructors (WithRand(nil) and the like).

package proximity

import "errors"

// ErrNegativeNodeCount indicates Build was asked for a negative number of
// nodes. Zero is valid and yields an empty graph, not an error.
// Usage: if errors.Is(err, ErrNegativeNodeCount) { /* fix n */ }.
var ErrNegativeNodeCount = errors.New("proximity: node count is negative")

// ErrNonPositiveDimension indicates a world dimension or the proximity
// radius is zero or negative; all three must be strictly positive.
// Usage: if errors.Is(err, ErrNonPositiveDimension) { /* fix width/height/radius */ }.
var ErrNonPositiveDimension = errors.New("proximity: dimension must be positive")

// ErrNeedRandSource indicates that Build requires a non-nil RNG
// (WithSeed or WithRand) because position sampling is stochastic.
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("proximity: rng is required")

// ErrNodeOutOfRange indicates an accessor received a node ID outside the
// graph's dense ID range [0, Order()).
// Usage: if errors.Is(err, ErrNodeOutOfRange) { /* validate the ID */ }.
var ErrNodeOutOfRange = errors.New("proximity: node id out of range")
