// Package proximity builds random geometric graphs: n nodes scattered
// uniformly over a 2D world rectangle, with an undirected edge between
// every pair of nodes closer than a proximity radius.
//
// What
//
//   - Build(n, width, height, radius, opts...) samples node positions and
//     derives the adjacency relation in one shot; FromPositions does the
//     same over caller-supplied layouts (deterministic fixtures).
//   - Node IDs are dense integers in [0, n); positions are r2.Vec values
//     owned by the Graph and immutable after construction.
//   - Adjacency is symmetric by construction (the distance predicate is
//     symmetric), contains no self-loops, and lists each node's neighbors
//     in ascending ID order.
//
// Why
//
//   - Proximity graphs are the natural input for step-wise path-finding
//     visualizations: local connectivity, isolated nodes, and multiple
//     disconnected clusters all arise organically from the geometry.
//
// Determinism
//
//	Construction is stochastic, so an RNG must be supplied via WithSeed
//	or WithRand; Build fails with ErrNeedRandSource otherwise. For a
//	fixed seed the resulting graph (positions and edge set) is fully
//	reproducible: positions are drawn in ID order and pairs are scanned
//	in a fixed (i asc, j>i asc) order.
//
// Complexity
//
//   - Time:   O(n) position draws + O(n²) pair distance checks.
//     The all-pairs scan is an accepted cost at the intended scale of a
//     few hundred nodes; a spatial index would cut it but is not needed.
//   - Memory: O(n + E) for positions and adjacency lists.
//
// Usage
//
//	g, err := proximity.Build(250, 1000, 1000, 100, proximity.WithSeed(42))
//	if err != nil {
//	    // ErrNegativeNodeCount, ErrNonPositiveDimension, or ErrNeedRandSource
//	}
//	nbrs, _ := g.Neighbors(0)
//
// Errors
//
//   - ErrNegativeNodeCount    if n < 0.
//   - ErrNonPositiveDimension if width, height, or radius is not > 0.
//   - ErrNeedRandSource       if n > 0 and no RNG was supplied.
//   - ErrNodeOutOfRange       from accessors given an ID outside [0, n).
package proximity
