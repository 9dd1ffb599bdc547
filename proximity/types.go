// SPDX-License-Identifier: MIT
// Package: wavefront/proximity
//
// types.go — the Graph container and its read-only accessors.
//
// Design:
//   • Node IDs are dense ints in [0, n); positions and adjacency live in
//     plain slices indexed by ID (arena layout, no hashed containers).
//   • The Graph is immutable once built: accessors either copy or hand
//     out slices documented as read-only.

package proximity

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// NodeID is a dense integer identifier for a graph node, valid in
// [0, Order()). IDs are assigned at build time and never change.
type NodeID int

// Edge is an undirected edge between two nodes, normalized so U < V.
// Produced by Graph.Edges for rendering and inspection.
type Edge struct {
	U, V NodeID
}

// Graph is an immutable random geometric graph: one position per node
// and a symmetric, loop-free adjacency list per node.
// Build is the only constructor; the zero value is an empty graph.
type Graph struct {
	positions []r2.Vec
	adjacency [][]NodeID
}

// Order returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Order() int {
	return len(g.positions)
}

// contains reports whether id falls in the dense ID range.
func (g *Graph) contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.positions)
}

// Position returns the 2D coordinate assigned to id at build time.
// Returns ErrNodeOutOfRange for IDs outside [0, Order()).
// Complexity: O(1).
func (g *Graph) Position(id NodeID) (r2.Vec, error) {
	if !g.contains(id) {
		return r2.Vec{}, fmt.Errorf("Position(%d): order=%d: %w", id, g.Order(), ErrNodeOutOfRange)
	}

	return g.positions[id], nil
}

// Positions returns a copy of all node positions, indexed by NodeID.
// Complexity: O(n) time and memory.
func (g *Graph) Positions() []r2.Vec {
	out := make([]r2.Vec, len(g.positions))
	copy(out, g.positions)

	return out
}

// Neighbors returns id's neighbor list in ascending ID order.
// The returned slice is owned by the Graph and must not be modified;
// callers needing to mutate should copy it first.
// Returns ErrNodeOutOfRange for IDs outside [0, Order()).
// Complexity: O(1).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	if !g.contains(id) {
		return nil, fmt.Errorf("Neighbors(%d): order=%d: %w", id, g.Order(), ErrNodeOutOfRange)
	}

	return g.adjacency[id], nil
}

// Degree returns the number of neighbors of id.
// Returns ErrNodeOutOfRange for IDs outside [0, Order()).
// Complexity: O(1).
func (g *Graph) Degree(id NodeID) (int, error) {
	if !g.contains(id) {
		return 0, fmt.Errorf("Degree(%d): order=%d: %w", id, g.Order(), ErrNodeOutOfRange)
	}

	return len(g.adjacency[id]), nil
}

// Edges returns every undirected edge exactly once, normalized U < V and
// sorted by (U, V). Intended for renderers that draw each segment once.
// Complexity: O(n + E) time and O(E) memory.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0)
	for u, nbrs := range g.adjacency {
		for _, v := range nbrs {
			// Adjacency is symmetric; keep only the U < V orientation.
			if NodeID(u) < v {
				edges = append(edges, Edge{U: NodeID(u), V: v})
			}
		}
	}

	return edges
}
