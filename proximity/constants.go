// Package proximity defines shared constants used by the graph builder,
// keeping defaults and validation bounds in one place.
package proximity

// methodBuild is the canonical constructor name, used to prefix errors
// with their origin for context.
const methodBuild = "Build"

// NoNode is the sentinel "no such node" value used wherever a NodeID
// slot may be vacant (e.g. predecessor links in search working sets).
const NoNode NodeID = -1

// DefaultNodeCount is the node count used by demos and examples; small
// enough for the O(n²) build scan, dense enough to form visible clusters.
const DefaultNodeCount = 250

// DefaultWorldWidth is the default world rectangle width.
const DefaultWorldWidth = 1000.0

// DefaultWorldHeight is the default world rectangle height.
const DefaultWorldHeight = 1000.0

// DefaultProximityRadius is the default edge threshold: one tenth of the
// default world width, which at DefaultNodeCount yields a mostly-connected
// graph with a few isolated stragglers.
const DefaultProximityRadius = DefaultWorldWidth / 10
