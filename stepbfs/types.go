// Package stepbfs declares the engine's state tags, snapshot type, and
// sentinel errors.
package stepbfs

import (
	"errors"

	"github.com/katalvlaran/wavefront/proximity"
)

// Sentinel errors for engine construction and retargeting.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to New.
	ErrGraphNil = errors.New("stepbfs: graph is nil")

	// ErrEmptyGraph is returned when a search is requested on a
	// zero-node graph.
	ErrEmptyGraph = errors.New("stepbfs: graph has no nodes")

	// ErrNodeOutOfRange is returned when an endpoint ID lies outside
	// the graph's dense ID range [0, n).
	ErrNodeOutOfRange = errors.New("stepbfs: node id out of range")
)

// Phase is the engine's coarse state.
type Phase uint8

const (
	// PhaseIdle means no active search: either no search was started,
	// a path was found, or the frontier drained without one.
	PhaseIdle Phase = iota
	// PhaseSearching means frontier work remains; Step advances it.
	PhaseSearching
)

// String implements fmt.Stringer for log and test output.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseSearching:
		return "Searching"
	default:
		return "Unknown"
	}
}

// Snapshot is a deep-copied, read-only view of the engine's state for
// the presentation layer. Mutating a Snapshot never affects the engine,
// and later engine mutation never affects an already-taken Snapshot.
type Snapshot struct {
	// Source and Target are the current endpoint pair.
	Source, Target proximity.NodeID
	// Phase is the engine state at snapshot time.
	Phase Phase
	// Visited is indexed by NodeID; true once a node has been expanded.
	Visited []bool
	// Frontier is the pending FIFO queue, front first. May contain
	// duplicates: a node can be discovered by several neighbors before
	// its first expansion.
	Frontier []proximity.NodeID
	// Path is the source→target shortest path, inclusive; empty unless
	// the search completed successfully.
	Path []proximity.NodeID
}
