// SPDX-License-Identifier: MIT
// Package: wavefront/stepbfs
//
// engine.go — the incremental BFS engine: construction, retargeting,
// the per-frame Step function, and shortest-path reconstruction.

package stepbfs

import (
	"fmt"

	"github.com/katalvlaran/wavefront/proximity"
)

// Engine performs breadth-first search over a fixed proximity.Graph in
// bounded increments. Construct with New, point with Retarget, advance
// with Step, observe with Snapshot. Not safe for concurrent use: the
// driving loop owns the engine exclusively.
type Engine struct {
	graph *proximity.Graph

	source, target proximity.NodeID

	// BFS working set, dense arrays indexed by NodeID.
	frontier    []proximity.NodeID // strict FIFO, front at index 0
	visited     []bool
	predecessor []proximity.NodeID // proximity.NoNode = no entry

	path  []proximity.NodeID
	phase Phase
}

// New creates an engine over g. For graphs with at least two nodes the
// endpoints default to 0 and 1 with a search already pending, matching
// a fresh visualization session before any user selection; a one-node
// graph targets itself; an empty graph yields an idle engine.
// Returns ErrGraphNil if g is nil.
func New(g *proximity.Graph) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	e := &Engine{graph: g, phase: PhaseIdle}
	switch n := g.Order(); {
	case n >= 2:
		_ = e.Retarget(0, 1) // endpoints 0,1 are in range by the case guard
	case n == 1:
		_ = e.Retarget(0, 0)
	}

	return e, nil
}

// Graph returns the graph the engine searches over.
func (e *Engine) Graph() *proximity.Graph { return e.graph }

// Source returns the current search source.
func (e *Engine) Source() proximity.NodeID { return e.source }

// Target returns the current search target.
func (e *Engine) Target() proximity.NodeID { return e.target }

// Phase returns the engine's current state tag.
func (e *Engine) Phase() Phase { return e.phase }

// Retarget points the engine at a new (source, target) pair and starts a
// fresh search, discarding any in-progress one unconditionally: visited,
// predecessor, and path are cleared and the frontier is reseeded with
// exactly source. The degenerate source == target case resolves
// immediately to PhaseIdle with the single-node path [source].
// Returns ErrEmptyGraph on a zero-node graph and ErrNodeOutOfRange for
// endpoints outside [0, n); prior state is left untouched on error.
// Idempotent for repeated identical arguments.
// Complexity: O(n) time for the working-set reset.
func (e *Engine) Retarget(source, target proximity.NodeID) error {
	n := e.graph.Order()
	if n == 0 {
		return fmt.Errorf("Retarget(%d,%d): %w", source, target, ErrEmptyGraph)
	}
	if source < 0 || int(source) >= n {
		return fmt.Errorf("Retarget: source=%d order=%d: %w", source, n, ErrNodeOutOfRange)
	}
	if target < 0 || int(target) >= n {
		return fmt.Errorf("Retarget: target=%d order=%d: %w", target, n, ErrNodeOutOfRange)
	}

	e.source, e.target = source, target
	e.visited = make([]bool, n)
	e.predecessor = make([]proximity.NodeID, n)
	for i := range e.predecessor {
		e.predecessor[i] = proximity.NoNode
	}
	e.path = nil
	e.frontier = make([]proximity.NodeID, 0, n)

	if source == target {
		e.path = []proximity.NodeID{source}
		e.phase = PhaseIdle

		return nil
	}

	e.frontier = append(e.frontier, source)
	e.phase = PhaseSearching

	return nil
}

// Step advances the search by exactly one unit of work: one dequeue plus
// at most one node's neighbor scan. It is a no-op when the engine is
// Idle (including on zero-node graphs). The first dequeue of the target
// with a recorded predecessor chain is the terminal step: the path is
// reconstructed, the frontier cleared, and the phase set to Idle.
// Dequeuing an already-visited duplicate consumes the whole call, which
// bounds per-frame work regardless of how often nodes are rediscovered.
// Draining the frontier without reaching the target ends the search
// with an empty path: no path exists between source and target.
func (e *Engine) Step() {
	if e.phase != PhaseSearching || len(e.frontier) == 0 {
		return
	}

	current := e.frontier[0]
	e.frontier = e.frontier[1:]

	// Target check first: with a strict FIFO frontier and
	// first-writer-wins predecessors, the first dequeue of the target
	// lies on a shortest path.
	if current == e.target {
		if path, ok := e.reconstruct(); ok {
			e.path = path
			e.frontier = e.frontier[:0]
			e.phase = PhaseIdle

			return
		}
		// No predecessor chain yet; keep searching.
	}

	if !e.visited[current] {
		e.visited[current] = true
		nbrs, _ := e.graph.Neighbors(current) // current was dequeued, so it is in range
		for _, nbr := range nbrs {
			if e.visited[nbr] {
				continue
			}
			e.frontier = append(e.frontier, nbr)
			if e.predecessor[nbr] == proximity.NoNode {
				// First discovery wins; never overwritten within a run.
				e.predecessor[nbr] = current
			}
		}
	}

	if len(e.frontier) == 0 {
		// Frontier exhausted without reaching the target.
		e.phase = PhaseIdle
	}
}

// reconstruct walks the predecessor chain backward from target to source
// and returns the source→target path. Reports false when the target has
// no predecessor entry yet (and is not the source itself), in which case
// the search must continue.
// Complexity: O(path length).
func (e *Engine) reconstruct() ([]proximity.NodeID, bool) {
	if e.target == e.source {
		return []proximity.NodeID{e.source}, true
	}
	if e.predecessor[e.target] == proximity.NoNode {
		return nil, false
	}

	// Collect target→source; every recorded chain roots at the source.
	path := make([]proximity.NodeID, 0)
	for cur := e.target; ; cur = e.predecessor[cur] {
		path = append(path, cur)
		if cur == e.source {
			break
		}
	}
	// Reverse to source→target order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// Snapshot returns a deep-copied read-only view of the current search
// state for rendering or inspection. Never mutates the engine; the
// returned value is insulated from later engine mutation.
// Complexity: O(n) time and memory.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Source:   e.source,
		Target:   e.target,
		Phase:    e.phase,
		Visited:  make([]bool, len(e.visited)),
		Frontier: make([]proximity.NodeID, len(e.frontier)),
		Path:     make([]proximity.NodeID, len(e.path)),
	}
	copy(s.Visited, e.visited)
	copy(s.Frontier, e.frontier)
	copy(s.Path, e.path)

	return s
}
