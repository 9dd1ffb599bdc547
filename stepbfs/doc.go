// Package stepbfs provides an incremental breadth-first search engine
// over a proximity.Graph: one bounded unit of BFS work per Step call,
// designed to be driven once per rendering frame by a visualization loop.
//
// What
//
//   - Engine owns the graph, the (source, target) endpoint pair, and the
//     BFS working set: a strict-FIFO frontier, a visited set, and a
//     first-writer-wins predecessor map, all as dense arrays indexed by
//     NodeID (no hashed containers).
//   - Retarget(source, target) resets the working set and starts a new
//     search; Step() advances it by exactly one dequeue; Snapshot()
//     returns a deep-copied read-only view for rendering.
//   - The engine is a two-state machine: PhaseSearching while frontier
//     work remains, PhaseIdle once a path is reconstructed or the
//     frontier drains without reaching the target.
//
// Why
//
//   - Running BFS to completion inside a single frame defeats the point
//     of a discovery visualization. Bounding each call to one dequeue
//     (plus at most one node's neighbor scan) keeps per-frame work O(1)
//     amortized and lets the caller animate the expanding wavefront.
//
// Guarantees
//
//   - Strict FIFO frontier and first-writer-wins predecessors, so the
//     first dequeue of the target yields a globally shortest path.
//   - visited only grows between Retarget calls; predecessor entries are
//     written at most once per search run.
//   - Step does no work when Idle; Retarget discards any in-flight
//     search unconditionally and leaves prior state untouched on error.
//
// Concurrency
//
//	None. The engine is single-threaded and cooperatively stepped; the
//	driving loop owns it exclusively and serializes all calls. No
//	operation blocks and no internal locking exists.
//
// Usage
//
//	eng, err := stepbfs.New(g)
//	if err != nil { ... }
//	if err = eng.Retarget(3, 42); err != nil {
//	    // ErrNodeOutOfRange or ErrEmptyGraph; prior state is intact
//	}
//	for eng.Phase() == stepbfs.PhaseSearching {
//	    eng.Step() // one per frame
//	    render(eng.Snapshot())
//	}
//
// Errors
//
//   - ErrGraphNil        if New receives a nil graph.
//   - ErrEmptyGraph      if Retarget is called on a zero-node graph.
//   - ErrNodeOutOfRange  if an endpoint lies outside [0, n).
package stepbfs
