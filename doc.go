// Package wavefront animates breadth-first shortest-path discovery over
// random proximity graphs — pick two nodes and watch the search expand
// toward a path between them, one step per rendered frame.
//
// 🚀 What is wavefront?
//
//	A small, focused toolkit split into one engine and one skin:
//		• proximity — random geometric graph builder: n nodes scattered over
//		  a 2D world, edges between all pairs closer than a radius
//		• stepbfs   — incremental BFS engine: strict-FIFO frontier, dense
//		  visited/predecessor arrays, one bounded unit of work per Step
//		• view      — Bubble Tea terminal renderer: mouse-driven endpoint
//		  selection, one engine step per animation frame
//		• cmd/wavefront — the runnable visualization
//
// ✨ Why step-wise?
//
//   - A BFS that finishes inside one frame shows nothing; bounding each
//     call to a single dequeue turns the algorithm itself into the
//     animation.
//   - The engine is plainly observable: Snapshot() hands the renderer a
//     deep-copied view of visited set, frontier, and path every frame.
//   - Deterministic by construction — seeded builds and stable neighbor
//     ordering make every run reproducible.
//
// Quick start:
//
//	go run github.com/katalvlaran/wavefront/cmd/wavefront -nodes 250 -seed 42
//
// Headless use:
//
//	g, _ := proximity.Build(250, 1000, 1000, 100, proximity.WithSeed(42))
//	eng, _ := stepbfs.New(g)
//	_ = eng.Retarget(3, 42)
//	for eng.Phase() == stepbfs.PhaseSearching {
//	    eng.Step()
//	}
//	fmt.Println(eng.Snapshot().Path)
//
// See each package's doc.go for contracts, errors, and complexity notes.
package wavefront
