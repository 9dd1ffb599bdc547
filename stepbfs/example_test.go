package stepbfs_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/wavefront/proximity"
	"github.com/katalvlaran/wavefront/stepbfs"
)

// ExampleEngine_Step walks a whole search over a 5-node line graph,
// one frame-sized increment at a time, the way a rendering loop would.
func ExampleEngine_Step() {
	// Five collinear nodes, 25 apart, radius 30: the path 0-1-2-3-4.
	g, err := proximity.FromPositions(
		[]r2.Vec{{X: 0}, {X: 25}, {X: 50}, {X: 75}, {X: 100}}, 30)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	eng, err := stepbfs.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = eng.Retarget(0, 4); err != nil {
		fmt.Println("error:", err)
		return
	}

	steps := 0
	for eng.Phase() == stepbfs.PhaseSearching {
		eng.Step()
		steps++
	}

	s := eng.Snapshot()
	fmt.Println("steps:", steps)
	fmt.Println("path:", s.Path)
	fmt.Println("phase:", s.Phase)
	// Output:
	// steps: 5
	// path: [0 1 2 3 4]
	// phase: Idle
}

// ExampleEngine_Retarget shows the degenerate single-endpoint search
// resolving immediately, with no Step calls needed.
func ExampleEngine_Retarget() {
	g, err := proximity.FromPositions(
		[]r2.Vec{{X: 0}, {X: 25}, {X: 50}}, 30)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	eng, _ := stepbfs.New(g)
	_ = eng.Retarget(1, 1)
	s := eng.Snapshot()
	fmt.Println(s.Phase, s.Path)
	// Output:
	// Idle [1]
}
