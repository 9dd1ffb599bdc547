package proximity_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/wavefront/proximity"
)

// TestGraphInvariants uses property-based testing to verify structural
// invariants that must hold for every built graph, whatever the seed.
func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	build := func(n int, seed int64) *proximity.Graph {
		g, err := proximity.Build(n, 400, 400, 90, proximity.WithSeed(seed))
		if err != nil {
			t.Fatalf("Build(n=%d, seed=%d): %v", n, seed, err)
		}
		return g
	}

	// Property 1: adjacency is symmetric — j in N(i) iff i in N(j).
	properties.Property("adjacency is symmetric", prop.ForAll(
		func(n int, seed int64) bool {
			g := build(n, seed)
			for i := 0; i < g.Order(); i++ {
				nbrs, _ := g.Neighbors(proximity.NodeID(i))
				for _, j := range nbrs {
					back, _ := g.Neighbors(j)
					found := false
					for _, k := range back {
						if k == proximity.NodeID(i) {
							found = true
							break
						}
					}
					if !found {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(0, 80),
		gen.Int64(),
	))

	// Property 2: no node lists itself as a neighbor.
	properties.Property("no self-loops", prop.ForAll(
		func(n int, seed int64) bool {
			g := build(n, seed)
			for i := 0; i < g.Order(); i++ {
				nbrs, _ := g.Neighbors(proximity.NodeID(i))
				for _, j := range nbrs {
					if j == proximity.NodeID(i) {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(0, 80),
		gen.Int64(),
	))

	// Property 3: Edges() carries each undirected edge exactly once, so
	// its length equals half the degree sum.
	properties.Property("edge list matches degree sum", prop.ForAll(
		func(n int, seed int64) bool {
			g := build(n, seed)
			degreeSum := 0
			for i := 0; i < g.Order(); i++ {
				d, _ := g.Degree(proximity.NodeID(i))
				degreeSum += d
			}
			return len(g.Edges())*2 == degreeSum
		},
		gen.IntRange(0, 80),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
