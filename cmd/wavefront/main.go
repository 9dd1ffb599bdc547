// Command wavefront animates breadth-first shortest-path discovery over
// a random proximity graph in the terminal. Left click picks the search
// source, right click the target; the search advances one step per frame.
package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/wavefront/view"
)

func main() {
	cfg := view.DefaultConfig()
	flag.IntVar(&cfg.NodeCount, "nodes", cfg.NodeCount, "number of graph nodes")
	flag.Float64Var(&cfg.WorldW, "width", cfg.WorldW, "world width")
	flag.Float64Var(&cfg.WorldH, "height", cfg.WorldH, "world height")
	flag.Float64Var(&cfg.ProximityRadius, "radius", cfg.ProximityRadius, "edge distance threshold")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "rng seed (default: current time)")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "search steps per second")
	flag.Parse()

	m, err := view.New(cfg)
	if err != nil {
		log.Fatalf("wavefront: %v", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err = p.Run(); err != nil {
		log.Fatalf("wavefront: %v", err)
	}
}
