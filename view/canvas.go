// SPDX-License-Identifier: MIT
// Package: wavefront/view
//
// canvas.go — projection between world coordinates and terminal cells,
// plus edge rasterization and pointer hit-testing.

package view

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/wavefront/proximity"
)

// Canvas maps the engine's world rectangle (origin-centered, y up) onto
// a Cols×Rows terminal cell grid (origin top-left, y down).
type Canvas struct {
	Cols, Rows     int
	WorldW, WorldH float64
}

// Cell projects a world position onto the nearest cell, clamped to the
// grid. Complexity: O(1).
func (c Canvas) Cell(p r2.Vec) (col, row int) {
	col = int(math.Round((p.X/c.WorldW + 0.5) * float64(c.Cols-1)))
	row = int(math.Round((0.5 - p.Y/c.WorldH) * float64(c.Rows-1)))

	return clamp(col, 0, c.Cols-1), clamp(row, 0, c.Rows-1)
}

// World is the inverse projection: the world position at a cell's
// center. Used to hit-test mouse clicks. Complexity: O(1).
func (c Canvas) World(col, row int) r2.Vec {
	return r2.Vec{
		X: (float64(col)/float64(c.Cols-1) - 0.5) * c.WorldW,
		Y: (0.5 - float64(row)/float64(c.Rows-1)) * c.WorldH,
	}
}

// Line rasterizes the segment between two world positions with
// Bresenham's algorithm and returns the covered (col, row) cells,
// endpoints included. Complexity: O(max(|Δcol|, |Δrow|)).
func (c Canvas) Line(a, b r2.Vec) [][2]int {
	x0, y0 := c.Cell(a)
	x1, y1 := c.Cell(b)

	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	cells := make([][2]int, 0, dx-dy+1)
	for {
		cells = append(cells, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}

	return cells
}

// Nearest returns the node closest to the world position p, scanning all
// node positions the way the original pointer hit-test did. Reports
// false only for an empty graph. Complexity: O(n).
func Nearest(g *proximity.Graph, p r2.Vec) (proximity.NodeID, bool) {
	best, bestDist := proximity.NoNode, math.Inf(1)
	for i := 0; i < g.Order(); i++ {
		pos, _ := g.Position(proximity.NodeID(i))
		if d := r2.Norm(r2.Sub(pos, p)); d < bestDist {
			best, bestDist = proximity.NodeID(i), d
		}
	}

	return best, best != proximity.NoNode
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
