package view

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/wavefront/proximity"
)

// TestCanvas_CellCorners pins the projection at the world corners and
// center: y grows upward in the world but downward on screen.
func TestCanvas_CellCorners(t *testing.T) {
	c := Canvas{Cols: 81, Rows: 41, WorldW: 1000, WorldH: 1000}

	cases := []struct {
		name     string
		p        r2.Vec
		col, row int
	}{
		{"center", r2.Vec{}, 40, 20},
		{"top-left", r2.Vec{X: -500, Y: 500}, 0, 0},
		{"bottom-right", r2.Vec{X: 500, Y: -500}, 80, 40},
		{"clamped outside", r2.Vec{X: 9000, Y: -9000}, 80, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			col, row := c.Cell(tc.p)
			if col != tc.col || row != tc.row {
				t.Errorf("Cell(%v) = (%d,%d); want (%d,%d)", tc.p, col, row, tc.col, tc.row)
			}
		})
	}
}

// TestCanvas_RoundTrip checks that Cell(World(cell)) is the identity for
// every cell, which the mouse hit-test depends on.
func TestCanvas_RoundTrip(t *testing.T) {
	c := Canvas{Cols: 60, Rows: 24, WorldW: 1000, WorldH: 800}
	for col := 0; col < c.Cols; col++ {
		for row := 0; row < c.Rows; row++ {
			gotCol, gotRow := c.Cell(c.World(col, row))
			if gotCol != col || gotRow != row {
				t.Fatalf("round trip (%d,%d) -> (%d,%d)", col, row, gotCol, gotRow)
			}
		}
	}
}

// TestCanvas_Line checks Bresenham output: endpoints included, cells
// 8-connected, and length bounded by the larger delta.
func TestCanvas_Line(t *testing.T) {
	c := Canvas{Cols: 50, Rows: 50, WorldW: 100, WorldH: 100}
	a := r2.Vec{X: -40, Y: -40}
	b := r2.Vec{X: 35, Y: 20}

	cells := c.Line(a, b)
	if len(cells) == 0 {
		t.Fatal("empty line")
	}
	ac, ar := c.Cell(a)
	bc, br := c.Cell(b)
	if first := cells[0]; first != [2]int{ac, ar} {
		t.Errorf("first cell = %v; want (%d,%d)", first, ac, ar)
	}
	if last := cells[len(cells)-1]; last != [2]int{bc, br} {
		t.Errorf("last cell = %v; want (%d,%d)", last, bc, br)
	}
	for i := 1; i < len(cells); i++ {
		dc := abs(cells[i][0] - cells[i-1][0])
		dr := abs(cells[i][1] - cells[i-1][1])
		if dc > 1 || dr > 1 {
			t.Fatalf("cells %v -> %v not 8-connected", cells[i-1], cells[i])
		}
	}
	if want := max(abs(bc-ac), abs(br-ar)) + 1; len(cells) != want {
		t.Errorf("line length = %d; want %d", len(cells), want)
	}
}

// TestCanvas_LineDegenerate: a zero-length segment is a single cell.
func TestCanvas_LineDegenerate(t *testing.T) {
	c := Canvas{Cols: 10, Rows: 10, WorldW: 100, WorldH: 100}
	p := r2.Vec{X: 12, Y: -7}
	cells := c.Line(p, p)
	if len(cells) != 1 {
		t.Fatalf("degenerate line = %v; want one cell", cells)
	}
}

// TestNearest resolves pointer positions against a known layout.
func TestNearest(t *testing.T) {
	g, err := proximity.FromPositions(
		[]r2.Vec{{X: -100}, {X: 0}, {X: 100}}, 50)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		p    r2.Vec
		want proximity.NodeID
	}{
		{r2.Vec{X: -90, Y: 10}, 0},
		{r2.Vec{X: 20}, 1},
		{r2.Vec{X: 9999}, 2},
	}
	for _, tc := range cases {
		id, ok := Nearest(g, tc.p)
		if !ok || id != tc.want {
			t.Errorf("Nearest(%v) = (%d,%v); want %d", tc.p, id, ok, tc.want)
		}
	}

	empty, err := proximity.FromPositions(nil, 50)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := Nearest(empty, r2.Vec{}); ok {
		t.Error("Nearest on empty graph must report false")
	}
}
