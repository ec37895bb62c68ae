// Package world provides the wall/path grid the simulation runs on,
// plus the terrain generators that carve it.
package world

import "fmt"

// Cell is the content of a single grid cell.
type Cell uint8

const (
	CellWall Cell = iota
	CellPath
)

// Coord is a discrete grid cell position.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Dist returns the Chebyshev distance between two cells — the ring metric
// used throughout the engine for placement and detection radii.
func Dist(a, b Coord) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Grid holds the static wall/path layout on a flat cell buffer
// (index = y*cols + x).
type Grid struct {
	cols, rows int
	cells      []Cell
}

// NewGrid creates a grid of the given dimensions, all walls.
func NewGrid(cols, rows int) *Grid {
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// InBounds returns true if (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the cell at (x, y). Out-of-range queries return CellWall,
// never wrap or panic — floating movement can transiently probe past the
// border.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellWall
	}
	return g.cells[y*g.cols+x]
}

// Set writes the cell at (x, y). Out-of-range writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.cols+x] = c
}

// PathCount returns the number of open cells.
func (g *Grid) PathCount() int {
	n := 0
	for _, c := range g.cells {
		if c == CellPath {
			n++
		}
	}
	return n
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d, open=%d)", g.cols, g.rows, g.PathCount())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
