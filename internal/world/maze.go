// Maze generation using randomized depth-first carving (recursive
// backtracker). Cells sit on odd coordinates, the walls between them on
// even ones, so both dimensions are forced odd before carving.
package world

import (
	"errors"
	"math/rand"
)

// minDim is the floor applied to each axis after odd-adjustment.
const minDim = 3

// ErrDegenerateGrid is returned when the normalized dimensions cannot host
// a single maze cell.
var ErrDegenerateGrid = errors.New("world: degenerate maze dimensions")

// NormalizeDim forces a requested dimension odd (even inputs are decremented
// by 1) with a floor of 3. Documented behavior, not an error.
func NormalizeDim(n int) int {
	if n%2 == 0 {
		n--
	}
	if n < minDim {
		n = minDim
	}
	return n
}

// Generate carves a maze of roughly the requested size and returns it.
// The actual dimensions are the normalized ones, readable from the grid.
//
// All cells start as wall. A random odd-coordinate cell is opened and
// pushed on a stack; each step peeks the top, enumerates the unvisited
// odd cells two steps away inside the border, opens one (and the wall cell
// between) at random, or backtracks when none remain. The carved path
// cells form a spanning tree of the odd sub-lattice: every open cell is
// reachable from every other.
//
// Post-pass: (1,1) and (cols-2, rows-2) are forced open so colony and food
// can always be seeded near the corners.
func Generate(requestedCols, requestedRows int, rng *rand.Rand) (*Grid, error) {
	cols := NormalizeDim(requestedCols)
	rows := NormalizeDim(requestedRows)
	if cols < minDim || rows < minDim {
		return nil, ErrDegenerateGrid
	}

	g := NewGrid(cols, rows)

	// Random odd start cell.
	start := Coord{
		X: 1 + 2*rng.Intn((cols-1)/2),
		Y: 1 + 2*rng.Intn((rows-1)/2),
	}
	g.Set(start.X, start.Y, CellPath)

	stack := []Coord{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Unvisited cells two steps away, strictly inside the border.
		var next []Coord
		for _, d := range [4]Coord{{0, -2}, {2, 0}, {0, 2}, {-2, 0}} {
			n := Coord{cur.X + d.X, cur.Y + d.Y}
			if n.X < 1 || n.X > cols-2 || n.Y < 1 || n.Y > rows-2 {
				continue
			}
			if g.At(n.X, n.Y) == CellWall {
				next = append(next, n)
			}
		}

		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		chosen := next[rng.Intn(len(next))]
		// Carve the wall between current and chosen, then the cell itself.
		g.Set((cur.X+chosen.X)/2, (cur.Y+chosen.Y)/2, CellPath)
		g.Set(chosen.X, chosen.Y, CellPath)
		stack = append(stack, chosen)
	}

	g.Set(1, 1, CellPath)
	g.Set(cols-2, rows-2, CellPath)

	return g, nil
}
