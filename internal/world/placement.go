// Placement — finds an open cell at or near a target for seeding the colony
// and the food source.
package world

// PlaceNear returns the target cell if it is already open, otherwise the
// first open cell found scanning concentric square rings (Chebyshev radius)
// of increasing size around it. Only the perimeter of each ring is scanned;
// the interior was covered at smaller radii. Returns false if no open cell
// exists within max(cols, rows) — a fatal setup condition for the caller.
func PlaceNear(g *Grid, target Coord) (Coord, bool) {
	if g.At(target.X, target.Y) == CellPath {
		return target, true
	}

	maxRadius := g.Cols()
	if g.Rows() > maxRadius {
		maxRadius = g.Rows()
	}

	for r := 1; r <= maxRadius; r++ {
		// Top and bottom edges of the ring.
		for x := target.X - r; x <= target.X+r; x++ {
			if g.At(x, target.Y-r) == CellPath {
				return Coord{x, target.Y - r}, true
			}
			if g.At(x, target.Y+r) == CellPath {
				return Coord{x, target.Y + r}, true
			}
		}
		// Left and right edges, corners already covered.
		for y := target.Y - r + 1; y <= target.Y+r-1; y++ {
			if g.At(target.X-r, y) == CellPath {
				return Coord{target.X - r, y}, true
			}
			if g.At(target.X+r, y) == CellPath {
				return Coord{target.X + r, y}, true
			}
		}
	}

	return Coord{}, false
}
