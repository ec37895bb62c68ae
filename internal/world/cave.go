// Cave generation using layered simplex noise — an open-terrain alternative
// to the maze carver. Noise above the threshold opens a cell; disconnected
// pockets are then joined to the largest open region so the connectivity
// guarantee holds for both generators.
package world

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenerateCave builds an open cavern-style grid. Dimensions are normalized
// the same way as the maze so the two generators are interchangeable.
// threshold in (0, 1) controls how much of the interior opens up; lower
// values give wider caverns.
func GenerateCave(requestedCols, requestedRows int, seed int64, threshold float64) (*Grid, error) {
	cols := NormalizeDim(requestedCols)
	rows := NormalizeDim(requestedRows)
	if cols < minDim || rows < minDim {
		return nil, ErrDegenerateGrid
	}

	noise := opensimplex.NewNormalized(seed)
	g := NewGrid(cols, rows)

	// Border stays solid; interior opens where the noise clears the threshold.
	for y := 1; y < rows-1; y++ {
		for x := 1; x < cols-1; x++ {
			v := octaveNoise(noise, float64(x), float64(y), 3, 0.09, 0.5)
			if v > threshold {
				g.Set(x, y, CellPath)
			}
		}
	}

	// Corner anchors for colony and food, same as the maze post-pass.
	g.Set(1, 1, CellPath)
	g.Set(cols-2, rows-2, CellPath)

	joinPockets(g)

	return g, nil
}

// octaveNoise layers multiple noise frequencies for natural-looking caverns.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// joinPockets carves an L-shaped corridor from every disconnected open
// region to the largest one, leaving a single connected component.
func joinPockets(g *Grid) {
	cols, rows := g.Cols(), g.Rows()
	label := make([]int, cols*rows)

	// Flood-fill component labels over open cells.
	next := 1
	var sizes []int // sizes[i] = cell count of component i+1
	var reps []Coord
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if g.At(x, y) != CellPath || label[y*cols+x] != 0 {
				continue
			}
			size := 0
			queue := []Coord{{x, y}}
			label[y*cols+x] = next
			for len(queue) > 0 {
				c := queue[0]
				queue = queue[1:]
				size++
				for _, d := range [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
					n := Coord{c.X + d.X, c.Y + d.Y}
					if g.At(n.X, n.Y) == CellPath && label[n.Y*cols+n.X] == 0 {
						label[n.Y*cols+n.X] = next
						queue = append(queue, n)
					}
				}
			}
			sizes = append(sizes, size)
			reps = append(reps, Coord{x, y})
			next++
		}
	}

	if len(sizes) <= 1 {
		return
	}

	largest := 0
	for i, s := range sizes {
		if s > sizes[largest] {
			largest = i
		}
	}

	anchor := reps[largest]
	for i, rep := range reps {
		if i == largest {
			continue
		}
		carveCorridor(g, rep, anchor)
	}
}

// carveCorridor opens an L-shaped path between two interior cells:
// horizontal leg first, then vertical.
func carveCorridor(g *Grid, from, to Coord) {
	x, y := from.X, from.Y
	for x != to.X {
		if x < to.X {
			x++
		} else {
			x--
		}
		g.Set(x, y, CellPath)
	}
	for y != to.Y {
		if y < to.Y {
			y++
		} else {
			y--
		}
		g.Set(x, y, CellPath)
	}
}
