// Package pheromone implements the two-channel scalar trail field that ants
// read to choose a direction and reinforce as they move. Multiplicative
// evaporation ages every trail exponentially regardless of absolute
// concentration, so stale trails fade while heavily reinforced ones persist —
// the feedback that produces shortest-path convergence.
package pheromone

// Channel selects one of the two trail grids.
type Channel uint8

const (
	// ChannelExplore is laid by searching ants walking out from the colony.
	ChannelExplore Channel = iota
	// ChannelReturn is laid by ants carrying food back.
	ChannelReturn
)

// zeroSnap is the floor below which a decayed value snaps to exactly zero,
// preventing unbounded floating decay tails.
const zeroSnap = 0.01

// Field holds the explore and return concentration grids on flat buffers
// (index = y*cols + x). Every value stays within [0, Max].
type Field struct {
	cols, rows int
	max        float64
	explore    []float64
	ret        []float64
}

// New creates a zeroed field with the given dimensions and clamp ceiling.
func New(cols, rows int, max float64) *Field {
	return &Field{
		cols:    cols,
		rows:    rows,
		max:     max,
		explore: make([]float64, cols*rows),
		ret:     make([]float64, cols*rows),
	}
}

// Cols returns the field width in cells.
func (f *Field) Cols() int { return f.cols }

// Rows returns the field height in cells.
func (f *Field) Rows() int { return f.rows }

// Max returns the clamp ceiling for cell values.
func (f *Field) Max() float64 { return f.max }

// Evaporate applies one tick of multiplicative decay to both channels:
// value *= (1 - rate), snapped to zero below the epsilon. Called once per
// tick before any deposits, so decay strictly precedes the tick's deposits.
func (f *Field) Evaporate(rate float64) {
	keep := 1.0 - rate
	decay(f.explore, keep)
	decay(f.ret, keep)
}

func decay(cells []float64, keep float64) {
	for i, v := range cells {
		if v == 0 {
			continue
		}
		v *= keep
		if v < zeroSnap {
			v = 0
		}
		cells[i] = v
	}
}

// Deposit adds amount to the channel at (x, y), clamped to the ceiling.
// Out-of-bounds deposits are ignored. amount must be >= 0; negative
// deposition is not a supported operation.
func (f *Field) Deposit(ch Channel, x, y int, amount float64) {
	if !f.inBounds(x, y) {
		return
	}
	cells := f.cells(ch)
	i := y*f.cols + x
	v := cells[i] + amount
	if v > f.max {
		v = f.max
	}
	cells[i] = v
}

// Level returns the stored concentration at (x, y), or 0 out of bounds.
func (f *Field) Level(ch Channel, x, y int) float64 {
	if !f.inBounds(x, y) {
		return 0
	}
	return f.cells(ch)[y*f.cols+x]
}

// Values returns a copy of one channel's cells for snapshot consumers.
func (f *Field) Values(ch Channel) []float64 {
	src := f.cells(ch)
	out := make([]float64, len(src))
	copy(out, src)
	return out
}

func (f *Field) cells(ch Channel) []float64 {
	if ch == ChannelReturn {
		return f.ret
	}
	return f.explore
}

func (f *Field) inBounds(x, y int) bool {
	return x >= 0 && x < f.cols && y >= 0 && y < f.rows
}
