// Visit memory — the bounded FIFO of recently occupied grid cells an ant
// consults to avoid walking its own footsteps in circles.
package agents

import "antfarm/internal/world"

// VisitMemory records the last cells an ant occupied. Consecutive duplicates
// collapse to one entry (an ant loitering inside a cell records it once),
// and the oldest entries fall off past the limit.
type VisitMemory struct {
	cells []world.Coord
	limit int
}

// NewVisitMemory creates a memory holding at most limit cells.
func NewVisitMemory(limit int) *VisitMemory {
	return &VisitMemory{limit: limit}
}

// Record appends a cell unless it equals the most recent entry, then trims
// the oldest entries beyond the limit.
func (m *VisitMemory) Record(c world.Coord) {
	if n := len(m.cells); n > 0 && m.cells[n-1] == c {
		return
	}
	m.cells = append(m.cells, c)
	if len(m.cells) > m.limit {
		m.cells = m.cells[len(m.cells)-m.limit:]
	}
}

// Contains reports whether c is in memory. With excludeLatest the most
// recent entry is skipped — probes may land in the cell the ant just
// recorded without blocking it in place.
func (m *VisitMemory) Contains(c world.Coord, excludeLatest bool) bool {
	n := len(m.cells)
	if excludeLatest {
		n--
	}
	for i := 0; i < n; i++ {
		if m.cells[i] == c {
			return true
		}
	}
	return false
}

// Len returns the number of remembered cells.
func (m *VisitMemory) Len() int { return len(m.cells) }

// Cells returns a copy of the remembered cells, oldest first.
func (m *VisitMemory) Cells() []world.Coord {
	out := make([]world.Coord, len(m.cells))
	copy(out, m.cells)
	return out
}
