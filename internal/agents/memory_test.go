package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"antfarm/internal/world"
)

func TestVisitMemoryBound(t *testing.T) {
	m := NewVisitMemory(5)
	for i := 0; i < 20; i++ {
		m.Record(world.Coord{X: i, Y: 0})
	}
	assert.Equal(t, 5, m.Len())

	cells := m.Cells()
	assert.Equal(t, world.Coord{X: 15, Y: 0}, cells[0], "oldest entries trimmed first")
	assert.Equal(t, world.Coord{X: 19, Y: 0}, cells[4])
}

func TestVisitMemoryCollapsesConsecutiveDuplicates(t *testing.T) {
	m := NewVisitMemory(10)
	m.Record(world.Coord{X: 1, Y: 1})
	m.Record(world.Coord{X: 1, Y: 1})
	m.Record(world.Coord{X: 2, Y: 1})
	m.Record(world.Coord{X: 2, Y: 1})
	m.Record(world.Coord{X: 1, Y: 1}) // non-consecutive repeat is allowed

	cells := m.Cells()
	assert.Len(t, cells, 3)
	for i := 1; i < len(cells); i++ {
		assert.NotEqual(t, cells[i-1], cells[i], "consecutive duplicate at %d", i)
	}
}

func TestVisitMemoryContainsExcludeLatest(t *testing.T) {
	m := NewVisitMemory(10)
	m.Record(world.Coord{X: 1, Y: 1})
	m.Record(world.Coord{X: 2, Y: 2})

	assert.True(t, m.Contains(world.Coord{X: 1, Y: 1}, true))
	assert.False(t, m.Contains(world.Coord{X: 2, Y: 2}, true),
		"most recent entry must not block probes when excluded")
	assert.True(t, m.Contains(world.Coord{X: 2, Y: 2}, false))
	assert.False(t, m.Contains(world.Coord{X: 9, Y: 9}, false))
}
