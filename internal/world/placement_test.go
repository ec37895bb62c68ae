package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceNearTargetAlreadyOpen(t *testing.T) {
	g := NewGrid(7, 7)
	g.Set(3, 3, CellPath)

	got, ok := PlaceNear(g, Coord{3, 3})
	require.True(t, ok)
	assert.Equal(t, Coord{3, 3}, got)
}

func TestPlaceNearFindsNearestRing(t *testing.T) {
	g := NewGrid(9, 9)
	g.Set(4, 2, CellPath) // radius 2 from target
	g.Set(7, 7, CellPath) // radius 3, must lose to the closer cell

	got, ok := PlaceNear(g, Coord{4, 4})
	require.True(t, ok)
	assert.Equal(t, Coord{4, 2}, got)
}

func TestPlaceNearCornerTarget(t *testing.T) {
	g := NewGrid(7, 7)
	g.Set(3, 3, CellPath)

	got, ok := PlaceNear(g, Coord{0, 0})
	require.True(t, ok)
	assert.Equal(t, Coord{3, 3}, got)
}

func TestPlaceNearAllWalls(t *testing.T) {
	g := NewGrid(7, 7)

	_, ok := PlaceNear(g, Coord{3, 3})
	assert.False(t, ok)
}
