package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCaveConnectivity(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := GenerateCave(41, 31, seed, 0.45)
		require.NoError(t, err)

		open := g.PathCount()
		require.Positive(t, open)
		visited := reachableFrom(g, firstPathCell(t, g))
		assert.Equal(t, open, visited, "seed=%d: disconnected pocket survived", seed)
	}
}

func TestGenerateCaveCornersOpen(t *testing.T) {
	g, err := GenerateCave(31, 21, 9, 0.45)
	require.NoError(t, err)
	assert.Equal(t, CellPath, g.At(1, 1))
	assert.Equal(t, CellPath, g.At(g.Cols()-2, g.Rows()-2))
}

func TestGenerateCaveBorderStaysSolid(t *testing.T) {
	g, err := GenerateCave(25, 17, 4, 0.4)
	require.NoError(t, err)
	for x := 0; x < g.Cols(); x++ {
		assert.Equal(t, CellWall, g.At(x, 0))
		assert.Equal(t, CellWall, g.At(x, g.Rows()-1))
	}
	for y := 0; y < g.Rows(); y++ {
		assert.Equal(t, CellWall, g.At(0, y))
		assert.Equal(t, CellWall, g.At(g.Cols()-1, y))
	}
}

func TestGenerateCaveNormalizesDimensions(t *testing.T) {
	g, err := GenerateCave(20, 14, 1, 0.45)
	require.NoError(t, err)
	assert.Equal(t, 19, g.Cols())
	assert.Equal(t, 13, g.Rows())
}
