package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/amrtile/geom"
	"github.com/phil-mansfield/amrtile/particle"
)

func TestSummarize(t *testing.T) {
	g, err := geom.NewGeometry(
		geom.NewBox(geom.UniformIntVect(0), geom.UniformIntVect(7)),
		geom.RealBoxFromBounds(0, 0, 0, 1, 1, 1),
		geom.Cartesian, [geom.D]bool{true, false, false},
	)
	require.NoError(t, err)

	tile := particle.NewTile(particle.TileLayout{})
	pos := [][3]float64{
		{0.5, 0.5, 0.5},
		{1.25, 0.5, 0.5},
		{0.5, 1.5, 0.5},
		{-0.0625, 0.51, 0.5},
		{0.52, 0.52, 0.52},
	}
	for _, x := range pos {
		p := particle.NewParticle(x[0], x[1], x[2], nil, nil)
		require.NoError(t, tile.PushBack(p))
	}
	require.NoError(t, tile.SetNumNeighbors(1))
	require.NoError(t, tile.Set(5, particle.NewParticle(5, 5, 5, nil, nil)))

	s, err := Summarize(g, tile, geom.DefaultRoundOffCells)
	require.NoError(t, err)
	assert.Equal(t, Summary{Particles: 5, Wrapped: 2, Outside: 1, Cells: 3}, s)

	aos := tile.ArrayOfStructs()
	assert.Equal(t, []float64{0.25, 0.5, 0.5}, aos.Pos(1))
	assert.Equal(t, []float64{0.9375, 0.51, 0.5}, aos.Pos(3))
	assert.Equal(t, []float64{0.5, 1.5, 0.5}, aos.Pos(2))
	assert.Equal(t, []float64{5, 5, 5}, aos.Pos(5))
}

func TestSummarizeUndefined(t *testing.T) {
	tile := particle.NewTile(particle.TileLayout{})
	require.NoError(t, tile.PushBack(particle.NewParticle(0, 0, 0, nil, nil)))

	_, err := Summarize(geom.New(), tile, 0)
	assert.ErrorIs(t, err, geom.ErrNotDefined)
}
