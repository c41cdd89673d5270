package main

import (
	"github.com/phil-mansfield/amrtile/geom"
	"github.com/phil-mansfield/amrtile/particle"
)

// Summary describes where the real particles of a tile sit in a Geometry.
type Summary struct {
	// Particles is the number of real particles.
	Particles int
	// Wrapped is the number of particles moved back into the domain across
	// a periodic boundary.
	Wrapped int
	// Outside is the number of particles outside the round-off domain after
	// wrapping.
	Outside int
	// Cells is the number of distinct domain cells holding a particle.
	Cells int
}

// Summarize wraps the real particles of tile into g's domain along periodic
// dimensions, in place, and counts where they end up. Neighbor particles are
// skipped.
func Summarize(
	g *geom.Geometry, tile *particle.Tile, tolCells float64,
) (Summary, error) {
	s := Summary{Particles: tile.NumRealParticles()}
	aos := tile.ArrayOfStructs()
	cells := map[geom.IntVect]bool{}

	for i := 0; i < s.Particles; i++ {
		pos := aos.Pos(i)
		x := [geom.D]float64{pos[0], pos[1], pos[2]}

		x, moved := g.WrapPeriodic(x)
		if moved {
			copy(pos, x[:])
			s.Wrapped++
		}

		outside := false
		for dim := 0; dim < geom.D; dim++ {
			out, err := g.OutsideRoundOffDim(x[dim], dim, tolCells)
			if err != nil { return s, err }
			outside = outside || out
		}
		if outside {
			s.Outside++
			continue
		}

		iv, err := g.CellIndex(x)
		if err != nil { return s, err }
		if g.Domain().Contains(iv) {
			cells[iv] = true
		}
	}

	s.Cells = len(cells)
	return s, nil
}
