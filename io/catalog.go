package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/amrtile/particle"
)

// CatalogColumns returns the number of columns a catalog must have to fill
// tile: three positions, then every real component, then every integer
// component, ordered the same way as particle.TileData component indices.
func CatalogColumns(tile *particle.Tile) (nReal, nInt, total int) {
	l := tile.Layout()
	soa := tile.StructOfArrays()
	nReal = l.NStructReal + soa.NumRealComps()
	nInt = l.NStructInt + soa.NumIntComps()
	return nReal, nInt, particle.SpaceDim + nReal + nInt
}

// ReadCatalog reads a whitespace-separated text catalog and adds every row
// to tile as a real particle. It returns the number of particles added.
// Integer columns are truncated towards zero.
func ReadCatalog(fname string, tile *particle.Tile) (int, error) {
	nReal, nInt, total := CatalogColumns(tile)
	colIdxs := make([]int, total)
	for i := range colIdxs { colIdxs[i] = i }

	cols, err := table.ReadTable(fname, colIdxs, nil)
	if err != nil {
		return 0, err
	} else if len(cols) != total {
		return 0, fmt.Errorf(
			"Catalog '%s' gave %d columns, but %d are needed.",
			fname, len(cols), total,
		)
	}

	n := len(cols[0])
	for i := 0; i < n; i++ {
		p := particle.Layout{NReal: nReal, NInt: nInt}.New()
		for dim := 0; dim < particle.SpaceDim; dim++ {
			p.Pos[dim] = cols[dim][i]
		}
		for k := 0; k < nReal; k++ {
			p.RData[k] = cols[particle.SpaceDim+k][i]
		}
		for k := 0; k < nInt; k++ {
			p.IData[k] = int32(cols[particle.SpaceDim+nReal+k][i])
		}

		if err := tile.PushBack(p); err != nil {
			return i, err
		}
	}

	return n, nil
}
