package particle

import (
	"fmt"
)

// TileData is a lightweight view of a Tile. Component indices run over the
// struct components first and the array components after them, so real
// component k of a particle with NStructReal = 1 is in the ArrayOfStructs for
// k = 0 and in column k-1 of the StructOfArrays otherwise.
//
// A TileData is only valid until the size of its Tile changes. After that,
// every method returns ErrStaleView. The zero value views an empty tile.
type TileData struct {
	Size           int
	NumRuntimeReal int
	NumRuntimeInt  int

	tile *Tile
	gen  uint64
}

// Valid returns true if the view can still be used.
func (td TileData) Valid() bool {
	return td.tile == nil || td.tile.soa.gen == td.gen
}

// RData returns real component comp of particle i.
func (td TileData) RData(i, comp int) (float64, error) {
	if err := td.check(i); err != nil {
		return 0, err
	}
	t := td.tile
	nsr := t.layout.NStructReal
	switch {
	case comp >= 0 && comp < nsr:
		return t.aos.RData(i)[comp], nil
	case comp >= nsr && comp < nsr+t.soa.NumRealComps():
		return t.soa.real[comp-nsr][i], nil
	}
	return 0, td.badComp("real", comp, nsr+t.soa.NumRealComps())
}

// IData returns integer component comp of particle i.
func (td TileData) IData(i, comp int) (int32, error) {
	if err := td.check(i); err != nil {
		return 0, err
	}
	t := td.tile
	nsi := t.layout.NStructInt
	switch {
	case comp >= 0 && comp < nsi:
		return t.aos.IData(i)[comp], nil
	case comp >= nsi && comp < nsi+t.soa.NumIntComps():
		return t.soa.ints[comp-nsi][i], nil
	}
	return 0, td.badComp("int", comp, nsi+t.soa.NumIntComps())
}

// SetRData overwrites real component comp of particle i.
func (td TileData) SetRData(i, comp int, x float64) error {
	if err := td.check(i); err != nil {
		return err
	}
	t := td.tile
	nsr := t.layout.NStructReal
	switch {
	case comp >= 0 && comp < nsr:
		t.aos.RData(i)[comp] = x
	case comp >= nsr && comp < nsr+t.soa.NumRealComps():
		t.soa.real[comp-nsr][i] = x
	default:
		return td.badComp("real", comp, nsr+t.soa.NumRealComps())
	}
	return nil
}

// SetIData overwrites integer component comp of particle i.
func (td TileData) SetIData(i, comp int, x int32) error {
	if err := td.check(i); err != nil {
		return err
	}
	t := td.tile
	nsi := t.layout.NStructInt
	switch {
	case comp >= 0 && comp < nsi:
		t.aos.IData(i)[comp] = x
	case comp >= nsi && comp < nsi+t.soa.NumIntComps():
		t.soa.ints[comp-nsi][i] = x
	default:
		return td.badComp("int", comp, nsi+t.soa.NumIntComps())
	}
	return nil
}

// Particle returns a copy of particle i carrying every struct and array
// component.
func (td TileData) Particle(i int) (Particle, error) {
	if err := td.check(i); err != nil {
		return Particle{}, err
	}
	p := td.tile.aos.At(i)
	rdata, idata := td.tile.soa.get(i)
	p.RData = append(p.RData, rdata...)
	p.IData = append(p.IData, idata...)
	return p, nil
}

// SetParticle overwrites particle i, following the rules of Tile.Set.
func (td TileData) SetParticle(i int, p Particle) error {
	if err := td.check(i); err != nil {
		return err
	}
	return td.tile.Set(i, p)
}

func (td TileData) check(i int) error {
	if !td.Valid() {
		return ErrStaleView
	} else if i < 0 || i >= td.Size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, td.Size)
	}
	return nil
}

func (td TileData) badComp(kind string, comp, n int) error {
	return fmt.Errorf("%w: %s component %d of %d", ErrBadComponent, kind, comp, n)
}
