package particle

import (
	"fmt"
)

// TileLayout describes the components of the particles in a Tile. The
// struct components live with each particle in the ArrayOfStructs and the
// array components each get their own column in the StructOfArrays.
type TileLayout struct {
	NStructReal, NStructInt int
	NArrayReal, NArrayInt   int
}

// StructLayout returns the layout of the particles in the ArrayOfStructs.
func (l TileLayout) StructLayout() Layout {
	return Layout{l.NStructReal, l.NStructInt}
}

// SuperLayout returns the layout of a Particle which carries both the
// struct and the array components.
func (l TileLayout) SuperLayout() Layout {
	return Layout{l.NStructReal + l.NArrayReal, l.NStructInt + l.NArrayInt}
}

// Tile holds the particles of one spatial tile. Real particles occupy the
// indices [0, NumRealParticles()) and neighbor particles, which are copies of
// particles owned by other tiles, occupy the indices after them. Every
// operation on whole particles keeps this ordering and keeps every column of
// the StructOfArrays the same length as the ArrayOfStructs.
//
// The PushBackReal and PushBackInt families append to single columns without
// touching the ArrayOfStructs, so they can leave columns longer than Size().
// Entries past Size() are pending: each PushBack of a struct-only particle
// takes the first pending entry of every column as that particle's array
// component, and columns with nothing pending get a zero. A PushBack which
// carries array components uses them and leaves pending entries queued.
// Resize and SetNumNeighbors discard whatever is still pending.
type Tile struct {
	layout       TileLayout
	aos          ArrayOfStructs
	soa          StructOfArrays
	numNeighbors int
}

// NewTile returns an empty Tile.
func NewTile(l TileLayout) *Tile {
	return &Tile{
		layout: l,
		aos:    newArrayOfStructs(l.StructLayout()),
		soa:    newStructOfArrays(l.NArrayReal, l.NArrayInt),
	}
}

func (t *Tile) Layout() TileLayout { return t.layout }

func (t *Tile) Empty() bool { return t.Size() == 0 }

// Size returns the total number of particles, real and neighbor.
func (t *Tile) Size() int { return t.aos.Len() }

func (t *Tile) NumParticles() int { return t.NumRealParticles() }
func (t *Tile) NumRealParticles() int { return t.Size() - t.numNeighbors }

func (t *Tile) NumNeighbors() int { return t.numNeighbors }
func (t *Tile) NumNeighborParticles() int { return t.numNeighbors }

func (t *Tile) NumTotalParticles() int {
	return t.NumRealParticles() + t.NumNeighborParticles()
}

func (t *Tile) NumRuntimeReal() int { return t.soa.NumRuntimeReal() }
func (t *Tile) NumRuntimeInt() int { return t.soa.NumRuntimeInt() }

func (t *Tile) ArrayOfStructs() *ArrayOfStructs { return &t.aos }
func (t *Tile) StructOfArrays() *StructOfArrays { return &t.soa }

// SetNumNeighbors sets the number of neighbor particles to n. Real particles
// are kept and the neighbor region is truncated or zero-extended.
func (t *Tile) SetNumNeighbors(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d neighbors", ErrNegativeSize, n)
	}
	size := t.NumRealParticles() + n
	t.numNeighbors = n
	t.resize(size)
	return nil
}

// Resize sets the total number of particles to n. The neighbor count is
// kept, unless n is smaller than it, in which case every remaining particle
// becomes a neighbor. The real particle count takes up the difference.
func (t *Tile) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d particles", ErrNegativeSize, n)
	}
	if t.numNeighbors > n {
		t.numNeighbors = n
	}
	t.resize(n)
	return nil
}

func (t *Tile) resize(n int) {
	t.aos.resize(n)
	t.soa.resize(n)
}

// DefineRuntime adds nReal real and nInt integer columns to the
// StructOfArrays. The new columns are zeroed.
func (t *Tile) DefineRuntime(nReal, nInt int) error {
	if nReal < 0 || nInt < 0 {
		return fmt.Errorf("%w: %d runtime reals, %d runtime ints",
			ErrNegativeSize, nReal, nInt)
	}
	t.soa.addRuntime(nReal, nInt, t.Size())
	return nil
}

// PushBack adds p as the last real particle, in front of any neighbors. p
// may either carry the struct components only, in which case its array
// components come from pending column pushes or are zeroed, or carry every
// struct and array component.
func (t *Tile) PushBack(p Particle) error {
	rdata, idata, err := t.split(p)
	if err != nil { return err }

	i, size := t.NumRealParticles(), t.Size()
	t.aos.insert(i, p)
	t.soa.insert(i, size, rdata, idata)
	return nil
}

// Get returns a copy of the struct components of particle i.
func (t *Tile) Get(i int) (Particle, error) {
	if err := t.checkIndex(i); err != nil {
		return Particle{}, err
	}
	return t.aos.At(i), nil
}

// Set overwrites particle i. If p carries the array components as well as
// the struct components, the columns are written too; otherwise they are
// left alone.
func (t *Tile) Set(i int, p Particle) error {
	if err := t.checkIndex(i); err != nil {
		return err
	}
	rdata, idata, err := t.split(p)
	if err != nil { return err }

	t.aos.Set(i, p)
	t.soa.set(i, rdata, idata)
	return nil
}

// PushBackReal appends x to real column comp.
func (t *Tile) PushBackReal(comp int, x float64) error {
	return t.PushBackRealN(comp, 1, x)
}

// PushBackRealN appends count copies of x to real column comp.
func (t *Tile) PushBackRealN(comp, count int, x float64) error {
	if comp < 0 || comp >= t.soa.NumRealComps() {
		return fmt.Errorf("%w: real component %d of %d",
			ErrBadComponent, comp, t.soa.NumRealComps())
	} else if count < 0 {
		return fmt.Errorf("%w: count %d", ErrNegativeSize, count)
	}
	for k := 0; k < count; k++ {
		t.soa.real[comp] = append(t.soa.real[comp], x)
	}
	t.soa.bump()
	return nil
}

// PushBackReals appends xs[k] to real column k for every column.
func (t *Tile) PushBackReals(xs []float64) error {
	if len(xs) != t.soa.NumRealComps() {
		return fmt.Errorf("%w: %d values for %d real components",
			ErrLayoutMismatch, len(xs), t.soa.NumRealComps())
	}
	for comp := range xs {
		t.soa.real[comp] = append(t.soa.real[comp], xs[comp])
	}
	t.soa.bump()
	return nil
}

// PushBackInt appends x to integer column comp.
func (t *Tile) PushBackInt(comp int, x int32) error {
	return t.PushBackIntN(comp, 1, x)
}

// PushBackIntN appends count copies of x to integer column comp.
func (t *Tile) PushBackIntN(comp, count int, x int32) error {
	if comp < 0 || comp >= t.soa.NumIntComps() {
		return fmt.Errorf("%w: int component %d of %d",
			ErrBadComponent, comp, t.soa.NumIntComps())
	} else if count < 0 {
		return fmt.Errorf("%w: count %d", ErrNegativeSize, count)
	}
	for k := 0; k < count; k++ {
		t.soa.ints[comp] = append(t.soa.ints[comp], x)
	}
	t.soa.bump()
	return nil
}

// PushBackInts appends xs[k] to integer column k for every column.
func (t *Tile) PushBackInts(xs []int32) error {
	if len(xs) != t.soa.NumIntComps() {
		return fmt.Errorf("%w: %d values for %d int components",
			ErrLayoutMismatch, len(xs), t.soa.NumIntComps())
	}
	for comp := range xs {
		t.soa.ints[comp] = append(t.soa.ints[comp], xs[comp])
	}
	t.soa.bump()
	return nil
}

// TileData returns a view of the Tile which stays valid until its size
// changes.
func (t *Tile) TileData() TileData {
	return TileData{
		Size:           t.Size(),
		NumRuntimeReal: t.NumRuntimeReal(),
		NumRuntimeInt:  t.NumRuntimeInt(),
		tile:           t,
		gen:            t.soa.gen,
	}
}

// split returns the components of p which belong in the StructOfArrays, or
// nil if p only carries struct components.
func (t *Tile) split(p Particle) (rdata []float64, idata []int32, err error) {
	nsr, nsi := t.layout.NStructReal, t.layout.NStructInt
	nr, ni := nsr+t.soa.NumRealComps(), nsi+t.soa.NumIntComps()

	structOnly := len(p.RData) == nsr && len(p.IData) == nsi
	super := len(p.RData) == nr && len(p.IData) == ni
	switch {
	case structOnly:
		return nil, nil, nil
	case super:
		return p.RData[nsr:], p.IData[nsi:], nil
	}

	return nil, nil, fmt.Errorf(
		"%w: particle has %d reals and %d ints, but tile expects %d/%d "+
			"or %d/%d", ErrLayoutMismatch, len(p.RData), len(p.IData),
		nsr, nsi, nr, ni,
	)
}

func (t *Tile) checkIndex(i int) error {
	if i < 0 || i >= t.Size() {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, t.Size())
	}
	return nil
}
