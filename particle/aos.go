package particle

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// ArrayOfStructs stores fixed-layout particles contiguously. Positions and
// real components share one flat buffer with a stride of SpaceDim+NReal, and
// integer components share another with a stride of NInt.
type ArrayOfStructs struct {
	layout Layout
	reals  []float64
	ids    []int64
	cpus   []int32
	ints   []int32
}

func newArrayOfStructs(l Layout) ArrayOfStructs {
	return ArrayOfStructs{layout: l}
}

func (aos *ArrayOfStructs) Layout() Layout { return aos.layout }
func (aos *ArrayOfStructs) Len() int { return len(aos.ids) }

func (aos *ArrayOfStructs) realStride() int { return SpaceDim + aos.layout.NReal }

// At returns a copy of particle i. Unlike Tile.Get, it does not check i and
// panics if i is out of range.
func (aos *ArrayOfStructs) At(i int) Particle {
	p := aos.layout.New()
	r := aos.reals[i*aos.realStride() : (i+1)*aos.realStride()]
	copy(p.Pos[:], r[:SpaceDim])
	copy(p.RData, r[SpaceDim:])
	copy(p.IData, aos.IData(i))
	p.ID, p.CPU = aos.ids[i], aos.cpus[i]
	return p
}

// Set overwrites particle i. Only the first NReal and NInt components of p
// are stored. The caller must pass an i in [0, Len()) and a p carrying at
// least NReal reals and NInt ints; Set panics otherwise. Tile.Set checks
// both and returns an error instead.
func (aos *ArrayOfStructs) Set(i int, p Particle) {
	rdata, idata := p.RData[:aos.layout.NReal], p.IData[:aos.layout.NInt]
	r := aos.reals[i*aos.realStride() : (i+1)*aos.realStride()]
	copy(r[:SpaceDim], p.Pos[:])
	copy(r[SpaceDim:], rdata)
	copy(aos.IData(i), idata)
	aos.ids[i], aos.cpus[i] = p.ID, p.CPU
}

// Pos returns the position of particle i. Writes to the returned slice go
// straight to the underlying storage.
func (aos *ArrayOfStructs) Pos(i int) []float64 {
	return aos.reals[i*aos.realStride() : i*aos.realStride()+SpaceDim]
}

// RData returns the real components of particle i, aliased like Pos.
func (aos *ArrayOfStructs) RData(i int) []float64 {
	return aos.reals[i*aos.realStride()+SpaceDim : (i+1)*aos.realStride()]
}

// IData returns the integer components of particle i, aliased like Pos.
func (aos *ArrayOfStructs) IData(i int) []int32 {
	n := aos.layout.NInt
	return aos.ints[i*n : (i+1)*n]
}

func (aos *ArrayOfStructs) resize(n int) {
	aos.reals = resizeSlice(aos.reals, n*aos.realStride())
	aos.ints = resizeSlice(aos.ints, n*aos.layout.NInt)
	aos.ids = resizeSlice(aos.ids, n)
	aos.cpus = resizeSlice(aos.cpus, n)
}

// insert places p in front of particle i, shifting the rest back.
func (aos *ArrayOfStructs) insert(i int, p Particle) {
	aos.reals = slices.Insert(aos.reals, i*aos.realStride(),
		make([]float64, aos.realStride())...)
	aos.ints = slices.Insert(aos.ints, i*aos.layout.NInt,
		make([]int32, aos.layout.NInt)...)
	aos.ids = slices.Insert(aos.ids, i, 0)
	aos.cpus = slices.Insert(aos.cpus, i, 0)
	aos.Set(i, p)
}

// Columns returns the names of the columns of the tabular form of the
// array: x, y, z, rdata_0..., id, cpu, idata_0...
func (aos *ArrayOfStructs) Columns() []string {
	cols := []string{"x", "y", "z"}
	for k := 0; k < aos.layout.NReal; k++ {
		cols = append(cols, fmt.Sprintf("rdata_%d", k))
	}
	cols = append(cols, "id", "cpu")
	for k := 0; k < aos.layout.NInt; k++ {
		cols = append(cols, fmt.Sprintf("idata_%d", k))
	}
	return cols
}

// Row returns particle i as one row of the tabular form, in the order given
// by Columns.
func (aos *ArrayOfStructs) Row(i int) []float64 {
	row := make([]float64, 0, len(aos.Columns()))
	row = append(row, aos.reals[i*aos.realStride():(i+1)*aos.realStride()]...)
	row = append(row, float64(aos.ids[i]), float64(aos.cpus[i]))
	for _, x := range aos.IData(i) {
		row = append(row, float64(x))
	}
	return row
}

// Value returns the named column of particle i.
func (aos *ArrayOfStructs) Value(i int, name string) (float64, error) {
	for col, colName := range aos.Columns() {
		if colName == name {
			return aos.Row(i)[col], nil
		}
	}
	return 0, fmt.Errorf("%w: no column named '%s'", ErrBadComponent, name)
}

// Dense copies the array into an n x len(Columns()) matrix. It returns nil
// for an empty array.
func (aos *ArrayOfStructs) Dense() *mat.Dense {
	n := aos.Len()
	if n == 0 {
		return nil
	}

	cols := len(aos.Columns())
	data := make([]float64, 0, n*cols)
	for i := 0; i < n; i++ {
		data = append(data, aos.Row(i)...)
	}
	return mat.NewDense(n, cols, data)
}
