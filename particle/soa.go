package particle

import (
	"fmt"
	"slices"
)

// StructOfArrays stores one column per particle component. The first
// columns are fixed by the Tile's layout. Runtime columns follow them.
type StructOfArrays struct {
	nReal, nInt int
	real        [][]float64
	ints        [][]int32
	// gen changes whenever any column changes length.
	gen uint64
}

func newStructOfArrays(nReal, nInt int) StructOfArrays {
	return StructOfArrays{
		nReal: nReal, nInt: nInt,
		real: make([][]float64, nReal),
		ints: make([][]int32, nInt),
	}
}

func (soa *StructOfArrays) NumRealComps() int { return len(soa.real) }
func (soa *StructOfArrays) NumIntComps() int { return len(soa.ints) }
func (soa *StructOfArrays) NumRuntimeReal() int { return len(soa.real) - soa.nReal }
func (soa *StructOfArrays) NumRuntimeInt() int { return len(soa.ints) - soa.nInt }

// RealData returns a view of every real column.
func (soa *StructOfArrays) RealData() []RealArray {
	out := make([]RealArray, len(soa.real))
	for comp := range out {
		out[comp] = RealArray{soa, comp, soa.gen}
	}
	return out
}

// IntData returns a view of every integer column.
func (soa *StructOfArrays) IntData() []IntArray {
	out := make([]IntArray, len(soa.ints))
	for comp := range out {
		out[comp] = IntArray{soa, comp, soa.gen}
	}
	return out
}

// Real returns a view of real column comp.
func (soa *StructOfArrays) Real(comp int) (RealArray, error) {
	if comp < 0 || comp >= len(soa.real) {
		return RealArray{}, fmt.Errorf(
			"%w: real component %d of %d", ErrBadComponent, comp, len(soa.real),
		)
	}
	return RealArray{soa, comp, soa.gen}, nil
}

// Int returns a view of integer column comp.
func (soa *StructOfArrays) Int(comp int) (IntArray, error) {
	if comp < 0 || comp >= len(soa.ints) {
		return IntArray{}, fmt.Errorf(
			"%w: int component %d of %d", ErrBadComponent, comp, len(soa.ints),
		)
	}
	return IntArray{soa, comp, soa.gen}, nil
}

func (soa *StructOfArrays) bump() { soa.gen++ }

// resize sets every column to length n.
func (soa *StructOfArrays) resize(n int) {
	for comp := range soa.real {
		soa.real[comp] = resizeSlice(soa.real[comp], n)
	}
	for comp := range soa.ints {
		soa.ints[comp] = resizeSlice(soa.ints[comp], n)
	}
	soa.bump()
}

// insert places one value at index i of every column, where size is the
// particle count before the insert. Entries at size and beyond are pending
// values left by column pushes. With nil rdata (or idata), a column's first
// pending value is moved to i; columns without one get a zero.
func (soa *StructOfArrays) insert(
	i, size int, rdata []float64, idata []int32,
) {
	for comp := range soa.real {
		soa.real[comp] = insertColumn(soa.real[comp], i, size, rdata, comp)
	}
	for comp := range soa.ints {
		soa.ints[comp] = insertColumn(soa.ints[comp], i, size, idata, comp)
	}
	soa.bump()
}

func insertColumn[T any](col []T, i, size int, data []T, comp int) []T {
	if data == nil && len(col) > size {
		v := col[size]
		col = slices.Delete(col, size, size+1)
		return slices.Insert(col, i, v)
	}

	var v T
	if data != nil { v = data[comp] }
	if len(col) < i {
		col = resizeSlice(col, i)
	}
	return slices.Insert(col, i, v)
}

// set overwrites index i of every column. The columns must have at least
// i+1 entries.
func (soa *StructOfArrays) set(i int, rdata []float64, idata []int32) {
	for comp := range rdata { soa.real[comp][i] = rdata[comp] }
	for comp := range idata { soa.ints[comp][i] = idata[comp] }
}

func (soa *StructOfArrays) get(i int) (rdata []float64, idata []int32) {
	rdata = make([]float64, len(soa.real))
	for comp := range rdata { rdata[comp] = soa.real[comp][i] }
	idata = make([]int32, len(soa.ints))
	for comp := range idata { idata[comp] = soa.ints[comp][i] }
	return rdata, idata
}

func (soa *StructOfArrays) addRuntime(nReal, nInt, n int) {
	for k := 0; k < nReal; k++ {
		soa.real = append(soa.real, make([]float64, n))
	}
	for k := 0; k < nInt; k++ {
		soa.ints = append(soa.ints, make([]int32, n))
	}
	soa.bump()
}
