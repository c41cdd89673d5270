package particle

import (
	"gonum.org/v1/gonum/mat"
)

// DType tags the element type of an array view.
type DType int

const (
	Float64 DType = iota
	Int32
)

func (d DType) String() string {
	switch d {
	case Float64: return "float64"
	case Int32: return "int32"
	}
	return "unknown"
}

// RealArray is a borrowed view of one real column of a StructOfArrays.
// Reads and writes go straight to the Tile's storage. A view is only valid
// until the next call that changes the length of any column (Resize,
// PushBack, PushBackReal, and so on); after that, every method except Valid
// panics with ErrStaleView.
type RealArray struct {
	soa  *StructOfArrays
	comp int
	gen  uint64
}

func (a RealArray) Valid() bool { return a.soa != nil && a.soa.gen == a.gen }
func (a RealArray) DType() DType { return Float64 }

func (a RealArray) Len() int { return len(a.Float64s()) }
func (a RealArray) At(i int) float64 { return a.Float64s()[i] }
func (a RealArray) Set(i int, x float64) { a.Float64s()[i] = x }

// Float64s returns the column itself. The slice aliases the Tile's storage
// and follows the same lifetime rules as the view.
func (a RealArray) Float64s() []float64 {
	if !a.Valid() {
		panic(ErrStaleView)
	}
	return a.soa.real[a.comp]
}

// Vec wraps the column in a gonum vector without copying it. It returns nil
// for an empty column.
func (a RealArray) Vec() *mat.VecDense {
	data := a.Float64s()
	if len(data) == 0 {
		return nil
	}
	return mat.NewVecDense(len(data), data)
}

// IntArray is a borrowed view of one integer column of a StructOfArrays. It
// follows the same rules as RealArray.
type IntArray struct {
	soa  *StructOfArrays
	comp int
	gen  uint64
}

func (a IntArray) Valid() bool { return a.soa != nil && a.soa.gen == a.gen }
func (a IntArray) DType() DType { return Int32 }

func (a IntArray) Len() int { return len(a.Int32s()) }
func (a IntArray) At(i int) int32 { return a.Int32s()[i] }
func (a IntArray) Set(i int, x int32) { a.Int32s()[i] = x }

// Int32s returns the column itself, aliased like RealArray.Float64s.
func (a IntArray) Int32s() []int32 {
	if !a.Valid() {
		panic(ErrStaleView)
	}
	return a.soa.ints[a.comp]
}
