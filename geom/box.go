package geom

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Box is a closed range of cells in index space. Lo is the small end of the
// range and Hi is the big end. A Box with Hi[i] < Lo[i] along any dimension
// is empty.
type Box struct {
	Lo, Hi IntVect
}

// NewBox returns the Box spanning the cells [lo, hi].
func NewBox(lo, hi IntVect) Box { return Box{lo, hi} }

func (b Box) SmallEnd() IntVect { return b.Lo }
func (b Box) BigEnd() IntVect { return b.Hi }

// Length returns the number of cells along dimension dim.
func (b Box) Length(dim int) int { return b.Hi[dim] - b.Lo[dim] + 1 }

// Lengths returns the number of cells along every dimension.
func (b Box) Lengths() IntVect {
	return b.Hi.Sub(b.Lo).Add(UniformIntVect(1))
}

// Ok returns true if the Box contains at least one cell.
func (b Box) Ok() bool {
	return b.Hi.Add(UniformIntVect(1)).AllGT(b.Lo)
}

// NumPts returns the number of cells in the Box.
func (b Box) NumPts() int {
	if !b.Ok() { return 0 }
	n := 1
	for i := 0; i < D; i++ { n *= b.Length(i) }
	return n
}

// Contains returns true if the given cell is inside the Box.
func (b Box) Contains(iv IntVect) bool {
	for i := 0; i < D; i++ {
		if iv[i] < b.Lo[i] || iv[i] > b.Hi[i] { return false }
	}
	return true
}

// Index returns the x-major linear index of a cell within the Box. The
// cell must be contained in the Box.
func (b Box) Index(iv IntVect) int {
	length, area := b.Length(0), b.Length(0)*b.Length(1)
	return (iv[0] - b.Lo[0]) + (iv[1]-b.Lo[1])*length +
		(iv[2]-b.Lo[2])*area
}

// Coarsen returns the Box covering the same region at a resolution which is
// lower by the given ratio. Both corners are divided with floor division, so
// cell -1 coarsens to cell -1 for any ratio.
func (b Box) Coarsen(ratio IntVect) Box {
	for i := 0; i < D; i++ {
		b.Lo[i] = floorDiv(b.Lo[i], ratio[i])
		b.Hi[i] = floorDiv(b.Hi[i], ratio[i])
	}
	return b
}

// Refine returns the Box covering the same region at a resolution which is
// higher by the given ratio.
func (b Box) Refine(ratio IntVect) Box {
	for i := 0; i < D; i++ {
		b.Lo[i] *= ratio[i]
		b.Hi[i] = (b.Hi[i]+1)*ratio[i] - 1
	}
	return b
}

// Grow returns the Box extended by n cells on both sides of every
// dimension. Negative n shrinks the Box.
func (b Box) Grow(n int) Box {
	for i := 0; i < D; i++ { b = b.GrowDim(i, n) }
	return b
}

// GrowDim returns the Box extended by n cells on both sides of dimension dim.
func (b Box) GrowDim(dim, n int) Box {
	b.Lo[dim] -= n
	b.Hi[dim] += n
	return b
}

func (b Box) String() string {
	return fmt.Sprintf("[%v, %v]", b.Lo, b.Hi)
}

// RealBox is a rectangular region of physical space.
type RealBox struct {
	Lo, Hi [D]float64
}

// NewRealBox returns the RealBox with corners lo and hi.
func NewRealBox(lo, hi [D]float64) RealBox { return RealBox{lo, hi} }

// RealBoxFromBounds returns a RealBox from its six bounding coordinates.
func RealBoxFromBounds(xlo, ylo, zlo, xhi, yhi, zhi float64) RealBox {
	return RealBox{[D]float64{xlo, ylo, zlo}, [D]float64{xhi, yhi, zhi}}
}

// Length returns the width of the RealBox along dimension dim.
func (rb RealBox) Length(dim int) float64 { return rb.Hi[dim] - rb.Lo[dim] }

func (rb RealBox) Lengths() [D]float64 {
	out := [D]float64{}
	for i := range out { out[i] = rb.Length(i) }
	return out
}

func (rb RealBox) Volume() float64 {
	lengths := rb.Lengths()
	return floats.Prod(lengths[:])
}

// Ok returns true if the RealBox has positive width along every dimension.
func (rb RealBox) Ok() bool {
	for i := 0; i < D; i++ {
		if !(rb.Hi[i] > rb.Lo[i]) { return false }
	}
	return true
}

// Contains returns true if x lies within the RealBox grown by eps on every
// side.
func (rb RealBox) Contains(x [D]float64, eps float64) bool {
	for i := 0; i < D; i++ {
		if x[i] < rb.Lo[i]-eps || x[i] > rb.Hi[i]+eps { return false }
	}
	return true
}

func (rb RealBox) String() string {
	return fmt.Sprintf("[(%g,%g,%g), (%g,%g,%g)]",
		rb.Lo[0], rb.Lo[1], rb.Lo[2], rb.Hi[0], rb.Hi[1], rb.Hi[2])
}
