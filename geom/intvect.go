/*package geom describes structured index-space grids, their physical
embedding, and the periodic boundary conditions which tie the two together.*/
package geom

import (
	"fmt"
	"math"
)

// D is the number of spatial dimensions.
const D = 3

// IntVect is a point in index space.
type IntVect [D]int

// NewIntVect returns the IntVect (x, y, z).
func NewIntVect(x, y, z int) IntVect { return IntVect{x, y, z} }

// UniformIntVect returns an IntVect with every component set to n.
func UniformIntVect(n int) IntVect { return IntVect{n, n, n} }

// IntVectFromBools converts a set of flags into a 0/1 IntVect.
func IntVectFromBools(flags [D]bool) IntVect {
	iv := IntVect{}
	for i := range flags {
		if flags[i] { iv[i] = 1 }
	}
	return iv
}

func (a IntVect) Add(b IntVect) IntVect {
	for i := range a { a[i] += b[i] }
	return a
}

func (a IntVect) Sub(b IntVect) IntVect {
	for i := range a { a[i] -= b[i] }
	return a
}

// Mul returns the elementwise product of a and b.
func (a IntVect) Mul(b IntVect) IntVect {
	for i := range a { a[i] *= b[i] }
	return a
}

func (a IntVect) Scale(n int) IntVect {
	for i := range a { a[i] *= n }
	return a
}

func (a IntVect) Min(b IntVect) IntVect {
	for i := range a {
		if b[i] < a[i] { a[i] = b[i] }
	}
	return a
}

func (a IntVect) Max(b IntVect) IntVect {
	for i := range a {
		if b[i] > a[i] { a[i] = b[i] }
	}
	return a
}

// AllGT returns true if every component of a is larger than the matching
// component of b.
func (a IntVect) AllGT(b IntVect) bool {
	for i := range a {
		if a[i] <= b[i] { return false }
	}
	return true
}

func (a IntVect) String() string {
	return fmt.Sprintf("(%d,%d,%d)", a[0], a[1], a[2])
}

// floorDiv computes x / y rounded towards negative infinity. y must be
// positive.
func floorDiv(x, y int) int {
	q := x / y
	if x%y != 0 && x < 0 {
		q--
	}
	return q
}

// pMod computes the positive modulo x % y.
func pMod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m < 0 {
		m += y
	}
	if m >= y {
		m = 0
	}
	return m
}
