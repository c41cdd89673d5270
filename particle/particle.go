/*package particle stores the particles of a single spatial tile, split
between a fixed-layout array of structs and a struct of arrays which can grow
new components at runtime.*/
package particle

import (
	"errors"
)

// SpaceDim is the number of position components carried by every Particle.
const SpaceDim = 3

var (
	ErrOutOfRange = errors.New("particle index out of range")
	ErrBadComponent = errors.New("component index out of range")
	// ErrLayoutMismatch is returned when a Particle's component counts match
	// neither the struct layout of a Tile nor its struct+array layout.
	ErrLayoutMismatch = errors.New("particle layout does not match tile")
	// ErrStaleView is returned (or panicked with, for raw array views) when
	// a view is used after its Tile has changed size.
	ErrStaleView = errors.New("view used after its tile changed size")
	ErrNegativeSize = errors.New("negative size")
)

// Layout gives the number of extra real and integer components carried by
// a Particle beyond its position, ID, and CPU.
type Layout struct {
	NReal, NInt int
}

// New returns a zeroed Particle with the given layout.
func (l Layout) New() Particle {
	return Particle{
		RData: make([]float64, l.NReal),
		IData: make([]int32, l.NInt),
	}
}

// Particle is a single particle. Copying a Particle copies the slice
// headers, not the component data; use Clone for a deep copy.
type Particle struct {
	Pos   [SpaceDim]float64
	RData []float64
	ID    int64
	CPU   int32
	IData []int32
}

// NewParticle returns a Particle at (x, y, z) with copies of the given
// components.
func NewParticle(x, y, z float64, rdata []float64, idata []int32) Particle {
	p := Particle{Pos: [SpaceDim]float64{x, y, z}}
	p.RData = append([]float64{}, rdata...)
	p.IData = append([]int32{}, idata...)
	return p
}

func (p Particle) Layout() Layout {
	return Layout{len(p.RData), len(p.IData)}
}

func (p Particle) Clone() Particle {
	out := p
	out.RData = append([]float64{}, p.RData...)
	out.IData = append([]int32{}, p.IData...)
	return out
}

// resizeSlice returns s with length n. New elements are zeroed.
func resizeSlice[T any](s []T, n int) []T {
	if n <= len(s) {
		return s[:n]
	}
	return append(s, make([]T, n-len(s))...)
}
