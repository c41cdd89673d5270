package geom

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNotDefined is returned by queries which need an index-space domain
	// when called on a Geometry which has not been defined.
	ErrNotDefined = errors.New("geometry has not been defined")
	// ErrNotPeriodic is returned by Period for non-periodic dimensions.
	ErrNotPeriodic = errors.New("dimension is not periodic")
	ErrBadDim = errors.New("dimension out of range")
	ErrBadCoord = errors.New("unrecognized coordinate system")
	ErrEmptyDomain = errors.New("domain box is empty")
	ErrBadProbDomain = errors.New("problem domain has non-positive width")
)

// DefaultRoundOffCells is the width, in cells, of the tolerance band used by
// InsideRoundOffDomain and OutsideRoundOffDomain.
const DefaultRoundOffCells = 1e-6

// CoordType identifies the coordinate system a Geometry is embedded in.
type CoordType int

const (
	Cartesian CoordType = iota
	RZ
	Spherical
)

func (c CoordType) Valid() bool { return c >= Cartesian && c <= Spherical }

func (c CoordType) String() string {
	switch c {
	case Cartesian: return "Cartesian"
	case RZ: return "RZ"
	case Spherical: return "Spherical"
	}
	return fmt.Sprintf("CoordType(%d)", int(c))
}

// Geometry ties an index-space domain to a region of physical space.
//
// A Geometry made with New takes its physical domain, periodicity, and
// coordinate system from the process-wide defaults, but has no index-space
// domain until Define or SetDomain is called. Queries which only involve the
// physical domain work either way. Queries involving cells return
// ErrNotDefined until then.
type Geometry struct {
	domain     Box
	probDomain RealBox
	coord      CoordType
	isPeriodic [D]bool
}

// New returns a Geometry built from the current process-wide defaults.
func New() *Geometry {
	d := CurrentDefaults()
	return &Geometry{
		domain:     Box{Lo: UniformIntVect(0), Hi: UniformIntVect(-1)},
		probDomain: d.ProbDomain,
		coord:      d.Coord,
		isPeriodic: d.IsPeriodic,
	}
}

// NewGeometry returns a fully defined Geometry.
func NewGeometry(
	domain Box, probDomain RealBox, coord CoordType, isPeriodic [D]bool,
) (*Geometry, error) {
	g := New()
	if err := g.Define(domain, probDomain, coord, isPeriodic); err != nil {
		return nil, err
	}
	return g, nil
}

// Define overwrites every field of the Geometry.
func (g *Geometry) Define(
	domain Box, probDomain RealBox, coord CoordType, isPeriodic [D]bool,
) error {
	if !domain.Ok() {
		return fmt.Errorf("%w: %v", ErrEmptyDomain, domain)
	} else if !probDomain.Ok() {
		return fmt.Errorf("%w: %v", ErrBadProbDomain, probDomain)
	} else if !coord.Valid() {
		return fmt.Errorf("%w: %d", ErrBadCoord, int(coord))
	}

	g.domain = domain
	g.probDomain = probDomain
	g.coord = coord
	g.isPeriodic = isPeriodic
	return nil
}

// Ok returns true if the Geometry has a non-empty index-space domain.
func (g *Geometry) Ok() bool { return g.domain.Ok() }

func (g *Geometry) Domain() Box { return g.domain }

// SetDomain replaces the index-space domain. The physical domain and the
// periodicity flags are unchanged.
func (g *Geometry) SetDomain(b Box) { g.domain = b }

func (g *Geometry) ProbDomain() RealBox { return g.probDomain }

// SetProbDomain replaces the physical domain.
func (g *Geometry) SetProbDomain(rb RealBox) { g.probDomain = rb }

func (g *Geometry) Coord() CoordType { return g.coord }

func (g *Geometry) SetCoord(c CoordType) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrBadCoord, int(c))
	}
	g.coord = c
	return nil
}

func (g *Geometry) ProbLo(dim int) float64 { return g.probDomain.Lo[dim] }
func (g *Geometry) ProbHi(dim int) float64 { return g.probDomain.Hi[dim] }
func (g *Geometry) ProbLoArray() [D]float64 { return g.probDomain.Lo }
func (g *Geometry) ProbHiArray() [D]float64 { return g.probDomain.Hi }

func (g *Geometry) ProbLength(dim int) float64 {
	return g.probDomain.Length(dim)
}

// ProbSize returns the volume of the physical domain.
func (g *Geometry) ProbSize() float64 {
	lengths := g.probDomain.Lengths()
	return floats.Prod(lengths[:])
}

// CellSize returns the physical width of a cell along dimension dim.
func (g *Geometry) CellSize(dim int) (float64, error) {
	if err := g.checkDim(dim); err != nil {
		return 0, err
	} else if !g.Ok() {
		return 0, ErrNotDefined
	}
	return g.ProbLength(dim) / float64(g.domain.Length(dim)), nil
}

func (g *Geometry) CellSizeArray() ([D]float64, error) {
	dx := [D]float64{}
	if !g.Ok() { return dx, ErrNotDefined }
	for i := range dx {
		dx[i] = g.ProbLength(i) / float64(g.domain.Length(i))
	}
	return dx, nil
}

// PeriodicFlags returns whether each dimension is periodic.
func (g *Geometry) PeriodicFlags() [D]bool { return g.isPeriodic }

func (g *Geometry) IsPeriodic(dim int) bool { return g.isPeriodic[dim] }

func (g *Geometry) IsAnyPeriodic() bool {
	for _, p := range g.isPeriodic {
		if p { return true }
	}
	return false
}

func (g *Geometry) IsAllPeriodic() bool {
	for _, p := range g.isPeriodic {
		if !p { return false }
	}
	return true
}

// SetPeriodicity replaces the periodicity flags.
func (g *Geometry) SetPeriodicity(isPeriodic [D]bool) {
	g.isPeriodic = isPeriodic
}

// Periodicity returns the periods of the index-space domain.
func (g *Geometry) Periodicity() (Periodicity, error) {
	if !g.Ok() { return Periodicity{}, ErrNotDefined }
	return g.PeriodicityOf(g.domain), nil
}

// PeriodicityOf returns the periods that b would have if it were the domain
// of a Geometry with g's periodicity flags.
func (g *Geometry) PeriodicityOf(b Box) Periodicity {
	return Periodicity{b.Lengths().Mul(IntVectFromBools(g.isPeriodic))}
}

// Period returns the period, in cells, along dimension dim.
func (g *Geometry) Period(dim int) (int, error) {
	if err := g.checkDim(dim); err != nil {
		return 0, err
	} else if !g.isPeriodic[dim] {
		return 0, fmt.Errorf("%w: dimension %d", ErrNotPeriodic, dim)
	} else if !g.Ok() {
		return 0, ErrNotDefined
	}
	return g.domain.Length(dim), nil
}

// Coarsen coarsens the index-space domain by the given ratio.
func (g *Geometry) Coarsen(ratio IntVect) {
	g.domain = g.domain.Coarsen(ratio)
}

// Refine refines the index-space domain by the given ratio.
func (g *Geometry) Refine(ratio IntVect) {
	g.domain = g.domain.Refine(ratio)
}

// GrowPeriodicDomain returns the domain grown by n cells along periodic
// dimensions only.
func (g *Geometry) GrowPeriodicDomain(n int) (Box, error) {
	return g.growDomain(n, true)
}

// GrowNonPeriodicDomain returns the domain grown by n cells along
// non-periodic dimensions only.
func (g *Geometry) GrowNonPeriodicDomain(n int) (Box, error) {
	return g.growDomain(n, false)
}

func (g *Geometry) growDomain(n int, periodic bool) (Box, error) {
	if !g.Ok() { return Box{}, ErrNotDefined }
	b := g.domain
	for i := 0; i < D; i++ {
		if g.isPeriodic[i] == periodic {
			b = b.GrowDim(i, n)
		}
	}
	return b, nil
}

// InsideRoundOffDim returns true if x lies in the physical domain along
// dimension dim, extended by tolCells cells on either side. The lower edge
// of the band is inclusive and the upper edge is exclusive, so with
// tolCells = 0 this is exactly the set of positions that map onto a cell in
// the domain.
func (g *Geometry) InsideRoundOffDim(
	x float64, dim int, tolCells float64,
) (bool, error) {
	dx, err := g.CellSize(dim)
	if err != nil { return false, err }
	eps := tolCells * dx
	return x >= g.ProbLo(dim)-eps && x < g.ProbHi(dim)+eps, nil
}

// OutsideRoundOffDim is the negation of InsideRoundOffDim.
func (g *Geometry) OutsideRoundOffDim(
	x float64, dim int, tolCells float64,
) (bool, error) {
	inside, err := g.InsideRoundOffDim(x, dim, tolCells)
	return !inside, err
}

// InsideRoundOffDomain returns true if p is inside the round-off domain
// along every dimension, using a tolerance of DefaultRoundOffCells.
func (g *Geometry) InsideRoundOffDomain(p [D]float64) (bool, error) {
	for i := 0; i < D; i++ {
		inside, err := g.InsideRoundOffDim(p[i], i, DefaultRoundOffCells)
		if err != nil || !inside { return false, err }
	}
	return true, nil
}

// OutsideRoundOffDomain is the negation of InsideRoundOffDomain.
func (g *Geometry) OutsideRoundOffDomain(p [D]float64) (bool, error) {
	inside, err := g.InsideRoundOffDomain(p)
	return !inside, err
}

// CellIndex returns the cell containing the physical position p. The cell
// may lie outside the domain.
func (g *Geometry) CellIndex(p [D]float64) (IntVect, error) {
	dx, err := g.CellSizeArray()
	if err != nil { return IntVect{}, err }

	iv := IntVect{}
	for i := 0; i < D; i++ {
		iv[i] = int(math.Floor((p[i]-g.ProbLo(i))/dx[i])) + g.domain.Lo[i]
	}
	return iv, nil
}

// WrapPeriodic maps p back into the physical domain along every periodic
// dimension. Non-periodic dimensions are left alone. The returned flag is
// true if any component changed.
func (g *Geometry) WrapPeriodic(p [D]float64) ([D]float64, bool) {
	moved := false
	for i := 0; i < D; i++ {
		if !g.isPeriodic[i] { continue }
		lo, hi := g.ProbLo(i), g.ProbHi(i)
		if p[i] >= lo && p[i] < hi { continue }
		p[i] = lo + pMod(p[i]-lo, g.ProbLength(i))
		moved = true
	}
	return p, moved
}

func (g *Geometry) String() string {
	return fmt.Sprintf(
		"Geometry{Domain: %v, ProbDomain: %v, Coord: %v, IsPeriodic: %v}",
		g.domain, g.probDomain, g.coord, g.isPeriodic,
	)
}

func (g *Geometry) checkDim(dim int) error {
	if dim < 0 || dim >= D {
		return fmt.Errorf("%w: %d", ErrBadDim, dim)
	}
	return nil
}
