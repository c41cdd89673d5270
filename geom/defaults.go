package geom

// Defaults holds the process-wide state that New copies into every
// Geometry it creates. It is not safe to change the defaults while other
// goroutines are calling New.
type Defaults struct {
	ProbDomain RealBox
	IsPeriodic [D]bool
	Coord      CoordType
}

var defaults = InitialDefaults()

// InitialDefaults returns the defaults a process starts with: the unit cube,
// no periodic dimensions, and Cartesian coordinates.
func InitialDefaults() Defaults {
	return Defaults{
		ProbDomain: RealBoxFromBounds(0, 0, 0, 1, 1, 1),
		Coord:      Cartesian,
	}
}

// CurrentDefaults returns a copy of the current defaults. Pair it with
// RestoreDefaults to undo a series of ResetDefault* calls.
func CurrentDefaults() Defaults { return defaults }

// RestoreDefaults replaces every default at once.
func RestoreDefaults(d Defaults) { defaults = d }

// ResetDefaultProbDomain changes the physical domain given to Geometries
// created by later calls to New. Existing Geometries are unaffected.
func ResetDefaultProbDomain(rb RealBox) { defaults.ProbDomain = rb }

// ResetDefaultPeriodicity changes the periodicity flags given to Geometries
// created by later calls to New.
func ResetDefaultPeriodicity(isPeriodic [D]bool) {
	defaults.IsPeriodic = isPeriodic
}

// ResetDefaultCoord changes the coordinate system given to Geometries
// created by later calls to New.
func ResetDefaultCoord(c CoordType) error {
	if !c.Valid() {
		return ErrBadCoord
	}
	defaults.Coord = c
	return nil
}
