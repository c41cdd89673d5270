package geom

// Periodicity stores the period, in cells, along every dimension. A period
// of zero marks a non-periodic dimension.
type Periodicity struct {
	Period IntVect
}

// NewPeriodicity returns the Periodicity with the given periods.
func NewPeriodicity(period IntVect) Periodicity {
	return Periodicity{period}
}

func (p Periodicity) IsPeriodic(dim int) bool { return p.Period[dim] > 0 }

func (p Periodicity) IsAnyPeriodic() bool {
	for i := 0; i < D; i++ {
		if p.IsPeriodic(i) { return true }
	}
	return false
}

func (p Periodicity) IsAllPeriodic() bool {
	for i := 0; i < D; i++ {
		if !p.IsPeriodic(i) { return false }
	}
	return true
}

// ShiftIntVects returns every index-space shift which maps a cell onto one
// of its periodic images, including the zero shift, which is always first.
// There are 3^n shifts for n periodic dimensions.
func (p Periodicity) ShiftIntVects() []IntVect {
	var ranges [D][]int
	for i := 0; i < D; i++ {
		if p.IsPeriodic(i) {
			ranges[i] = []int{0, -p.Period[i], p.Period[i]}
		} else {
			ranges[i] = []int{0}
		}
	}

	shifts := []IntVect{}
	for _, dz := range ranges[2] {
		for _, dy := range ranges[1] {
			for _, dx := range ranges[0] {
				shifts = append(shifts, IntVect{dx, dy, dz})
			}
		}
	}
	return shifts
}
