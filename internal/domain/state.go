package domain

// FacilityState is the mutable state of one simulation run: the ordered
// cells, the backlog of arrived-but-unloaded volume, and cumulative
// counters. At every day boundary TotalLoaded - TotalUnloaded equals the
// volume contained in the cells (mass conservation).
type FacilityState struct {
	Cells []Cell

	// Volume arrived but not yet loaded into any cell.
	Backlog int

	TotalLoaded   int
	TotalUnloaded int

	// Index of the cell currently holding the single loading machine,
	// -1 when the machine is free. Same for the unloading machine.
	ActiveLoader   int
	ActiveUnloader int

	nextSequence int
}

// NewFacilityState returns an all-empty facility with cellCount cells
// numbered from 1.
func NewFacilityState(cellCount int) *FacilityState {
	cells := make([]Cell, cellCount)
	for i := range cells {
		cells[i] = Cell{Number: i + 1, Phase: PhaseEmpty}
	}

	return &FacilityState{
		Cells:          cells,
		ActiveLoader:   -1,
		ActiveUnloader: -1,
		nextSequence:   1,
	}
}

// NextSequence hands out the next loading sequence tag.
func (s *FacilityState) NextSequence() int {
	n := s.nextSequence
	s.nextSequence++
	return n
}

// LowestEmptyCell returns the index of the lowest-numbered Empty cell,
// or -1 when none is available.
func (s *FacilityState) LowestEmptyCell() int {
	for i := range s.Cells {
		if s.Cells[i].Phase == PhaseEmpty {
			return i
		}
	}
	return -1
}

// OldestReadyCell returns the index of the ReadyToUnload cell with the
// lowest sequence number (oldest-filled-first), or -1 when none is ready.
func (s *FacilityState) OldestReadyCell() int {
	best := -1
	for i := range s.Cells {
		if s.Cells[i].Phase != PhaseReadyToUnload {
			continue
		}
		if best == -1 || s.Cells[i].SequenceNumber < s.Cells[best].SequenceNumber {
			best = i
		}
	}
	return best
}

// ContainedVolume sums the fill across all cells.
func (s *FacilityState) ContainedVolume() int {
	total := 0
	for i := range s.Cells {
		total += s.Cells[i].Fill
	}
	return total
}

// MassBalanced reports the mass-conservation invariant.
func (s *FacilityState) MassBalanced() bool {
	return s.TotalLoaded-s.TotalUnloaded == s.ContainedVolume()
}
