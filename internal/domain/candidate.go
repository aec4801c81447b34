package domain

// CycleEstimate breaks down the calendar time for one cell to traverse its
// full phase sequence once, given the weekend policies in force.
type CycleEstimate struct {
	LoadWorkdays     int
	LoadCalendarDays int

	RipCalendarDays   int
	TreatCalendarDays int
	DryCalendarDays   int

	UnloadWorkdays     int
	UnloadCalendarDays int

	TotalCalendarDays int
}

// CandidateConfiguration is one scored (cell capacity, cell count) pair
// produced by the configuration search. Immutable once produced; the caller
// selects one to drive a full schedule run.
type CandidateConfiguration struct {
	CellCapacity int
	CellCount    int

	Cycle CycleEstimate

	IdleDays    int
	PeakBacklog int

	// Largest sustainable daily volume found for this configuration, and
	// the headroom above the planned volume.
	MaxDailyVolume int
	Headroom       int

	// Set when the max-volume search detected a non-monotonic feasible
	// region; MaxDailyVolume is then a lower bound, not a proven maximum.
	NonMonotonic bool

	Score int
}

// TotalCapacity is the combined volume the configuration can hold.
func (c CandidateConfiguration) TotalCapacity() int {
	return c.CellCapacity * c.CellCount
}
