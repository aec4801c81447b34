package domain

// Cell is one physical treatment bay. It is a plain value type owned by the
// FacilityState of a single simulation run; cells do not outlive their run.
//
// Transitions are staged in Pending and become effective only at the start
// of the next simulated day, so a cell that finished emptying yesterday is
// Empty today but is never logged as unloading and loading on the same day.
type Cell struct {
	Number int
	Phase  Phase

	// Current contained volume, 0 <= Fill <= cell capacity.
	Fill int

	// Workdays spent in the current timed phase. Reset on phase entry.
	PhaseWorkdaysElapsed int

	// Staged next phase, empty when no transition is pending.
	Pending Phase

	// Monotonic tag assigned when the cell starts Loading. The lowest
	// sequence number unloads first (oldest-filled-first).
	SequenceNumber int
}

// Stage records phase as the cell's next-day transition.
func (c *Cell) Stage(phase Phase) {
	c.Pending = phase
}

// ApplyPending makes a staged transition effective and reports whether one
// was applied. The workday counter resets on every phase entry.
func (c *Cell) ApplyPending() bool {
	if c.Pending == "" {
		return false
	}

	c.Phase = c.Pending
	c.Pending = ""
	c.PhaseWorkdaysElapsed = 0

	if c.Phase == PhaseEmpty {
		c.SequenceNumber = 0
	}
	return true
}

// BeginLoading promotes an empty cell to Loading under the given sequence tag.
func (c *Cell) BeginLoading(sequence int) {
	c.Phase = PhaseLoading
	c.Fill = 0
	c.PhaseWorkdaysElapsed = 0
	c.SequenceNumber = sequence
}

// AdvanceWorkday counts one workday in a timed phase and stages the next
// phase once the configured duration is reached.
func (c *Cell) AdvanceWorkday(duration int) {
	if !c.Phase.Timed() {
		return
	}

	c.PhaseWorkdaysElapsed++
	if c.PhaseWorkdaysElapsed >= duration {
		c.Stage(c.Phase.Next())
	}
}
