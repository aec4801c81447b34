package domain

// Phase is the lifecycle state of a single treatment cell.
// Cells cycle through the phases in a fixed order; Loading and Unloading
// are exited by volume thresholds, Rip/Treat/Dry by elapsed workdays.
type Phase string

const (
	PhaseEmpty         Phase = "Empty"
	PhaseLoading       Phase = "Loading"
	PhaseRip           Phase = "Rip"
	PhaseTreat         Phase = "Treat"
	PhaseDry           Phase = "Dry"
	PhaseReadyToUnload Phase = "ReadyToUnload"
	PhaseUnloading     Phase = "Unloading"
)

// Activity is a schedulable kind of facility work. Each activity carries its
// own weekend policy (treatment often runs 7 days a week while the loading
// equipment does not).
type Activity string

const (
	ActivityLoad   Activity = "load"
	ActivityRip    Activity = "rip"
	ActivityTreat  Activity = "treat"
	ActivityDry    Activity = "dry"
	ActivityUnload Activity = "unload"
)

// Next returns the phase that follows p in the cell cycle.
func (p Phase) Next() Phase {
	switch p {
	case PhaseEmpty:
		return PhaseLoading
	case PhaseLoading:
		return PhaseRip
	case PhaseRip:
		return PhaseTreat
	case PhaseTreat:
		return PhaseDry
	case PhaseDry:
		return PhaseReadyToUnload
	case PhaseReadyToUnload:
		return PhaseUnloading
	case PhaseUnloading:
		return PhaseEmpty
	}
	return PhaseEmpty
}

// Activity returns the work activity that governs a timer-driven phase.
// Only Rip, Treat and Dry have a workday counter.
func (p Phase) Activity() Activity {
	switch p {
	case PhaseRip:
		return ActivityRip
	case PhaseTreat:
		return ActivityTreat
	case PhaseDry:
		return ActivityDry
	}
	return ""
}

// Timed reports whether the phase is exited after a configured number of
// workdays rather than by a volume threshold.
func (p Phase) Timed() bool {
	return p == PhaseRip || p == PhaseTreat || p == PhaseDry
}
