package services

import (
	"facility-capacity-service/internal/domain"
	"fmt"
	"time"
)

// Engine advances one facility day by day. It is a pure function of its
// inputs stepped sequentially: no I/O, no randomness, no wall-clock reads.
// The single loading machine and single unloading machine are modeled as
// the ActiveLoader/ActiveUnloader slots on the facility state, consulted
// and possibly cleared once per day.
type Engine struct {
	params       domain.FacilityParameters
	policy       domain.SimulationPolicy
	cellCapacity int

	state *domain.FacilityState
	date  time.Time

	idleDays    int
	peakBacklog int
}

// NewEngine builds an engine over an all-empty facility starting at start.
// Inputs are validated here; nothing inside the per-day tick can fail.
func NewEngine(
	params domain.FacilityParameters,
	policy domain.SimulationPolicy,
	cellCapacity int,
	cellCount int,
	start time.Time,
) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	if cellCapacity <= 0 {
		return nil, fmt.Errorf("new engine: %w: cell capacity must be positive, got %d", domain.ErrInvalidParameter, cellCapacity)
	}
	if cellCount < 1 {
		return nil, fmt.Errorf("new engine: %w: cell count must be at least 1, got %d", domain.ErrInvalidParameter, cellCount)
	}

	return &Engine{
		params:       params,
		policy:       policy.Normalized(),
		cellCapacity: cellCapacity,
		state:        domain.NewFacilityState(cellCount),
		date:         start,
	}, nil
}

// Step advances the facility by exactly one calendar day and returns the
// day's record. The order of operations is fixed; changing it changes
// system behavior.
func (e *Engine) Step() domain.DayRecord {
	st := e.state
	date := e.date
	weekend := e.params.Weekend

	// 1. Apply transitions staged yesterday. A slot is cleared when the
	// cell it points to just left the Loading/Unloading phase.
	for i := range st.Cells {
		if !st.Cells[i].ApplyPending() {
			continue
		}
		if st.ActiveLoader == i && st.Cells[i].Phase != domain.PhaseLoading {
			st.ActiveLoader = -1
		}
		if st.ActiveUnloader == i && st.Cells[i].Phase != domain.PhaseUnloading {
			st.ActiveUnloader = -1
		}
	}

	canLoad := weekend.IsWorkDay(date, domain.ActivityLoad)
	canUnload := weekend.IsWorkDay(date, domain.ActivityUnload)

	// 2. Today's volume arrives on load work days.
	if canLoad {
		st.Backlog += e.params.DailyIncomingVolume
	}
	backlogBeforeLoading := st.Backlog

	loadedBy := make(map[int]int)
	unloadedBy := make(map[int]int)

	// 3. Unload before load, so an emptied cell can be loadable the same
	// day when the reload policy allows it. At most one cell unloads per
	// day: the oldest-filled ReadyToUnload cell claims the machine.
	if canUnload {
		if st.ActiveUnloader < 0 {
			if i := st.OldestReadyCell(); i >= 0 {
				st.ActiveUnloader = i
				st.Cells[i].Phase = domain.PhaseUnloading
			}
		}

		if i := st.ActiveUnloader; i >= 0 && st.Cells[i].Phase == domain.PhaseUnloading {
			cell := &st.Cells[i]
			amount := min(cell.Fill, e.params.UnloadRate())
			if amount > 0 {
				cell.Fill -= amount
				st.TotalUnloaded += amount
				unloadedBy[i] = amount
			}

			if cell.Fill == 0 {
				if e.policy.Reload == domain.ReloadSameDay {
					cell.Phase = domain.PhaseEmpty
					cell.SequenceNumber = 0
				} else {
					cell.Stage(domain.PhaseEmpty)
				}
				st.ActiveUnloader = -1
			}
		}
	}

	// 4. Load while rate and backlog remain. A full cell stages Rip and
	// frees the machine, so a later iteration may start filling the next
	// empty cell within the same day.
	volumeIn := 0
	if canLoad {
		remaining := e.policy.LoadRateFor(e.params)

		for remaining > 0 && st.Backlog > 0 {
			if st.ActiveLoader < 0 {
				i := st.LowestEmptyCell()
				if i < 0 {
					break
				}
				st.ActiveLoader = i
				st.Cells[i].BeginLoading(st.NextSequence())
			}

			cell := &st.Cells[st.ActiveLoader]
			space := e.cellCapacity - cell.Fill
			amount := min(space, remaining, st.Backlog)
			if amount > 0 {
				cell.Fill += amount
				st.Backlog -= amount
				remaining -= amount
				volumeIn += amount
				st.TotalLoaded += amount
				loadedBy[st.ActiveLoader] += amount
			}

			if cell.Fill >= e.cellCapacity {
				cell.Stage(domain.PhaseRip)
				st.ActiveLoader = -1
				if e.policy.Fill == domain.FillOneCellPerDay {
					break
				}
			}
		}
	}

	// A load work day with material on hand and nothing loaded is idle.
	idle := canLoad && backlogBeforeLoading > 0 && volumeIn == 0
	if idle {
		e.idleDays++
	}

	if st.Backlog > e.peakBacklog {
		e.peakBacklog = st.Backlog
	}

	// 5. Timed phases advance on their own work days only.
	for i := range st.Cells {
		cell := &st.Cells[i]
		if !cell.Phase.Timed() {
			continue
		}
		if weekend.IsWorkDay(date, cell.Phase.Activity()) {
			cell.AdvanceWorkday(e.params.PhaseDuration(cell.Phase))
		}
	}

	// 6. Record the day.
	volumeOut := 0
	entries := make([]domain.CellDayEntry, len(st.Cells))
	for i := range st.Cells {
		entries[i] = domain.CellDayEntry{
			CellNumber: st.Cells[i].Number,
			Label:      domain.CellLabel(st.Cells[i].Phase, loadedBy[i], unloadedBy[i]),
			Loaded:     loadedBy[i],
			Unloaded:   unloadedBy[i],
		}
		volumeOut += unloadedBy[i]
	}

	record := domain.DayRecord{
		Date:          date,
		DayName:       date.Weekday().String(),
		Cells:         entries,
		VolumeIn:      volumeIn,
		VolumeOut:     volumeOut,
		Backlog:       st.Backlog,
		CumulativeIn:  st.TotalLoaded,
		CumulativeOut: st.TotalUnloaded,
		Idle:          idle,
	}

	e.date = date.AddDate(0, 0, 1)
	return record
}

// IdleDays is the count of load work days on which material was present but
// none could be loaded.
func (e *Engine) IdleDays() int { return e.idleDays }

// PeakBacklog is the maximum backlog observed so far.
func (e *Engine) PeakBacklog() int { return e.peakBacklog }

// State exposes the facility state, mainly for invariant checks in tests.
func (e *Engine) State() *domain.FacilityState { return e.state }
