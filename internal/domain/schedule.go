package domain

import (
	"fmt"
	"time"
)

// CellDayEntry is one cell's activity on one simulated day, in the form the
// external reporting layer consumes: a display label plus the volumes moved.
type CellDayEntry struct {
	CellNumber int
	// One of "Load (n)", "Unload (n)", "Rip", "Treat", "Dry" or "".
	Label    string
	Loaded   int
	Unloaded int
}

// DayRecord is the full account of one simulated day. The ordered sequence
// of DayRecords is the schedule artifact handed to the reporting layer.
type DayRecord struct {
	Date    time.Time
	DayName string
	Cells   []CellDayEntry

	VolumeIn  int
	VolumeOut int
	Backlog   int

	CumulativeIn  int
	CumulativeOut int

	Idle bool
}

// CellLabel formats the per-cell display label for one day. A cell that
// moved volume shows the amount; loading takes precedence when a cell both
// unloaded and loaded (loading is its ending activity). Idle phases with no
// visible work render as an empty label.
func CellLabel(phase Phase, loaded, unloaded int) string {
	switch {
	case loaded > 0:
		return fmt.Sprintf("Load (%d)", loaded)
	case unloaded > 0:
		return fmt.Sprintf("Unload (%d)", unloaded)
	}

	switch phase {
	case PhaseRip, PhaseTreat, PhaseDry:
		return string(phase)
	}
	return ""
}
