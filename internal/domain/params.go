package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter marks facility or search inputs rejected before any
// simulation runs.
var ErrInvalidParameter = errors.New("invalid parameter")

// FacilityParameters describes one facility scenario. Immutable per run.
//
// Volumes are whole units per day (the source material arrives by the
// truckload; fractional volumes have no physical meaning here).
type FacilityParameters struct {
	// Volume arriving at the facility on every load work day. Must be > 0:
	// a zero incoming volume makes the idle-day definition meaningless.
	DailyIncomingVolume int

	// Shared ceiling on total volume the equipment can move per day.
	EquipmentCapacity int

	// Optional dedicated unload ceiling. When zero, unloading runs at
	// EquipmentCapacity - DailyIncomingVolume (the loader gets first claim
	// on the shared equipment).
	UnloadCapacity int

	// Treatment phase durations in workdays.
	RipDays   int
	TreatDays int
	DryDays   int

	Weekend WorkPolicy
}

// Validate rejects parameter sets the simulator is undefined for.
func (p FacilityParameters) Validate() error {
	if p.DailyIncomingVolume <= 0 {
		return fmt.Errorf("%w: daily incoming volume must be positive, got %d", ErrInvalidParameter, p.DailyIncomingVolume)
	}
	if p.EquipmentCapacity <= 0 {
		return fmt.Errorf("%w: equipment capacity must be positive, got %d", ErrInvalidParameter, p.EquipmentCapacity)
	}
	if p.UnloadCapacity < 0 {
		return fmt.Errorf("%w: unload capacity must not be negative, got %d", ErrInvalidParameter, p.UnloadCapacity)
	}
	if p.RipDays < 1 || p.TreatDays < 1 || p.DryDays < 1 {
		return fmt.Errorf(
			"%w: phase durations must be at least 1 workday, got rip=%d treat=%d dry=%d",
			ErrInvalidParameter, p.RipDays, p.TreatDays, p.DryDays,
		)
	}
	if p.UnloadCapacity == 0 && p.EquipmentCapacity <= p.DailyIncomingVolume {
		return fmt.Errorf(
			"%w: equipment capacity %d leaves no unload rate at incoming volume %d",
			ErrInvalidParameter, p.EquipmentCapacity, p.DailyIncomingVolume,
		)
	}
	return nil
}

// PhaseDuration returns the configured workday duration of a timed phase.
func (p FacilityParameters) PhaseDuration(phase Phase) int {
	switch phase {
	case PhaseRip:
		return p.RipDays
	case PhaseTreat:
		return p.TreatDays
	case PhaseDry:
		return p.DryDays
	}
	return 0
}

// UnloadRate returns the volume the unloader may move per work day.
func (p FacilityParameters) UnloadRate() int {
	if p.UnloadCapacity > 0 {
		return p.UnloadCapacity
	}
	return p.EquipmentCapacity - p.DailyIncomingVolume
}

// WithDailyVolume returns a copy of p at a different incoming volume.
// Used by the max-volume search; the receiver is not modified.
func (p FacilityParameters) WithDailyVolume(volume int) FacilityParameters {
	p.DailyIncomingVolume = volume
	return p
}

// SearchBounds bound the configuration grid search.
type SearchBounds struct {
	MinCellCapacity int
	MaxCellCapacity int
	CapacityStep    int
	MinCellCount    int
	MaxCellCount    int

	// MaxLoadingDays, when positive, excludes cell sizes that take more
	// than this many workdays to fill at the planned incoming volume.
	MaxLoadingDays int
}

// Validate rejects inverted or non-positive grid bounds.
func (b SearchBounds) Validate() error {
	if b.MinCellCapacity <= 0 {
		return fmt.Errorf("%w: min cell capacity must be positive, got %d", ErrInvalidParameter, b.MinCellCapacity)
	}
	if b.MaxCellCapacity < b.MinCellCapacity {
		return fmt.Errorf(
			"%w: cell capacity bounds inverted (min %d > max %d)",
			ErrInvalidParameter, b.MinCellCapacity, b.MaxCellCapacity,
		)
	}
	if b.CapacityStep <= 0 {
		return fmt.Errorf("%w: capacity step must be positive, got %d", ErrInvalidParameter, b.CapacityStep)
	}
	if b.MinCellCount < 1 {
		return fmt.Errorf("%w: min cell count must be at least 1, got %d", ErrInvalidParameter, b.MinCellCount)
	}
	if b.MaxCellCount < b.MinCellCount {
		return fmt.Errorf(
			"%w: cell count bounds inverted (min %d > max %d)",
			ErrInvalidParameter, b.MinCellCount, b.MaxCellCount,
		)
	}
	if b.MaxLoadingDays < 0 {
		return fmt.Errorf("%w: max loading days must not be negative, got %d", ErrInvalidParameter, b.MaxLoadingDays)
	}
	return nil
}
