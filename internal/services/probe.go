package services

import (
	"facility-capacity-service/internal/domain"
	"fmt"
	"time"
)

// Probes always start from the same anchor so identical inputs produce
// identical output. The anchor is a Monday-adjacent date only in the sense
// that it fixes weekend alignment; it has no other meaning.
var probeAnchor = time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

const (
	// DefaultProbeHorizonDays covers a few full cell cycles for quick
	// feasibility checks.
	DefaultProbeHorizonDays = 90

	// DefaultSearchHorizonDays is the longer horizon the grid search and
	// max-volume finder probe at.
	DefaultSearchHorizonDays = 180
)

// ProbeResult is the sustainability verdict for one configuration at one
// daily volume.
type ProbeResult struct {
	IdleDays    int
	PeakBacklog int
}

// Sustainable is the strict reading: the facility never turned material
// away and never built up a waiting pile.
func (r ProbeResult) Sustainable() bool {
	return r.IdleDays == 0 && r.PeakBacklog == 0
}

// RunProbe simulates a configuration from an all-empty facility on the
// fixed anchor date for horizonDays and reports idle days and peak backlog.
func RunProbe(
	params domain.FacilityParameters,
	policy domain.SimulationPolicy,
	cellCapacity int,
	cellCount int,
	horizonDays int,
) (ProbeResult, error) {
	if horizonDays < 1 {
		return ProbeResult{}, fmt.Errorf("run probe: %w: horizon must be at least 1 day, got %d", domain.ErrInvalidParameter, horizonDays)
	}

	engine, err := NewEngine(params, policy, cellCapacity, cellCount, probeAnchor)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("run probe: %w", err)
	}

	for day := 0; day < horizonDays; day++ {
		engine.Step()
	}

	return ProbeResult{
		IdleDays:    engine.IdleDays(),
		PeakBacklog: engine.PeakBacklog(),
	}, nil
}
