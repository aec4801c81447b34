package services

import (
	"facility-capacity-service/internal/domain"
	"fmt"
	"time"
)

// BuildSchedule runs one configuration day by day from startDate and
// returns the full ordered sequence of day records for the reporting layer.
// Two calls with identical inputs produce identical records.
func BuildSchedule(
	params domain.FacilityParameters,
	policy domain.SimulationPolicy,
	cellCapacity int,
	cellCount int,
	startDate time.Time,
	days int,
) ([]domain.DayRecord, error) {
	if days < 1 {
		return nil, fmt.Errorf("build schedule: %w: days must be at least 1, got %d", domain.ErrInvalidParameter, days)
	}

	engine, err := NewEngine(params, policy, cellCapacity, cellCount, startDate)
	if err != nil {
		return nil, fmt.Errorf("build schedule: %w", err)
	}

	records := make([]domain.DayRecord, 0, days)
	for day := 0; day < days; day++ {
		records = append(records, engine.Step())
	}

	return records, nil
}
