package domain

import (
	"time"

	"github.com/google/uuid"
)

// OptimizationRun is one persisted configuration search: the inputs it ran
// against and the ranked candidates it produced.
type OptimizationRun struct {
	RunID     uuid.UUID
	CreatedAt time.Time

	Parameters  FacilityParameters
	Bounds      SearchBounds
	HorizonDays int

	Candidates []CandidateConfiguration
}

// NewOptimizationRun tags a finished search with a fresh run id.
func NewOptimizationRun(
	params FacilityParameters,
	bounds SearchBounds,
	horizonDays int,
	candidates []CandidateConfiguration,
) *OptimizationRun {
	return &OptimizationRun{
		RunID:       uuid.New(),
		CreatedAt:   time.Now().UTC(),
		Parameters:  params,
		Bounds:      bounds,
		HorizonDays: horizonDays,
		Candidates:  candidates,
	}
}
