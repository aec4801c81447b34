package ports

import (
	"context"
	"facility-capacity-service/internal/domain"
)

// Port: a boundary for persisting and retrieving optimization runs.
type RunRepository interface {
	// Persist a finished search with its ranked candidates.
	SaveRun(ctx context.Context, run *domain.OptimizationRun) error

	// Retrieve the most recent runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]*domain.OptimizationRun, error)
}
