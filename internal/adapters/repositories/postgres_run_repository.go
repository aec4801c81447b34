package repositories

import (
	"context"
	"database/sql"
	"errors"
	"facility-capacity-service/internal/domain"
	"facility-capacity-service/internal/platform/obs"
	"fmt"

	"github.com/google/uuid"
)

// PostgresRunRepository persists optimization runs and their ranked
// candidates.
type PostgresRunRepository struct {
	DB *sql.DB
}

func NewPostgresRunRepository(db *sql.DB) *PostgresRunRepository {
	return &PostgresRunRepository{DB: db}
}

// Store one finished run and its candidates in a single transaction.
func (r *PostgresRunRepository) SaveRun(ctx context.Context, run *domain.OptimizationRun) (err error) {
	defer obs.Time(ctx, "runs.repository.SaveRun")(&err)

	if r.DB == nil {
		return errors.New("run repository: db is nil")
	}
	if run == nil {
		return errors.New("save run: run must be non-nil")
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save run: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertRun := `
	INSERT INTO optimization_runs (
		run_id, created_at, daily_volume, equipment_capacity, unload_capacity,
		rip_days, treat_days, dry_days, horizon_days
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	p := run.Parameters
	if _, err := tx.ExecContext(ctx, insertRun,
		run.RunID, run.CreatedAt, p.DailyIncomingVolume, p.EquipmentCapacity,
		p.UnloadCapacity, p.RipDays, p.TreatDays, p.DryDays, run.HorizonDays,
	); err != nil {
		return fmt.Errorf("save run %s: insert run: %w", run.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO run_candidates (
		run_id, rank, cell_capacity, cell_count, cycle_days,
		idle_days, peak_backlog, max_daily_volume, non_monotonic, score
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`)
	if err != nil {
		return fmt.Errorf("save run %s: prepare candidate insert: %w", run.RunID, err)
	}
	defer stmt.Close()

	for rank, c := range run.Candidates {
		if _, err := stmt.ExecContext(ctx,
			run.RunID, rank+1, c.CellCapacity, c.CellCount, c.Cycle.TotalCalendarDays,
			c.IdleDays, c.PeakBacklog, c.MaxDailyVolume, c.NonMonotonic, c.Score,
		); err != nil {
			return fmt.Errorf("save run %s: insert candidate rank %d: %w", run.RunID, rank+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save run %s: commit: %w", run.RunID, err)
	}

	return nil
}

// Fetch the newest runs with their candidates, newest first.
func (r *PostgresRunRepository) ListRuns(ctx context.Context, limit int) (_ []*domain.OptimizationRun, err error) {
	defer obs.Time(ctx, "runs.repository.ListRuns")(&err)

	if r.DB == nil {
		return nil, errors.New("run repository: db is nil")
	}
	if limit <= 0 {
		limit = 20
	}

	q := `
	SELECT run_id, created_at, daily_volume, equipment_capacity, unload_capacity,
		rip_days, treat_days, dry_days, horizon_days
	FROM optimization_runs
	ORDER BY created_at DESC
	LIMIT $1;
	`

	rows, err := r.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: query optimization_runs: %w", err)
	}
	defer rows.Close()

	var runs []*domain.OptimizationRun
	for rows.Next() {
		run := &domain.OptimizationRun{}
		if err := rows.Scan(
			&run.RunID, &run.CreatedAt,
			&run.Parameters.DailyIncomingVolume, &run.Parameters.EquipmentCapacity,
			&run.Parameters.UnloadCapacity, &run.Parameters.RipDays,
			&run.Parameters.TreatDays, &run.Parameters.DryDays, &run.HorizonDays,
		); err != nil {
			return nil, fmt.Errorf("list runs: scan row: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list runs: row iteration: %w", err)
	}

	for _, run := range runs {
		run.Candidates, err = r.listCandidates(ctx, run.RunID)
		if err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
	}

	return runs, nil
}

func (r *PostgresRunRepository) listCandidates(ctx context.Context, runID uuid.UUID) ([]domain.CandidateConfiguration, error) {
	q := `
	SELECT cell_capacity, cell_count, cycle_days, idle_days, peak_backlog,
		max_daily_volume, non_monotonic, score
	FROM run_candidates
	WHERE run_id = $1
	ORDER BY rank;
	`

	rows, err := r.DB.QueryContext(ctx, q, runID)
	if err != nil {
		return nil, fmt.Errorf("list candidates for run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []domain.CandidateConfiguration
	for rows.Next() {
		var c domain.CandidateConfiguration
		if err := rows.Scan(
			&c.CellCapacity, &c.CellCount, &c.Cycle.TotalCalendarDays,
			&c.IdleDays, &c.PeakBacklog, &c.MaxDailyVolume, &c.NonMonotonic, &c.Score,
		); err != nil {
			return nil, fmt.Errorf("list candidates for run %s: scan row: %w", runID, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list candidates for run %s: row iteration: %w", runID, err)
	}

	return out, nil
}
