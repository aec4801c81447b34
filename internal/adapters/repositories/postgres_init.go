package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for persisted optimization runs.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRunsQuery := `
	CREATE TABLE IF NOT EXISTS optimization_runs (
		run_id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL,
		daily_volume INTEGER NOT NULL,
		equipment_capacity INTEGER NOT NULL,
		unload_capacity INTEGER NOT NULL,
		rip_days INTEGER NOT NULL,
		treat_days INTEGER NOT NULL,
		dry_days INTEGER NOT NULL,
		horizon_days INTEGER NOT NULL
	);
	`

	createCandidatesQuery := `
	CREATE TABLE IF NOT EXISTS run_candidates (
		run_id UUID NOT NULL REFERENCES optimization_runs(run_id) ON DELETE CASCADE,
		rank INTEGER NOT NULL,
		cell_capacity INTEGER NOT NULL,
		cell_count INTEGER NOT NULL,
		cycle_days INTEGER NOT NULL,
		idle_days INTEGER NOT NULL,
		peak_backlog INTEGER NOT NULL,
		max_daily_volume INTEGER NOT NULL,
		non_monotonic BOOLEAN NOT NULL,
		score INTEGER NOT NULL,
		PRIMARY KEY (run_id, rank)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_optimization_runs_created_at
	ON optimization_runs(created_at DESC);
	`

	statements := []string{
		createRunsQuery,
		createCandidatesQuery,
		createIndexQuery,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit: %w", err)
	}

	return nil
}
