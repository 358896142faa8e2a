// Package runs records one audit row per pipeline run in the etl_runs table,
// so operators can see what ran, how much it wrote, and why it failed without
// grepping logs.
package runs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"happiness-etl/internal/database"
	"happiness-etl/internal/schema"
)

// Status values for a run row.
const (
	StatusRunning   = "running"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// Run is one recorded pipeline run.
type Run struct {
	RunID          string     `json:"runId"`
	StartedAt      time.Time  `json:"startedAt"`
	FinishedAt     *time.Time `json:"finishedAt,omitempty"`
	DatasetsLoaded int        `json:"datasetsLoaded"`
	RowsWritten    int        `json:"rowsWritten"`
	RowsSkipped    int        `json:"rowsSkipped"`
	Status         string     `json:"status"`
	Error          string     `json:"error,omitempty"`
}

// Recorder writes and reads run rows.
type Recorder struct {
	db database.DBTX
}

// NewRecorder returns a Recorder bound to db.
func NewRecorder(db database.DBTX) *Recorder {
	return &Recorder{db: db}
}

// Ensure creates the etl_runs table if it does not exist. Unlike the model
// table, run history survives across pipeline runs.
func (r *Recorder) Ensure(ctx context.Context) error {
	// History is append-only, never replaced.
	if _, err := r.db.Exec(ctx, schema.RunsTable.CreateIfNotExistsSQL()); err != nil {
		return fmt.Errorf("ensuring etl_runs table: %w", err)
	}
	return nil
}

// Start inserts a running row for the run.
func (r *Recorder) Start(ctx context.Context, runID uuid.UUID, startedAt time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO "etl_runs" ("run_id", "started_at", "datasets_loaded", "rows_written", "rows_skipped", "status")
		 VALUES ($1, $2, 0, 0, 0, $3)`,
		runID.String(), startedAt, StatusRunning,
	)
	if err != nil {
		return fmt.Errorf("recording run start: %w", err)
	}
	return nil
}

// Finish marks the run as succeeded or failed with its final counters.
// runErr may be nil.
func (r *Recorder) Finish(ctx context.Context, runID uuid.UUID, datasets, written, skipped int, runErr error) error {
	status := StatusSucceeded
	errText := ""
	if runErr != nil {
		status = StatusFailed
		errText = runErr.Error()
	}
	_, err := r.db.Exec(ctx,
		`UPDATE "etl_runs"
		 SET "finished_at" = $2, "datasets_loaded" = $3, "rows_written" = $4, "rows_skipped" = $5, "status" = $6, "error" = NULLIF($7, '')
		 WHERE "run_id" = $1`,
		runID.String(), time.Now().UTC(), datasets, written, skipped, status, errText,
	)
	if err != nil {
		return fmt.Errorf("recording run finish: %w", err)
	}
	return nil
}

// History returns the most recent runs, newest first.
func (r *Recorder) History(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(ctx,
		`SELECT "run_id"::text, "started_at", "finished_at", "datasets_loaded", "rows_written", "rows_skipped", "status", COALESCE("error", '')
		 FROM "etl_runs" ORDER BY "started_at" DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying run history: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.RunID, &run.StartedAt, &run.FinishedAt, &run.DatasetsLoaded,
			&run.RowsWritten, &run.RowsSkipped, &run.Status, &run.Error); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading run history: %w", err)
	}
	return out, nil
}
