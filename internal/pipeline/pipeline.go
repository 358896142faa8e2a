// Package pipeline orchestrates one end-to-end preparation run:
// load -> normalize -> enrich -> merge -> features -> persist.
// Stages run strictly in sequence and the first error halts the run; every
// failure is recorded in etl_runs and returned to the caller.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"happiness-etl/internal/config"
	"happiness-etl/internal/database"
	"happiness-etl/internal/features"
	"happiness-etl/internal/happiness"
	"happiness-etl/internal/logging"
	"happiness-etl/internal/runs"
	"happiness-etl/internal/schema"
)

// Report summarizes a completed run.
type Report struct {
	RunID       string        `json:"runId"`
	Years       []int         `json:"years"`
	MergedRows  int           `json:"mergedRows"`
	RowsWritten int64         `json:"rowsWritten"`
	RowsSkipped int           `json:"rowsSkipped"`
	Duration    time.Duration `json:"duration"`
}

// Run executes the full pipeline against the pool. The returned report is
// valid only when err is nil. The run is recorded in etl_runs either way.
func Run(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config) (*Report, error) {
	runID := uuid.New()
	started := time.Now()
	logger := logging.WithFields(ctx, "run_id", runID.String())

	recorder := runs.NewRecorder(pool)
	if err := recorder.Ensure(ctx); err != nil {
		return nil, err
	}
	if err := recorder.Start(ctx, runID, started.UTC()); err != nil {
		return nil, err
	}

	report, err := execute(ctx, pool, cfg, logger)

	datasets, written, skipped := 0, 0, 0
	if report != nil {
		datasets = len(report.Years)
		written = int(report.RowsWritten)
		skipped = report.RowsSkipped
	}
	if finishErr := recorder.Finish(ctx, runID, datasets, written, skipped, err); finishErr != nil {
		logger.Error("failed to record run result", "error", finishErr)
	}

	if err != nil {
		logger.Error("pipeline run failed", "error", err)
		return nil, err
	}

	report.RunID = runID.String()
	report.Duration = time.Since(started)
	logger.Info("pipeline run complete",
		"years", report.Years,
		"rows_written", report.RowsWritten,
		"rows_skipped", report.RowsSkipped,
		"duration", report.Duration,
	)
	return report, nil
}

// execute runs the stages and fills everything of the report except run ID
// and duration. On error the partial report carries whatever counters were
// known when the stage failed.
func execute(ctx context.Context, pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) (*Report, error) {
	report := &Report{}

	byYear, err := happiness.LoadDatasets(cfg.Data.Dir)
	if err != nil {
		return report, fmt.Errorf("load stage: %w", err)
	}
	for year := range byYear {
		report.Years = append(report.Years, year)
	}
	logger.Debug("datasets loaded", "shapes", happiness.CompareShapes(byYear))

	if _, err := happiness.NormalizeColumnNames(byYear); err != nil {
		return report, fmt.Errorf("normalize stage: %w", err)
	}
	logger.Debug("columns normalized", "report", happiness.CompareColumnNames(byYear))

	happiness.AddYearColumn(byYear)
	for year, ds := range byYear {
		if err := happiness.MapCountryToContinent(ds); err != nil {
			return report, fmt.Errorf("enrich stage, year %d: %w", year, err)
		}
	}

	merged, err := happiness.ConcatCommonColumns(byYear)
	if err != nil {
		return report, fmt.Errorf("merge stage: %w", err)
	}
	report.MergedRows = merged.NumRows()
	logger.Info("datasets merged", "shape", merged.Shape())

	frame, skippedRows, err := features.BuildModelFrame(merged)
	if err != nil {
		return report, fmt.Errorf("feature stage: %w", err)
	}
	report.RowsSkipped = len(skippedRows)
	for _, rowErr := range skippedRows {
		logger.Warn("row dropped from model frame", "row", rowErr.Row, "reason", rowErr.Reason)
	}

	written, err := database.BulkInsert(ctx, pool, schema.ModelTable, frame)
	if err != nil {
		return report, fmt.Errorf("persist stage: %w", err)
	}
	report.RowsWritten = written

	sort.Ints(report.Years)
	return report, nil
}
