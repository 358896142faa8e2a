package api

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"happiness-etl/internal/database"
	"happiness-etl/internal/logging"
	"happiness-etl/internal/pipeline"
	"happiness-etl/internal/runs"
	"happiness-etl/internal/schema"
)

// runTimeout bounds a pipeline run triggered over HTTP. The run executes in
// the background, detached from the request context.
const runTimeout = 10 * time.Minute

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.pool.Ping(ctx); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, fmt.Errorf("database unreachable: %w", err))
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, r, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = n
	}

	recorder := runs.NewRecorder(s.pool)
	if err := recorder.Ensure(r.Context()); err != nil {
		respondError(w, r, http.StatusInternalServerError, err)
		return
	}
	history, err := recorder.History(r.Context(), limit)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err)
		return
	}
	if history == nil {
		history = []runs.Run{}
	}
	respondJSON(w, http.StatusOK, history)
}

func (s *Server) handleTriggerRun(w http.ResponseWriter, r *http.Request) {
	if !s.tryAcquireRun() {
		respondError(w, r, http.StatusConflict, fmt.Errorf("a pipeline run is already in progress"))
		return
	}

	go func() {
		defer s.releaseRun()
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		// Errors are recorded in etl_runs and logged; nothing to return here.
		_, _ = pipeline.Run(ctx, s.pool, s.cfg)
	}()

	respondJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

func (s *Server) handleModelStats(w http.ResponseWriter, r *http.Request) {
	count, err := database.TableRowCount(r.Context(), s.pool, schema.ModelTable.Name)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"table":   schema.ModelTable.Name,
		"rows":    count,
		"columns": schema.ModelTable.ColumnNames(),
	})
}

func (s *Server) handleModelExport(w http.ResponseWriter, r *http.Request) {
	ds, err := database.QueryTable(r.Context(), s.pool, schema.ModelTable)
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", schema.ModelTable.Name+".csv"))

	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Columns()); err != nil {
		logging.FromContext(r.Context()).Error("csv export failed", "error", err)
		return
	}
	for i := 0; i < ds.NumRows(); i++ {
		if err := cw.Write(ds.Row(i)); err != nil {
			logging.FromContext(r.Context()).Error("csv export failed", "error", err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		logging.FromContext(r.Context()).Error("csv export failed", "error", err)
	}
}

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON encodes v as JSON with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; log and move on.
		slog.Error("json encode failed", "error", err)
	}
}

// respondError logs the error with request context and returns it as JSON.
func respondError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logging.FromContext(r.Context()).Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err,
	)
	respondJSON(w, status, errorResponse{Error: err.Error()})
}
