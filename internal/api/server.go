// Package api exposes the pipeline over HTTP: trigger runs, read run
// history, and inspect the published model table.
package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"happiness-etl/internal/config"
)

// Server is the HTTP server for the pipeline API.
type Server struct {
	cfg    *config.Config
	pool   *pgxpool.Pool
	router *chi.Mux
	server *http.Server

	// mu guards running: only one pipeline run may execute at a time.
	mu      sync.Mutex
	running bool
}

// NewServer creates a Server wired to the pool.
func NewServer(cfg *config.Config, pool *pgxpool.Pool) *Server {
	s := &Server{
		cfg:    cfg,
		pool:   pool,
		router: chi.NewRouter(),
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures middleware for all routes.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/runs", s.handleListRuns)
		r.Post("/runs", s.handleTriggerRun)
		r.Get("/model/stats", s.handleModelStats)
		r.Get("/model/export", s.handleModelExport)
	})
}

// Start begins listening for HTTP requests and blocks until the listener
// stops.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// tryAcquireRun marks a run as in flight. Returns false when one is already
// running.
func (s *Server) tryAcquireRun() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	return true
}

func (s *Server) releaseRun() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}
