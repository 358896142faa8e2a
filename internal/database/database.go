// Package database is the persistence layer: connection setup (including
// creating the target database on first run), destructive table replacement,
// COPY-based bulk writes and query-back into datasets.
//
// All failures surface as returned errors. Callers halt or retry; nothing in
// this package swallows an error into a log line.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"happiness-etl/internal/config"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
	CopyFrom(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) (int64, error)
}

// maintenanceDB is the database used to issue CREATE DATABASE.
const maintenanceDB = "postgres"

// URL builds the connection string for the named database from cfg.
func URL(cfg config.DatabaseConfig, dbName string) string {
	u := url.URL{
		Scheme: normalizeDialect(cfg.Dialect),
		Host:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:   "/" + dbName,
	}
	if cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	} else {
		u.User = url.User(cfg.User)
	}
	return u.String()
}

func normalizeDialect(dialect string) string {
	if strings.EqualFold(dialect, "postgresql") {
		return "postgresql"
	}
	return "postgres"
}

// Connect ensures the configured database exists, then opens a connection
// pool to it and verifies connectivity with a ping.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	if err := ensureDatabase(ctx, cfg); err != nil {
		return nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(URL(cfg, cfg.Name))
	if err != nil {
		return nil, fmt.Errorf("parsing database URL: %w", err)
	}
	poolConfig.MaxConns = int32(cfg.MaxConns)
	poolConfig.MinConns = int32(cfg.MinConns)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", cfg.Name, err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging %s: %w", cfg.Name, err)
	}

	slog.Info("connected to database", "name", cfg.Name, "host", cfg.Host)
	return pool, nil
}

// ensureDatabase creates cfg.Name via the maintenance database if it does
// not already exist.
func ensureDatabase(ctx context.Context, cfg config.DatabaseConfig) error {
	conn, err := pgx.Connect(ctx, URL(cfg, maintenanceDB))
	if err != nil {
		return fmt.Errorf("connecting to maintenance database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", cfg.Name,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking for database %s: %w", cfg.Name, err)
	}
	if exists {
		return nil
	}

	// CREATE DATABASE cannot take bind parameters; quote the identifier.
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+quoteIdent(cfg.Name)); err != nil {
		return fmt.Errorf("creating database %s: %w", cfg.Name, err)
	}
	slog.Info("database created", "name", cfg.Name)
	return nil
}

// quoteIdent quotes a PostgreSQL identifier.
func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
