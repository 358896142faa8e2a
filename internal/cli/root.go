// Package cli wires the pipeline into a command line tool: run the pipeline
// once, serve the HTTP API, inspect run history, and verify the published
// table.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"happiness-etl/internal/config"
	"happiness-etl/internal/database"
	"happiness-etl/internal/logging"
)

// app carries state shared by all subcommands, populated by the root
// command's PersistentPreRunE before any subcommand runs.
type app struct {
	cfg *config.Config
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "etl",
		Short:         "World Happiness survey pipeline",
		Long:          "Loads yearly World Happiness survey CSVs, normalizes and merges them,\nderives model features, and publishes the result to PostgreSQL.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Overload so .env wins over inherited environment, matching
			// local development expectations.
			if err := godotenv.Overload(); err != nil {
				slog.Debug("no .env file found, using environment variables")
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
			slog.Debug("configuration loaded", "config", cfg.String())
			return nil
		},
	}

	root.AddCommand(
		newRunCmd(a),
		newServeCmd(a),
		newHistoryCmd(a),
		newVerifyCmd(a),
	)
	return root
}

// connect opens the configured database, creating it first when missing.
func (a *app) connect(ctx context.Context) (*pgxpool.Pool, error) {
	return database.Connect(ctx, a.cfg.Database)
}
