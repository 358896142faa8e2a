package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"happiness-etl/internal/pipeline"
)

func newRunCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the pipeline once and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pool, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			report, err := pipeline.Run(ctx, pool, a.cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Fprintf(out, "Run %s finished in %s\n", report.RunID, report.Duration.Round(timePrecision))
			fmt.Fprintf(out, "  years loaded:  %v\n", report.Years)
			fmt.Fprintf(out, "  merged rows:   %d\n", report.MergedRows)
			fmt.Fprintf(out, "  rows written:  %d\n", report.RowsWritten)
			fmt.Fprintf(out, "  rows skipped:  %d\n", report.RowsSkipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the run report as JSON")
	return cmd
}
