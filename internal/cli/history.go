package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"happiness-etl/internal/runs"
)

// timePrecision is the rounding applied to durations shown to the user.
const timePrecision = time.Millisecond

func newHistoryCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent pipeline runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pool, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			recorder := runs.NewRecorder(pool)
			if err := recorder.Ensure(ctx); err != nil {
				return err
			}
			history, err := recorder.History(ctx, limit)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RUN ID\tSTARTED\tSTATUS\tDATASETS\tWRITTEN\tSKIPPED\tERROR")
			for _, run := range history {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
					run.RunID,
					run.StartedAt.Format(time.RFC3339),
					run.Status,
					run.DatasetsLoaded,
					run.RowsWritten,
					run.RowsSkipped,
					run.Error,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to show")
	return cmd
}
