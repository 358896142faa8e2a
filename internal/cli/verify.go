package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"happiness-etl/internal/database"
	"happiness-etl/internal/schema"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Read the published model table back and summarize it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			pool, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			count, err := database.TableRowCount(ctx, pool, schema.ModelTable.Name)
			if err != nil {
				return err
			}

			ds, err := database.QueryTable(ctx, pool, schema.ModelTable)
			if err != nil {
				return err
			}
			if int64(ds.NumRows()) != count {
				return fmt.Errorf("row count mismatch: COUNT(*) reports %d, read back %d", count, ds.NumRows())
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n\n", schema.ModelTable.Name, ds.Shape())
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COLUMN\tTYPE\tNULLS\tDISTINCT")
			for _, col := range ds.Summary() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", col.Name, col.Type, col.Nulls, col.Distinct)
			}
			return w.Flush()
		},
	}
}
