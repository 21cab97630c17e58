package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/phasor/internal/runlog"
)

func newHistoryCmd() *cobra.Command {
	var (
		ledger   string
		limit    int
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List runs recorded in the ledger, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if ledger == "" {
				return fmt.Errorf("--ledger or %s is required", ledgerEnv)
			}
			if limit < 1 {
				return fmt.Errorf("--limit must be >= 1, got %d", limit)
			}
			l, err := runlog.Open(ledger)
			if err != nil {
				return err
			}
			defer l.Close()

			runs, err := l.Recent(limit, strategy)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTRATEGY\tSOURCE\tSHAPE\tRESIDUES\tITER\tELAPSED\tWHEN")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
					r.ID[:min(8, len(r.ID))],
					r.Strategy,
					r.Source,
					r.Shape,
					r.Residues,
					humanize.Comma(int64(r.Iterations)),
					r.Duration().Round(time.Microsecond),
					humanize.Time(r.Created()),
				)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&ledger, "ledger", envOrDefault(ledgerEnv, ""), "SQLite ledger path")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs")
	cmd.Flags().StringVar(&strategy, "strategy", "", "only list runs of this strategy")

	return cmd
}
