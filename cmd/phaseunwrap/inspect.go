package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/phasor/grid"
	"github.com/katalvlaran/phasor/phase"
)

func newInspectCmd() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Report range, quality and residues of a wrapped field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := src.load()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "shape      %s (%s samples)\n", shapeString(f.Shape()), humanize.Comma(int64(f.Len())))
			fmt.Fprintf(w, "range      [%.4f, %.4f]\n", f.Min(), f.Max())

			q, err := phase.Quality(f)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "quality    mean %.4f\n", q.Mean())

			if f.Dims() < 2 {
				return nil
			}
			return printResidues(w, f)
		},
	}
	src.register(cmd.Flags())

	return cmd
}

// printResidues writes residue counts and the number of residue clusters.
func printResidues(w io.Writer, f *grid.Field) error {
	pos, neg, err := phase.ResidueCount(f)
	if err != nil {
		return err
	}
	clusters, err := phase.ResidueClusters(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "residues   +%d / -%d in %d clusters\n", pos, neg, len(clusters))

	return nil
}
