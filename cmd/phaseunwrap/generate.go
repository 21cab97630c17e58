package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		src sourceFlags
		out string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic wrapped phase field as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := src.load()
			if err != nil {
				return err
			}
			slog.Info("generated field", "source", src.name(), "shape", shapeString(f.Shape()))

			if out == "" {
				return writeField(cmd.OutOrStdout(), f)
			}
			return writeFieldFile(out, f)
		},
	}
	src.register(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}
