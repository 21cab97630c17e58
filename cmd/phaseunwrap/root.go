package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// ledgerEnv names the environment variable holding the default ledger path.
const ledgerEnv = "PHASOR_LEDGER"

func newRootCmd() *cobra.Command {
	var level string

	root := &cobra.Command{
		Use:           "phaseunwrap",
		Short:         "Unwrap n-dimensional phase fields",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(level)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: lvl,
			}))
			slog.SetDefault(logger)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newGenerateCmd(),
		newInspectCmd(),
		newUnwrapCmd(),
		newHistoryCmd(),
	)

	return root
}
