// Command phaseunwrap generates, inspects and unwraps phase fields stored as
// CSV, and keeps a SQLite ledger of the runs it performs.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("phaseunwrap failed", "err", err)
		os.Exit(1)
	}
}

// envOrDefault returns the environment value for key, or fallback when unset.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
