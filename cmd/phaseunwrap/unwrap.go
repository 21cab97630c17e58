package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/phasor/grid"
	"github.com/katalvlaran/phasor/internal/runlog"
	"github.com/katalvlaran/phasor/phase"
	"github.com/katalvlaran/phasor/unwrap"
)

type unwrapFlags struct {
	src      sourceFlags
	strategy string
	axis     int
	seed     []int
	maxIter  int
	epsilon  float64
	out      string
	ledger   string
}

// options maps the flags onto unwrap options.
func (u *unwrapFlags) options() ([]unwrap.Option, error) {
	if u.axis < 0 {
		return nil, fmt.Errorf("--axis must be >= 0, got %d", u.axis)
	}
	if u.maxIter < 1 {
		return nil, fmt.Errorf("--max-iter must be >= 1, got %d", u.maxIter)
	}
	if !(u.epsilon > 0) || math.IsInf(u.epsilon, 1) {
		return nil, fmt.Errorf("--epsilon must be > 0, got %g", u.epsilon)
	}

	opts := []unwrap.Option{
		unwrap.WithAxis(u.axis),
		unwrap.WithMaxIterations(u.maxIter),
		unwrap.WithEpsilon(u.epsilon),
		unwrap.WithLogger(slog.Default()),
	}
	if len(u.seed) > 0 {
		opts = append(opts, unwrap.WithSeed(u.seed...))
	}

	return opts, nil
}

func newUnwrapCmd() *cobra.Command {
	var u unwrapFlags

	cmd := &cobra.Command{
		Use:   "unwrap",
		Short: "Unwrap a phase field and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUnwrap(cmd.OutOrStdout(), &u)
		},
	}
	u.src.register(cmd.Flags())
	fs := cmd.Flags()
	fs.StringVarP(&u.strategy, "strategy", "s", unwrap.QualityGuided.String(), "raster, spectral, guided or iterative")
	fs.IntVar(&u.axis, "axis", unwrap.DefaultAxis, "raster: scan axis")
	fs.IntSliceVar(&u.seed, "seed", nil, "guided: seed coordinate, e.g. 32,32")
	fs.IntVar(&u.maxIter, "max-iter", unwrap.DefaultMaxIterations, "iterative: iteration cap")
	fs.Float64Var(&u.epsilon, "epsilon", unwrap.DefaultEpsilon, "iterative: relative residual to stop at")
	fs.StringVarP(&u.out, "out", "o", "", "write the unwrapped field to this CSV file")
	fs.StringVar(&u.ledger, "ledger", envOrDefault(ledgerEnv, ""), "record the run in this SQLite ledger")

	return cmd
}

func runUnwrap(w io.Writer, u *unwrapFlags) error {
	strategy, err := unwrap.ParseStrategy(u.strategy)
	if err != nil {
		return err
	}
	opts, err := u.options()
	if err != nil {
		return err
	}
	f, err := u.src.load()
	if err != nil {
		return err
	}

	pos, neg := 0, 0
	if f.Dims() >= 2 {
		if pos, neg, err = phase.ResidueCount(f); err != nil {
			return err
		}
	}

	start := time.Now()
	res, err := unwrap.Unwrap(f, strategy, opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	slog.Info("unwrapped", "strategy", strategy, "shape", shapeString(f.Shape()), "elapsed", elapsed)

	run := runlog.Run{
		Strategy:   strategy.String(),
		Source:     u.src.name(),
		Shape:      shapeString(f.Shape()),
		Samples:    f.Len(),
		Residues:   pos + neg,
		Iterations: res.Iterations,
		Epsilon:    res.Epsilon,
		MinPhase:   res.Phase.Min(),
		MaxPhase:   res.Phase.Max(),
		DurationNS: int64(elapsed),
	}
	printSummary(w, run, res, u.epsilon)

	if u.out != "" {
		if err := writeFieldFile(u.out, res.Phase); err != nil {
			return err
		}
	}
	if u.ledger == "" {
		return nil
	}

	l, err := runlog.Open(u.ledger)
	if err != nil {
		return err
	}
	rec, recErr := l.Record(run)
	if err := errors.Join(recErr, l.Close()); err != nil {
		return err
	}
	fmt.Fprintf(w, "run        %s\n", rec.ID)

	return nil
}

func printSummary(w io.Writer, run runlog.Run, res *unwrap.Result, eps float64) {
	fmt.Fprintf(w, "strategy   %s\n", run.Strategy)
	fmt.Fprintf(w, "shape      %s (%s samples)\n", run.Shape, humanize.Comma(int64(run.Samples)))
	fmt.Fprintf(w, "residues   %d\n", run.Residues)
	fmt.Fprintf(w, "range      [%.4f, %.4f]\n", run.MinPhase, run.MaxPhase)
	switch {
	case res.History != nil:
		fmt.Fprintf(w, "iterations %d (epsilon %.3g, converged %t)\n", run.Iterations, run.Epsilon, res.Converged(eps))
	case run.Iterations > 0:
		fmt.Fprintf(w, "settled    %s\n", humanize.Comma(int64(run.Iterations)))
	}
	fmt.Fprintf(w, "elapsed    %s\n", run.Duration().Round(time.Microsecond))
}

func writeFieldFile(path string, f *grid.Field) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeField(fh, f); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}
