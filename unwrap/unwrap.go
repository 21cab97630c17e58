package unwrap

import (
	"fmt"

	"github.com/katalvlaran/phasor/grid"
)

// Unwrap runs strategy s on the wrapped phase field f. f is never modified.
//
// Example:
//
//	res, err := unwrap.Unwrap(f, unwrap.QualityGuided, unwrap.WithSeed(64, 64))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Phase.Max() - res.Phase.Min())
func Unwrap(f *grid.Field, s Strategy, opts ...Option) (*Result, error) {
	if f == nil {
		return nil, ErrNilField
	}
	cfg := gatherOptions(opts)

	switch s {
	case RasterScan:
		out, err := Raster(f, cfg.Axis)
		if err != nil {
			return nil, err
		}
		return &Result{Phase: out}, nil

	case SpectralLeastSquares:
		out, err := Spectral(f)
		if err != nil {
			return nil, err
		}
		return &Result{Phase: out}, nil

	case QualityGuided:
		r, err := newGuidedRunner(f, cfg.Seed, cfg.Quality)
		if err != nil {
			return nil, err
		}
		r.init()
		r.process()
		cfg.Logger.Info("quality-guided unwrap finished", "settled", r.count, "frontier", r.front.Len())
		return &Result{Phase: r.out, Quality: r.quality, Iterations: r.count}, nil

	case IterativeLeastSquares:
		return Iterative(f, cfg.Quality, cfg.MaxIterations, cfg.Epsilon, cfg.Logger)

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}
