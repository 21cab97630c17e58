package unwrap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/phasor/grid"
)

// Sentinel errors returned by the unwrap strategies.
var (
	// ErrNilField indicates a nil phase field.
	ErrNilField = errors.New("unwrap: field is nil")

	// ErrBadAxis indicates a raster scan axis outside the field.
	ErrBadAxis = errors.New("unwrap: scan axis out of range")

	// ErrSeedOutOfRange indicates a quality-guided seed outside the field.
	ErrSeedOutOfRange = errors.New("unwrap: seed index out of range")

	// ErrUnknownStrategy indicates an unrecognised Strategy.
	ErrUnknownStrategy = errors.New("unwrap: unknown strategy")
)

// Strategy selects an unwrapping algorithm.
type Strategy int

const (
	// RasterScan unwraps each line along one axis against its predecessor.
	RasterScan Strategy = iota

	// SpectralLeastSquares solves the unweighted least-squares problem directly.
	SpectralLeastSquares

	// QualityGuided grows the solution from a seed in order of quality.
	QualityGuided

	// IterativeLeastSquares solves the quality-weighted least-squares problem
	// with preconditioned conjugate gradients.
	IterativeLeastSquares
)

var strategyNames = [...]string{
	RasterScan:            "raster",
	SpectralLeastSquares:  "spectral",
	QualityGuided:         "guided",
	IterativeLeastSquares: "iterative",
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{RasterScan, SpectralLeastSquares, QualityGuided, IterativeLeastSquares}
}

// String returns the short name accepted by ParseStrategy.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a short name ("raster", "spectral", "guided",
// "iterative") or the constant's name ("QualityGuided", ...) to a Strategy.
// Matching ignores case.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies() {
		if key == s.String() || key == strings.ToLower(s.GoString()) {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// GoString returns the name of the Strategy constant.
func (s Strategy) GoString() string {
	switch s {
	case RasterScan:
		return "RasterScan"
	case SpectralLeastSquares:
		return "SpectralLeastSquares"
	case QualityGuided:
		return "QualityGuided"
	case IterativeLeastSquares:
		return "IterativeLeastSquares"
	default:
		return s.String()
	}
}

// Result is the outcome of one Unwrap call.
//
// Phase is always set and never aliases the input. Quality is the field that
// ordered (QualityGuided) or weighted (IterativeLeastSquares) the solve, nil
// otherwise. Iterations counts solver iterations for IterativeLeastSquares
// and settled samples for QualityGuided. Epsilon and History hold the final
// and per-iteration relative residuals of IterativeLeastSquares.
type Result struct {
	Phase      *grid.Field
	Quality    *grid.Field
	Iterations int
	Epsilon    float64
	History    []float64
}

// Converged reports whether an iterative solve reached eps. Other
// strategies are direct and always report true.
func (r *Result) Converged(eps float64) bool {
	if r.History == nil {
		return true
	}

	return r.Epsilon <= eps
}
