package phase

import (
	"math"

	"github.com/katalvlaran/phasor/grid"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold reports whether Quality returns a binary mask.
	DefaultThreshold = false

	// DefaultThresholdValue is the lower bound of the "trusted" quality band.
	DefaultThresholdValue = 0.75

	// ThresholdUpper is the upper bound of the trusted band. It sits slightly
	// above 1 so that samples rescaled to exactly 1 survive rounding.
	ThresholdUpper = 1.1

	// DefaultWeighted reports whether Laplacian scales terms by quality.
	DefaultWeighted = false

	// DefaultFilterRadius is the half-width of the Mean and Median windows.
	DefaultFilterRadius = 3
)

const (
	panicThresholdInvalid = "phase: WithThreshold: value must be finite and in [0, 1.1)"
	panicQualityNil       = "phase: WithQuality: quality field must not be nil"
)

// Options configures Quality and Laplacian.
type Options struct {
	Threshold      bool        // Quality returns a binary mask
	ThresholdValue float64     // lower bound of the trusted band
	Weighted       bool        // Laplacian scales each term by min(q_c², q_k²)
	Quality        *grid.Field // external quality; nil means derive it from the phase
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults: no threshold (value 0.75),
// unweighted Laplacian, derived quality.
func DefaultOptions() Options {
	return Options{
		Threshold:      DefaultThreshold,
		ThresholdValue: DefaultThresholdValue,
		Weighted:       DefaultWeighted,
	}
}

// WithThreshold turns Quality into a binary mask: 1 where value <= q <= 1.1,
// 0 elsewhere. Panics if value is not finite or lies outside [0, 1.1).
func WithThreshold(value float64) Option {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value >= ThresholdUpper {
		panic(panicThresholdInvalid)
	}
	return func(o *Options) {
		o.Threshold = true
		o.ThresholdValue = value
	}
}

// WithWeighting enables quality weighting of the Laplacian.
func WithWeighting() Option {
	return func(o *Options) {
		o.Weighted = true
	}
}

// WithQuality supplies the quality field used for weighting and implies
// WithWeighting. Panics on nil.
func WithQuality(q *grid.Field) Option {
	if q == nil {
		panic(panicQualityNil)
	}
	return func(o *Options) {
		o.Weighted = true
		o.Quality = q
	}
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
