package unwrap

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/phasor/grid"
)

const (
	// DefaultAxis is the raster scan axis.
	DefaultAxis = 0

	// DefaultMaxIterations caps the iterative solver.
	DefaultMaxIterations = 100

	// DefaultEpsilon is the relative residual at which the iterative solver stops.
	DefaultEpsilon = 0.001
)

const (
	panicAxisNegative   = "unwrap: WithAxis: axis must be >= 0"
	panicQualityNil     = "unwrap: WithQuality: quality field must not be nil"
	panicIterations     = "unwrap: WithMaxIterations: cap must be >= 1"
	panicEpsilonInvalid = "unwrap: WithEpsilon: epsilon must be finite and > 0"
	panicLoggerNil      = "unwrap: WithLogger: logger must not be nil"
)

// Options configures Unwrap.
//
// Axis          – raster scan axis.
// Seed          – quality-guided seed coordinate; nil means the origin.
// Quality       – external quality field; nil means derive it from the phase.
// MaxIterations – iteration cap of the iterative solver.
// Epsilon       – relative residual at which the iterative solver stops.
// Logger        – receives solver progress.
type Options struct {
	Axis          int
	Seed          []int
	Quality       *grid.Field
	MaxIterations int
	Epsilon       float64
	Logger        *slog.Logger
}

// Option is a functional option for Unwrap.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Axis:          DefaultAxis,
		MaxIterations: DefaultMaxIterations,
		Epsilon:       DefaultEpsilon,
		Logger:        discardLogger(),
	}
}

// WithAxis sets the raster scan axis. Panics on a negative axis; an axis
// beyond the field is reported as ErrBadAxis when Unwrap runs.
func WithAxis(axis int) Option {
	if axis < 0 {
		panic(panicAxisNegative)
	}
	return func(o *Options) {
		o.Axis = axis
	}
}

// WithSeed sets the quality-guided seed coordinate. A coordinate outside
// the field is reported as ErrSeedOutOfRange when Unwrap runs.
func WithSeed(coord ...int) Option {
	seed := append([]int(nil), coord...)
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithQuality supplies the quality field. Panics on nil.
func WithQuality(q *grid.Field) Option {
	if q == nil {
		panic(panicQualityNil)
	}
	return func(o *Options) {
		o.Quality = q
	}
}

// WithMaxIterations sets the iterative solver's cap. Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicIterations)
	}
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithEpsilon sets the iterative solver's stopping threshold. Panics unless
// eps is finite and positive.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) {
		o.Epsilon = eps
	}
}

// WithLogger routes solver progress to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) {
		o.Logger = l
	}
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
