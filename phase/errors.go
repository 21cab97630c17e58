package phase

import "errors"

var (
	// ErrNilField indicates a nil phase field argument.
	ErrNilField = errors.New("phase: field is nil")
	// ErrTooFewAxes indicates an operation that needs at least two axes.
	ErrTooFewAxes = errors.New("phase: at least two axes required")
	// ErrQualityShape indicates a quality field whose shape differs from the phase field.
	ErrQualityShape = errors.New("phase: quality field shape does not match phase field")
	// ErrBadRadius indicates a neighbourhood radius below one.
	ErrBadRadius = errors.New("phase: radius must be >= 1")
)
