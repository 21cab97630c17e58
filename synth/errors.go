package synth

import "errors"

var (
	// ErrBadSize indicates a field size that cannot hold the requested pattern.
	ErrBadSize = errors.New("synth: size too small")
	// ErrUnsupportedDims indicates a dimension the generator cannot produce.
	ErrUnsupportedDims = errors.New("synth: unsupported number of axes")
	// ErrEmptyProfile indicates a separable profile with no samples.
	ErrEmptyProfile = errors.New("synth: empty profile")
)
