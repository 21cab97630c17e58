package spectral

import "errors"

// Direction selects the cosine transform applied by Transform.
type Direction int

const (
	// Forward is the unnormalised DCT-II.
	Forward Direction = iota
	// Inverse is the DCT-III scaled so that it undoes Forward.
	Inverse
)

// MinParallelSamples is the field size from which Transform spreads the lines
// of an axis over several goroutines.
const MinParallelSamples = 1 << 12

// String returns "forward" or "inverse".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	default:
		return "unknown"
	}
}

var (
	// ErrNilField indicates a nil input field.
	ErrNilField = errors.New("spectral: field is nil")
	// ErrBadDirection indicates an unknown transform direction.
	ErrBadDirection = errors.New("spectral: unknown direction")
	// ErrNonFinite indicates NaN or infinite input samples.
	ErrNonFinite = errors.New("spectral: non-finite sample")
)
