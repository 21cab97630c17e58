package phase

import (
	"math"

	"github.com/katalvlaran/phasor/grid"
)

// TwoPi is the period of wrapped phase.
const TwoPi = 2 * math.Pi

// Wrap returns the representative of x in (−π, π] congruent to x modulo 2π.
// Values already inside the interval are returned unchanged, which makes
// Wrap exactly idempotent. NaN and ±Inf yield NaN.
func Wrap(x float64) float64 {
	if x > -math.Pi && x <= math.Pi {
		return x
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	w := math.Mod(x+math.Pi, TwoPi) // (−2π, 2π)
	if w <= 0 {
		w += TwoPi
	}
	w -= math.Pi
	if w <= -math.Pi {
		w += TwoPi
	}

	return w
}

// WrapPositive returns the representative of x in [0, 2π).
func WrapPositive(x float64) float64 {
	if x >= 0 && x < TwoPi {
		return x
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	w := math.Mod(x, TwoPi)
	if w < 0 {
		w += TwoPi
	}
	if w >= TwoPi {
		w = 0
	}

	return w
}

// Unwrap returns reference + Wrap(target − reference): the value congruent
// to target (mod 2π) that lies within π of reference.
func Unwrap(target, reference float64) float64 {
	return reference + Wrap(target-reference)
}

// WrapField returns a new field with Wrap applied to every sample.
func WrapField(f *grid.Field) *grid.Field {
	return f.Map(Wrap)
}
