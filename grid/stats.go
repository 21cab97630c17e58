package grid

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of the samples.
func (f *Field) Mean() float64 {
	return stat.Mean(f.data, nil)
}

// Variance returns the unbiased sample variance. A single-sample field has
// variance 0.
func (f *Field) Variance() float64 {
	if len(f.data) < 2 {
		return 0
	}

	return stat.Variance(f.data, nil)
}

// Min returns the smallest sample.
func (f *Field) Min() float64 { return floats.Min(f.data) }

// Max returns the largest sample.
func (f *Field) Max() float64 { return floats.Max(f.data) }

// Sum returns the sum of all samples.
func (f *Field) Sum() float64 { return floats.Sum(f.data) }

// RMS returns sqrt(mean(f²)).
func (f *Field) RMS() float64 {
	return math.Sqrt(floats.Dot(f.data, f.data) / float64(len(f.data)))
}

// Dot returns Σ a·b over all samples.
func Dot(a, b *Field) (float64, error) {
	if err := checkSame(opDot, a, b); err != nil {
		return 0, err
	}

	return floats.Dot(a.data, b.data), nil
}
