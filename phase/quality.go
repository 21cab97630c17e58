package phase

import (
	"math"

	"github.com/katalvlaran/phasor/grid"
)

// stencil is the number of samples per axis in the derivative-variance window.
const stencil = 3

// DerivativeVariance computes the phase-derivative variance of f.
//
// For every sample and every axis i, the i-th component of the directional
// derivative vector is read at the previous, centre and next sample along i
// (an out-of-range sample repeats the centre). The squared deviations from
// their mean are summed per axis; the result is Σ_i sqrt(sum_i) / 9.
// The divisor is 9 for every dimension, the area of a 3×3 window, not the
// 3ⁿ-sample window squared; raw values are therefore 9× larger in 2-D than
// under that convention. Quality rescales and is unaffected.
// Higher values mean noisier, less trustworthy phase.
//
// Complexity: O(N·n).
func DerivativeVariance(f *grid.Field) (*grid.Field, error) {
	// 1) Directional derivative vector, one field per axis.
	diffs, err := Differences(f)
	if err != nil {
		return nil, err
	}

	// 2) Per-sample, per-axis 3-point deviation sums.
	out := grid.NewLike(f)
	dst := out.Data()
	norm := 1.0 / float64(stencil*stencil)
	for i := range dst {
		total := 0.0
		for d, diff := range diffs {
			comp := diff.Data()
			c := comp[i]
			prev, next := c, c
			if k, ok := f.Neighbor(i, d, -1); ok {
				prev = comp[k]
			}
			if k, ok := f.Neighbor(i, d, +1); ok {
				next = comp[k]
			}
			mean := (prev + c + next) / stencil
			sum := (prev-mean)*(prev-mean) + (c-mean)*(c-mean) + (next-mean)*(next-mean)
			total += math.Sqrt(sum)
		}
		dst[i] = total * norm
	}

	return out, nil
}

// Quality returns a per-sample trust score in [0, 1] (1 = best) derived from
// the negated, rescaled derivative variance of f. A field of uniform
// variance has quality 1 everywhere. With WithThreshold the result is a
// binary mask instead.
// Complexity: O(N·n).
func Quality(f *grid.Field, opts ...Option) (*grid.Field, error) {
	cfg := gatherOptions(opts)

	pdv, err := DerivativeVariance(f)
	if err != nil {
		return nil, err
	}
	pdv.Scale(-1)
	q := grid.Rescale(pdv, 0, 1)
	if !cfg.Threshold {
		return q, nil
	}

	return grid.Threshold(q, cfg.ThresholdValue, ThresholdUpper, 1, 0), nil
}
