package phase

import (
	"fmt"

	"github.com/katalvlaran/phasor/grid"
)

// Laplacian returns the discrete Laplacian of wrapped phase f:
//
//	L[c] = Σ_axes w1·Wrap(f[k1] − f[c]) + w2·Wrap(f[k2] − f[c])
//
// where k1/k2 are the next/previous samples along the axis, substituted by
// the opposite neighbour at the grid edges (see package doc). Unweighted,
// w1 = w2 = 1. With WithWeighting or WithQuality, w = min(q_c², q_k²) using
// the Quality field of f or the supplied one.
// Complexity: O(N·n).
func Laplacian(f *grid.Field, opts ...Option) (*grid.Field, error) {
	if f == nil {
		return nil, ErrNilField
	}
	cfg := gatherOptions(opts)

	var q *grid.Field
	if cfg.Weighted {
		var err error
		if q, err = qualityFor(f, cfg.Quality); err != nil {
			return nil, err
		}
	}

	return laplace(f, q, true), nil
}

// ApplyLaplacian applies the same neighbour and weight rule as Laplacian to
// an unwrapped field p as a linear operator: Σ w·(p[k] − p[c]). A nil q
// gives unit weights.
// Complexity: O(N·n).
func ApplyLaplacian(p, q *grid.Field) (*grid.Field, error) {
	if p == nil {
		return nil, ErrNilField
	}
	if q != nil && !q.SameShape(p) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrQualityShape, q, p)
	}

	return laplace(p, q, false), nil
}

// qualityFor validates an external quality field or derives one from f.
func qualityFor(f, external *grid.Field) (*grid.Field, error) {
	if external == nil {
		return Quality(f)
	}
	if !external.SameShape(f) {
		return nil, fmt.Errorf("%w: %v vs %v", ErrQualityShape, external, f)
	}

	return external, nil
}

// edgeNeighbors returns the next (k1) and previous (k2) offsets of i along
// axis, each replaced by the other at the edges. A single-sample axis
// returns i twice.
func edgeNeighbors(f *grid.Field, i, axis int) (k1, k2 int) {
	n, s := f.Size(axis), f.Stride(axis)
	if n == 1 {
		return i, i
	}
	idx := f.AxisIndex(i, axis)
	k1, k2 = i+s, i-s
	if idx == n-1 {
		k1 = i - s
	}
	if idx == 0 {
		k2 = i + s
	}

	return k1, k2
}

// laplace is the shared stencil. q == nil means unit weights; wrap selects
// wrapped differences (phase) or plain differences (linear operator).
func laplace(f, q *grid.Field, wrap bool) *grid.Field {
	out := grid.NewLike(f)
	src, dst := f.Data(), out.Data()
	var qual []float64
	if q != nil {
		qual = q.Data()
	}

	for i := range dst {
		c := src[i]
		acc := 0.0
		for d := 0; d < f.Dims(); d++ {
			k1, k2 := edgeNeighbors(f, i, d)
			d1, d2 := src[k1]-c, src[k2]-c
			if wrap {
				d1, d2 = Wrap(d1), Wrap(d2)
			}
			if qual != nil {
				d1 *= minSquare(qual[i], qual[k1])
				d2 *= minSquare(qual[i], qual[k2])
			}
			acc += d1 + d2
		}
		dst[i] = acc
	}

	return out
}

// minSquare returns min(a², b²).
func minSquare(a, b float64) float64 {
	a, b = a*a, b*b
	if a < b {
		return a
	}

	return b
}
