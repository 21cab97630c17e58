package phase

import (
	"math"

	"github.com/katalvlaran/phasor/grid"
)

// Gradient estimates the gradient of wrapped phase f without unwrapping it.
//
// Two central-difference gradients are taken, one of f and one of
// Wrap(f + π); the latter moves the ±π seam to where f is near 0. At each
// sample the candidate with the smaller magnitude is kept. Central
// differences use (f[x+1] − f[x−1]) / 2 with out-of-range samples repeating
// the centre. One field per axis is returned.
// Complexity: O(N·n).
func Gradient(f *grid.Field) ([]*grid.Field, error) {
	if f == nil {
		return nil, ErrNilField
	}
	shifted := f.Map(func(v float64) float64 { return Wrap(v + math.Pi) })

	g := centralDifferences(f)
	gs := centralDifferences(shifted)

	out := make([]*grid.Field, f.Dims())
	for d := range out {
		out[d] = grid.NewLike(f)
	}
	for i := 0; i < f.Len(); i++ {
		m, ms := 0.0, 0.0
		for d := range out {
			m += g[d].Data()[i] * g[d].Data()[i]
			ms += gs[d].Data()[i] * gs[d].Data()[i]
		}
		pick := g
		if ms < m {
			pick = gs
		}
		for d := range out {
			out[d].Data()[i] = pick[d].Data()[i]
		}
	}

	return out, nil
}

// centralDifferences returns (f[x+e_d] − f[x−e_d]) / 2 per axis d.
func centralDifferences(f *grid.Field) []*grid.Field {
	src := f.Data()
	out := make([]*grid.Field, f.Dims())
	for d := range out {
		g := grid.NewLike(f)
		dst := g.Data()
		for i := range dst {
			next, prev := i, i
			if k, ok := f.Neighbor(i, d, +1); ok {
				next = k
			}
			if k, ok := f.Neighbor(i, d, -1); ok {
				prev = k
			}
			dst[i] = (src[next] - src[prev]) / 2
		}
		out[d] = g
	}

	return out
}
