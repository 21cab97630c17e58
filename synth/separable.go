package synth

import (
	"fmt"
	"math"

	"github.com/katalvlaran/phasor/grid"
	"github.com/katalvlaran/phasor/phase"
)

// Separable returns the field Σ_d profiles[d][x_d], one profile per axis.
// When every increment of every profile is below π in magnitude the wrapped
// field has no residues.
// Complexity: O(N·n).
func Separable(profiles ...[]float64) (*grid.Field, error) {
	shape := make([]int, len(profiles))
	for d, p := range profiles {
		if len(p) == 0 {
			return nil, fmt.Errorf("%w: axis %d", ErrEmptyProfile, d)
		}
		shape[d] = len(p)
	}
	f, err := grid.New(shape...)
	if err != nil {
		return nil, err
	}
	data := f.Data()
	for i := range data {
		sum := 0.0
		for d, p := range profiles {
			sum += p[f.AxisIndex(i, d)]
		}
		data[i] = sum
	}

	return f, nil
}

// Vortex returns Wrap(charge·atan2(y − c, x − c)) on a size×size field,
// c = (size−1)/2. With an even size and |charge| = 1 the centre cell is the
// only residue, of sign −charge.
func Vortex(size, charge int) (*grid.Field, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: vortex of size %d", ErrBadSize, size)
	}
	f, err := grid.New(size, size)
	if err != nil {
		return nil, err
	}
	c := float64(size-1) / 2
	data := f.Data()
	for i := range data {
		x, y := float64(f.AxisIndex(i, 0)), float64(f.AxisIndex(i, 1))
		data[i] = phase.Wrap(float64(charge) * math.Atan2(y-c, x-c))
	}

	return f, nil
}
