package phase

import (
	"fmt"

	"github.com/katalvlaran/phasor/grid"
)

// Difference returns the wrapped forward difference of f along axis:
// out[x] = Wrap(f[x+e_axis] − f[x]), with out = 0 on the last plane of the
// axis where no forward neighbour exists.
// Complexity: O(N).
func Difference(f *grid.Field, axis int) (*grid.Field, error) {
	if f == nil {
		return nil, ErrNilField
	}
	// 1) Shift backwards by one sample: shifted[x] = f[x+e_axis].
	shifted, err := f.Shifted(axis, +1)
	if err != nil {
		return nil, fmt.Errorf("phase: difference along axis %d: %w", axis, err)
	}

	// 2) Wrap(shifted − f), zeroing the far boundary plane.
	src, dst := f.Data(), shifted.Data()
	last := f.Size(axis) - 1
	for i := range dst {
		if f.AxisIndex(i, axis) == last {
			dst[i] = 0
			continue
		}
		dst[i] = Wrap(dst[i] - src[i])
	}

	return shifted, nil
}

// Differences returns one wrapped forward-difference field per axis. Taken
// together, the i-th samples of the returned fields form the directional
// derivative vector at sample i.
// Complexity: O(N·n).
func Differences(f *grid.Field) ([]*grid.Field, error) {
	if f == nil {
		return nil, ErrNilField
	}
	out := make([]*grid.Field, f.Dims())
	for d := range out {
		diff, err := Difference(f, d)
		if err != nil {
			return nil, err
		}
		out[d] = diff
	}

	return out, nil
}
