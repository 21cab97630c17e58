package unwrap

import (
	"fmt"

	"github.com/katalvlaran/phasor/grid"
	"github.com/katalvlaran/phasor/phase"
)

// Raster unwraps f line by line along axis (Itoh's method). The first sample
// of every line is kept; each following sample becomes
// Unwrap(sample, previous unwrapped sample).
// Complexity: O(N).
func Raster(f *grid.Field, axis int) (*grid.Field, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if axis < 0 || axis >= f.Dims() {
		return nil, fmt.Errorf("%w: axis %d of a %d-axis field", ErrBadAxis, axis, f.Dims())
	}

	out := f.Clone()
	data := out.Data()
	out.Lines(axis, func(start, stride, n int) {
		prev := data[start]
		for j := 1; j < n; j++ {
			off := start + j*stride
			data[off] = phase.Unwrap(data[off], prev)
			prev = data[off]
		}
	})

	return out, nil
}
