package grid

import "fmt"

// Neighbor returns the offset one step (step = ±1, or any distance) away
// from offset along axis, and whether that neighbour lies inside the grid.
// There is no wrap-around.
// Complexity: O(1).
func (f *Field) Neighbor(offset, axis, step int) (int, bool) {
	idx := f.AxisIndex(offset, axis) + step
	if idx < 0 || idx >= f.shape[axis] {
		return offset, false
	}

	return offset + step*f.strides[axis], true
}

// NeighborOffsets returns the flat axis-neighbour offsets of offset that lie
// inside the grid, in the fixed order −axis0, +axis0, −axis1, +axis1, ...
// The result is appended to buf to let hot loops reuse storage.
func (f *Field) NeighborOffsets(buf []int, offset int) []int {
	buf = buf[:0]
	for d := range f.shape {
		if n, ok := f.Neighbor(offset, d, -1); ok {
			buf = append(buf, n)
		}
		if n, ok := f.Neighbor(offset, d, +1); ok {
			buf = append(buf, n)
		}
	}

	return buf
}

// Shifted returns a copy of f displaced by step samples along axis:
// out[x] = f[x + step·e_axis]. Samples that would be read from outside the
// grid repeat the nearest in-range sample (zero-flux boundary).
// Complexity: O(N).
func (f *Field) Shifted(axis, step int) (*Field, error) {
	if axis < 0 || axis >= len(f.shape) {
		return nil, fieldErrorf("Shifted", fmt.Errorf("%w: axis %d of %d", ErrOutOfRange, axis, len(f.shape)))
	}
	out := NewLike(f)
	n, stride := f.shape[axis], f.strides[axis]
	for i := range f.data {
		idx := f.AxisIndex(i, axis)
		src := clamp(idx+step, 0, n-1)
		out.data[i] = f.data[i+(src-idx)*stride]
	}

	return out, nil
}

// Lines calls fn once for every 1-D line of samples along axis. Each line is
// described by its first flat offset, the flat stride between consecutive
// samples and its length. Lines are visited in increasing start offset.
// Complexity: O(N) plus the cost of fn.
func (f *Field) Lines(axis int, fn func(start, stride, length int)) {
	n, stride := f.shape[axis], f.strides[axis]
	for i := range f.data {
		if f.AxisIndex(i, axis) != 0 {
			continue
		}
		fn(i, stride, n)
	}
}

// LineStarts returns the start offsets Lines would visit along axis.
func (f *Field) LineStarts(axis int) []int {
	starts := make([]int, 0, len(f.data)/f.shape[axis])
	f.Lines(axis, func(start, _, _ int) {
		starts = append(starts, start)
	})

	return starts
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
