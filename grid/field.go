package grid

import "fmt"

// Field is an n-dimensional array of float64 samples.
// shape holds the per-axis extents, strides the flat step of each axis and
// data the samples with axis 0 varying fastest.
type Field struct {
	shape   []int
	strides []int
	data    []float64
}

// New allocates a zero-filled field with the given per-axis extents.
// Stage 1 (Validate): at least one axis, every extent >= 1.
// Stage 2 (Prepare): derive strides and allocate the flat buffer.
// Complexity: O(N) time and memory.
func New(shape ...int) (*Field, error) {
	strides, total, err := layout(shape)
	if err != nil {
		return nil, err
	}

	return &Field{
		shape:   append([]int(nil), shape...),
		strides: strides,
		data:    make([]float64, total),
	}, nil
}

// FromSlice builds a field of the given shape holding a copy of data.
// Returns ErrSizeMismatch if len(data) is not the product of the extents.
func FromSlice(data []float64, shape ...int) (*Field, error) {
	f, err := New(shape...)
	if err != nil {
		return nil, err
	}
	if len(data) != len(f.data) {
		return nil, fmt.Errorf("%w: got %d samples for shape %v", ErrSizeMismatch, len(data), shape)
	}
	copy(f.data, data)

	return f, nil
}

// NewLike allocates a zero-filled field with the same shape as f.
func NewLike(f *Field) *Field {
	return &Field{
		shape:   append([]int(nil), f.shape...),
		strides: append([]int(nil), f.strides...),
		data:    make([]float64, len(f.data)),
	}
}

// layout validates shape and returns the strides and the total sample count.
func layout(shape []int) ([]int, int, error) {
	if len(shape) == 0 {
		return nil, 0, ErrBadShape
	}
	strides := make([]int, len(shape))
	total := 1
	for d, n := range shape {
		if n < 1 {
			return nil, 0, fmt.Errorf("%w: axis %d has extent %d", ErrBadShape, d, n)
		}
		strides[d] = total
		total *= n
	}

	return strides, total, nil
}

// Dims returns the number of axes.
func (f *Field) Dims() int { return len(f.shape) }

// Len returns the total number of samples.
func (f *Field) Len() int { return len(f.data) }

// Shape returns a copy of the per-axis extents.
func (f *Field) Shape() []int { return append([]int(nil), f.shape...) }

// Size returns the extent of axis.
func (f *Field) Size(axis int) int { return f.shape[axis] }

// Stride returns the flat distance between neighbours along axis.
func (f *Field) Stride(axis int) int { return f.strides[axis] }

// Data exposes the backing slice. Writes through it mutate the field.
func (f *Field) Data() []float64 { return f.data }

// SameShape reports whether f and g have identical extents on every axis.
func (f *Field) SameShape(g *Field) bool {
	if g == nil || len(f.shape) != len(g.shape) {
		return false
	}
	for d := range f.shape {
		if f.shape[d] != g.shape[d] {
			return false
		}
	}

	return true
}

// InBounds reports whether coord addresses a sample of the field.
// Complexity: O(n).
func (f *Field) InBounds(coord []int) bool {
	if len(coord) != len(f.shape) {
		return false
	}
	for d, c := range coord {
		if c < 0 || c >= f.shape[d] {
			return false
		}
	}

	return true
}

// Offset maps a coordinate to its flat offset, or ErrOutOfRange.
// Complexity: O(n).
func (f *Field) Offset(coord []int) (int, error) {
	if !f.InBounds(coord) {
		return 0, fieldErrorf("Offset", fmt.Errorf("%w: %v not inside %v", ErrOutOfRange, coord, f.shape))
	}
	off := 0
	for d, c := range coord {
		off += c * f.strides[d]
	}

	return off, nil
}

// Coordinate converts a flat offset back to its per-axis coordinate.
// Complexity: O(n).
func (f *Field) Coordinate(offset int) []int {
	coord := make([]int, len(f.shape))
	for d, n := range f.shape {
		coord[d] = offset % n
		offset /= n
	}

	return coord
}

// AxisIndex returns the coordinate of offset along a single axis.
// Complexity: O(1).
func (f *Field) AxisIndex(offset, axis int) int {
	return (offset / f.strides[axis]) % f.shape[axis]
}

// At returns the sample at coord.
func (f *Field) At(coord ...int) (float64, error) {
	off, err := f.Offset(coord)
	if err != nil {
		return 0, err
	}

	return f.data[off], nil
}

// Set stores v at coord.
func (f *Field) Set(v float64, coord ...int) error {
	off, err := f.Offset(coord)
	if err != nil {
		return err
	}
	f.data[off] = v

	return nil
}

// Clone returns a deep copy of f.
// Complexity: O(N).
func (f *Field) Clone() *Field {
	g := NewLike(f)
	copy(g.data, f.data)

	return g
}

// Fill sets every sample to v.
func (f *Field) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

// String renders the shape for logs and test failures.
func (f *Field) String() string {
	return fmt.Sprintf("Field%v", f.shape)
}
