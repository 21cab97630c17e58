package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phasor/grid"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New and FromSlice reject malformed shapes.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		shape []int
		data  []float64
		err   error
	}{
		{"NoAxes", nil, nil, grid.ErrBadShape},
		{"ZeroExtent", []int{3, 0}, nil, grid.ErrBadShape},
		{"NegativeExtent", []int{-1}, nil, grid.ErrBadShape},
		{"ShortData", []int{2, 2}, []float64{1, 2, 3}, grid.ErrSizeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			if tc.data != nil {
				_, err = grid.FromSlice(tc.data, tc.shape...)
			} else {
				_, err = grid.New(tc.shape...)
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFromSlice_Copies checks that the field does not alias the caller's slice.
func TestFromSlice_Copies(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	f, err := grid.FromSlice(src, 3, 2)
	require.NoError(t, err)

	src[0] = 100
	v, err := f.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 2, f.Dims())
	assert.Equal(t, 6, f.Len())
	assert.Equal(t, []int{3, 2}, f.Shape())
}

//----------------------------------------------------------------------------//
// Indexing
//----------------------------------------------------------------------------//

// TestOffsetCoordinate_RoundTrip walks every sample of a 3-D field.
func TestOffsetCoordinate_RoundTrip(t *testing.T) {
	f, err := grid.New(4, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, f.Stride(0))
	assert.Equal(t, 4, f.Stride(1))
	assert.Equal(t, 12, f.Stride(2))

	for off := 0; off < f.Len(); off++ {
		coord := f.Coordinate(off)
		back, err := f.Offset(coord)
		require.NoError(t, err)
		assert.Equal(t, off, back)
		for d := 0; d < f.Dims(); d++ {
			assert.Equal(t, coord[d], f.AxisIndex(off, d))
		}
	}
}

// TestInBounds checks coordinates on a 3×2 grid.
func TestInBounds(t *testing.T) {
	f, err := grid.New(3, 2)
	require.NoError(t, err)

	for _, c := range [][]int{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, f.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range [][]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}, {0}, {0, 0, 0}} {
		assert.False(t, f.InBounds(c), "InBounds(%v)", c)
	}

	_, err = f.At(3, 0)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	assert.ErrorIs(t, f.Set(1, 0, 5), grid.ErrOutOfRange)
}

// TestNeighbor checks in-range and edge behaviour without wrap-around.
func TestNeighbor(t *testing.T) {
	f, err := grid.New(3, 2)
	require.NoError(t, err)

	n, ok := f.Neighbor(0, 0, +1)
	assert.True(t, ok)
	assert.Equal(t, 1, n)

	_, ok = f.Neighbor(2, 0, +1)
	assert.False(t, ok, "no wrap from the end of a row")

	n, ok = f.Neighbor(1, 1, +1)
	assert.True(t, ok)
	assert.Equal(t, 4, n)

	_, ok = f.Neighbor(4, 1, +1)
	assert.False(t, ok)

	// corner (0,0): only +x and +y exist
	assert.Equal(t, []int{1, 3}, f.NeighborOffsets(nil, 0))
	// centre of the bottom row (1,1): -x, +x, -y
	assert.Equal(t, []int{3, 5, 1}, f.NeighborOffsets(nil, 4))
}

// TestShifted verifies the zero-flux boundary of shifted copies.
func TestShifted(t *testing.T) {
	f, err := grid.FromSlice([]float64{
		1, 2, 3,
		4, 5, 6,
	}, 3, 2)
	require.NoError(t, err)

	s, err := f.Shifted(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 3, 5, 6, 6}, s.Data())

	s, err = f.Shifted(1, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, s.Data())

	_, err = f.Shifted(2, 1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestLines enumerates lines along both axes of a 3×2 grid.
func TestLines(t *testing.T) {
	f, err := grid.New(3, 2)
	require.NoError(t, err)

	type line struct{ start, stride, length int }
	var got []line
	f.Lines(0, func(start, stride, length int) {
		got = append(got, line{start, stride, length})
	})
	assert.Equal(t, []line{{0, 1, 3}, {3, 1, 3}}, got)

	assert.Equal(t, []int{0, 1, 2}, f.LineStarts(1))
}

// TestClone_Independent checks that Clone performs a deep copy.
func TestClone_Independent(t *testing.T) {
	f, err := grid.FromSlice([]float64{1, 2}, 2)
	require.NoError(t, err)
	g := f.Clone()
	g.Data()[0] = 9

	assert.Equal(t, 1.0, f.Data()[0])
	assert.True(t, f.SameShape(g))
	assert.Equal(t, "Field[2]", f.String())
}
