package phase_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phasor/grid"
	"github.com/katalvlaran/phasor/phase"
)

// vortex returns atan2(y − c, x − c) on an n×n grid, c = (n−1)/2.
func vortex(t *testing.T, n int) *grid.Field {
	t.Helper()
	f, err := grid.New(n, n)
	require.NoError(t, err)
	c := float64(n-1) / 2
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			require.NoError(t, f.Set(math.Atan2(float64(y)-c, float64(x)-c), x, y))
		}
	}
	return f
}

// TestResidues_Vortex finds exactly one residue in the cell around the centre.
func TestResidues_Vortex(t *testing.T) {
	f := vortex(t, 4)
	r, err := phase.Residues(f)
	require.NoError(t, err)

	for i, v := range r.Data() {
		if i == 5 {
			assert.Equal(t, -1.0, v)
			continue
		}
		assert.Equal(t, 0.0, v, "unexpected residue at offset %d", i)
	}

	pos, neg, err := phase.ResidueCount(f)
	require.NoError(t, err)
	assert.Equal(t, 0, pos)
	assert.Equal(t, 1, neg)

	free, err := phase.ResidueFree(f)
	require.NoError(t, err)
	assert.False(t, free)

	clusters, err := phase.ResidueClusters(f)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{5}}, clusters)
}

// TestResidues_SmoothField has none.
func TestResidues_SmoothField(t *testing.T) {
	f, err := grid.New(6, 5, 2)
	require.NoError(t, err)
	for i := range f.Data() {
		c := f.Coordinate(i)
		f.Data()[i] = phase.Wrap(0.7*float64(c[0]) - 0.4*float64(c[1]) + float64(c[2]))
	}
	free, err := phase.ResidueFree(f)
	require.NoError(t, err)
	assert.True(t, free)
}

// TestResidues_Errors rejects nil and one-axis fields.
func TestResidues_Errors(t *testing.T) {
	_, err := phase.Residues(nil)
	assert.ErrorIs(t, err, phase.ErrNilField)

	line := field(t, []float64{0, 1, 2}, 3)
	_, err = phase.Residues(line)
	assert.ErrorIs(t, err, phase.ErrTooFewAxes)
	_, _, err = phase.ResidueCount(line)
	assert.ErrorIs(t, err, phase.ErrTooFewAxes)
}

// TestGradient_WrappedRamp recovers the slope across the ±π seam.
func TestGradient_WrappedRamp(t *testing.T) {
	const n, slope = 20, 0.5
	data := make([]float64, n)
	for x := range data {
		data[x] = phase.Wrap(slope * float64(x))
	}
	g, err := phase.Gradient(field(t, data, n))
	require.NoError(t, err)
	require.Len(t, g, 1)

	for x := 1; x < n-1; x++ {
		assert.InDelta(t, slope, g[0].Data()[x], 1e-9, "x=%d", x)
	}

	_, err = phase.Gradient(nil)
	assert.ErrorIs(t, err, phase.ErrNilField)
}

// TestGradient_2D returns one component per axis.
func TestGradient_2D(t *testing.T) {
	f, err := grid.New(8, 8)
	require.NoError(t, err)
	for i := range f.Data() {
		c := f.Coordinate(i)
		f.Data()[i] = phase.Wrap(0.9*float64(c[0]) - 0.6*float64(c[1]))
	}
	g, err := phase.Gradient(f)
	require.NoError(t, err)
	require.Len(t, g, 2)

	v, err := g[0].At(3, 4)
	require.NoError(t, err)
	assert.InDelta(t, 0.9, v, 1e-9)
	v, err = g[1].At(3, 4)
	require.NoError(t, err)
	assert.InDelta(t, -0.6, v, 1e-9)
}
