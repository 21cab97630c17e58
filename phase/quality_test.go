package phase_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phasor/grid"
	"github.com/katalvlaran/phasor/phase"
)

func field(t *testing.T, data []float64, shape ...int) *grid.Field {
	t.Helper()
	f, err := grid.FromSlice(data, shape...)
	require.NoError(t, err)
	return f
}

// TestDifference_1D checks wrapping and the zeroed last sample.
func TestDifference_1D(t *testing.T) {
	f := field(t, []float64{0, 1, 3, -3}, 4)
	d, err := phase.Difference(f, 0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, -6 + phase.TwoPi, 0}, d.Data(), tol)

	_, err = phase.Difference(f, 1)
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
	_, err = phase.Differences(nil)
	assert.ErrorIs(t, err, phase.ErrNilField)
}

// TestDifferences_2D checks both axes of a 3×2 field.
func TestDifferences_2D(t *testing.T) {
	f := field(t, []float64{
		0, 1, 2,
		1, 3, 5,
	}, 3, 2)
	diffs, err := phase.Differences(f)
	require.NoError(t, err)
	require.Len(t, diffs, 2)
	assert.InDeltaSlice(t, []float64{1, 1, 0, 2, 2, 0}, diffs[0].Data(), tol)
	assert.InDeltaSlice(t, []float64{1, 2, 3, 0, 0, 0}, diffs[1].Data(), tol)
}

// TestDerivativeVariance_1D checks hand-computed stencil values.
func TestDerivativeVariance_1D(t *testing.T) {
	// differences: 1, 2, 0 (last sample forced to zero)
	f := field(t, []float64{0, 1, 3}, 3)
	pdv, err := phase.DerivativeVariance(f)
	require.NoError(t, err)

	want := []float64{
		math.Sqrt(6.0/9.0) / 9,  // 1,1,2 (previous repeats the centre)
		math.Sqrt(2) / 9,        // 1,2,0
		math.Sqrt(24.0/9.0) / 9, // 2,0,0 (next repeats the centre)
	}
	assert.InDeltaSlice(t, want, pdv.Data(), tol)
}

// TestDerivativeVariance_2DScale repeats the 1-D profile over three rows.
// Axis 1 contributes nothing, and the divisor stays 9 in two dimensions.
func TestDerivativeVariance_2DScale(t *testing.T) {
	f := field(t, []float64{0, 1, 3, 0, 1, 3, 0, 1, 3}, 3, 3)
	pdv, err := phase.DerivativeVariance(f)
	require.NoError(t, err)

	row := []float64{math.Sqrt(6.0/9.0) / 9, math.Sqrt(2) / 9, math.Sqrt(24.0/9.0) / 9}
	want := append(append(append([]float64(nil), row...), row...), row...)
	assert.InDeltaSlice(t, want, pdv.Data(), tol)
}

// TestQuality_Constant gives full trust to a flat field.
func TestQuality_Constant(t *testing.T) {
	f := field(t, []float64{1, 1, 1, 1, 1, 1}, 3, 2)
	pdv, err := phase.DerivativeVariance(f)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pdv.Max())

	q, err := phase.Quality(f)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1}, q.Data())
}

// TestQuality_NoisySampleScoresLow places a spike inside a smooth ramp.
func TestQuality_NoisySampleScoresLow(t *testing.T) {
	const n = 9
	data := make([]float64, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			data[x+n*y] = phase.Wrap(0.3 * float64(x))
		}
	}
	spike := 4 + n*4
	data[spike] = phase.Wrap(data[spike] + 2)
	f := field(t, data, n, n)

	q, err := phase.Quality(f)
	require.NoError(t, err)
	assert.InDelta(t, 0, q.Min(), tol)
	assert.InDelta(t, 1, q.Max(), tol)
	assert.Less(t, q.Data()[spike], 0.5)
	assert.Equal(t, 1.0, q.Data()[0], "far from the spike the ramp is fully trusted")

	mask, err := phase.Quality(f, phase.WithThreshold(0.75))
	require.NoError(t, err)
	for _, v := range mask.Data() {
		assert.True(t, v == 0 || v == 1)
	}
	assert.Equal(t, 0.0, mask.Data()[spike])
	assert.Equal(t, 1.0, mask.Data()[0])
}

// TestWithThreshold_Panics guards the option constructor.
func TestWithThreshold_Panics(t *testing.T) {
	assert.Panics(t, func() { phase.WithThreshold(1.1) })
	assert.Panics(t, func() { phase.WithThreshold(-0.1) })
	assert.Panics(t, func() { phase.WithThreshold(math.NaN()) })
	assert.NotPanics(t, func() { phase.WithThreshold(0) })
	assert.Panics(t, func() { phase.WithQuality(nil) })
}

// TestDefaultOptions pins the documented defaults.
func TestDefaultOptions(t *testing.T) {
	o := phase.DefaultOptions()
	assert.False(t, o.Threshold)
	assert.Equal(t, 0.75, o.ThresholdValue)
	assert.False(t, o.Weighted)
	assert.Nil(t, o.Quality)
}
