package phase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phasor/grid"
	"github.com/katalvlaran/phasor/phase"
)

// TestLaplacian_EdgeRule checks that edge samples use their single
// in-range neighbour twice.
func TestLaplacian_EdgeRule(t *testing.T) {
	f := field(t, []float64{0, 1, 3}, 3)
	lap, err := phase.Laplacian(f)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 1, -4}, lap.Data(), tol)
}

// TestLaplacian_Weighted uses an external quality field.
func TestLaplacian_Weighted(t *testing.T) {
	f := field(t, []float64{0, 1, 3}, 3)
	q := field(t, []float64{1, 0.5, 1}, 3)
	lap, err := phase.Laplacian(f, phase.WithQuality(q))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.25, -1}, lap.Data(), tol)
}

// TestLaplacian_WeightedDerived weights by the quality of f itself, which
// must match passing that quality explicitly.
func TestLaplacian_WeightedDerived(t *testing.T) {
	f := field(t, []float64{0, 0.5, 1.5, 1.5, 2, 2.5}, 3, 2)
	weighted, err := phase.Laplacian(f, phase.WithWeighting())
	require.NoError(t, err)

	q, err := phase.Quality(f)
	require.NoError(t, err)
	explicit, err := phase.Laplacian(f, phase.WithQuality(q))
	require.NoError(t, err)
	assert.Equal(t, explicit.Data(), weighted.Data())
}

// TestLaplacian_WrapsDifferences contrasts the wrapped stencil with the
// plain linear operator on a two-sample field.
func TestLaplacian_WrapsDifferences(t *testing.T) {
	f := field(t, []float64{3, -3}, 2)

	lap, err := phase.Laplacian(f)
	require.NoError(t, err)
	step := phase.TwoPi - 6
	assert.InDeltaSlice(t, []float64{2 * step, -2 * step}, lap.Data(), tol)

	lin, err := phase.ApplyLaplacian(f, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-12, 12}, lin.Data(), tol)
}

// TestApplyLaplacian_SingleSampleAxis treats a size-1 axis as contributing zero.
func TestApplyLaplacian_SingleSampleAxis(t *testing.T) {
	f := field(t, []float64{0, 1, 3}, 3, 1)
	lap, err := phase.ApplyLaplacian(f, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 1, -4}, lap.Data(), tol)
}

// TestLaplacian_Errors covers nil and shape mismatches.
func TestLaplacian_Errors(t *testing.T) {
	f := field(t, []float64{0, 1, 3}, 3)
	q := field(t, []float64{1, 1}, 2)

	_, err := phase.Laplacian(nil)
	assert.ErrorIs(t, err, phase.ErrNilField)
	_, err = phase.Laplacian(f, phase.WithQuality(q))
	assert.ErrorIs(t, err, phase.ErrQualityShape)
	_, err = phase.ApplyLaplacian(f, q)
	assert.ErrorIs(t, err, phase.ErrQualityShape)
	_, err = phase.ApplyLaplacian(nil, nil)
	assert.ErrorIs(t, err, phase.ErrNilField)
}

// TestApplyLaplacian_Constant checks that the operator annihilates constants.
func TestApplyLaplacian_Constant(t *testing.T) {
	c, err := grid.New(4, 5)
	require.NoError(t, err)
	c.Fill(2.5)
	lap, err := phase.ApplyLaplacian(c, nil)
	require.NoError(t, err)
	for _, v := range lap.Data() {
		assert.Equal(t, 0.0, v)
	}
}
