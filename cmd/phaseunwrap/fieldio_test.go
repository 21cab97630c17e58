package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/phasor/grid"
)

func TestReadField(t *testing.T) {
	t.Run("TwoAxes", func(t *testing.T) {
		f, err := readField(strings.NewReader("# shape 3x2\n1, 2, 3\n4,5,6\n"))
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2}, f.Shape())
		v, err := f.At(2, 1)
		require.NoError(t, err)
		assert.Equal(t, 6.0, v)
	})

	t.Run("OneAxis", func(t *testing.T) {
		f, err := readField(strings.NewReader("0.5,-1.25\n"))
		require.NoError(t, err)
		assert.Equal(t, []int{2}, f.Shape())
		assert.Equal(t, []float64{0.5, -1.25}, f.Data())
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := readField(strings.NewReader("# nothing\n"))
		assert.ErrorIs(t, err, errEmptyCSV)

		_, err = readField(strings.NewReader("1,2\n3\n"))
		assert.ErrorIs(t, err, errRaggedCSV)

		_, err = readField(strings.NewReader("1,x\n"))
		assert.Error(t, err)
	})
}

func TestWriteField_RoundTrip(t *testing.T) {
	f, err := grid.FromSlice([]float64{0, 1.5, -3.141592653589793, 2, 1e-9, 7}, 2, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeField(&buf, f))
	assert.True(t, strings.HasPrefix(buf.String(), "# shape 2x3\n"))

	back, err := readField(&buf)
	require.NoError(t, err)
	assert.Equal(t, f.Shape(), back.Shape())
	assert.Equal(t, f.Data(), back.Data())

	cube, err := grid.New(2, 2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, writeField(&buf, cube), errTooManyAxes)
}
