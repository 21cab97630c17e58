package synth

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/katalvlaran/phasor/grid"
)

// SimplexConfig parameterises Simplex.
type SimplexConfig struct {
	Seed        int64   // noise seed
	Amplitude   float64 // peak deviation from zero, in radians
	Frequency   float64 // base frequency in cycles per sample
	Octaves     int     // number of layered frequencies
	Persistence float64 // amplitude ratio between consecutive octaves
}

// DefaultSimplexConfig returns a gentle surface spanning about ±3 turns.
func DefaultSimplexConfig() SimplexConfig {
	return SimplexConfig{
		Seed:        1,
		Amplitude:   6 * math.Pi,
		Frequency:   0.02,
		Octaves:     3,
		Persistence: 0.5,
	}
}

// Simplex returns a smooth, continuous phase surface of the given shape
// (one to three axes) built from layered OpenSimplex noise. The values lie
// in [−Amplitude, Amplitude).
// Complexity: O(N·Octaves).
func Simplex(cfg SimplexConfig, shape ...int) (*grid.Field, error) {
	if len(shape) < 1 || len(shape) > 3 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedDims, len(shape))
	}
	f, err := grid.New(shape...)
	if err != nil {
		return nil, err
	}
	octaves := max(cfg.Octaves, 1)
	noise := opensimplex.NewNormalized(cfg.Seed)

	data := f.Data()
	coord := make([]float64, 3)
	for i := range data {
		for d := range coord {
			coord[d] = 0
			if d < f.Dims() {
				coord[d] = float64(f.AxisIndex(i, d))
			}
		}
		v := octaveNoise(noise, coord, octaves, cfg.Frequency, cfg.Persistence)
		data[i] = (2*v - 1) * cfg.Amplitude
	}

	return f, nil
}

// octaveNoise layers octaves of noise, each at twice the frequency and
// persistence times the amplitude of the previous one. The result stays in
// the generator's [0, 1) range.
func octaveNoise(noise opensimplex.Noise, p []float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval3(p[0]*frequency, p[1]*frequency, p[2]*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
