package synth

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/phasor/grid"
	"github.com/katalvlaran/phasor/phase"
)

// Defaults of the examples source.
const (
	DefaultSize      = 256
	DefaultNoiseMean = 0.0
	DefaultNoiseSD   = math.Pi / 2
	DefaultNoiseSeed = 0
)

const (
	panicSizeInvalid    = "synth: WithSize: size must be >= 8"
	panicNoiseSDInvalid = "synth: WithNoiseSD: standard deviation must be finite and >= 0"
)

// ExampleOptions configures Examples.
//
// Size      – extent of both axes.
// Shear     – negate the band of rows [3/8, 5/8)·Size along axis 1.
// Noise     – add Gaussian noise inside the square [1/4, 1/2)·Size.
// NoiseMean – mean of the noise.
// NoiseSD   – standard deviation of the noise.
// NoiseSeed – seed of the noise source; equal seeds give equal fields.
// Wrap      – wrap the result into (−π, π].
type ExampleOptions struct {
	Size      int
	Shear     bool
	Noise     bool
	NoiseMean float64
	NoiseSD   float64
	NoiseSeed uint64
	Wrap      bool
}

// ExampleOption mutates ExampleOptions.
type ExampleOption func(*ExampleOptions)

// DefaultExampleOptions returns a 256×256 wrapped ramp without shear or noise.
func DefaultExampleOptions() ExampleOptions {
	return ExampleOptions{
		Size:      DefaultSize,
		NoiseMean: DefaultNoiseMean,
		NoiseSD:   DefaultNoiseSD,
		NoiseSeed: DefaultNoiseSeed,
		Wrap:      true,
	}
}

// WithSize sets the extent of both axes. Panics below 8.
func WithSize(n int) ExampleOption {
	if n < 8 {
		panic(panicSizeInvalid)
	}
	return func(o *ExampleOptions) { o.Size = n }
}

// WithShear enables the negated band.
func WithShear() ExampleOption {
	return func(o *ExampleOptions) { o.Shear = true }
}

// WithNoise enables the noise patch.
func WithNoise() ExampleOption {
	return func(o *ExampleOptions) { o.Noise = true }
}

// WithNoiseMean sets the noise mean.
func WithNoiseMean(mu float64) ExampleOption {
	return func(o *ExampleOptions) { o.NoiseMean = mu }
}

// WithNoiseSD sets the noise standard deviation. Panics if sd is negative
// or not finite.
func WithNoiseSD(sd float64) ExampleOption {
	if math.IsNaN(sd) || math.IsInf(sd, 0) || sd < 0 {
		panic(panicNoiseSDInvalid)
	}
	return func(o *ExampleOptions) { o.NoiseSD = sd }
}

// WithNoiseSeed sets the noise seed.
func WithNoiseSeed(seed uint64) ExampleOption {
	return func(o *ExampleOptions) { o.NoiseSeed = seed }
}

// WithoutWrap returns the continuous (unwrapped) field.
func WithoutWrap() ExampleOption {
	return func(o *ExampleOptions) { o.Wrap = false }
}

// Examples returns the synthetic test image. The base pattern is the ramp
// 4π − 8π·x/(Size−1) along axis 0, constant along axis 1.
// Complexity: O(Size²).
func Examples(opts ...ExampleOption) (*grid.Field, error) {
	cfg := DefaultExampleOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	n := cfg.Size

	f, err := grid.New(n, n)
	if err != nil {
		return nil, err
	}
	data := f.Data()

	// 1) Ramp along axis 0.
	for i := range data {
		x := f.AxisIndex(i, 0)
		data[i] = 4*math.Pi - 8*math.Pi*float64(x)/float64(n-1)
	}

	// 2) Sheared band: rows [3n/8, 5n/8) negated.
	if cfg.Shear {
		lo, hi := 3*n/8, 5*n/8
		for y := lo; y < hi; y++ {
			row := data[y*n : (y+1)*n]
			for x := range row {
				row[x] = -row[x]
			}
		}
	}

	// 3) Noise patch [n/4, n/2)², filled in raster order.
	if cfg.Noise {
		noise := distuv.Normal{
			Mu:    cfg.NoiseMean,
			Sigma: cfg.NoiseSD,
			Src:   rand.NewSource(cfg.NoiseSeed),
		}
		lo, hi := n/4, n/2
		for y := lo; y < hi; y++ {
			for x := lo; x < hi; x++ {
				data[x+y*n] += noise.Rand()
			}
		}
	}

	// 4) Wrap.
	if cfg.Wrap {
		return phase.WrapField(f), nil
	}

	return f, nil
}
