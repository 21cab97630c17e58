package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/phasor/grid"
	"github.com/katalvlaran/phasor/phase"
	"github.com/katalvlaran/phasor/synth"
)

// sourceFlags selects where a command's input field comes from: a CSV file
// given by --in, or one of the synthetic generators.
type sourceFlags struct {
	in     string
	source string
	size   int
	shear  bool
	noise  bool
	sd     float64
	seed   int64
	charge int
}

func (s *sourceFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.in, "in", "", "read the wrapped field from this CSV file instead of generating one")
	fs.StringVar(&s.source, "source", "examples", "generator: examples, simplex or vortex")
	fs.IntVar(&s.size, "size", 64, "side length of the generated field")
	fs.BoolVar(&s.shear, "shear", false, "examples: add a sheared band")
	fs.BoolVar(&s.noise, "noise", false, "examples: add a noisy square")
	fs.Float64Var(&s.sd, "noise-sd", 1, "examples: noise standard deviation")
	fs.Int64Var(&s.seed, "noise-seed", 1, "seed of the noise generators")
	fs.IntVar(&s.charge, "charge", 1, "vortex: topological charge")
}

// name describes the input for logs and the ledger.
func (s *sourceFlags) name() string {
	if s.in != "" {
		return s.in
	}
	return s.source
}

// load returns the wrapped input field.
func (s *sourceFlags) load() (*grid.Field, error) {
	if s.in != "" {
		fh, err := os.Open(s.in)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		return readField(fh)
	}

	switch strings.ToLower(s.source) {
	case "examples":
		if s.size < 8 {
			return nil, fmt.Errorf("examples: --size must be >= 8, got %d", s.size)
		}
		if s.sd < 0 {
			return nil, fmt.Errorf("examples: --noise-sd must be >= 0, got %g", s.sd)
		}
		opts := []synth.ExampleOption{
			synth.WithSize(s.size),
			synth.WithNoiseSD(s.sd),
			synth.WithNoiseSeed(uint64(s.seed)),
		}
		if s.shear {
			opts = append(opts, synth.WithShear())
		}
		if s.noise {
			opts = append(opts, synth.WithNoise())
		}
		return synth.Examples(opts...)

	case "simplex":
		cfg := synth.DefaultSimplexConfig()
		cfg.Seed = s.seed
		f, err := synth.Simplex(cfg, s.size, s.size)
		if err != nil {
			return nil, err
		}
		return phase.WrapField(f), nil

	case "vortex":
		return synth.Vortex(s.size, s.charge)

	default:
		return nil, fmt.Errorf("unknown source %q", s.source)
	}
}

// shapeString renders a shape as "64x64".
func shapeString(shape []int) string {
	parts := make([]string, len(shape))
	for i, n := range shape {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, "x")
}
