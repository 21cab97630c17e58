package unwrap

import (
	"github.com/katalvlaran/phasor/grid"
	"github.com/katalvlaran/phasor/phase"
	"github.com/katalvlaran/phasor/spectral"
)

// Spectral returns the unweighted least-squares unwrapping of f: the
// Laplacian of the wrapped phase, minus its mean, passed to the Poisson
// solver. The result has zero mean.
// Complexity: O(N log N).
func Spectral(f *grid.Field) (*grid.Field, error) {
	if f == nil {
		return nil, ErrNilField
	}
	lap, err := phase.Laplacian(f)
	if err != nil {
		return nil, err
	}
	lap.RemoveMean()

	return spectral.Solve(lap)
}

// Helmholtz splits wrapped phase f into an irrotational component,
// Wrap(Spectral(f)), and the rotational remainder Wrap(f − irrotational).
func Helmholtz(f *grid.Field) (irrotational, rotational *grid.Field, err error) {
	solved, err := Spectral(f)
	if err != nil {
		return nil, nil, err
	}
	irrotational = phase.WrapField(solved)

	diff, err := grid.Sub(f, irrotational)
	if err != nil {
		return nil, nil, err
	}

	return irrotational, phase.WrapField(diff), nil
}
