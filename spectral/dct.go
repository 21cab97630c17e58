package spectral

import (
	"fmt"
	"math"
	"math/cmplx"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/phasor/grid"
)

// Transform returns the cosine transform of f along every axis.
// f is not modified.
// Complexity: O(N·Σ_d log size_d).
func Transform(f *grid.Field, dir Direction) (*grid.Field, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if dir != Forward && dir != Inverse {
		return nil, fmt.Errorf("%w: %d", ErrBadDirection, int(dir))
	}

	out := f.Clone()
	for axis := 0; axis < out.Dims(); axis++ {
		if err := transformAxis(out, axis, dir); err != nil {
			return nil, err
		}
	}
	if dir == Inverse {
		out.Scale(1 / normalization(out))
	}

	return out, nil
}

// normalization is N·2ⁿ: each axis pass of Forward followed by Inverse
// multiplies by twice the axis length.
func normalization(f *grid.Field) float64 {
	return float64(f.Len()) * math.Ldexp(1, f.Dims())
}

// transformAxis transforms every line along axis in place. Lines are
// partitioned into contiguous batches, one per worker; each worker owns its
// FFT plan and scratch buffers.
func transformAxis(f *grid.Field, axis int, dir Direction) error {
	starts := f.LineStarts(axis)
	n, stride := f.Size(axis), f.Stride(axis)
	data := f.Data()

	workers := 1
	if f.Len() >= MinParallelSamples {
		workers = min(runtime.GOMAXPROCS(0), len(starts))
	}
	per := (len(starts) + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(starts); lo += per {
		batch := starts[lo:min(lo+per, len(starts))]
		g.Go(func() error {
			t := newLineTransform(n)
			for _, start := range batch {
				if err := t.gather(data, start, stride); err != nil {
					return fmt.Errorf("%w: axis %d, line at offset %d", err, axis, start)
				}
				if dir == Forward {
					t.forward()
				} else {
					t.inverse()
				}
				t.scatter(data, start, stride)
			}
			return nil
		})
	}

	return g.Wait()
}

// lineTransform holds the FFT plan and buffers for lines of length n.
type lineTransform struct {
	n       int
	fft     *fourier.FFT
	line    []float64    // n samples of the current line
	seq     []float64    // even extension, 2n samples
	coeff   []complex128 // n+1 half-spectrum coefficients
	twiddle []complex128 // e^{−iπk/(2n)}, k < n
}

func newLineTransform(n int) *lineTransform {
	t := &lineTransform{
		n:       n,
		fft:     fourier.NewFFT(2 * n),
		line:    make([]float64, n),
		seq:     make([]float64, 2*n),
		coeff:   make([]complex128, n+1),
		twiddle: make([]complex128, n),
	}
	for k := range t.twiddle {
		t.twiddle[k] = cmplx.Exp(complex(0, -math.Pi*float64(k)/float64(2*n)))
	}

	return t
}

func (t *lineTransform) gather(data []float64, start, stride int) error {
	for j := range t.line {
		v := data[start+j*stride]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
		t.line[j] = v
	}

	return nil
}

func (t *lineTransform) scatter(data []float64, start, stride int) {
	for j, v := range t.line {
		data[start+j*stride] = v
	}
}

// forward computes REDFT10 of t.line in place. The length-2n DFT of the
// even extension satisfies V_k = e^{iπk/(2n)}·Y_k.
func (t *lineTransform) forward() {
	n := t.n
	for j, v := range t.line {
		t.seq[j] = v
		t.seq[2*n-1-j] = v
	}
	t.coeff = t.fft.Coefficients(t.coeff, t.seq)
	for k := range t.line {
		t.line[k] = real(t.twiddle[k] * t.coeff[k])
	}
}

// inverse computes REDFT01 of t.line in place (unnormalised) by building the
// Hermitian half-spectrum Z_k = X_k·e^{iπk/(2n)}, Z_n = 0 and taking the
// inverse real FFT.
func (t *lineTransform) inverse() {
	n := t.n
	for k, v := range t.line {
		t.coeff[k] = complex(v, 0) * cmplx.Conj(t.twiddle[k])
	}
	t.coeff[n] = 0
	t.seq = t.fft.Sequence(t.seq, t.coeff)
	copy(t.line, t.seq[:n])
}
