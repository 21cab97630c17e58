package phase

import (
	"fmt"

	"github.com/katalvlaran/phasor/grid"
)

// Residues marks the phase residues of f in the plane of axes 0 and 1.
//
// For every elementary 2×2 cell whose upper-left corner is at (x, y, ...)
// the wrapped differences are summed around the loop
// UL → LL → LR → UR → UL. A sum ≤ −1 gives −1, a sum ≥ 1 gives +1, anything
// else 0. The result is stored at the upper-left corner; the last index along
// axes 0 and 1 has no cell and stays 0. Higher axes are evaluated plane by plane.
//
// Returns ErrTooFewAxes for one-dimensional fields.
// Complexity: O(N).
func Residues(f *grid.Field) (*grid.Field, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if f.Dims() < 2 {
		return nil, fmt.Errorf("%w: residues of a %d-axis field", ErrTooFewAxes, f.Dims())
	}

	out := grid.NewLike(f)
	src, dst := f.Data(), out.Data()
	s0, s1 := f.Stride(0), f.Stride(1)
	last0, last1 := f.Size(0)-1, f.Size(1)-1

	for i := range src {
		if f.AxisIndex(i, 0) == last0 || f.AxisIndex(i, 1) == last1 {
			continue
		}
		ul, ur, ll, lr := src[i], src[i+s0], src[i+s1], src[i+s0+s1]
		sum := Wrap(ll-ul) + Wrap(lr-ll) + Wrap(ur-lr) + Wrap(ul-ur)
		switch {
		case sum < -1:
			dst[i] = -1
		case sum < 1:
			dst[i] = 0
		default:
			dst[i] = 1
		}
	}

	return out, nil
}

// ResidueCount returns the number of positive and negative residues of f.
func ResidueCount(f *grid.Field) (positive, negative int, err error) {
	r, err := Residues(f)
	if err != nil {
		return 0, 0, err
	}
	for _, v := range r.Data() {
		switch {
		case v > 0:
			positive++
		case v < 0:
			negative++
		}
	}

	return positive, negative, nil
}

// ResidueFree reports whether f has no residue anywhere. On such fields every
// path-following unwrap yields the same result up to a constant.
func ResidueFree(f *grid.Field) (bool, error) {
	pos, neg, err := ResidueCount(f)
	if err != nil {
		return false, err
	}

	return pos == 0 && neg == 0, nil
}

// ResidueClusters groups residues that touch along an axis. Each cluster
// lists flat offsets; isolated residues form single-element clusters.
func ResidueClusters(f *grid.Field) ([][]int, error) {
	r, err := Residues(f)
	if err != nil {
		return nil, err
	}
	mask := make([]bool, r.Len())
	for i, v := range r.Data() {
		mask[i] = v != 0
	}

	return r.Components(mask)
}
