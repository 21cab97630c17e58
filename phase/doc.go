// Package phase implements the arithmetic shared by every unwrapping
// strategy: wrapping, relative unwrapping, wrapped directional differences,
// the phase-derivative-variance quality metric and the discrete Laplacian of
// wrapped phase.
//
// What:
//
//   - Wrap maps any real to its representative in (−π, π]; WrapPositive to [0, 2π).
//   - Unwrap(target, ref) = ref + Wrap(target − ref): the one step by which
//     continuity is carried from a known sample to an unknown one.
//   - Differences returns, per axis i, Wrap(f[x+e_i] − f[x]) with the last
//     plane along i forced to zero.
//   - DerivativeVariance scores local disorder of those differences (higher is
//     worse); Quality negates and rescales it to [0, 1] and can threshold it.
//   - Laplacian sums Wrap(f[k] − f[c]) over both neighbours of every axis,
//     optionally weighted by min(q_c², q_k²); ApplyLaplacian is the same stencil
//     as a linear operator on unwrapped data.
//   - Residues, Gradient, Mean and Median are diagnostics and denoisers built
//     on the same primitives.
//
// Boundary rule:
//
//	The Laplacian never wraps around. At the last index of an axis the
//	"next" neighbour is replaced by the previous sample, and at the first
//	index the "previous" neighbour is replaced by the next one, so both
//	contributions of an edge sample come from its single in-range neighbour.
//
// Complexity:
//
//   - Differences, DerivativeVariance, Quality, Laplacian, Gradient: O(N·n).
//   - Residues: O(N).
//   - Mean: O(N·n) using running window sums.
//   - Median: O(N·w log w) with w = (2r+1)ⁿ window samples.
//
// Options:
//
//   - WithThreshold(v): Quality returns a binary mask (1 where v <= q <= 1.1).
//   - WithWeighting(): Laplacian weights every term with the Quality field.
//   - WithQuality(q): Laplacian uses an externally supplied quality field.
//
// Errors:
//
//   - ErrNilField:     nil input field.
//   - ErrTooFewAxes:   residues need at least two axes.
//   - ErrQualityShape: quality field shape differs from the phase field.
//   - ErrBadRadius:    filter radius below one.
package phase
