// Package unwrap recovers continuous phase from a wrapped phase field.
//
// Four strategies are offered, selected by a Strategy tag and dispatched by
// Unwrap, or called directly:
//
//   - RasterScan (Raster): Itoh's method. Every line along a scan axis keeps
//     its first sample and unwraps each following sample against its
//     predecessor. O(N), ignores quality.
//   - SpectralLeastSquares (Spectral): the unweighted wrapped Laplacian, with
//     its mean removed, is handed to the cosine-basis Poisson solver. One
//     pass, globally L2-optimal, zero-mean output.
//   - QualityGuided (Guided): best-first growth from a seed. The
//     candidate frontier is a max-heap keyed by quality plus a presence set;
//     inserting an index that is already a candidate is a no-op, so the first
//     quality recorded for an index stands until it is settled. Equal
//     qualities pop in insertion order.
//   - IterativeLeastSquares (Iterative): preconditioned conjugate gradients on
//     the quality-weighted Laplacian, using the Poisson solver as the
//     preconditioner. Stopping at the iteration cap is not an error.
//
// Helmholtz splits wrapped phase into its irrotational part (the spectral
// solution, wrapped) and the rotational remainder.
//
// Complexity:
//
//	– Raster:        O(N)
//	– Spectral:      O(N log N)
//	– Guided:        O(N log N); the frontier holds at most N entries.
//	– Iterative:     O(k·N log N) for k iterations.
//
// Options:
//
//	– WithAxis(a):          raster scan axis (default 0).
//	– WithSeed(coord...):   quality-guided seed (default: origin).
//	– WithQuality(q):       external quality field for QualityGuided and Iterative.
//	– WithMaxIterations(n): iteration cap (default 100).
//	– WithEpsilon(e):       relative residual at which Iterative stops (default 0.001).
//	– WithLogger(l):        *slog.Logger for solver progress (default discards).
//
// Errors (sentinel):
//
//	– ErrNilField         nil input field.
//	– ErrBadAxis          scan axis outside the field.
//	– ErrSeedOutOfRange   seed coordinate outside the field; nothing is mutated.
//	– ErrUnknownStrategy  Strategy value or name not recognised.
//
// A quality field whose shape differs from the phase field is reported with
// phase.ErrQualityShape.
package unwrap
