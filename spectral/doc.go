// Package spectral implements the separable cosine transforms and the
// Poisson solver behind least-squares phase unwrapping.
//
// What:
//
//   - Transform applies an unnormalised DCT-II (Forward) or a normalised
//     DCT-III (Inverse) along every axis of a field, so that
//     Transform(Transform(f, Forward), Inverse) reproduces f.
//   - Solve inverts the discrete Laplacian with zero-flux (Neumann) boundary
//     in the cosine basis. The zero-frequency coefficient is set to 0, so the
//     returned solution has zero mean.
//
// Conventions:
//
//	Forward (REDFT10):  Y_k = 2 Σ_j x_j cos(π(j+½)k/n)
//	Inverse (REDFT01):  y_j = X_0 + 2 Σ_{k≥1} X_k cos(πk(j+½)/n), divided by N·2ⁿ
//	Eigenvalues:        λ(k) = −2n + 2 Σ_d cos(πk_d/size_d)
//
// Each line of length n is computed with one real FFT of length 2n of its
// even extension (gonum dsp/fourier). Lines of one axis are independent and
// are split across up to GOMAXPROCS goroutines once a field holds at least
// MinParallelSamples samples; the result does not depend on the split.
//
// Complexity:
//
//   - Transform, Solve: O(N·Σ_d log size_d) time, O(N) memory.
//
// Errors:
//
//   - ErrNilField:     nil input.
//   - ErrBadDirection: a Direction other than Forward or Inverse.
//   - ErrNonFinite:    the input holds NaN or ±Inf.
package spectral
