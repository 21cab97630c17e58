package unwrap

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/phasor/grid"
	"github.com/katalvlaran/phasor/phase"
	"github.com/katalvlaran/phasor/spectral"
)

// Iterative solves the quality-weighted least-squares unwrapping problem with
// preconditioned conjugate gradients.
//
// The residual starts as the weighted Laplacian of f and is normalised by
// its RMS, sum0. Each iteration removes the mean of r, preconditions it with
// the Poisson solver (z), forms beta = r·z and the search direction p,
// applies the weighted Laplacian operator to p (q), and steps the residual
// and the solution by alpha = beta/(p·q). The loop stops once
// RMS(r)/sum0 <= eps or after maxIter iterations; the latter is not an error.
//
// A nil quality is derived with phase.Quality. A zero sum0 yields the zero
// solution without iterating. logger receives one Debug record per iteration
// and an Info summary; nil discards.
// Complexity: O(k·N log N) for k iterations.
func Iterative(f, quality *grid.Field, maxIter int, eps float64, logger *slog.Logger) (*Result, error) {
	if f == nil {
		return nil, ErrNilField
	}
	if maxIter < 1 {
		return nil, fmt.Errorf("unwrap: iterative: maxIter must be >= 1, got %d", maxIter)
	}
	if logger == nil {
		logger = discardLogger()
	}

	// 1) Quality and the weighted Laplacian of the wrapped phase.
	var err error
	if quality == nil {
		if quality, err = phase.Quality(f); err != nil {
			return nil, err
		}
	}
	r, err := phase.Laplacian(f, phase.WithQuality(quality))
	if err != nil {
		return nil, err
	}

	s := grid.NewLike(f)
	res := &Result{Phase: s, Quality: quality}
	sum0 := r.RMS()
	if sum0 == 0 {
		logger.Info("iterative unwrap: zero residual", "samples", f.Len())
		return res, nil
	}

	// 2) Conjugate-gradient loop.
	var (
		p        *grid.Field
		betaPrev float64
	)
	res.Epsilon = 1
	res.History = make([]float64, 0, maxIter)
	for i := 0; i < maxIter; i++ {
		r.RemoveMean()
		z, err := spectral.Solve(r)
		if err != nil {
			return nil, err
		}
		beta, err := grid.Dot(r, z)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			p = z
		} else {
			if err := z.AddScaled(beta/betaPrev, p); err != nil {
				return nil, err
			}
			p = z
		}
		p.RemoveMean()

		q, err := phase.ApplyLaplacian(p, quality)
		if err != nil {
			return nil, err
		}
		pq, err := grid.Dot(p, q)
		if err != nil {
			return nil, err
		}
		if pq == 0 || math.IsNaN(pq) {
			logger.Warn("iterative unwrap: degenerate search direction", "iteration", i, "pq", pq)
			break
		}
		alpha := beta / pq

		if err := r.AddScaled(-alpha, q); err != nil {
			return nil, err
		}
		if err := s.AddScaled(alpha, p); err != nil {
			return nil, err
		}
		s.RemoveMean()

		epsilon := r.RMS() / sum0
		delta := math.Abs(alpha) * p.RMS()
		res.Iterations = i + 1
		res.Epsilon = epsilon
		res.History = append(res.History, epsilon)
		logger.Debug("iterative unwrap",
			"iteration", i,
			"alpha", alpha,
			"beta", beta,
			"epsilon", epsilon,
			"delta", delta,
		)

		if epsilon <= eps {
			break
		}
		betaPrev = beta
	}

	logger.Info("iterative unwrap finished",
		"iterations", res.Iterations,
		"epsilon", res.Epsilon,
		"converged", res.Epsilon <= eps,
	)

	return res, nil
}
