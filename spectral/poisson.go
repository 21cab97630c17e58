package spectral

import (
	"math"

	"github.com/katalvlaran/phasor/grid"
)

// Solve returns the zero-mean solution φ of the Neumann Poisson problem
// ∇²φ = rhs. In the cosine basis the Laplacian is diagonal with eigenvalues
// λ(k) = −2n + 2 Σ_d cos(πk_d/size_d); every coefficient is divided by its
// eigenvalue and the zero-frequency coefficient is set to 0.
// Complexity: O(N·Σ_d log size_d).
func Solve(rhs *grid.Field) (*grid.Field, error) {
	coeff, err := Transform(rhs, Forward)
	if err != nil {
		return nil, err
	}

	// Per-axis cosine tables: cosines[d][k] = 2·cos(πk/size_d).
	dims := coeff.Dims()
	cosines := make([][]float64, dims)
	for d := range cosines {
		size := coeff.Size(d)
		cosines[d] = make([]float64, size)
		for k := range cosines[d] {
			cosines[d][k] = 2 * math.Cos(math.Pi*float64(k)/float64(size))
		}
	}

	data := coeff.Data()
	data[0] = 0
	for i := 1; i < len(data); i++ {
		lambda := -2 * float64(dims)
		for d := 0; d < dims; d++ {
			lambda += cosines[d][coeff.AxisIndex(i, d)]
		}
		data[i] /= lambda
	}

	return Transform(coeff, Inverse)
}
