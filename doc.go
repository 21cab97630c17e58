// Package phasor recovers continuous phase from wrapped, n-dimensional
// phase fields such as interferograms, MRI phase maps and fringe patterns.
//
// What is phasor?
//
//	A small set of packages that build on one another:
//		• grid      – the n-axis float64 field, neighbours, statistics
//		• phase     – wrapping, wrapped differences, quality, Laplacian, residues, filters
//		• spectral  – cosine transforms and the Neumann Poisson solver
//		• unwrap    – raster, spectral least-squares, quality-guided and iterative PCG unwrapping
//		• synth     – synthetic test fields (ramps, shear, noise, OpenSimplex surfaces, vortices)
//
// Under the hood, every algorithm addresses samples through flat offsets and
// strides, so one code path serves 1-D lines, 2-D images and 3-D volumes.
//
// Quick example:
//
//	f, _ := synth.Examples(synth.WithSize(128), synth.WithShear())
//	res, err := unwrap.Unwrap(f, unwrap.IterativeLeastSquares,
//		unwrap.WithMaxIterations(50),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Iterations, res.Epsilon)
//
// The cmd/phaseunwrap tool wraps the same pipeline for CSV files and keeps a
// SQLite ledger of its runs.
//
//	go install github.com/katalvlaran/phasor/cmd/phaseunwrap@latest
package phasor
