// Package synth generates synthetic phase fields for tests, benchmarks and
// the command-line tool.
//
//   - Examples reproduces the classic 256×256 test image: a steep ramp along
//     axis 0, an optional sheared band with negated phase, an optional patch
//     of Gaussian noise and wrapping into (−π, π].
//   - Simplex builds smooth phase surfaces from layered OpenSimplex noise.
//   - Separable builds Σ_d profile_d(x_d), which is residue-free whenever every
//     profile increment is below π.
//   - Vortex builds a field with a single phase singularity of a given charge.
//
// None of these functions wrap unless asked to; use phase.WrapField.
package synth
