// Package grid provides the n-dimensional sample field that every phasor
// algorithm reads and writes.
//
// What:
//
//   - Field stores float64 samples over a rectangular n-axis grid in one flat
//     slice. Axis 0 varies fastest: offset = Σ coord[d]·stride[d], stride[0] = 1.
//   - Offset/Coordinate/InBounds/Neighbor give random and axis-neighbour access.
//   - Lines visits every 1-D line along an axis (separable transforms, raster scans).
//   - Elementwise operators (Sub, Mul, AddConst, Scale, Map, Rescale, Threshold,
//     RemoveMean) and statistics (Mean, Variance, Min, Max, RMS, Dot) cover the
//     arithmetic that the unwrapping pipelines compose.
//   - Components finds axis-connected groups of flagged samples.
//
// Why:
//
//   - Unwrapping algorithms address samples through offsets and strides only,
//     so the dimension is a runtime value instead of a type parameter.
//   - A single flat buffer keeps every pass cache-friendly and lets gonum's
//     floats/stat kernels run directly on the backing slice.
//
// Complexity:
//
//   - Offset, Coordinate, Neighbor, At, Set: O(n) for n axes.
//   - Elementwise operators and statistics: O(N) for N samples.
//   - Components: O(N·2n), Memory: O(N).
//
// Errors:
//
//   - ErrBadShape:      no axes, or an axis extent < 1.
//   - ErrSizeMismatch:  data length differs from the product of the extents.
//   - ErrOutOfRange:    coordinate or axis outside the grid.
//   - ErrShapeMismatch: binary operator on fields of different shape.
package grid
