// Package mmult is a small dense matrix-product library with a boundary
// adapter for host scripting runtimes.
//
// What is inside?
//
//   - Dense row-major float64 matrices with shape-checked access.
//   - One product, C = A·B, computed by the textbook triple loop with a
//     deterministic summation order.
//   - Interchangeable kernels: the reference loop, gorgonia/tensor and gonum/mat.
//   - A boundary layer that accepts host rows or flat buffers (row- or
//     column-major), never panics, and reports every failure as a typed error.
//
// Subpackages:
//
//	matrix/   Dense, Multiply, validators, comparisons, slice conversions
//	engine/   Backend interface and the naive / tensor / gonum kernels
//	bridge/   MMult, MMultFlat, Guard and the Kind-tagged *Error
//	examples/ runnable programs
//
// Quick example:
//
//	c, err := bridge.MMult(
//		[][]float64{{1, 2}, {3, 4}},
//		[][]float64{{5, 6}, {7, 8}},
//	)
//	// c == [[19 22] [43 50]]
//
//	_, err = bridge.MMult([][]float64{{1, 2, 3}}, [][]float64{{1, 2}})
//	// bridge.IsDimensionMismatch(err) == true
package mmult
