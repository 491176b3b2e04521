// Package matrix implements dense float64 matrices and their product.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface (Rows, Cols, At, Set, Clone) with
//     error-returning accessors that never panic on bad indices.
//   - Dense, a row-major implementation with an optional finite-only
//     numeric policy.
//   - Multiply, the naive triple-loop product C = A × B. Shapes are
//     validated before anything is allocated: a.Cols() != b.Rows() fails
//     with ErrDimensionMismatch and returns a nil result.
//   - Conversions to and from flat buffers and row slices, plus exact and
//     tolerance-based comparison helpers.
//
// Every function is synchronous and stateless; concurrent calls are safe as
// long as no caller mutates an operand while it is being read.
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})
//	c, _ := matrix.Multiply(a, b) // [[19 22] [43 50]]
package matrix
