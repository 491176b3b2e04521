// SPDX-License-Identifier: MIT
// Package matrix provides dense matrix multiplication on any Matrix
// implementation with strict fail-fast validation.
//
// Purpose:
//   - Declare the canonical multiplication kernel used by every facade and backend.
//   - Define operation tags and shared constants for error reporting.
//
// Notes:
//   - Validation always happens before allocation; a failed call allocates nothing.
//   - All kernels return plain sentinels wrapped via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMultiply = "Multiply"
	opEqual    = "Equal"
	opAllClose = "AllClose"
	opClose    = "Close"
	opFlatten  = "Flatten"
	opToRows   = "ToRows"
	opFromRows = "NewDenseFromRows"
	opFrom     = "NewDenseFrom"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Multiply computes the dense product C = A × B into a freshly allocated Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). On failure nothing is allocated.
//   - Stage 2: allocate C (a.Rows × b.Cols), zero-filled, using opts for its policy.
//   - Stage 3: if both operands are *Dense, run the flat i→k→j kernel;
//     otherwise the i→j→k kernel over At.
//
// Behavior highlights:
//   - Both kernels accumulate C[i,j] over k in ascending order, starting
//     from ZeroSum, so they agree bit for bit.
//   - No zero-skipping: 0·Inf yields NaN exactly as the plain sum does.
//   - Results are written straight into the buffer; the numeric policy of C
//     governs later Set calls only.
//   - Operands are never mutated.
//
// Inputs:
//   - a: left operand (r × n).
//   - b: right operand (n × c).
//   - opts: options for the result matrix (e.g. WithNoValidateNaNInf).
//
// Returns:
//   - *Dense C with shape (r × c), or nil on error.
//
// Errors:
//   - ErrNilMatrix (nil operand), ErrDimensionMismatch (a.Cols != b.Rows),
//     ErrBadShape (result size overflows int), ErrOutOfRange (a custom Matrix
//     that misreports its own shape).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Multiply(a, b Matrix, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	aRows, bCols := a.Rows(), b.Cols()
	res, err := NewDense(aRows, bCols, opts...)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			mulDense(res, da, db)

			return res, nil
		}
	}

	if err = mulGeneric(res, a, b); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return res, nil
}

// mulDense is the row-major fast path. For each row i of A it streams the
// matching row of B, so both B and C are read contiguously.
// da.data layout: i*aCols + k; db.data layout: k*bCols + j.
func mulDense(res, da, db *Dense) {
	aRows, aCols, bCols := da.r, da.c, db.c
	var (
		i, j, k                         int
		av                              float64
		rowOffsetA, rowOffsetB, rowOffR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}
}

// mulGeneric is the interface fallback: a plain i→j→k triple loop over At.
func mulGeneric(res *Dense, a, b Matrix) error {
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	var (
		i, j, k         int
		av, bv, current float64
		err             error
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return fmt.Errorf("At(%d,%d): %w", i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return fmt.Errorf("At(%d,%d): %w", k, j, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return nil
}
