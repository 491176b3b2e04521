// SPDX-License-Identifier: MIT
// Package matrix - element-wise comparison kernels.
//
// Purpose:
//   - Exact and tolerance-based equality of two same-shaped matrices.
//   - Used by tests and by callers cross-checking multiplication backends.
//
// Determinism:
//   - Flat 0..n-1 walk on *Dense pairs; fixed i→j order otherwise.
//   - Early exit on the first violating element.

package matrix

import "math"

// ewCompare walks a and b in row-major order and reports whether ok(av,bv)
// holds for every pair. Shapes must already be validated.
func ewCompare(a, b Matrix, ok func(av, bv float64) bool) (bool, error) {
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !ok(da.data[idx], db.data[idx]) {
					return false, nil
				}
			}

			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, err
			}
			if bv, err = b.At(i, j); err != nil {
				return false, err
			}
			if !ok(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether a and b have identical shape and bitwise-equal
// values under ==. NaN never equals NaN, as in IEEE 754.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	eq, err := ewCompare(a, b, func(av, bv float64) bool { return av == bv })
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	return eq, nil
}

// AllClose checks element-wise |a-b| <= atol + rtol*|b| for identical shapes.
// NaN is never close to anything; +Inf is close to +Inf and -Inf to -Inf.
//
// Policy:
//   - rtol and atol must be finite; negative values are taken by magnitude.
//
// Errors: ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	within, err := ewCompare(a, b, func(av, bv float64) bool {
		if av == bv { // covers equal infinities
			return true
		}
		if math.IsInf(av, 0) || math.IsInf(bv, 0) {
			return false
		}

		return math.Abs(av-bv) <= atol+rtol*math.Abs(bv)
	})
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return within, nil
}

// Close is AllClose with rtol=0 and atol taken from WithEpsilon
// (DefaultEpsilon when absent).
func Close(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	ok, err := AllClose(a, b, 0, o.eps)
	if err != nil {
		return false, matrixErrorf(opClose, err)
	}

	return ok, nil
}
