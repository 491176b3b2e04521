// SPDX-License-Identifier: MIT

package engine

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mmult/matrix"
)

// Gonum multiplies with gonum's (*mat.Dense).Mul.
type Gonum struct{}

// Name implements Backend.
func (Gonum) Name() string { return NameGonum }

// MatMul implements Backend.
func (Gonum) MatMul(a, b matrix.Matrix) (*matrix.Dense, error) {
	ops, err := prepare(a, b)
	if err != nil {
		return nil, engineErrorf(NameGonum, err)
	}
	if !ops.finite() {
		res, err := ops.reference()
		if err != nil {
			return nil, engineErrorf(NameGonum, err)
		}

		return res, nil
	}
	out := make([]float64, ops.m*ops.n)
	if ops.empty() {
		// mat.NewDense panics on zero-length dimensions.
		return result(ops.m, ops.n, out)
	}

	ga := mat.NewDense(ops.m, ops.k, ops.a)
	gb := mat.NewDense(ops.k, ops.n, ops.b)
	gc := mat.NewDense(ops.m, ops.n, out) // stride == n, so out is row-major
	gc.Mul(ga, gb)

	return result(ops.m, ops.n, out)
}

var _ Backend = Gonum{}
