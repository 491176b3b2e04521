// SPDX-License-Identifier: MIT

package engine

import (
	"gorgonia.org/tensor"

	"github.com/katalvlaran/mmult/matrix"
)

// Tensor multiplies through gorgonia's default CPU engine (tensor.StdEng),
// which hands float64 matrices to a BLAS dgemm.
type Tensor struct {
	eng tensor.StdEng
}

// Name implements Backend.
func (Tensor) Name() string { return NameTensor }

// MatMul implements Backend.
func (t Tensor) MatMul(a, b matrix.Matrix) (*matrix.Dense, error) {
	ops, err := prepare(a, b)
	if err != nil {
		return nil, engineErrorf(NameTensor, err)
	}
	if !ops.finite() {
		res, err := ops.reference()
		if err != nil {
			return nil, engineErrorf(NameTensor, err)
		}

		return res, nil
	}
	out := make([]float64, ops.m*ops.n)
	if ops.empty() {
		return result(ops.m, ops.n, out)
	}

	ta := tensor.New(tensor.WithShape(ops.m, ops.k), tensor.WithBacking(ops.a))
	tb := tensor.New(tensor.WithShape(ops.k, ops.n), tensor.WithBacking(ops.b))
	tc := tensor.New(tensor.WithShape(ops.m, ops.n), tensor.WithBacking(out))
	if err = t.eng.MatMul(ta, tb, tc); err != nil {
		return nil, engineErrorf(NameTensor, err)
	}

	return result(ops.m, ops.n, out)
}

var _ Backend = Tensor{}
