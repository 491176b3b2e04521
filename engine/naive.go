// SPDX-License-Identifier: MIT

package engine

import "github.com/katalvlaran/mmult/matrix"

// Naive delegates to matrix.Multiply, the reference triple loop.
type Naive struct{}

// Name implements Backend.
func (Naive) Name() string { return NameNaive }

// MatMul implements Backend.
func (Naive) MatMul(a, b matrix.Matrix) (*matrix.Dense, error) {
	res, err := matrix.Multiply(a, b, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, engineErrorf(NameNaive, err)
	}

	return res, nil
}

var _ Backend = Naive{}
