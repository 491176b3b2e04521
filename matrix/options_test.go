// SPDX-License-Identifier: MIT
// Package matrix_test verifies option defaults, setters and panics.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mmult/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
}

func TestOptionsLastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithValidateNaNInf(), matrix.WithNoValidateNaNInf(), nil)
	require.False(t, o.ValidateNaNInf())

	o = matrix.NewMatrixOptions(matrix.WithEpsilon(0.5), matrix.WithEpsilon(0))
	require.Equal(t, 0.0, o.Epsilon())
}

func TestWithEpsilonPanics(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		eps := eps
		require.Panics(t, func() { matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
}
