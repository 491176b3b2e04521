package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mmult/matrix"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	c := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 5})

	for _, pair := range [][2]matrix.Matrix{{a, b}, {hide{a}, b}} {
		eq, err := matrix.Equal(pair[0], pair[1])
		require.NoError(t, err)
		require.True(t, eq)
	}

	eq, err := matrix.Equal(a, hide{c})
	require.NoError(t, err)
	require.False(t, eq)

	_, err = matrix.Equal(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Equal(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)
	mk := func(vals ...float64) *matrix.Dense {
		m, err := matrix.NewDenseFrom(1, len(vals), vals, matrix.WithNoValidateNaNInf())
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name       string
		a, b       *matrix.Dense
		rtol, atol float64
		want       bool
	}{
		{"identical", mk(1, 2), mk(1, 2), 0, 0, true},
		{"within atol", mk(1, 2), mk(1+1e-10, 2), 0, 1e-9, true},
		{"beyond atol", mk(1, 2), mk(1+1e-6, 2), 0, 1e-9, false},
		{"within rtol", mk(1000), mk(1000.001), 1e-5, 0, true},
		{"negative tolerances by magnitude", mk(1), mk(1.5), -1, 0, true},
		{"equal infinities", mk(inf, -inf), mk(inf, -inf), 0, 0, true},
		{"opposite infinities", mk(inf), mk(-inf), 1, 1, false},
		{"inf vs finite", mk(inf), mk(1), 1, 1, false},
		{"nan never close", mk(math.NaN()), mk(math.NaN()), 1, 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.AllClose(tc.a, tc.b, tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)

			got, err = matrix.AllClose(hide{tc.a}, tc.b, tc.rtol, tc.atol)
			require.NoError(t, err)
			require.Equal(t, tc.want, got, "fallback path")
		})
	}
}

func TestAllCloseErrors(t *testing.T) {
	a := MustDense(t, 1, 1)

	_, err := matrix.AllClose(a, a, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, a, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, MustDense(t, 1, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestClose(t *testing.T) {
	a := NewFilledDense(t, 1, 1, []float64{1})
	b := NewFilledDense(t, 1, 1, []float64{1 + 1e-6})

	ok, err := matrix.Close(a, b)
	require.NoError(t, err)
	require.False(t, ok, "default epsilon is 1e-9")

	ok, err = matrix.Close(a, b, matrix.WithEpsilon(1e-3))
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.Close(a, MustDense(t, 2, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "Close: AllClose:")
}
