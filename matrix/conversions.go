// SPDX-License-Identifier: MIT

// Package matrix: conversions between Matrix and plain Go slices.
//
// Host runtimes hand matrices over either as a flat buffer with explicit
// dimensions or as a slice of rows. Both ingest paths copy, so the caller
// keeps ownership of its storage and later mutations never leak in.
package matrix

import (
	"fmt"
	"math"
)

// NewDenseFrom builds a rows×cols Dense from a row-major buffer (copied).
//
// Errors:
//   - ErrBadShape when dims are negative or len(data) != rows*cols.
//   - ErrNaNInf when the policy is enabled and data holds a non-finite value.
//
// Complexity: O(rows*cols).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	n, err := checkShape(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFrom, err)
	}
	// Reject a short or long buffer before allocating anything.
	if len(data) != n {
		return nil, fmt.Errorf("%s: have %d values for %dx%d: %w", opFrom, len(data), rows, cols, ErrBadShape)
	}
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, matrixErrorf(opFrom, err)
	}
	if m.validateNaNInf {
		for idx, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(opFrom, denseErrorf(ctxSet, idx/cols, idx%cols, ErrNaNInf))
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// NewDenseFromRows builds a Dense from a slice of equally long rows (copied).
// An empty slice yields a 0×0 matrix; empty rows yield an r×0 matrix.
//
// Errors:
//   - ErrBadShape on ragged rows.
//   - ErrNaNInf when the policy is enabled and a value is not finite.
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", opFromRows, i, len(row), c, ErrBadShape)
		}
	}

	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		for j, v := range row {
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, matrixErrorf(opFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Flatten returns a row-major copy of m's values.
//
// Errors: ErrNilMatrix, or any error from a custom At implementation.
func Flatten(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.RawRowMajor(), nil
	}

	r, c := m.Rows(), m.Cols()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opFlatten, err)
			}
			out = append(out, v)
		}
	}

	return out, nil
}

// ToRows returns m as freshly allocated rows (row i is out[i]).
func ToRows(m Matrix) ([][]float64, error) {
	flat, err := Flatten(m)
	if err != nil {
		return nil, matrixErrorf(opToRows, err)
	}

	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	for i := range out {
		// Full slice expression so appending to one row cannot clobber the next.
		out[i] = flat[i*c : (i+1)*c : (i+1)*c]
	}

	return out, nil
}
