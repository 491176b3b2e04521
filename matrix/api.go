// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points; each delegates to the canonical kernel.
//   - Neutral-element constructors for identity/zero checks.

package matrix

// NewZeros returns a zero-initialized *Dense of size rows×cols.
// Alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	id, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// ZerosLike returns a zero matrix with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns I_k where k = m.Cols(), the right identity of m
// (m × IdentityLike(m) == m).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Cols())
}

// CloneMatrix returns m.Clone(); nil stays nil.
func CloneMatrix(m Matrix) Matrix {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// Mul is an alias of Multiply.
func Mul(a, b Matrix) (*Dense, error) { return Multiply(a, b) }

// Product is an alias of Multiply.
func Product(a, b Matrix) (*Dense, error) { return Multiply(a, b) }
