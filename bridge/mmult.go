// SPDX-License-Identifier: MIT

package bridge

import (
	"fmt"

	"github.com/katalvlaran/mmult/matrix"
)

// Entry point names, used as Error.Op.
const (
	opMMult     = "MMult"
	opMMultFlat = "MMultFlat"
)

// Guard runs fn and converts whatever goes wrong into an *Error tagged
// with op: returned errors are classified, panics become KindUnknown with
// ErrPanic as cause. Guard itself never panics and returns nil when fn
// succeeds.
func Guard(op string, fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var cause error
		if re, ok := r.(error); ok {
			cause = fmt.Errorf("%w: %w", ErrPanic, re)
		} else {
			cause = fmt.Errorf("%w: %v", ErrPanic, r)
		}
		err = &Error{Kind: KindUnknown, Op: op, Msg: msgUnknown, Cause: cause}
	}()

	if ferr := fn(); ferr != nil {
		return classify(op, ferr)
	}

	return nil
}

// MMult multiplies a (m×k) by b (k×n) given as rows and returns the m×n
// product as rows. Inputs are never modified.
//
// On error the result is nil and err is an *Error:
//   - KindDimensionMismatch when a's column count differs from b's row count.
//   - KindBadInput on ragged rows, an unknown backend, or (with
//     WithValidateNaNInf) a non-finite value.
//   - KindUnknown for anything else, including recovered panics.
func MMult(a, b [][]float64, opts ...Option) ([][]float64, error) {
	var out [][]float64
	err := Guard(opMMult, func() error {
		o := gatherOptions(opts...)
		ma, err := matrix.NewDenseFromRows(a, o.matrixOptions()...)
		if err != nil {
			return fmt.Errorf("a: %w", err)
		}
		mb, err := matrix.NewDenseFromRows(b, o.matrixOptions()...)
		if err != nil {
			return fmt.Errorf("b: %w", err)
		}
		res, err := multiply(o, ma, mb)
		if err != nil {
			return err
		}
		out, err = matrix.ToRows(res)

		return err
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// MMultFlat is MMult for flat host buffers. Operands may use different
// layouts; the product is returned in a's layout.
func MMultFlat(a, b HostMatrix, opts ...Option) (HostMatrix, error) {
	var out HostMatrix
	err := Guard(opMMultFlat, func() error {
		o := gatherOptions(opts...)
		ma, err := a.toDense(o.matrixOptions()...)
		if err != nil {
			return fmt.Errorf("a: %w", err)
		}
		mb, err := b.toDense(o.matrixOptions()...)
		if err != nil {
			return fmt.Errorf("b: %w", err)
		}
		res, err := multiply(o, ma, mb)
		if err != nil {
			return err
		}
		out = fromDense(res, a.Layout)

		return nil
	})
	if err != nil {
		return HostMatrix{}, err
	}

	return out, nil
}

// multiply checks the shapes before touching the backend so a mismatch
// never allocates a result.
func multiply(o options, a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, err
	}
	be, err := o.resolve()
	if err != nil {
		return nil, err
	}
	res, err := be.MatMul(a, b)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("backend %q returned no result", be.Name())
	}

	return res, nil
}
