// SPDX-License-Identifier: MIT

package engine

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/mmult/matrix"
)

// ErrUnknownBackend is returned by Lookup for names that were never registered.
var ErrUnknownBackend = errors.New("engine: unknown backend")

// Backend names.
const (
	NameNaive  = "naive"
	NameTensor = "tensor"
	NameGonum  = "gonum"
)

// Backend multiplies two matrices into a freshly allocated result.
// Implementations never mutate their operands.
type Backend interface {
	// Name is the registry key of the backend.
	Name() string

	// MatMul returns a × b with shape a.Rows() × b.Cols().
	MatMul(a, b matrix.Matrix) (*matrix.Dense, error)
}

// Default is the reference backend used when no name is given.
var Default Backend = Naive{}

var registry = map[string]Backend{}

func init() {
	for _, b := range []Backend{Naive{}, Tensor{}, Gonum{}} {
		registry[b.Name()] = b
	}
}

// Lookup returns the backend registered under name. An empty name selects Default.
func Lookup(name string) (Backend, error) {
	if name == "" {
		return Default, nil
	}
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownBackend)
	}

	return b, nil
}

// Names lists the registered backend names in ascending order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// engineErrorf tags err with the backend name.
func engineErrorf(backend string, err error) error {
	return fmt.Errorf("engine.%s: %w", backend, err)
}

// operands holds validated, flattened inputs for the third-party kernels.
type operands struct {
	m, k, n int       // a is m×k, b is k×n
	a, b    []float64 // row-major copies
}

// empty reports whether the product has no work to do.
func (o operands) empty() bool { return o.m == 0 || o.k == 0 || o.n == 0 }

// finite reports whether both operands hold only finite values.
func (o operands) finite() bool {
	for _, buf := range [][]float64{o.a, o.b} {
		for _, v := range buf {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}

	return true
}

// reference multiplies the flattened operands with matrix.Multiply.
// dgemm skips zero elements of a, so 0·NaN and 0·Inf terms only survive
// on this path.
func (o operands) reference() (*matrix.Dense, error) {
	noCheck := matrix.WithNoValidateNaNInf()
	da, err := matrix.NewDenseFrom(o.m, o.k, o.a, noCheck)
	if err != nil {
		return nil, err
	}
	db, err := matrix.NewDenseFrom(o.k, o.n, o.b, noCheck)
	if err != nil {
		return nil, err
	}

	return matrix.Multiply(da, db, noCheck)
}

// prepare validates shapes and flattens both operands. The copies keep the
// kernels from ever aliasing caller storage.
func prepare(a, b matrix.Matrix) (operands, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return operands{}, err
	}
	fa, err := matrix.Flatten(a)
	if err != nil {
		return operands{}, err
	}
	fb, err := matrix.Flatten(b)
	if err != nil {
		return operands{}, err
	}

	return operands{m: a.Rows(), k: a.Cols(), n: b.Cols(), a: fa, b: fb}, nil
}

// result wraps a kernel's row-major output into a Dense. Non-finite values
// produced by the kernel are kept, matching matrix.Multiply.
func result(m, n int, data []float64) (*matrix.Dense, error) {
	return matrix.NewDenseFrom(m, n, data, matrix.WithNoValidateNaNInf())
}
