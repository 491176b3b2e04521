// SPDX-License-Identifier: MIT

package bridge

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mmult/matrix"
)

// ErrLayout is returned for a HostMatrix whose Layout is neither RowMajor
// nor ColMajor.
var ErrLayout = errors.New("bridge: unknown layout")

// Layout is the element order of a HostMatrix buffer.
type Layout int

const (
	// RowMajor stores element (i, j) at Data[i*Cols+j] (C, NumPy default).
	RowMajor Layout = iota

	// ColMajor stores element (i, j) at Data[j*Rows+i] (R, Fortran, Julia).
	ColMajor
)

// String returns "RowMajor", "ColMajor" or "Layout(n)".
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "RowMajor"
	case ColMajor:
		return "ColMajor"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// HostMatrix is a matrix as a host runtime holds it: a flat buffer plus
// dimensions and element order.
type HostMatrix struct {
	Rows, Cols int
	Layout     Layout
	Data       []float64
}

// toDense converts h into a row-major Dense. Data is copied.
func (h HostMatrix) toDense(opts ...matrix.Option) (*matrix.Dense, error) {
	switch h.Layout {
	case RowMajor:
		return matrix.NewDenseFrom(h.Rows, h.Cols, h.Data, opts...)
	case ColMajor:
		if h.Rows < 0 || h.Cols < 0 || (h.Cols != 0 && h.Rows > math.MaxInt/h.Cols) ||
			len(h.Data) != h.Rows*h.Cols {
			// Let NewDenseFrom produce the usual ErrBadShape message.
			return matrix.NewDenseFrom(h.Rows, h.Cols, h.Data, opts...)
		}
		rm := make([]float64, len(h.Data))
		for j := 0; j < h.Cols; j++ {
			col := h.Data[j*h.Rows : (j+1)*h.Rows]
			for i, v := range col {
				rm[i*h.Cols+j] = v
			}
		}

		return matrix.NewDenseFrom(h.Rows, h.Cols, rm, opts...)
	default:
		return nil, fmt.Errorf("%v: %w", h.Layout, ErrLayout)
	}
}

// fromDense copies d into a HostMatrix with the given layout.
func fromDense(d *matrix.Dense, layout Layout) HostMatrix {
	r, c := d.Shape()
	data := d.RawRowMajor()
	if layout == ColMajor {
		cm := make([]float64, len(data))
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				cm[j*r+i] = data[i*c+j]
			}
		}
		data = cm
	}

	return HostMatrix{Rows: r, Cols: c, Layout: layout, Data: data}
}
