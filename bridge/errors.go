// SPDX-License-Identifier: MIT

package bridge

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mmult/engine"
	"github.com/katalvlaran/mmult/matrix"
)

// Kind classifies a boundary failure so a host can map it onto its own
// condition classes.
type Kind int

const (
	// KindUnknown covers anything unexpected: recovered panics and errors
	// that match no known sentinel.
	KindUnknown Kind = iota

	// KindDimensionMismatch means a.Cols != b.Rows.
	KindDimensionMismatch

	// KindBadInput means the host data itself is malformed.
	KindBadInput
)

// Messages shown to the host.
const (
	msgMismatch = "Dimension mismatch"
	msgBadInput = "invalid input"
	msgUnknown  = "computation error (unknown reason)"
)

// ErrPanic is the cause attached to KindUnknown errors produced by a
// recovered panic.
var ErrPanic = errors.New("bridge: recovered panic")

// String returns the condition-class name of k.
func (k Kind) String() string {
	switch k {
	case KindDimensionMismatch:
		return "DimensionMismatch"
	case KindBadInput:
		return "BadInput"
	default:
		return "UnknownComputationError"
	}
}

// Error is the only error type that crosses the boundary.
type Error struct {
	Kind  Kind   // condition class
	Op    string // entry point, e.g. "MMult"
	Msg   string // host-facing message
	Cause error  // underlying error; never nil
}

// Error renders "<op>: <msg>: <cause>".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Cause)
}

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// classify maps an internal error onto a boundary Error. An *Error that is
// already classified passes through unchanged.
func classify(op string, err error) *Error {
	var be *Error
	if errors.As(err, &be) {
		return be
	}

	switch {
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return &Error{Kind: KindDimensionMismatch, Op: op, Msg: msgMismatch, Cause: err}
	case errors.Is(err, matrix.ErrBadShape),
		errors.Is(err, matrix.ErrNaNInf),
		errors.Is(err, matrix.ErrNilMatrix),
		errors.Is(err, engine.ErrUnknownBackend),
		errors.Is(err, ErrLayout):
		return &Error{Kind: KindBadInput, Op: op, Msg: msgBadInput, Cause: err}
	default:
		return &Error{Kind: KindUnknown, Op: op, Msg: msgUnknown, Cause: err}
	}
}

// IsDimensionMismatch reports whether err is a boundary dimension mismatch.
func IsDimensionMismatch(err error) bool {
	var be *Error

	return errors.As(err, &be) && be.Kind == KindDimensionMismatch
}
