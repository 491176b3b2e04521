// Package bridge is the boundary adapter between a host scripting runtime
// and the matrix product.
//
// A host (an R or Python extension, a plugin loader, an embedded
// interpreter) hands over matrices in its own representation and expects
// every failure back as a value it can raise in its own error idiom. bridge
// guarantees that:
//
//   - MMult and MMultFlat never panic. Internal faults, including runtime
//     panics from a kernel and a result size the runtime refuses outright
//     ("makeslice: len out of range"), are recovered and returned as *Error
//     with KindUnknown. A genuine out-of-memory condition is a fatal runtime
//     error in Go and cannot be recovered.
//   - A shape conflict between the operands is reported as KindDimensionMismatch
//     with the message "Dimension mismatch" followed by both shapes, and no
//     result is produced.
//   - Malformed host data (ragged rows, buffer length not matching the
//     declared dimensions) is reported as KindBadInput.
//
// *Error unwraps to the underlying sentinel, so Go callers can still use
// errors.Is(err, matrix.ErrDimensionMismatch).
package bridge
