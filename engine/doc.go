// Package engine provides interchangeable matrix-multiplication back-ends
// behind a single Backend interface.
//
// Three kernels are registered at init:
//
//   - "naive"  - matrix.Multiply, the reference triple loop (Default).
//   - "tensor" - gorgonia.org/tensor StdEng.MatMul (BLAS dgemm via gonum).
//   - "gonum"  - gonum.org/v1/gonum/mat (*Dense).Mul.
//
// Every backend validates operands with matrix.ValidateMulCompatible before
// touching a kernel, so a shape error is always matrix.ErrDimensionMismatch
// whichever backend is selected. Products with a zero dimension never reach
// the third-party kernels (both reject empty shapes) and come back as the
// correctly shaped zero matrix.
//
// The registry is populated once at init and only read afterwards; Lookup is
// safe for concurrent use.
package engine
