// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and comparisons.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions, the single place where setters are resolved.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Every flag changes behavior and is covered by tests.
//
// Notes:
//   - The numeric policy (validateNaNInf) is stamped into each Dense at
//     construction time and carried by Clone.
//   - Multiply never consults the policy of its operands for reading; the
//     result inherits the default policy unless the caller asks otherwise.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set and
	// in the data-ingesting constructors (NewDenseFrom, NewDenseFromRows).
	DefaultValidateNaNInf = true

	// DefaultEpsilon is the absolute tolerance used by Close when no
	// WithEpsilon option is supplied.
	DefaultEpsilon = 1e-9
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	eps            float64 // DefaultEpsilon; >= 0
}

// WithValidateNaNInf enables rejection of NaN/±Inf on ingestion and Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only policy. Host runtimes such as
// R pass NA/NaN/Inf through arithmetic, so adapters that mirror that behavior
// construct their matrices with this option.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithEpsilon sets the absolute tolerance used by Close.
// Panics if eps is negative, NaN or ±Inf (programmer error).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// NewMatrixOptions resolves option setters against the documented defaults.
// Mostly useful to inspect the effective configuration in tests.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// ValidateNaNInf reports whether the finite-only policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Epsilon reports the absolute tolerance used by Close.
func (o Options) Epsilon() float64 { return o.eps }

// gatherOptions applies user setters on top of defaults (last-writer-wins).
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		eps:            DefaultEpsilon,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
