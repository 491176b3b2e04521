// SPDX-License-Identifier: MIT

package bridge

import (
	"github.com/katalvlaran/mmult/engine"
	"github.com/katalvlaran/mmult/matrix"
)

const (
	// DefaultBackend is the kernel used when no backend option is given.
	DefaultBackend = engine.NameNaive

	// DefaultValidateNaNInf is off: host data commonly carries NA/NaN and
	// the product simply propagates it.
	DefaultValidateNaNInf = false
)

// Option configures a single MMult or MMultFlat call.
type Option func(*options)

type options struct {
	backendName    string
	backend        engine.Backend // overrides backendName when non-nil
	validateNaNInf bool
}

// WithBackend selects a registered backend by name (see engine.Names).
// Unknown names surface as KindBadInput at call time.
// Panics on an empty name.
func WithBackend(name string) Option {
	if name == "" {
		panic("bridge: WithBackend requires a non-empty name")
	}

	return func(o *options) {
		o.backendName = name
		o.backend = nil
	}
}

// WithEngine supplies a Backend implementation directly, bypassing the
// registry. Panics on nil.
func WithEngine(b engine.Backend) Option {
	if b == nil {
		panic("bridge: WithEngine requires a non-nil backend")
	}

	return func(o *options) { o.backend = b }
}

// WithValidateNaNInf rejects NaN/±Inf in either operand as KindBadInput.
func WithValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf accepts NaN/±Inf in the operands (default).
func WithNoValidateNaNInf() Option {
	return func(o *options) { o.validateNaNInf = false }
}

func gatherOptions(opts ...Option) options {
	o := options{backendName: DefaultBackend, validateNaNInf: DefaultValidateNaNInf}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// resolve returns the backend the options point at.
func (o options) resolve() (engine.Backend, error) {
	if o.backend != nil {
		return o.backend, nil
	}

	return engine.Lookup(o.backendName)
}

// matrixOptions translates the ingest policy for matrix constructors.
func (o options) matrixOptions() []matrix.Option {
	if o.validateNaNInf {
		return []matrix.Option{matrix.WithValidateNaNInf()}
	}

	return []matrix.Option{matrix.WithNoValidateNaNInf()}
}
