// SPDX-License-Identifier: MIT

// Package storage: functional configuration of the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - The policy is stored per Storage instance and travels with every
//     derived container (clone, transpose, reshape, conversion).
package storage

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles finite-only validation on ingestion and Set.
// Off by default: the engine stores any float64, including NaN and ±Inf.
const DefaultValidateNaNInf = false

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf rejects NaN/±Inf in Set and at ingestion with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf accepts every float64 value (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// ValidateNaNInf reports the resolved finite-only policy.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// NewOptions resolves opts over the documented defaults.
// Exposed so container packages can inspect the effective policy.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies user setters in order over defaults; nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
