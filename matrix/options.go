// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels and the
// text formatter. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Inv consumes eps and the singular policy.
//   - Format consumes precision; String always uses DefaultPrecision.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the pivot tolerance for Gauss-Jordan: |pivot| <= eps is zero.
	// Zero keeps the exact pivot comparison.
	DefaultEpsilon = 0.0

	// DefaultSingularError makes Inv report ErrSingular instead of producing
	// non-finite values when no usable pivot exists.
	DefaultSingularError = true

	// DefaultPrecision is the number of digits after the decimal point in String/Format.
	DefaultPrecision = 2
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps           float64 // >= 0; DefaultEpsilon
	singularError bool    // DefaultSingularError
	precision     int     // >= 0; DefaultPrecision
}

// WithEpsilon sets the pivot tolerance used by Inv.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Integer element types compare |pivot| against eps after conversion to float64.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSingularError makes Inv fail with ErrSingular on a zero pivot column.
// This is the default.
func WithSingularError() Option {
	return func(o *Options) { o.singularError = true }
}

// WithNonFiniteInverse keeps plain Gauss-Jordan semantics on a
// singular input: no error is reported and the division by a zero pivot
// leaves ±Inf/NaN (floats) in the result.
//
// Notes:
//   - Integer element types cannot represent ±Inf; for them a zero pivot is
//     always reported as ErrSingular, since integer division by zero panics.
func WithNonFiniteInverse() Option {
	return func(o *Options) { o.singularError = false }
}

// WithPrecision sets the number of fractional digits used by Format.
// Panics when p < 0.
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		eps:           DefaultEpsilon,
		singularError: DefaultSingularError,
		precision:     DefaultPrecision,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from defaultOptions().
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}
