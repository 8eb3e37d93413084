// SPDX-License-Identifier: MIT

// Package vector: functional configuration for Dense construction and
// numeric policy. This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The numeric policy is explicit: validateNaNInf controls whether
//     Set()/Scale() reject NaN/±Inf at all. It defaults to on; callers that
//     deliberately stage non-finite values disable it per vector.
//   - Orientation is a construction-time tag. It never changes after the
//     vector exists; Clone carries it over.
package vector

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in defaultOptions.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set
	// and Scale.
	DefaultValidateNaNInf = true

	// DefaultOrient is the orientation assigned when WithOrient is absent.
	DefaultOrient = Col

	// DefaultCapacity means "no preallocation beyond the requested size".
	DefaultCapacity = 0
)

// options carries the gathered construction state. All fields unexported;
// mutated only through Option funcs.
type options struct {
	capacity       int    // extra capacity hint (>= 0; 0 means none)
	validateNaNInf bool   // numeric guard for Set/Scale
	orient         Orient // row/column tag, fixed after construction
}

// Option mutates the gathered options. Options are applied in order; the
// last write wins.
type Option func(*options)

// defaultOptions returns the documented defaults. Single source of truth;
// keep in sync with the Default* constants above.
func defaultOptions() options {
	return options{
		capacity:       DefaultCapacity,
		validateNaNInf: DefaultValidateNaNInf,
		orient:         DefaultOrient,
	}
}

// WithCapacity requests an initial capacity of at least c elements.
// Panics when c < 0 (programmer error, not a runtime condition).
func WithCapacity(c int) Option {
	// Validate eagerly: a negative capacity is never meaningful.
	if c < 0 {
		panic("vector: WithCapacity requires c >= 0")
	}

	return func(o *options) { o.capacity = c }
}

// WithValidateNaNInf toggles rejection of NaN/±Inf in Set and Scale.
// Disable only when a pipeline deliberately stages non-finite markers.
func WithValidateNaNInf(enabled bool) Option {
	return func(o *options) { o.validateNaNInf = enabled }
}

// WithOrient fixes the row/column tag at construction.
// Panics on an unknown tag value.
func WithOrient(t Orient) Option {
	// Only the two declared tags are legal.
	if t != Row && t != Col {
		panic("vector: WithOrient requires Row or Col")
	}

	return func(o *options) { o.orient = t }
}

// gatherOptions applies opts over the defaults and returns the result.
// Internal; constructors call this exactly once.
func gatherOptions(opts ...Option) options {
	o := defaultOptions() // start from the documented defaults
	for _, fn := range opts {
		fn(&o) // apply in declaration order, last write wins
	}

	return o
}
