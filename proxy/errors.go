// SPDX-License-Identifier: MIT
// Package proxy: sentinel error set.
// All restricted-access failures across the package surface this single
// sentinel; tests and callers match it via errors.Is. Errors raised by the
// underlying vector (bounds, numeric policy) are NOT re-wrapped here — they
// pass through unchanged so callers see the same failures they would see on
// a plain Dense.

package proxy

import "errors"

var (
	// ErrRestrictedAccess is returned by every gated operation when the
	// access contract reports the element as restricted at call time.
	// Fail-fast: a restricted access is a usage error, not a transient
	// condition; nothing is retried and the underlying vector is untouched.
	ErrRestrictedAccess = errors.New("proxy: invalid access to restricted element")

	// ErrNilAccess indicates that a nil Access contract (or a nil closure
	// in Bind) was passed to a constructor.
	ErrNilAccess = errors.New("proxy: nil access contract")
)
