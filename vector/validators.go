// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/index/length checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Size).
//  - Each validator describes what it validates and what it assumes.

package vector

import "math"

// ValidateNotNil ensures the vector reference is non-nil.
//
// Returns ErrNilVector if v == nil.
// Complexity: O(1).
func ValidateNotNil(v Vector) error {
	// A nil interface value has nothing to delegate to; fail with the
	// unified sentinel.
	if v == nil {
		return ErrNilVector
	}

	return nil
}

// ValidateIndex ensures 0 <= i < size.
//
// Assumes size itself is valid (>= 0); callers validate shape first.
// Returns ErrOutOfRange on violation.
// Complexity: O(1).
func ValidateIndex(i, size int) error {
	if i < 0 || i >= size {
		return ErrOutOfRange
	}

	return nil
}

// ValidateNonNegative ensures a requested length/capacity is >= 0.
//
// Returns ErrBadSize on violation.
// Complexity: O(1).
func ValidateNonNegative(n int) error {
	if n < 0 {
		return ErrBadSize
	}

	return nil
}

// ValidateSameSize ensures two operands have identical element counts.
//
// Assumes both operands are non-nil (use ValidateNotNil first).
// Returns ErrSizeMismatch on violation.
// Complexity: O(1).
func ValidateSameSize(a, b Vector) error {
	if a.Size() != b.Size() {
		return ErrSizeMismatch
	}

	return nil
}

// ValidateFinite ensures x is neither NaN nor ±Inf.
//
// Returns ErrNaNInf on violation.
// Complexity: O(1).
func ValidateFinite(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrNaNInf
	}

	return nil
}
