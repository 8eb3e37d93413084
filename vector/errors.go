// SPDX-License-Identifier: MIT
// Package vector: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the vector
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation should panic on user-triggered error
// conditions. Panics are reserved for programmer errors in private helpers
// (if any).

package vector

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape/index -> NaN policy -> size mismatch.

var (
	// ErrBadSize is returned when a requested length or capacity is negative.
	// Constructors and Resize/Extend/Reserve must validate before touching
	// storage.
	ErrBadSize = errors.New("vector: invalid size")

	// ErrOutOfRange indicates that an element index is outside [0, Size()).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrSizeMismatch indicates incompatible lengths between operands,
	// e.g., Dot/AXPY/Equal over vectors of different sizes.
	ErrSizeMismatch = errors.New("vector: size mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set, Scale, ingestion).
	ErrNaNInf = errors.New("vector: NaN or Inf encountered")

	// ErrNilVector indicates that a nil Vector (receiver or argument) was
	// passed into a kernel or facade.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrNilVisitor indicates that a nil visitation callback was passed to
	// Apply or Range.
	ErrNilVisitor = errors.New("vector: nil visitor")
)
