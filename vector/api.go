// SPDX-License-Identifier: MIT
// Package vector — public API facades.
//
// Purpose:
//   - Provide thin, well-documented free-function entry points mirroring the
//     Vector operation set, so call sites that prefer size(v) over v.Size()
//     read uniformly across plain vectors and proxies.
//   - Avoid any logic duplication — each facade delegates to the trait
//     method; gating behavior is therefore identical through either path.
//
// Determinism & Policy:
//   - Facades never change validation order or numeric policy of the
//     underlying implementations.
//   - Error-returning facades validate non-nil receivers; pure queries
//     assume a non-nil argument (nil is a programmer error).
//
// AI-Hints:
//   - These exist for generic call-site uniformity; there is no separate
//     dispatch mechanism behind them.

package vector

import "fmt"

// facade tags for uniform error wrapping.
const (
	fcdResize  = "ResizeTo"
	fcdExtend  = "ExtendBy"
	fcdReserve = "ReserveCap"
	fcdScale   = "ScaleBy"
	fcdData    = "DataOf"
	fcdAt      = "ElemAt"
	fcdSet     = "SetElem"
)

// facadeErrorf wraps a sentinel with the facade tag.
func facadeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Size returns v.Size(). Complexity: O(1).
func Size(v Vector) int { return v.Size() }

// Capacity returns v.Capacity(). Complexity: O(1).
func Capacity(v Vector) int { return v.Capacity() }

// NonZeros returns v.NonZeros(). Complexity: O(n).
func NonZeros(v Vector) int { return v.NonZeros() }

// OrientOf returns v.Orient(). Complexity: O(1).
func OrientOf(v Vector) Orient { return v.Orient() }

// Reset delegates to v.Reset(): all elements become zero, size unchanged.
// Not gated by the access layer (see the Vector contract). Complexity: O(n).
func Reset(v Vector) { v.Reset() }

// Clear delegates to v.Clear(): the vector becomes empty, capacity kept.
// Not gated by the access layer (see the Vector contract). Complexity: O(1).
func Clear(v Vector) { v.Clear() }

// CloneOf returns a detached deep copy of v as a plain *Dense.
// Complexity: O(n).
func CloneOf(v Vector) *Dense { return v.Clone() }

// ElemAt returns the element at index i; gated on proxies.
// Complexity: O(1).
func ElemAt(v Vector, i int) (float64, error) {
	if err := ValidateNotNil(v); err != nil {
		return 0, facadeErrorf(fcdAt, err)
	}

	return v.At(i)
}

// SetElem assigns x at index i; gated on proxies.
// Complexity: O(1).
func SetElem(v Vector, i int, x float64) error {
	if err := ValidateNotNil(v); err != nil {
		return facadeErrorf(fcdSet, err)
	}

	return v.Set(i, x)
}

// DataOf returns the raw backing slice of v; gated on proxies.
// Complexity: O(1).
func DataOf(v Vector) ([]float64, error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, facadeErrorf(fcdData, err)
	}

	return v.Data()
}

// ResizeTo changes the element count of v to n; gated on proxies.
// Complexity: O(n).
func ResizeTo(v Vector, n int, preserve bool) error {
	if err := ValidateNotNil(v); err != nil {
		return facadeErrorf(fcdResize, err)
	}

	return v.Resize(n, preserve)
}

// ExtendBy grows v by n elements; gated on proxies.
// Complexity: O(n).
func ExtendBy(v Vector, n int, preserve bool) error {
	if err := ValidateNotNil(v); err != nil {
		return facadeErrorf(fcdExtend, err)
	}

	return v.Extend(n, preserve)
}

// ReserveCap ensures capacity of v is at least n; gated on proxies.
// Complexity: O(n) on growth.
func ReserveCap(v Vector, n int) error {
	if err := ValidateNotNil(v); err != nil {
		return facadeErrorf(fcdReserve, err)
	}

	return v.Reserve(n)
}

// ScaleBy multiplies every element of v by s in place; gated on proxies.
// Complexity: O(n).
func ScaleBy(v Vector, s float64) error {
	if err := ValidateNotNil(v); err != nil {
		return facadeErrorf(fcdScale, err)
	}

	return v.Scale(s)
}
