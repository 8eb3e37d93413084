// SPDX-License-Identifier: MIT

// Package vector: generic numeric kernels over the Vector trait.
//
// Purpose:
//   - Prove behavioral transparency: every kernel here is written once
//     against Vector and runs unmodified on *Dense and on access proxies.
//   - Keep fail-fast validation and deterministic loop order (fixed i
//     ascending; no map iteration, no reordering).
//
// Gating semantics (inherited from the trait, not re-implemented here):
//   - Read-only kernels (Dot, Norm2, Sum, MaxAbs, Equal) use Range and are
//     therefore always permitted, restricted proxies included.
//   - Mutating kernels (AXPY) write through Apply, so a restricted target
//     surfaces its restricted-access sentinel before any element changes.
//
// AI-Hints:
//   - Reductions snapshot operand values once (O(n) extra space) so mixed
//     Dense/proxy operand pairs cost one pass each.
//   - Wrap-at-edge: kernels wrap sentinels with the op* tag; callers match
//     via errors.Is.

package vector

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic
// strings.
const (
	opDot    = "Dot"
	opAXPY   = "AXPY"
	opNorm2  = "Norm2"
	opSum    = "Sum"
	opMaxAbs = "MaxAbs"
	opEqual  = "Equal"
)

// opErrorf wraps an underlying sentinel with the given kernel tag.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// snapshot copies the current elements of v into a fresh slice using the
// read-only visitation path, so it is permitted on restricted proxies.
// Complexity: O(n).
func snapshot(v Vector) []float64 {
	out := make([]float64, v.Size())
	v.Range(func(i int, x float64) bool {
		out[i] = x

		return true
	})

	return out
}

// Dot returns the inner product a·b.
// Stage 1 (Validate): NotNil(a), NotNil(b), SameSize.
// Stage 2 (Execute): single fixed-order accumulation pass.
// Read-only: works on restricted proxies.
// Complexity: O(n) time, O(n) space for the b snapshot.
func Dot(a, b Vector) (float64, error) {
	// Validate operands in the fixed sequence NotNil → SameSize.
	if err := ValidateNotNil(a); err != nil {
		return 0, opErrorf(opDot, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return 0, opErrorf(opDot, err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return 0, opErrorf(opDot, err)
	}

	// Snapshot b once, then accumulate while ranging over a.
	bs := snapshot(b)
	sum := 0.0
	a.Range(func(i int, x float64) bool {
		sum += x * bs[i]

		return true
	})

	return sum, nil
}

// AXPY computes y[i] += alpha * x[i] in place (y is the target).
// Stage 1 (Validate): NotNil(x), NotNil(y), SameSize, finite alpha.
// Stage 2 (Execute): snapshot x (read-only), then write through y.Apply.
// A restricted y fails before any element is modified.
// Complexity: O(n).
func AXPY(alpha float64, x, y Vector) error {
	// Validate operands in the fixed sequence NotNil → SameSize → scalar.
	if err := ValidateNotNil(x); err != nil {
		return opErrorf(opAXPY, err)
	}
	if err := ValidateNotNil(y); err != nil {
		return opErrorf(opAXPY, err)
	}
	if err := ValidateSameSize(x, y); err != nil {
		return opErrorf(opAXPY, err)
	}
	if err := ValidateFinite(alpha); err != nil {
		return opErrorf(opAXPY, err)
	}

	// Snapshot x so aliased operands (y == x, or proxies over the same
	// storage) read consistent pre-update values.
	xs := snapshot(x)

	// Apply is the gated mutable path: a restricted y errors here, with
	// the underlying storage untouched.
	return y.Apply(func(i int, yi float64) float64 {
		return yi + alpha*xs[i]
	})
}

// Norm2 returns the Euclidean norm sqrt(Σ x²).
// Read-only: works on restricted proxies.
// Complexity: O(n).
func Norm2(v Vector) (float64, error) {
	if err := ValidateNotNil(v); err != nil {
		return 0, opErrorf(opNorm2, err)
	}

	sum := 0.0
	v.Range(func(_ int, x float64) bool {
		sum += x * x

		return true
	})

	return math.Sqrt(sum), nil
}

// Sum returns Σ v[i] in fixed ascending index order.
// Read-only: works on restricted proxies.
// Complexity: O(n).
func Sum(v Vector) (float64, error) {
	if err := ValidateNotNil(v); err != nil {
		return 0, opErrorf(opSum, err)
	}

	sum := 0.0
	v.Range(func(_ int, x float64) bool {
		sum += x

		return true
	})

	return sum, nil
}

// MaxAbs returns max |v[i]|, or 0 for an empty vector.
// Read-only: works on restricted proxies.
// Complexity: O(n).
func MaxAbs(v Vector) (float64, error) {
	if err := ValidateNotNil(v); err != nil {
		return 0, opErrorf(opMaxAbs, err)
	}

	m := 0.0
	v.Range(func(_ int, x float64) bool {
		if a := math.Abs(x); a > m {
			m = a
		}

		return true
	})

	return m, nil
}

// Equal reports whether |a[i]-b[i]| <= eps for every index. NaN compares
// unequal to everything; eps is normalized to |eps|.
// Read-only: works on restricted proxies.
// Complexity: O(n) time, O(n) space for the b snapshot.
func Equal(a, b Vector, eps float64) (bool, error) {
	// Validate operands in the fixed sequence NotNil → SameSize.
	if err := ValidateNotNil(a); err != nil {
		return false, opErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, opErrorf(opEqual, err)
	}
	if err := ValidateSameSize(a, b); err != nil {
		return false, opErrorf(opEqual, err)
	}

	eps = math.Abs(eps) // normalize a negative tolerance
	bs := snapshot(b)
	equal := true
	a.Range(func(i int, x float64) bool {
		d := math.Abs(x - bs[i])
		// NaN propagates into d and fails the comparison, as intended.
		if !(d <= eps) {
			equal = false

			return false // early exit on first mismatch
		}

		return true
	})

	return equal, nil
}
