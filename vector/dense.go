// SPDX-License-Identifier: MIT

// Package vector - Dense storage (flat, contiguous) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly contiguous float64 buffer with explicit size
//     (len) and capacity (cap).
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single
//     source of truth (options.go).
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot kernels (see ops.go): operate on the
//     flat data slice directly via Data().
//   - Resize/Extend zero new elements; preserve=false zeroes everything. No
//     "unspecified value" states exist.
//   - DefaultValidateNaNInf is on; insert only finite values unless you
//     explicitly disable the policy at construction.
//
// Complexity quicksheet:
//   - NewDense: O(n) zero-init; At/Set: O(1); Clone: O(n); Resize/Extend:
//     O(n); Reserve: O(n) on growth; Scale/Reset/Apply/Range: O(n);
//     Clear: O(1).

package vector

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxApply   = "Apply"   // method tag used in error wrappers
	ctxResize  = "Resize"  // method tag used in error wrappers
	ctxExtend  = "Extend"  // method tag used in error wrappers
	ctxReserve = "Reserve" // method tag used in error wrappers
	ctxScale   = "Scale"   // method tag used in error wrappers
	ctxNew     = "NewDense"
	ctxFrom    = "FromSlice"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and the callsite
// index/argument for diagnostics: "Dense.<method>(<arg>): <sentinel>".
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, arg int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, arg, err)
}

// denseOpErrorf wraps a sentinel with method context only (no argument).
func denseOpErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// Dense is a concrete contiguous vector.
//   - data is the flat buffer; len(data) is the size, cap(data) the capacity.
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Scale/Apply
//     (policy default from options.go).
//   - orient is the row/column tag, fixed at construction.
type Dense struct {
	data           []float64 // contiguous storage (len == size)
	validateNaNInf bool      // numeric guard: reject NaN/Inf when true
	orient         Orient    // construction-time row/column tag
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Vector       = (*Dense)(nil) // *Dense implements the shared Vector trait
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates a zero-initialized vector of n elements.
// Stage 1 (Validate): ensure n >= 0, else ErrBadSize.
// Stage 2 (Prepare): allocate the flat buffer, honoring WithCapacity.
// Stage 3 (Finalize): install the gathered numeric policy and tag.
// Complexity: O(n) time and memory.
func NewDense(n int, opts ...Option) (*Dense, error) {
	// Validate the requested size before any allocation.
	if err := ValidateNonNegative(n); err != nil {
		return nil, denseErrorf(ctxNew, n, err)
	}
	// Gather options over the documented defaults.
	o := gatherOptions(opts...)
	// Allocate len n; capacity is the larger of n and the hint.
	c := n
	if o.capacity > c {
		c = o.capacity
	}
	data := make([]float64, n, c)

	// Return the initialized vector.
	return &Dense{data: data, validateNaNInf: o.validateNaNInf, orient: o.orient}, nil
}

// FromSlice creates a vector holding a copy of src. The input slice is never
// retained; mutations of src after the call do not affect the vector.
// Under the numeric policy every ingested element must be finite.
// Complexity: O(n).
func FromSlice(src []float64, opts ...Option) (*Dense, error) {
	// Gather options first so the ingestion policy is known.
	o := gatherOptions(opts...)
	// Validate every element under the policy before copying.
	if o.validateNaNInf {
		for i, x := range src {
			if err := ValidateFinite(x); err != nil {
				return nil, denseErrorf(ctxFrom, i, err)
			}
		}
	}
	// Copy into fresh storage, honoring the capacity hint.
	c := len(src)
	if o.capacity > c {
		c = o.capacity
	}
	data := make([]float64, len(src), c)
	copy(data, src)

	return &Dense{data: data, validateNaNInf: o.validateNaNInf, orient: o.orient}, nil
}

// Size returns the current element count.
// Complexity: O(1).
func (v *Dense) Size() int {
	return len(v.data) // size is the slice length
}

// Capacity returns the allocated capacity.
// Complexity: O(1).
func (v *Dense) Capacity() int {
	return cap(v.data) // capacity is the slice capacity
}

// NonZeros returns the number of elements different from zero.
// Always <= Size().
// Complexity: O(n) scan, fixed order.
func (v *Dense) NonZeros() int {
	nz := 0
	for _, x := range v.data { // deterministic forward scan
		if x != 0 {
			nz++
		}
	}

	return nz
}

// Orient reports the row/column tag fixed at construction.
// Complexity: O(1).
func (v *Dense) Orient() Orient {
	return v.orient
}

// At retrieves the element at position i.
// Stage 1 (Validate): bounds check via ValidateIndex.
// Stage 2 (Execute): read from the data slice.
// Complexity: O(1).
func (v *Dense) At(i int) (float64, error) {
	// Bounds check or wrapped sentinel.
	if err := ValidateIndex(i, len(v.data)); err != nil {
		return 0, denseErrorf(ctxAt, i, err)
	}

	// Return the stored value.
	return v.data[i], nil
}

// Set assigns value x at position i.
// Stage 1 (Validate): bounds check, then numeric policy.
// Stage 2 (Execute): write into the data slice.
// Complexity: O(1).
func (v *Dense) Set(i int, x float64) error {
	// Bounds check or wrapped sentinel.
	if err := ValidateIndex(i, len(v.data)); err != nil {
		return denseErrorf(ctxSet, i, err)
	}
	// Numeric policy: reject NaN/Inf when validation is enabled.
	if v.validateNaNInf {
		if err := ValidateFinite(x); err != nil {
			return denseErrorf(ctxSet, i, err)
		}
	}
	// Assign the value.
	v.data[i] = x

	return nil
}

// Data returns the raw backing slice. Writes through the slice are writes
// into the vector; the caller must treat it as borrowed for the current
// call and must not retain it across size-changing operations.
// Never fails on *Dense; the error is part of the shared Vector signature.
// Complexity: O(1).
func (v *Dense) Data() ([]float64, error) {
	return v.data, nil
}

// Apply replaces every element: v[i] = fn(i, v[i]), in index order. Under
// the numeric policy a non-finite replacement fails fast at the offending
// index; elements before it keep their new values.
// Complexity: O(n).
func (v *Dense) Apply(fn func(i int, x float64) float64) error {
	// A nil visitor is a caller bug surfaced as a sentinel, not a panic.
	if fn == nil {
		return denseOpErrorf(ctxApply, ErrNilVisitor)
	}
	for i := range v.data { // fixed forward order
		next := fn(i, v.data[i])
		// Numeric policy applies to computed replacements as well.
		if v.validateNaNInf {
			if err := ValidateFinite(next); err != nil {
				return denseErrorf(ctxApply, i, err)
			}
		}
		v.data[i] = next
	}

	return nil
}

// Range visits every element read-only, in index order, stopping early when
// fn returns false. A nil visitor is a no-op.
// Complexity: O(n).
func (v *Dense) Range(fn func(i int, x float64) bool) {
	if fn == nil {
		return
	}
	for i := range v.data { // fixed forward order
		if !fn(i, v.data[i]) {
			return // early exit requested by the visitor
		}
	}
}

// Reset sets all elements to zero; size and capacity are unchanged.
// Complexity: O(n).
func (v *Dense) Reset() {
	zeroFill(v.data)
}

// Clear empties the vector to size zero; capacity is retained so a later
// Resize within capacity does not reallocate. Idempotent.
// Complexity: O(1).
func (v *Dense) Clear() {
	v.data = v.data[:0]
}

// Resize changes the element count to n.
// Policy (single source of truth for all growth paths):
//   - preserve=true keeps elements at indices < min(old, n);
//   - preserve=false zeroes every element;
//   - new elements are always zeroed — no "unspecified value" states.
//
// Stage 1 (Validate): n >= 0, else ErrBadSize.
// Stage 2 (Execute): reslice within capacity (zeroing the exposed region)
// or reallocate.
// Complexity: O(n).
func (v *Dense) Resize(n int, preserve bool) error {
	// Validate the requested size.
	if err := ValidateNonNegative(n); err != nil {
		return denseErrorf(ctxResize, n, err)
	}

	if n <= cap(v.data) {
		// Reslice in place. Memory beyond the old length may hold stale
		// values from a previous shrink and must be zeroed explicitly.
		old := len(v.data)
		v.data = v.data[:n]
		if !preserve {
			zeroFill(v.data)
		} else if n > old {
			zeroFill(v.data[old:])
		}

		return nil
	}

	// Growth beyond capacity: allocate fresh zeroed storage.
	grown := make([]float64, n)
	if preserve {
		copy(grown, v.data) // keep indices < old size
	}
	v.data = grown

	return nil
}

// Extend grows the vector by n elements; equivalent to
// Resize(Size()+n, preserve).
// Complexity: O(n).
func (v *Dense) Extend(n int, preserve bool) error {
	// Validate the delta so the error names Extend, not Resize.
	if err := ValidateNonNegative(n); err != nil {
		return denseErrorf(ctxExtend, n, err)
	}

	return v.Resize(len(v.data)+n, preserve)
}

// Reserve ensures capacity >= n without changing size or values.
// Complexity: O(n) copy on growth, O(1) otherwise.
func (v *Dense) Reserve(n int) error {
	// Validate the requested capacity.
	if err := ValidateNonNegative(n); err != nil {
		return denseErrorf(ctxReserve, n, err)
	}
	if n <= cap(v.data) {
		return nil // already satisfied; nothing to do
	}
	// Reallocate with the exact requested capacity and preserve values.
	grown := make([]float64, len(v.data), n)
	copy(grown, v.data)
	v.data = grown

	return nil
}

// Scale multiplies every element by s in place. Under the numeric policy a
// non-finite scalar is rejected before any element is touched.
// Complexity: O(n).
func (v *Dense) Scale(s float64) error {
	// Numeric policy: validate the scalar once, up front.
	if v.validateNaNInf {
		if err := ValidateFinite(s); err != nil {
			return denseOpErrorf(ctxScale, err)
		}
	}
	for i := range v.data { // fixed forward order
		v.data[i] *= s
	}

	return nil
}

// Clone returns a detached deep copy carrying the numeric policy and the
// orientation tag of the original.
// Complexity: O(n) time and memory.
func (v *Dense) Clone() *Dense {
	// Allocate and copy into independent storage.
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return &Dense{data: cp, validateNaNInf: v.validateNaNInf, orient: v.orient}
}

// String implements fmt.Stringer for easy debugging: "[1, 2, 3]".
// Complexity: O(n) for string construction.
func (v *Dense) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.data { // fixed forward order
		if i > 0 {
			b.WriteString(_fmtSep) // separate values with a comma
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// zeroFill zeroes a slice in place. Shared by Reset and Resize so the
// zeroing policy has one implementation.
func zeroFill(s []float64) {
	for i := range s {
		s[i] = 0
	}
}
