// SPDX-License-Identifier: MIT

// Package vector: domain types shared by the dense implementation, the
// proxy adapter and the generic kernels. This file intentionally contains
// ONLY domain-facing types (the Vector trait and the orientation tag).
// Errors and options live in dedicated files (errors.go, options.go) per
// the global conventions.
package vector

// Orient tags a vector as a row or a column vector. The tag is fixed at
// construction (WithOrient) and never mutated afterwards; kernels may read
// it, the access layer never branches on it.
type Orient uint8

const (
	// Col marks a column vector (the default).
	Col Orient = iota

	// Row marks a row vector.
	Row
)

// Vector is the single abstraction generic numeric code depends on. It is
// satisfied by *Dense (the plain container) and by *proxy.Proxy (an
// indirect handle), so any kernel written against Vector runs unmodified
// on either.
//
// Signature conventions:
//   - Operations that can mutate state or expose the backing storage return
//     an error: on *Dense the only failures are bounds/numeric-policy ones;
//     a proxy additionally fails with its restricted-access sentinel.
//   - Reset and Clear carry no error return. They mutate values in place
//     without exposing addresses or changing structural shape and are not
//     gated by the access layer. Changing that would change observable
//     behavior for existing callers, so the asymmetry is part of the
//     contract.
//
// Complexity notes: queries are O(1) except NonZeros (O(n)); visitation and
// value-mutating operations are O(n); Clone is O(n).
type Vector interface {
	// Size returns the current element count.
	// Complexity: O(1).
	Size() int

	// Capacity returns the allocated capacity (>= Size()).
	// Complexity: O(1).
	Capacity() int

	// NonZeros returns the number of elements different from zero.
	// Always <= Size().
	// Complexity: O(n).
	NonZeros() int

	// Orient reports the row/column tag fixed at construction.
	// Complexity: O(1).
	Orient() Orient

	// At retrieves the element at position i.
	// Returns ErrOutOfRange if i < 0 or i >= Size().
	// Complexity: O(1).
	At(i int) (float64, error)

	// Set assigns the value v at position i.
	// Returns ErrOutOfRange on invalid index; ErrNaNInf when the numeric
	// policy rejects non-finite values.
	// Complexity: O(1).
	Set(i int, v float64) error

	// Data returns the raw backing slice. Writes through the slice are
	// writes into the vector; treat it as borrowed for the current call.
	// Complexity: O(1).
	Data() ([]float64, error)

	// Apply replaces every element: v[i] = fn(i, v[i]), in index order.
	// Returns ErrNilVisitor on a nil callback.
	// Complexity: O(n).
	Apply(fn func(i int, v float64) float64) error

	// Range visits every element read-only, in index order, stopping early
	// when fn returns false. Never fails and is always permitted.
	// Complexity: O(n).
	Range(fn func(i int, v float64) bool)

	// Reset sets all elements to zero; size and capacity are unchanged.
	// Complexity: O(n).
	Reset()

	// Clear empties the vector to size zero; capacity is retained.
	// Idempotent.
	// Complexity: O(1).
	Clear()

	// Resize changes the element count to n. Elements at indices
	// < min(old, n) are kept when preserve is true; all elements are
	// zeroed when preserve is false. New elements are always zeroed.
	// Returns ErrBadSize when n < 0.
	// Complexity: O(n).
	Resize(n int, preserve bool) error

	// Extend grows the vector by n elements; equivalent to
	// Resize(Size()+n, preserve).
	// Complexity: O(n).
	Extend(n int, preserve bool) error

	// Reserve ensures capacity >= n without changing size or values.
	// Returns ErrBadSize when n < 0.
	// Complexity: O(n) when reallocation is needed, O(1) otherwise.
	Reserve(n int) error

	// Scale multiplies every element by s in place.
	// Returns ErrNaNInf when the numeric policy rejects a non-finite s.
	// Complexity: O(n).
	Scale(s float64) error

	// Clone returns a detached deep copy as a plain *Dense. A copy leaks
	// no addresses into the caller, so it is always permitted.
	// Complexity: O(n).
	Clone() *Dense
}
