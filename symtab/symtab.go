// SPDX-License-Identifier: MIT

// Package symtab - symmetric table of dense-vector cells.
//
// Purpose:
//   - Provide a concrete owning structure that produces access proxies:
//     an n×n table whose (i,j) and (j,i) slots resolve to one shared
//     vector cell, so the pairing can never desynchronize.
//   - Demonstrate the live restriction predicate: a slot can be frozen and
//     unfrozen at any time, and every proxy handed out earlier observes
//     the current state on its next call.
//
// Storage:
//   - Cells live in a flat upper-triangle slice of length n*(n+1)/2; the
//     slot index for i<=j is i*n - i*(i+1)/2 + j. Index normalization
//     (swap so i<=j) happens in exactly one place.
//
// Concurrency:
//   - None. Freeze/Unfreeze and proxy operations assume the single-writer
//     discipline of the surrounding numeric code.

package symtab

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densevec/proxy"
	"github.com/katalvlaran/densevec/vector"
)

// Sentinel errors; matched via errors.Is, wrapped with method context at
// call sites.
var (
	// ErrBadShape is returned when the requested order or cell dimension
	// is invalid (order <= 0 or dim < 0).
	ErrBadShape = errors.New("symtab: invalid shape")

	// ErrOutOfRange indicates that a slot coordinate is outside [0, n).
	ErrOutOfRange = errors.New("symtab: slot index out of range")
)

// symErrorf wraps a sentinel with a uniform Symmetric context and the
// callsite coordinates: "Symmetric.<method>(i,j): <sentinel>".
func symErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Symmetric.%s(%d,%d): %w", method, i, j, err)
}

// Symmetric is an n×n table of vector cells with shared twin slots.
//   - cells holds the upper triangle; (i,j) and (j,i) map to one entry.
//   - frozen marks slots whose cells are currently restricted; proxies
//     read it live, never a copy.
type Symmetric struct {
	n      int             // table order (> 0)
	dim    int             // construction-time cell length (>= 0)
	cells  []*vector.Dense // upper-triangle storage, len n*(n+1)/2
	frozen []bool          // restriction flags, parallel to cells
}

// NewSymmetric creates an n×n table whose cells are zero vectors of length
// dim. Vector options (numeric policy, capacity, orientation) are applied
// to every cell.
// Stage 1 (Validate): n > 0 and dim >= 0, else ErrBadShape.
// Stage 2 (Prepare): allocate the triangle and its cells.
// Complexity: O(n² · dim) time and memory.
func NewSymmetric(n, dim int, opts ...vector.Option) (*Symmetric, error) {
	// Validate shape before any allocation.
	if n <= 0 || dim < 0 {
		return nil, symErrorf("NewSymmetric", n, dim, ErrBadShape)
	}

	// One slot per unordered pair, diagonal included.
	slots := n * (n + 1) / 2
	cells := make([]*vector.Dense, slots)
	for k := range cells { // deterministic fill order
		cell, err := vector.NewDense(dim, opts...)
		if err != nil {
			return nil, err // bubble the vector sentinel unchanged
		}
		cells[k] = cell
	}

	return &Symmetric{n: n, dim: dim, cells: cells, frozen: make([]bool, slots)}, nil
}

// Order returns the table order n.
// Complexity: O(1).
func (s *Symmetric) Order() int {
	return s.n
}

// Dim returns the construction-time cell length. Cells may be resized
// later through their proxies; this is the initial length, not a live
// query of any particular cell.
// Complexity: O(1).
func (s *Symmetric) Dim() int {
	return s.dim
}

// slot normalizes (i,j) to the upper triangle and returns the flat index.
// The single source of truth for twin sharing: (i,j) and (j,i) always
// produce the same slot.
// Complexity: O(1).
func (s *Symmetric) slot(i, j int) (int, error) {
	// Validate both coordinates against the table order.
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return 0, ErrOutOfRange
	}
	// Normalize so i <= j (upper triangle).
	if i > j {
		i, j = j, i
	}

	// Flat upper-triangle offset.
	return i*s.n - i*(i+1)/2 + j, nil
}

// At returns an access proxy over the cell shared by (i,j) and (j,i).
// The proxy's restriction predicate reads the slot's CURRENT frozen flag
// on every call: freezing or unfreezing the slot after At changes the
// behavior of proxies already handed out.
// Complexity: O(1).
func (s *Symmetric) At(i, j int) (*proxy.Proxy, error) {
	// Resolve the shared slot or fail with the wrapped sentinel.
	k, err := s.slot(i, j)
	if err != nil {
		return nil, symErrorf("At", i, j, err)
	}

	// Bind closures over the table so both the handle and the predicate
	// are live — nothing is captured by value at proxy construction.
	return proxy.Bind(
		func() *vector.Dense { return s.cells[k] },
		func() bool { return s.frozen[k] },
	)
}

// Freeze marks the slot shared by (i,j) and (j,i) as restricted. All
// proxies over that slot start failing their gated operations on the next
// call. Idempotent.
// Complexity: O(1).
func (s *Symmetric) Freeze(i, j int) error {
	k, err := s.slot(i, j)
	if err != nil {
		return symErrorf("Freeze", i, j, err)
	}
	s.frozen[k] = true

	return nil
}

// Unfreeze lifts the restriction on the slot shared by (i,j) and (j,i).
// Idempotent.
// Complexity: O(1).
func (s *Symmetric) Unfreeze(i, j int) error {
	k, err := s.slot(i, j)
	if err != nil {
		return symErrorf("Unfreeze", i, j, err)
	}
	s.frozen[k] = false

	return nil
}

// Frozen reports whether the slot shared by (i,j) and (j,i) is currently
// restricted.
// Complexity: O(1).
func (s *Symmetric) Frozen(i, j int) (bool, error) {
	k, err := s.slot(i, j)
	if err != nil {
		return false, symErrorf("Frozen", i, j, err)
	}

	return s.frozen[k], nil
}
