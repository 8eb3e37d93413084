// SPDX-License-Identifier: MIT

// Package proxy - the access-proxy adapter for dense-vector-shaped values.
//
// Purpose:
//   - Define the minimal Access contract every concrete proxy satisfies:
//     a live restriction predicate and a handle to the underlying vector.
//   - Adapt any Access into the complete dense-vector operation set
//     (vector.Vector), gating every mutating or address-exposing call.
//
// Gate table (mirrors the Vector trait):
//   - gated:   At, Set, Data, Apply, Resize, Extend, Reserve, Scale
//   - ungated: Size, Capacity, NonZeros, Orient, Range, Clone
//   - ungated by inherited policy: Reset, Clear — they mutate values in
//     place without exposing addresses or changing structural shape.
//     Integrators relying on pairing invariants should be aware a frozen
//     slot can still be reset through this path.
//
// Lifetime:
//   - A Proxy is a cheap, non-owning handle. It borrows the underlying
//     vector for the duration of one call (Get is re-invoked per
//     operation, never cached) and must not outlive the owner's storage.
//     Dangling use is a caller contract violation the proxy cannot detect.
//
// Concurrency:
//   - None. The proxy performs no synchronization and assumes the
//     single-writer discipline of the surrounding numeric code; external
//     locking around the owning structure is the caller's responsibility.

package proxy

import (
	"fmt"

	"github.com/katalvlaran/densevec/vector"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxData    = "Data"
	ctxApply   = "Apply"
	ctxResize  = "Resize"
	ctxExtend  = "Extend"
	ctxReserve = "Reserve"
	ctxScale   = "Scale"
)

// proxyErrorf wraps a sentinel with a uniform Proxy context:
// "Proxy.<method>: <sentinel>".
func proxyErrorf(method string, err error) error {
	return fmt.Errorf("Proxy.%s: %w", method, err)
}

// Access is the minimal contract a concrete proxy producer satisfies.
//
// IsRestricted is a pure query with no side effects. It MUST reflect the
// current state of the owning structure on every call — the restriction
// state can change between two calls on the same proxy (e.g., once one
// twin of a pairing is fixed, the other becomes unrestricted), so
// implementations must never cache it at construction time.
//
// Get returns the handle to forward to; it must be valid for the duration
// of the call it serves.
type Access interface {
	IsRestricted() bool
	Get() *vector.Dense
}

// Proxy adapts an Access into the full vector.Vector operation set. The
// zero value is not usable; construct via New or Bind.
type Proxy struct {
	access Access // the contract; the only state the proxy holds
}

// Compile-time assertion: a Proxy is usable wherever a Vector is expected.
var _ vector.Vector = (*Proxy)(nil)

// New wraps an Access contract. Returns ErrNilAccess on a nil contract.
func New(a Access) (*Proxy, error) {
	if a == nil {
		return nil, ErrNilAccess
	}

	return &Proxy{access: a}, nil
}

// Bind builds a Proxy from two closures — the live restriction predicate
// and the handle getter. This is the convenient form for owners whose
// restriction state is a computation over their current state rather than
// a stored flag.
func Bind(get func() *vector.Dense, restricted func() bool) (*Proxy, error) {
	if get == nil || restricted == nil {
		return nil, ErrNilAccess
	}

	return &Proxy{access: funcAccess{get: get, restricted: restricted}}, nil
}

// funcAccess adapts a closure pair to the Access contract.
type funcAccess struct {
	get        func() *vector.Dense
	restricted func() bool
}

func (f funcAccess) IsRestricted() bool { return f.restricted() }
func (f funcAccess) Get() *vector.Dense { return f.get() }

// IsRestricted re-evaluates the live predicate. Exposed so generic code
// can probe restriction state without attempting an operation.
func (p *Proxy) IsRestricted() bool {
	return p.access.IsRestricted()
}

// Get returns the underlying vector handle for the current call.
// Address-exposing by nature; prefer the gated operations unless you are
// implementing a producer.
func (p *Proxy) Get() *vector.Dense {
	return p.access.Get()
}

// gate evaluates the restriction predicate at call time and converts a
// positive answer into the wrapped sentinel. Every gated operation calls
// this first, before touching the underlying vector.
func (p *Proxy) gate(method string) error {
	if p.access.IsRestricted() {
		return proxyErrorf(method, ErrRestrictedAccess)
	}

	return nil
}

// ---------- ungated queries (always permitted) ----------

// Size returns the current element count of the underlying vector.
func (p *Proxy) Size() int {
	return p.access.Get().Size()
}

// Capacity returns the allocated capacity of the underlying vector.
func (p *Proxy) Capacity() int {
	return p.access.Get().Capacity()
}

// NonZeros returns the number of non-zero elements of the underlying
// vector. Always <= Size().
func (p *Proxy) NonZeros() int {
	return p.access.Get().NonZeros()
}

// Orient reports the row/column tag of the underlying vector.
func (p *Proxy) Orient() vector.Orient {
	return p.access.Get().Orient()
}

// Range visits every element of the underlying vector read-only, in index
// order. Always permitted: read-only visitation cannot corrupt invariants
// of the owning structure.
func (p *Proxy) Range(fn func(i int, x float64) bool) {
	p.access.Get().Range(fn)
}

// Clone returns a detached deep copy of the underlying vector. A copy
// leaks no addresses, so it is always permitted.
func (p *Proxy) Clone() *vector.Dense {
	return p.access.Get().Clone()
}

// ---------- gated operations ----------

// At retrieves the element at index i.
// Fails with ErrRestrictedAccess when the element is restricted; bounds
// errors from the underlying vector pass through unchanged.
func (p *Proxy) At(i int) (float64, error) {
	if err := p.gate(ctxAt); err != nil {
		return 0, err
	}

	return p.access.Get().At(i)
}

// Set assigns x at index i.
// Fails with ErrRestrictedAccess when the element is restricted.
func (p *Proxy) Set(i int, x float64) error {
	if err := p.gate(ctxSet); err != nil {
		return err
	}

	return p.access.Get().Set(i, x)
}

// Data returns the raw backing slice of the underlying vector.
// Address-exposing, therefore gated: a leaked slice would bypass every
// later restriction check.
func (p *Proxy) Data() ([]float64, error) {
	if err := p.gate(ctxData); err != nil {
		return nil, err
	}

	return p.access.Get().Data()
}

// Apply replaces every element in place via fn.
// Fails with ErrRestrictedAccess when the element is restricted; the
// underlying vector is untouched in that case.
func (p *Proxy) Apply(fn func(i int, x float64) float64) error {
	if err := p.gate(ctxApply); err != nil {
		return err
	}

	return p.access.Get().Apply(fn)
}

// Reset sets all elements of the underlying vector to zero. NOT gated —
// inherited policy, see the package comment.
func (p *Proxy) Reset() {
	p.access.Get().Reset()
}

// Clear empties the underlying vector. NOT gated — inherited policy, see
// the package comment. Idempotent.
func (p *Proxy) Clear() {
	p.access.Get().Clear()
}

// Resize changes the element count of the underlying vector.
// Fails with ErrRestrictedAccess when the element is restricted.
func (p *Proxy) Resize(n int, preserve bool) error {
	if err := p.gate(ctxResize); err != nil {
		return err
	}

	return p.access.Get().Resize(n, preserve)
}

// Extend grows the underlying vector by n elements.
// Fails with ErrRestrictedAccess when the element is restricted.
func (p *Proxy) Extend(n int, preserve bool) error {
	if err := p.gate(ctxExtend); err != nil {
		return err
	}

	return p.access.Get().Extend(n, preserve)
}

// Reserve ensures capacity of the underlying vector is at least n.
// Fails with ErrRestrictedAccess when the element is restricted.
func (p *Proxy) Reserve(n int) error {
	if err := p.gate(ctxReserve); err != nil {
		return err
	}

	return p.access.Get().Reserve(n)
}

// Scale multiplies every element of the underlying vector by s.
// Fails with ErrRestrictedAccess when the element is restricted.
func (p *Proxy) Scale(s float64) error {
	if err := p.gate(ctxScale); err != nil {
		return err
	}

	return p.access.Get().Scale(s)
}
