// Package proxy provides the access-proxy abstraction for dense-vector
// shaped values: the minimal Access contract (IsRestricted, Get) and the
// Proxy adapter that forwards the complete vector operation set while
// gating every mutating or address-exposing call on a restriction
// predicate evaluated fresh at each call.
//
// A Proxy is behaviorally transparent: it satisfies vector.Vector, so any
// kernel written against that trait runs unmodified on a plain Dense and
// on a proxy. When the producer reports the element as restricted, gated
// operations fail fast with ErrRestrictedAccess and leave the underlying
// vector unmodified; read-only queries (Size, Capacity, NonZeros, Range,
// Clone) are always permitted.
//
// See the symtab package for a concrete producer.
package proxy
