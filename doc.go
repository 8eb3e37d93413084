// Package densevec provides dense float64 vectors together with an
// access-proxy layer that lets indirect handles to vector-shaped values —
// slots of a symmetric table, cells of an owning container — be used
// everywhere a plain dense vector is expected.
//
// 🚀 What is densevec?
//
//	A small, deterministic library in three subpackages:
//		• vector/ — the Dense value type, the shared Vector interface,
//		  generic numeric kernels (Dot, AXPY, Norm2, …) and free-function
//		  facades, all with error-returning, panic-free accessors
//		• proxy/  — the Access contract (IsRestricted, Get) and the Proxy
//		  adapter that forwards the full dense-vector operation set while
//		  gating every mutating or address-exposing call on a live
//		  restriction predicate
//		• symtab/ — a symmetric table of vector cells: slot (i,j) and (j,i)
//		  share one vector, slots can be frozen, and element access hands
//		  out proxies whose restriction state is re-evaluated on every call
//
// ✨ Why choose densevec?
//
//   - Behavioral transparency – any kernel written against vector.Vector
//     runs unmodified on a plain Dense or on a proxy
//   - Fail-fast safety – a restricted access is an error, never a silent
//     invariant break; bounds are checked, never panicked
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, explicit numeric policy for
//     NaN/Inf ingestion
//
// Quick example of the invariant the proxy protects:
//
//	S(i,j) ───┐
//	          ├──▶ one shared cell
//	S(j,i) ───┘
//
// Freezing the slot makes both handles restricted at once; mutating
// through either would otherwise desynchronize the pairing.
//
// Dive into the subpackage docs for the full operation tables and the
// gating rules.
//
//	go get github.com/katalvlaran/densevec
package densevec
