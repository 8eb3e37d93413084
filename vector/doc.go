// Package vector provides the dense float64 vector type and the shared
// Vector trait generic numeric code is written against.
//
// The package provides:
//
//   - Dense — contiguous storage with explicit size and capacity, error
//     returning (panic-free) accessors, and an explicit NaN/Inf ingestion
//     policy configured through functional options.
//   - Vector — the single abstraction satisfied by *Dense and by access
//     proxies (see the proxy package), so kernels run unmodified on either.
//   - Kernels (Dot, AXPY, Norm2, Sum, MaxAbs, Equal) with fail-fast
//     validation and deterministic loop order.
//   - Free-function facades (Size, ScaleBy, ResizeTo, …) that delegate to
//     the trait for call-site uniformity.
//
// Reset and Clear are deliberately outside the access-restriction gate;
// see the Vector contract for the rationale and its consequences.
package vector
