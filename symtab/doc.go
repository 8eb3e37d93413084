// Package symtab offers a symmetric table of dense-vector cells, the
// concrete producer of access proxies in this module.
//
// Slots (i,j) and (j,i) share one underlying vector, so the pairing is
// consistent by construction. Individual slots can be frozen; element
// access returns proxies (see the proxy package) whose restriction state
// is re-evaluated on every call, so freezing a slot immediately affects
// proxies handed out earlier.
package symtab
