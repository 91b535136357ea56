// Package compose implements the composer and simplifier: for a
// canonical fixpoint system, a move store, and a basis, it builds the
// dense table Φ[b,i] = simplify(compose(E, E[i].rhs, S, b)), per
// spec.md §4.3.
//
// The dense table is modeled on matrix.Dense's flat row-major buffer:
// a single []ast.Formula slice indexed by i*len(basis)+bIdx, avoiding
// the allocation and indirection of a map-of-maps.
package compose
