// Package moves implements the move store: a read-only dense table
// mapping (operator name, basis element) pairs to the operator's
// symbolic ∃-move formula at that basis element. Entries not supplied
// to the builder default to ast.False, per spec.md §4.2.
//
// Construction follows the teacher's builder-then-freeze convention
// (see lvlath/builder): callers populate a *StoreBuilder with Set,
// then call Build to obtain an immutable *Store safe for concurrent
// reads during solving.
package moves
