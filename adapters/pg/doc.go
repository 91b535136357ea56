// Package pg adapts PGSolver-format parity games into the core's
// fixpoint-equation input, per spec.md §4.7. A parity game has no
// basis or move grammar of its own: every node becomes one equation,
// the single basis element "true" stands in for "the current node is
// reachable", and the move store is always empty — Or/And composition
// of successor equations does all the work nextMove needs.
package pg
