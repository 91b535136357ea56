// Package ast defines the data model shared by every stage of the local
// model checker: fixpoint expressions and systems, and the logical
// formulas over atoms [b,i] used by symbolic moves.
//
// Types here are plain, comparable-by-structure values (no pointer
// identity, no hidden state) — the normalizer, move store, composer,
// and solver all operate on ast values without mutating them in place.
//
// Equality throughout is structural: two Expr or Formula values are
// Equal if they have the same shape and the same leaves, regardless of
// where they were constructed.
package ast
