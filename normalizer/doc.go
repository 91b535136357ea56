// Package normalizer rewrites an arbitrary fixpoint system into
// canonical form: every right-hand side is an identifier, a binary
// And/Or of two identifiers, or an Operator applied only to
// identifiers. Non-identifier children are lifted into fresh
// equations appended after the original m equations, each inheriting
// the fixKind of the equation it was extracted from.
//
// Normalize never fails on shape-valid input (spec.md §4.1: "Failure
// mode: none"); the only error this package returns is
// ast.System.Validate's, surfaced before any rewriting begins.
package normalizer
