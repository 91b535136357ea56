// Package pgame plays the local-checking parity game derived from a
// composed move table: Eve (existential, disjunctive) positions
// Eve(b,i) against Adam (universal, conjunctive) positions Adam(X).
//
// Arena bundles the read-only inputs (system, basis, composed table);
// Engine (built by NewEngine, driven by LocalCheck) owns all mutable
// search state — the playlist stack, the assumption table for
// in-progress cycle detection, and the decision table that memoizes
// positions whose winner is already settled — the way tsp.bbEngine
// bundles a branch-and-bound search's frontier and incumbent.
package pgame
