// Package lcsfe (Local Check of Symbolic Fixpoint Equations) decides,
// for one designated basis element and one designated equation of a
// fixpoint system, which of two players wins — without solving the
// whole system globally.
//
// 🚀 What is lcsfe?
//
//	A small, dependency-light local model checker built around one
//	question: does basis element b satisfy equation i? It answers
//	that by playing a parity game over the system's composed moves,
//	exploring only what the query touches.
//
// ✨ Why a local check?
//
//   - Focused      — no fixed point is computed for equations the
//     query never reaches
//   - Exact        — built on the same μ-calculus/parity-game duality
//     as a global solver, just entered from one position
//   - Three frontends — feed it raw equations, a PGSolver parity game,
//     or an Aldebaran LTS with a μ-calculus formula
//
// Pipeline:
//
//	(arity, equations, basis, moves) → Normalizer → Composer → Solver → winner
//
// Under the hood, everything is organized under single-concern
// subpackages:
//
//	ast/            — the equation/formula data model shared by every stage
//	normalizer/     — canonicalizes a fixpoint system, tracking a rename map
//	moves/          — the uncomposed move store, (operator, basis elem) → formula
//	compose/        — substitutes moves into equations, producing the Φ table
//	pgame/          — the parity-game position model and local-check solver
//	parser/         — readers for the arity/basis/equation/move file formats
//	adapters/pg/    — PGSolver parity-game files → equations
//	adapters/muald/ — Aldebaran LTS + μ-calculus formula → equations
//	cmd/lcsfe/      — the debug/pg/mu-ald command-line frontends
//
// Quick ASCII example — a three-state, one-label LTS:
//
//	(0) --a--> (1) --a--> (2)
//
//	"mu X. <a>X || <a>tt" holds at state 0 (a finite a-path exists)
//	but not at state 2 (no outgoing a-transition to restart the search).
//
//	go get github.com/katalvlaran/lcsfe
package lcsfe
