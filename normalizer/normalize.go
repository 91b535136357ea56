package normalizer

import (
	"fmt"

	"github.com/katalvlaran/lcsfe/ast"
)

// RenameMap sends an original equation variable name to its canonical
// identifier x_i. It never contains entries for fresh auxiliary
// variables introduced during normalization.
type RenameMap map[string]string

// Option configures optional Normalize instrumentation. Normalize has
// no required configuration — Option exists purely for the --explain
// CLI flag's benefit, mirroring dfs.Option's non-semantic hooks.
type Option func(*config)

type config struct {
	onFresh func(origChild ast.Expr, freshVar string)
}

// WithFreshVarTrace installs a hook invoked once per fresh variable
// introduced, in the deterministic left-to-right depth-first order
// equations are appended. It does not affect the result and is meant
// for --explain-style diagnostics.
func WithFreshVarTrace(fn func(origChild ast.Expr, freshVar string)) Option {
	return func(c *config) { c.onFresh = fn }
}

// normalizeState carries the mutable bookkeeping threaded through one
// Normalize call: the growing output system, the fresh-variable
// counter, and the rename map. Modeled on dfs.dfsWalker: one struct
// holding all traversal state, methods doing the recursive work.
type normalizeState struct {
	out     ast.System
	nextIdx int
	rename  RenameMap
	cfg     config
}

// Normalize rewrites sys into canonical form per spec.md §4.1. It
// returns the canonical system (length >= len(sys)) and the rename map
// from original variable names to their canonical x_i identifiers.
//
// Normalize assumes sys is shape-valid (ast.System.Validate passes);
// callers are responsible for validating untrusted input before
// calling Normalize, per spec.md §4.1's "failure mode: none".
func Normalize(sys ast.System, opts ...Option) (ast.System, RenameMap, error) {
	if err := sys.Validate(); err != nil {
		return nil, nil, fmt.Errorf("normalizer.Normalize: %w", err)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	m := len(sys)
	st := &normalizeState{
		out:     make(ast.System, m),
		nextIdx: m,
		rename:  make(RenameMap, m),
		cfg:     cfg,
	}
	for i, eq := range sys {
		st.rename[eq.Var] = canonicalName(i + 1)
	}

	for i, eq := range sys {
		canon := st.canonicalizeTop(eq.RHS, eq.Kind)
		st.out[i] = ast.Equation{Var: canonicalName(i + 1), Kind: eq.Kind, RHS: canon}
	}

	return st.out, st.rename, nil
}

func canonicalName(i int) string {
	return fmt.Sprintf("x%d", i)
}

// canonicalizeTop rewrites rhs into one of the four canonical shapes
// (identifier / Operator-of-idents / And-of-idents / Or-of-idents),
// lifting any non-identifier child into a fresh equation appended to
// st.out. kind is the fixKind fresh children inherit.
func (st *normalizeState) canonicalizeTop(rhs ast.Expr, kind ast.FixKind) ast.Expr {
	switch v := rhs.(type) {
	case ast.Ident:
		return ast.Ident{Name: st.rename[v.Name]}
	case ast.And:
		return ast.And{L: st.liftToIdent(v.L, kind), R: st.liftToIdent(v.R, kind)}
	case ast.Or:
		return ast.Or{L: st.liftToIdent(v.L, kind), R: st.liftToIdent(v.R, kind)}
	case ast.Operator:
		args := make([]ast.Expr, len(v.Args))
		for i, a := range v.Args {
			args[i] = st.liftToIdent(a, kind)
		}
		return ast.Operator{Name: v.Name, Args: args}
	default:
		// Unreachable for a Validate-passing System: Expr is a closed
		// sum type with only the four cases above.
		return rhs
	}
}

// liftToIdent returns the canonical Ident standing for e. If e is
// already an Ident, it is simply renamed; otherwise a fresh equation
// is appended to st.out (after e's own children have been lifted, so
// nested structure is fully flattened before the wrapping equation is
// recorded — deeper equations precede the ones that reference them,
// while siblings are processed left to right).
func (st *normalizeState) liftToIdent(e ast.Expr, kind ast.FixKind) ast.Ident {
	if id, ok := e.(ast.Ident); ok {
		return ast.Ident{Name: st.rename[id.Name]}
	}

	childCanon := st.canonicalizeTop(e, kind)

	st.nextIdx++
	fresh := canonicalName(st.nextIdx)
	st.out = append(st.out, ast.Equation{Var: fresh, Kind: kind, RHS: childCanon})
	if st.cfg.onFresh != nil {
		st.cfg.onFresh(e, fresh)
	}

	return ast.Ident{Name: fresh}
}
