package compose

import (
	"fmt"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/moves"
)

// Table is the dense, immutable composed-move table Φ, indexed by
// equation index (1-based) and basis element. It is laid out as a
// single flat slice, row-major by equation index, the way matrix.Dense
// lays out its backing buffer — cheap equality of position, no
// map-of-maps indirection.
type Table struct {
	sys   ast.System
	basis ast.Basis
	grid  []ast.Formula // grid[(i-1)*len(basis)+bIdx]
}

// At returns Φ[b,i], the simplified composed formula for basis element
// b at equation index i (1-based). At panics if i is out of range;
// callers that do not already know i is valid should check against
// sys.Len() first (as pgame's Engine.LocalCheck does). At returns
// ast.False for a basis element not in the table's basis.
func (t *Table) At(b string, i int) ast.Formula {
	bi, ok := t.basis.Index(b)
	if !ok {
		return ast.False{}
	}
	return t.grid[(i-1)*len(t.basis)+bi]
}

// Basis returns the basis the table was built over.
func (t *Table) Basis() ast.Basis {
	return append(ast.Basis(nil), t.basis...)
}

// Compose builds the dense composed table for canonical system sys,
// move store store, and basis basis, per spec.md §4.3. sys must already
// be in canonical form (package normalizer's output); Compose does not
// re-normalize.
func Compose(sys ast.System, store *moves.Store, basis ast.Basis) (*Table, error) {
	if err := basis.Validate(); err != nil {
		return nil, fmt.Errorf("compose.Compose: %w", err)
	}
	if err := sys.Validate(); err != nil {
		return nil, fmt.Errorf("compose.Compose: %w", err)
	}

	t := &Table{
		sys:   sys,
		basis: append(ast.Basis(nil), basis...),
		grid:  make([]ast.Formula, len(sys)*len(basis)),
	}

	c := &composer{sys: sys, store: store}
	for i := 1; i <= sys.Len(); i++ {
		eq := sys.At(i)
		for bi, b := range basis {
			t.grid[(i-1)*len(basis)+bi] = Simplify(c.compose(eq.RHS, b))
		}
	}

	return t, nil
}

// composer holds the read-only inputs threaded through the recursive
// compose/subst pair. Grounded on dfs.dfsWalker: a small struct
// carrying the inputs, with the recursive work as methods.
type composer struct {
	sys   ast.System
	store *moves.Store
}

// compose implements compose(E, expr, S, b) from spec.md §4.3.
func (c *composer) compose(expr ast.Expr, b string) ast.Formula {
	switch v := expr.(type) {
	case ast.Ident:
		idx, ok := c.sys.Index(v.Name)
		if !ok {
			// Unreachable for a Validate-passing, canonical system.
			return ast.False{}
		}
		return ast.Atom{Basis: b, Index: idx}

	case ast.And:
		return ast.Conj{Children: []ast.Formula{
			c.subst(v, ast.Atom{Basis: b, Index: 1}),
			c.subst(v, ast.Atom{Basis: b, Index: 2}),
		}}

	case ast.Or:
		return ast.Disj{Children: []ast.Formula{
			c.subst(v, ast.Atom{Basis: b, Index: 1}),
			c.subst(v, ast.Atom{Basis: b, Index: 2}),
		}}

	case ast.Operator:
		return c.subst(v, c.store.Get(v.Name, b))

	default:
		return ast.False{}
	}
}

// subst implements subst(expr, formula) from spec.md §4.3: every atom
// [b', j] inside formula is replaced by compose(E, argsOf(expr)[j-1],
// S, b'); Conj/Disj recurse structurally; True/False pass through.
func (c *composer) subst(expr ast.Expr, formula ast.Formula) ast.Formula {
	switch f := formula.(type) {
	case ast.Atom:
		args := argsOf(expr)
		return c.compose(args[f.Index-1], f.Basis)

	case ast.Conj:
		children := make([]ast.Formula, len(f.Children))
		for i, ch := range f.Children {
			children[i] = c.subst(expr, ch)
		}
		return ast.Conj{Children: children}

	case ast.Disj:
		children := make([]ast.Formula, len(f.Children))
		for i, ch := range f.Children {
			children[i] = c.subst(expr, ch)
		}
		return ast.Disj{Children: children}

	default:
		return formula
	}
}

// argsOf returns the argument list an enclosing expr provides to its
// template's atom indices: And/Or provide [l, r]; Operator provides
// its own Args; an Ident provides itself as the sole (1-indexed)
// argument — matching the Rust reference's `subst` arg resolution.
func argsOf(expr ast.Expr) []ast.Expr {
	switch v := expr.(type) {
	case ast.And:
		return []ast.Expr{v.L, v.R}
	case ast.Or:
		return []ast.Expr{v.L, v.R}
	case ast.Operator:
		return v.Args
	default:
		return []ast.Expr{expr}
	}
}
