package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/compose"
	"github.com/katalvlaran/lcsfe/moves"
)

// atom is shorthand for ast.Atom in table-construction below.
func atom(b string, i int) ast.Formula { return ast.Atom{Basis: b, Index: i} }

func conj(fs ...ast.Formula) ast.Formula { return ast.Conj{Children: fs} }
func disj(fs ...ast.Formula) ast.Formula { return ast.Disj{Children: fs} }

// TestCompose_PaperExample is scenario S6 from spec.md §8: the
// compose_moves_system test carried over from the reference
// implementation's own test suite (same system, basis, and moves).
func TestCompose_PaperExample(t *testing.T) {
	sys := ast.System{
		{Var: "x1", Kind: ast.Max, RHS: ast.Or{
			L: ast.Ident{Name: "x2"},
			R: ast.Operator{Name: "box", Args: []ast.Expr{ast.Ident{Name: "x1"}}},
		}},
		{Var: "x2", Kind: ast.Min, RHS: ast.And{
			L: ast.Ident{Name: "x1"},
			R: ast.Operator{Name: "diamond", Args: []ast.Expr{ast.Ident{Name: "x2"}}},
		}},
	}
	basis := ast.Basis{"a", "b", "c", "d"}

	b := moves.NewStoreBuilder([]string{"box", "diamond"}, basis)
	require.NoError(t, b.Set("box", "a", conj(atom("a", 1), atom("b", 1), atom("c", 1))))
	require.NoError(t, b.Set("box", "b", conj(atom("c", 1), atom("d", 1))))
	require.NoError(t, b.Set("box", "c", atom("c", 1)))
	require.NoError(t, b.Set("box", "d", atom("d", 1)))
	require.NoError(t, b.Set("diamond", "a", disj(atom("a", 1), atom("b", 1), atom("c", 1))))
	require.NoError(t, b.Set("diamond", "b", disj(atom("c", 1), atom("d", 1))))
	require.NoError(t, b.Set("diamond", "c", atom("c", 1)))
	require.NoError(t, b.Set("diamond", "d", atom("d", 1)))
	store := b.Build()

	table, err := compose.Compose(sys, store, basis)
	require.NoError(t, err)

	want := map[string]map[int]ast.Formula{
		"a": {1: disj(atom("a", 2), conj(atom("a", 1), atom("b", 1), atom("c", 1))),
			2: conj(atom("a", 1), disj(atom("a", 2), atom("b", 2), atom("c", 2)))},
		"b": {1: disj(atom("b", 2), conj(atom("c", 1), atom("d", 1))),
			2: conj(atom("b", 1), disj(atom("c", 2), atom("d", 2)))},
		"c": {1: disj(atom("c", 2), atom("c", 1)),
			2: conj(atom("c", 1), atom("c", 2))},
		"d": {1: disj(atom("d", 2), atom("d", 1)),
			2: conj(atom("d", 1), atom("d", 2))},
	}

	for _, bElem := range basis {
		for i := 1; i <= 2; i++ {
			got := table.At(bElem, i)
			assert.Truef(t, want[bElem][i].Equal(got), "phi(%s)(%d): got %#v, want %#v", bElem, i, got, want[bElem][i])
		}
	}
}

// TestCompose_MissingMoveDefaultsToFalse is property 4 from spec.md §8.
func TestCompose_MissingMoveDefaultsToFalse(t *testing.T) {
	sys := ast.System{
		{Var: "x1", Kind: ast.Max, RHS: ast.Operator{Name: "box", Args: []ast.Expr{ast.Ident{Name: "x1"}}}},
	}
	basis := ast.Basis{"a"}
	store := moves.NewStoreBuilder([]string{"box"}, basis).Build() // no entries set

	table, err := compose.Compose(sys, store, basis)
	require.NoError(t, err)
	assert.Equal(t, ast.False{}, table.At("a", 1))
}

func TestCompose_IdentifierProjectsToEquationIndex(t *testing.T) {
	sys := ast.System{
		{Var: "x1", Kind: ast.Max, RHS: ast.Ident{Name: "x2"}},
		{Var: "x2", Kind: ast.Min, RHS: ast.Ident{Name: "x2"}},
	}
	basis := ast.Basis{"a"}
	store := moves.NewStoreBuilder(nil, basis).Build()

	table, err := compose.Compose(sys, store, basis)
	require.NoError(t, err)
	assert.Equal(t, ast.Atom{Basis: "a", Index: 2}, table.At("a", 1))
	assert.Equal(t, ast.Atom{Basis: "a", Index: 2}, table.At("a", 2))
}
