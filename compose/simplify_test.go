package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/compose"
)

func TestSimplify_ConjWithFalse(t *testing.T) {
	f := ast.Conj{Children: []ast.Formula{
		ast.Atom{Basis: "a", Index: 1}, ast.False{}, ast.Atom{Basis: "b", Index: 3},
	}}
	assert.Equal(t, ast.False{}, compose.Simplify(f))
}

func TestSimplify_ConjDropsTrue(t *testing.T) {
	f := ast.Conj{Children: []ast.Formula{
		ast.Atom{Basis: "a", Index: 1}, ast.True{}, ast.Atom{Basis: "b", Index: 3},
	}}
	want := ast.Conj{Children: []ast.Formula{ast.Atom{Basis: "a", Index: 1}, ast.Atom{Basis: "b", Index: 3}}}
	assert.True(t, want.Equal(compose.Simplify(f)))
}

func TestSimplify_DisjWithTrue(t *testing.T) {
	f := ast.Disj{Children: []ast.Formula{
		ast.Atom{Basis: "a", Index: 1}, ast.True{}, ast.Atom{Basis: "b", Index: 3},
	}}
	assert.Equal(t, ast.True{}, compose.Simplify(f))
}

func TestSimplify_DisjDropsFalse(t *testing.T) {
	f := ast.Disj{Children: []ast.Formula{
		ast.Atom{Basis: "a", Index: 1}, ast.False{}, ast.Atom{Basis: "b", Index: 3},
	}}
	want := ast.Disj{Children: []ast.Formula{ast.Atom{Basis: "a", Index: 1}, ast.Atom{Basis: "b", Index: 3}}}
	assert.True(t, want.Equal(compose.Simplify(f)))
}

func TestSimplify_EmptyCollapses(t *testing.T) {
	assert.Equal(t, ast.True{}, compose.Simplify(ast.Conj{}))
	assert.Equal(t, ast.False{}, compose.Simplify(ast.Disj{}))
}

func TestSimplify_SingletonCollapses(t *testing.T) {
	atom := ast.Atom{Basis: "a", Index: 1}
	assert.Equal(t, atom, compose.Simplify(ast.Conj{Children: []ast.Formula{atom}}))
	assert.Equal(t, atom, compose.Simplify(ast.Disj{Children: []ast.Formula{atom}}))
}

func TestSimplify_NestedFalseInDisj(t *testing.T) {
	f := ast.Disj{Children: []ast.Formula{
		ast.Atom{Basis: "a", Index: 1},
		ast.Conj{Children: []ast.Formula{
			ast.Atom{Basis: "a", Index: 1}, ast.False{}, ast.Atom{Basis: "b", Index: 3},
		}},
		ast.Atom{Basis: "b", Index: 3},
	}}
	want := ast.Disj{Children: []ast.Formula{ast.Atom{Basis: "a", Index: 1}, ast.Atom{Basis: "b", Index: 3}}}
	assert.True(t, want.Equal(compose.Simplify(f)))
}

// TestSimplify_Idempotent is property 2 from spec.md §8.
func TestSimplify_Idempotent(t *testing.T) {
	cases := []ast.Formula{
		ast.Conj{Children: []ast.Formula{ast.Atom{Basis: "a", Index: 1}, ast.True{}}},
		ast.Disj{Children: []ast.Formula{ast.Atom{Basis: "a", Index: 1}, ast.False{}, ast.True{}}},
		ast.Conj{},
		ast.Disj{Children: []ast.Formula{ast.Atom{Basis: "a", Index: 1}}},
	}
	for _, f := range cases {
		once := compose.Simplify(f)
		twice := compose.Simplify(once)
		assert.True(t, once.Equal(twice))
	}
}
