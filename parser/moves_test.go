package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/parser"
)

func TestParseMoveSystem_Basic(t *testing.T) {
	basis := ast.Basis{"a", "b"}
	arities := map[string]int{"box": 1}
	store, err := parser.ParseMoveSystem(strings.NewReader(
		"phi(a)(box) = [a,1] or [b,2];\nphi(b)(box) = true;\n"), basis, arities)
	require.NoError(t, err)

	want := ast.Disj{Children: []ast.Formula{
		ast.Atom{Basis: "a", Index: 1}, ast.Atom{Basis: "b", Index: 2},
	}}
	assert.True(t, want.Equal(store.Get("box", "a")))
	assert.Equal(t, ast.True{}, store.Get("box", "b"))
}

func TestParseMoveSystem_AndBindsTighterThanOr(t *testing.T) {
	basis := ast.Basis{"a"}
	arities := map[string]int{"box": 1}
	store, err := parser.ParseMoveSystem(strings.NewReader(
		"phi(a)(box) = [a,1] or [a,1] and [a,1];\n"), basis, arities)
	require.NoError(t, err)
	want := ast.Disj{Children: []ast.Formula{
		ast.Atom{Basis: "a", Index: 1},
		ast.Conj{Children: []ast.Formula{ast.Atom{Basis: "a", Index: 1}, ast.Atom{Basis: "a", Index: 1}}},
	}}
	assert.True(t, want.Equal(store.Get("box", "a")))
}

func TestParseMoveSystem_RejectsUndeclaredBasisElem(t *testing.T) {
	basis := ast.Basis{"a"}
	arities := map[string]int{"box": 1}
	_, err := parser.ParseMoveSystem(strings.NewReader("phi(z)(box) = true;\n"), basis, arities)
	assert.ErrorIs(t, err, parser.ErrReference)
}

func TestParseMoveSystem_RejectsUndeclaredOperator(t *testing.T) {
	basis := ast.Basis{"a"}
	_, err := parser.ParseMoveSystem(strings.NewReader("phi(a)(box) = true;\n"), basis, map[string]int{})
	assert.ErrorIs(t, err, parser.ErrReference)
}

func TestParseMoveSystem_RejectsNonPositiveIndex(t *testing.T) {
	basis := ast.Basis{"a"}
	arities := map[string]int{"box": 1}
	_, err := parser.ParseMoveSystem(strings.NewReader("phi(a)(box) = [a,0];\n"), basis, arities)
	assert.ErrorIs(t, err, parser.ErrIndex)
}
