package moves_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/moves"
)

func TestStore_DefaultsToFalse(t *testing.T) {
	b := moves.NewStoreBuilder([]string{"box", "diamond"}, ast.Basis{"s0", "s1"})
	s := b.Build()

	assert.Equal(t, ast.False{}, s.Get("box", "s0"))
	assert.Equal(t, ast.False{}, s.Get("unknown-op", "s0"))
	assert.Equal(t, ast.False{}, s.Get("box", "unknown-basis"))
}

func TestStore_SetAndGet(t *testing.T) {
	b := moves.NewStoreBuilder([]string{"box"}, ast.Basis{"s0", "s1"})
	require.NoError(t, b.Set("box", "s0", ast.Atom{Basis: "s1", Index: 1}))
	s := b.Build()

	assert.Equal(t, ast.Atom{Basis: "s1", Index: 1}, s.Get("box", "s0"))
	assert.Equal(t, ast.False{}, s.Get("box", "s1"))
}

func TestStore_SetRejectsUnknown(t *testing.T) {
	b := moves.NewStoreBuilder([]string{"box"}, ast.Basis{"s0"})
	assert.ErrorIs(t, b.Set("ghost", "s0", ast.True{}), moves.ErrUnknownOperator)
	assert.ErrorIs(t, b.Set("box", "ghost", ast.True{}), moves.ErrUnknownBasisElem)
}

func TestStore_BuildIsImmutableSnapshot(t *testing.T) {
	b := moves.NewStoreBuilder([]string{"box"}, ast.Basis{"s0"})
	require.NoError(t, b.Set("box", "s0", ast.True{}))
	s := b.Build()

	require.NoError(t, b.Set("box", "s0", ast.False{}))
	assert.Equal(t, ast.True{}, s.Get("box", "s0"), "Store snapshot must not observe later builder mutations")
}

func TestStore_OperatorsAndBasis(t *testing.T) {
	b := moves.NewStoreBuilder([]string{"box", "diamond"}, ast.Basis{"s0", "s1"})
	s := b.Build()
	assert.Equal(t, []string{"box", "diamond"}, s.Operators())
	assert.Equal(t, ast.Basis{"s0", "s1"}, s.Basis())
}
