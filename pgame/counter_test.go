package pgame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/pgame"
)

func twoEqSystem(k1, k2 ast.FixKind) ast.System {
	return ast.System{
		{Var: "x1", Kind: k1, RHS: ast.Ident{Name: "x1"}},
		{Var: "x2", Kind: k2, RHS: ast.Ident{Name: "x2"}},
	}
}

func TestCounter_NextResetsLowerSlotsAndCarriesHigher(t *testing.T) {
	k := pgame.Counter{3, 5, 7}
	got := pgame.Next(k, 2)
	assert.Equal(t, pgame.Counter{0, 6, 7}, got)
}

func TestCounter_NextAtAdamPriorityIsNoop(t *testing.T) {
	k := pgame.Counter{3, 5, 7}
	got := pgame.Next(k, 0)
	assert.Equal(t, k, got)
	// Next must not alias the input.
	got[0] = 99
	assert.Equal(t, 3, k[0])
}

func TestCounter_LessEveMaxPrefersSmaller(t *testing.T) {
	sys := twoEqSystem(ast.Max, ast.Min)
	// Differ only at index 1 (Max): smaller count is "less" in the Eve order.
	assert.True(t, pgame.LessEve(sys, pgame.Counter{0, 5}, pgame.Counter{1, 5}))
	assert.False(t, pgame.LessEve(sys, pgame.Counter{1, 5}, pgame.Counter{0, 5}))
}

func TestCounter_LessEveMinPrefersLarger(t *testing.T) {
	sys := twoEqSystem(ast.Max, ast.Min)
	// Differ at index 2 (Min): larger count is "less" in the Eve order.
	assert.True(t, pgame.LessEve(sys, pgame.Counter{0, 7}, pgame.Counter{0, 3}))
}

func TestCounter_LessAdamIsDualOfLessEve(t *testing.T) {
	sys := twoEqSystem(ast.Max, ast.Min)
	a, b := pgame.Counter{0, 5}, pgame.Counter{1, 0}
	assert.Equal(t, pgame.LessEve(sys, a, b), pgame.LessAdam(sys, b, a))
}

func TestCounter_LessEqIncludesEquality(t *testing.T) {
	sys := twoEqSystem(ast.Max, ast.Min)
	k := pgame.Counter{1, 2}
	assert.True(t, pgame.LessEqEve(sys, k, k.Clone()))
	assert.True(t, pgame.LessEqAdam(sys, k, k.Clone()))
}
