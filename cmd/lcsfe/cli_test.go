package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcsfe/adapters/muald"
	"github.com/katalvlaran/lcsfe/adapters/pg"
	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/parser"
	"github.com/katalvlaran/lcsfe/pgame"
)

func TestExitCodeFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"parser parse", parser.ErrParse, exitParseError},
		{"parser reference", parser.ErrReference, exitRefError},
		{"parser index", parser.ErrIndex, exitIndexError},
		{"parser io", parser.ErrIO, exitIOError},
		{"pgame bad start", pgame.ErrUnknownStartBasisElem, exitRefError},
		{"pgame bad index", pgame.ErrStartIndexOutOfRange, exitIndexError},
		{"pg parse", pg.ErrParse, exitParseError},
		{"pg unknown node", pg.ErrUnknownNode, exitRefError},
		{"muald parse", muald.ErrParse, exitParseError},
		{"muald mu-parse", muald.ErrMuParse, exitParseError},
		{"muald unbound var", muald.ErrUnboundVar, exitRefError},
		{"muald not fixpoint", muald.ErrNotFixpoint, exitRefError},
		{"unclassified", errors.New("boom"), exitShapeError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, exitCodeFor(tc.err))
		})
	}
}

func TestWinnerMessage(t *testing.T) {
	assert.Equal(t, "The winner is the existential player", winnerMessage(pgame.Eve))
	assert.Equal(t, "The winner is the universal player", winnerMessage(pgame.Adam))
}

func TestRunDebug_RejectsWrongArgCount(t *testing.T) {
	err := runDebug([]string{"only-one-arg"})
	require.Error(t, err)
}

func TestRunDebug_MissingFileIsIOError(t *testing.T) {
	err := runDebug([]string{"/nonexistent/arity", "/nonexistent/fix", "/nonexistent/basis", "/nonexistent/moves", "b", "1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrIO)
}

func TestRunPG_MissingFileIsIOError(t *testing.T) {
	err := runPG([]string{"/nonexistent/game.pg", "0"})
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrIO)
}

func TestRunMuAld_MissingFileIsIOError(t *testing.T) {
	err := runMuAld([]string{"/nonexistent/lts.aut", "tt", "0"})
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrIO)
}

func TestExplainDump_System(t *testing.T) {
	var buf bytes.Buffer
	dump := explainDump{w: &buf}
	sys := ast.System{
		{Var: "x1", Kind: ast.Max, RHS: ast.Ident{Name: "x1"}},
	}
	dump.system("system", sys)
	assert.Contains(t, buf.String(), "x1 =max x1 ;")
}

func TestExplainDump_RenameMapSkipsWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	dump := explainDump{w: &buf}
	dump.renameMap(nil)
	assert.Empty(t, buf.String())
}

func TestFormulaString(t *testing.T) {
	assert.Equal(t, "true", formulaString(ast.True{}))
	assert.Equal(t, "false", formulaString(ast.False{}))
	assert.Equal(t, "[s,1]", formulaString(ast.Atom{Basis: "s", Index: 1}))
	assert.Equal(t, "true", formulaString(ast.Conj{}))
	assert.Equal(t, "false", formulaString(ast.Disj{}))
}

func TestExprString(t *testing.T) {
	e := ast.And{L: ast.Ident{Name: "x1"}, R: ast.Operator{Name: "tt"}}
	assert.Equal(t, "(x1 and tt)", exprString(e))
}
