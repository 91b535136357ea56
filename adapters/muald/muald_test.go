package muald_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcsfe/adapters/muald"
	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/compose"
	"github.com/katalvlaran/lcsfe/normalizer"
	"github.com/katalvlaran/lcsfe/pgame"
)

func TestParseAldebaran_Basic(t *testing.T) {
	lts, err := muald.ParseAldebaran(strings.NewReader(
		"des (0,2,3)\n(0,\"a\",1)\n(1,\"a\",2)\n"))
	require.NoError(t, err)
	assert.Equal(t, "0", lts.FirstState)
	assert.Equal(t, []string{"0", "1", "2"}, lts.States)
	assert.Equal(t, []string{"a"}, lts.Labels)
	assert.Equal(t, []string{"1"}, successorsOf(lts, "0"))
	assert.Equal(t, []string{"2"}, successorsOf(lts, "1"))
	assert.Empty(t, successorsOf(lts, "2"))
}

func successorsOf(lts *muald.LTS, s string) []string {
	var out []string
	for _, e := range lts.Edges(s) {
		out = append(out, e.To)
	}
	return out
}

func TestParseAldebaran_RejectsBadHeader(t *testing.T) {
	_, err := muald.ParseAldebaran(strings.NewReader("not a header\n"))
	assert.ErrorIs(t, err, muald.ErrParse)
}

func TestParseMuCalc_DiamondAndOr(t *testing.T) {
	f, err := muald.ParseMuCalc("mu X. <a>X || <a>tt")
	require.NoError(t, err)

	want := muald.Eta{Name: "X", Kind: ast.Min, Sub: muald.Or{
		L: muald.Diamond{Label: muald.Label{Name: "a"}, Sub: muald.Var{Name: "X"}},
		R: muald.Diamond{Label: muald.Label{Name: "a"}, Sub: muald.Tt{}},
	}}
	assert.Equal(t, want, f)
}

func TestParseMuCalc_NegatedLabelAndBox(t *testing.T) {
	f, err := muald.ParseMuCalc("nu X. [!a]X && [true]tt")
	require.NoError(t, err)
	eta, ok := f.(muald.Eta)
	require.True(t, ok)
	conj, ok := eta.Sub.(muald.And)
	require.True(t, ok)
	box1, ok := conj.L.(muald.ModalBox)
	require.True(t, ok)
	assert.Equal(t, muald.Label{Negated: true, Name: "a"}, box1.Label)
	box2, ok := conj.R.(muald.ModalBox)
	require.True(t, ok)
	assert.True(t, box2.Label.Wildcard)
}

func TestParseMuCalc_RejectsTrailingGarbage(t *testing.T) {
	_, err := muald.ParseMuCalc("tt tt")
	assert.ErrorIs(t, err, muald.ErrMuParse)
}

func TestToEquations_RejectsNonFixpointRoot(t *testing.T) {
	lts, err := muald.ParseAldebaran(strings.NewReader("des (0,0,1)\n"))
	require.NoError(t, err)
	f, err := muald.ParseMuCalc("tt")
	require.NoError(t, err)
	_, _, _, _, err = muald.ToEquations(f, lts)
	assert.ErrorIs(t, err, muald.ErrNotFixpoint)
}

// TestLocalCheck_ModalDiamondOnThreeStateLTS is scenario S4 from
// spec.md §8: "mu X. <a>X || <a>tt" over s0 -a-> s1 -a-> s2 is won by
// Eve from state 0 (a finite a-path to a dead end exists) and by Adam
// from state 2 (no outgoing a-transition to restart the search).
func TestLocalCheck_ModalDiamondOnThreeStateLTS(t *testing.T) {
	lts, err := muald.ParseAldebaran(strings.NewReader(
		"des (0,2,3)\n(0,\"a\",1)\n(1,\"a\",2)\n"))
	require.NoError(t, err)

	f, err := muald.ParseMuCalc("mu X. <a>X || <a>tt")
	require.NoError(t, err)

	sys, basis, store, queryIdx, err := muald.ToEquations(f, lts)
	require.NoError(t, err)
	require.Equal(t, 1, queryIdx)

	canon, _, err := normalizer.Normalize(sys)
	require.NoError(t, err)

	table, err := compose.Compose(canon, store, basis)
	require.NoError(t, err)
	arena := pgame.NewArena(canon, basis, table)

	winnerFrom0, err := pgame.NewEngine(arena).LocalCheck("0", queryIdx)
	require.NoError(t, err)
	assert.Equal(t, pgame.Eve, winnerFrom0)

	winnerFrom2, err := pgame.NewEngine(arena).LocalCheck("2", queryIdx)
	require.NoError(t, err)
	assert.Equal(t, pgame.Adam, winnerFrom2)
}
