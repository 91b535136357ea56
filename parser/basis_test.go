package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/parser"
)

func TestParseBasis_PreservesOrder(t *testing.T) {
	out, err := parser.ParseBasis(strings.NewReader("c\na\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, ast.Basis{"c", "a", "b"}, out)
}

func TestParseBasis_RejectsDuplicate(t *testing.T) {
	_, err := parser.ParseBasis(strings.NewReader("a\nb\na\n"))
	assert.ErrorIs(t, err, ast.ErrDuplicateBasisElem)
}

func TestParseBasis_RejectsEmpty(t *testing.T) {
	_, err := parser.ParseBasis(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, ast.ErrEmptyBasis)
}
