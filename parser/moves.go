package parser

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/moves"
)

// ParseMoveSystem parses the moves-system grammar of spec.md §6:
//
//	Move    ::= 'phi' '(' basisElem ')' '(' op ')' '=' Formula ';'
//	Formula ::= Disj
//	Disj    ::= Conj ('or' Conj)*
//	Conj    ::= Atom ('and' Atom)*
//	Atom    ::= '[' basisElem ',' integer ']' | 'true' | 'false' | '(' Formula ')'
//
// (the ';' terminator mirrors the equation-system grammar's Eq
// terminator; the spec's Move production does not show a list
// separator explicitly, so this reader requires one for consistency.)
//
// basis and arities come from ParseBasis/ParseArity and bound which
// basis elements and operators a Move may reference; any other name is
// a reference error.
func ParseMoveSystem(r io.Reader, basis ast.Basis, arities map[string]int) (*moves.Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser.ParseMoveSystem: %w", errors.Join(ErrIO, err))
	}

	ops := make([]string, 0, len(arities))
	for name := range arities {
		ops = append(ops, name)
	}
	sort.Strings(ops)
	sb := moves.NewStoreBuilder(ops, basis)

	p := newEqParser(string(data), arities)
	for p.cur.Kind != TokEOF {
		if err := p.expectKeyword("phi"); err != nil {
			return nil, err
		}
		if err := p.expectSymbol("("); err != nil {
			return nil, err
		}
		if p.cur.Kind != TokIdent {
			return nil, parseErrf(p.cur, "expected basis element")
		}
		bElem := p.cur.Text
		if _, ok := basis.Index(bElem); !ok {
			return nil, refErrf(p.cur, "undeclared basis element %q", bElem)
		}
		p.advance()
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		if err := p.expectSymbol("("); err != nil {
			return nil, err
		}
		if p.cur.Kind != TokIdent {
			return nil, parseErrf(p.cur, "expected operator name")
		}
		op := p.cur.Text
		if _, ok := arities[op]; !ok {
			return nil, refErrf(p.cur, "undeclared operator %q", op)
		}
		p.advance()
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		if err := p.expectSymbol("="); err != nil {
			return nil, err
		}
		f, err := p.parseMoveFormula(basis)
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(";"); err != nil {
			return nil, err
		}
		if err := sb.Set(op, bElem, f); err != nil {
			return nil, fmt.Errorf("parser.ParseMoveSystem: %w", err)
		}
	}
	return sb.Build(), nil
}

func (p *eqParser) parseMoveFormula(basis ast.Basis) (ast.Formula, error) {
	return p.parseMoveDisj(basis)
}

func (p *eqParser) parseMoveDisj(basis ast.Basis) (ast.Formula, error) {
	children := []ast.Formula{}
	first, err := p.parseMoveConj(basis)
	if err != nil {
		return nil, err
	}
	children = append(children, first)
	for p.atKeyword("or") {
		p.advance()
		next, err := p.parseMoveConj(basis)
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return ast.Disj{Children: children}, nil
}

func (p *eqParser) parseMoveConj(basis ast.Basis) (ast.Formula, error) {
	children := []ast.Formula{}
	first, err := p.parseMoveAtom(basis)
	if err != nil {
		return nil, err
	}
	children = append(children, first)
	for p.atKeyword("and") {
		p.advance()
		next, err := p.parseMoveAtom(basis)
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return ast.Conj{Children: children}, nil
}

func (p *eqParser) parseMoveAtom(basis ast.Basis) (ast.Formula, error) {
	switch {
	case p.atSymbol("["):
		p.advance()
		if p.cur.Kind != TokIdent {
			return nil, parseErrf(p.cur, "expected basis element")
		}
		bElem := p.cur.Text
		if _, ok := basis.Index(bElem); !ok {
			return nil, refErrf(p.cur, "undeclared basis element %q", bElem)
		}
		p.advance()
		if err := p.expectSymbol(","); err != nil {
			return nil, err
		}
		if p.cur.Kind != TokInt {
			return nil, parseErrf(p.cur, "expected integer index")
		}
		idx, convErr := strconv.Atoi(p.cur.Text)
		if convErr != nil {
			return nil, parseErrf(p.cur, "malformed integer index")
		}
		idxTok := p.cur
		p.advance()
		if err := p.expectSymbol("]"); err != nil {
			return nil, err
		}
		if idx <= 0 {
			return nil, &ParseError{Line: idxTok.Line, Col: idxTok.Col, Token: idxTok.Text,
				Err: fmt.Errorf("equation index must be >= 1: %w", ErrIndex)}
		}
		return ast.Atom{Basis: bElem, Index: idx}, nil

	case p.atKeyword("true"):
		p.advance()
		return ast.True{}, nil

	case p.atKeyword("false"):
		p.advance()
		return ast.False{}, nil

	case p.atSymbol("("):
		p.advance()
		f, err := p.parseMoveFormula(basis)
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return f, nil

	default:
		return nil, parseErrf(p.cur, "expected move atom")
	}
}
