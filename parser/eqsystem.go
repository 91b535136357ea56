package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lcsfe/ast"
)

// eqParser is the shared recursive-descent state for the
// equation-system and moves-system grammars: a Lexer plus a
// one-token lookahead, modeled the way a small hand-rolled compiler's
// parser struct holds its scanner and current token.
type eqParser struct {
	lex     *Lexer
	cur     Token
	arities map[string]int
}

func newEqParser(src string, arities map[string]int) *eqParser {
	p := &eqParser{lex: NewLexer(src), arities: arities}
	p.advance()
	return p
}

func (p *eqParser) advance() { p.cur = p.lex.Next() }

func (p *eqParser) atSymbol(s string) bool { return p.cur.Kind == TokSymbol && p.cur.Text == s }
func (p *eqParser) atKeyword(s string) bool { return p.cur.Kind == TokIdent && p.cur.Text == s }

func (p *eqParser) expectSymbol(s string) error {
	if !p.atSymbol(s) {
		return parseErrf(p.cur, "expected %q", s)
	}
	p.advance()
	return nil
}

func (p *eqParser) expectKeyword(s string) error {
	if !p.atKeyword(s) {
		return parseErrf(p.cur, "expected %q", s)
	}
	p.advance()
	return nil
}

// ParseEquationSystem parses the EqList grammar of spec.md §6:
//
//	EqList ::= (Eq ';')+
//	Eq     ::= Id '=max' ExpEq | Id '=min' ExpEq
//	ExpEq  ::= OrExpEq
//	OrExpEq  ::= AndExpEq ('or'  AndExpEq)*
//	AndExpEq ::= Atom     ('and' Atom)*
//	Atom   ::= Id | '(' ExpEq ')' | Op '(' ExpEq (',' ExpEq)* ')'
//
// arities supplies the declared operators and their arity, used to
// reject undeclared operators and arity mismatches as reference
// errors. The returned System is validated (ast.System.Validate)
// before being handed back.
func ParseEquationSystem(r io.Reader, arities map[string]int) (ast.System, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("parser.ParseEquationSystem: %w", errors.Join(ErrIO, err))
	}

	p := newEqParser(string(data), arities)
	var sys ast.System
	for p.cur.Kind != TokEOF {
		eq, err := p.parseEq()
		if err != nil {
			return nil, err
		}
		sys = append(sys, eq)
		if err := p.expectSymbol(";"); err != nil {
			return nil, err
		}
	}
	if len(sys) == 0 {
		return nil, fmt.Errorf("parser.ParseEquationSystem: empty system: %w", ErrParse)
	}
	if err := sys.Validate(); err != nil {
		return nil, fmt.Errorf("parser.ParseEquationSystem: %w", err)
	}
	return sys, nil
}

func (p *eqParser) parseEq() (ast.Equation, error) {
	if p.cur.Kind != TokIdent {
		return ast.Equation{}, parseErrf(p.cur, "expected equation variable")
	}
	varName := p.cur.Text
	p.advance()
	if err := p.expectSymbol("="); err != nil {
		return ast.Equation{}, err
	}

	var kind ast.FixKind
	switch {
	case p.atKeyword("max"):
		kind = ast.Max
	case p.atKeyword("min"):
		kind = ast.Min
	default:
		return ast.Equation{}, parseErrf(p.cur, "expected \"max\" or \"min\"")
	}
	p.advance()

	rhs, err := p.parseExpEq()
	if err != nil {
		return ast.Equation{}, err
	}
	return ast.Equation{Var: varName, Kind: kind, RHS: rhs}, nil
}

func (p *eqParser) parseExpEq() (ast.Expr, error) { return p.parseOrExpEq() }

func (p *eqParser) parseOrExpEq() (ast.Expr, error) {
	left, err := p.parseAndExpEq()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("or") {
		p.advance()
		right, err := p.parseAndExpEq()
		if err != nil {
			return nil, err
		}
		left = ast.Or{L: left, R: right}
	}
	return left, nil
}

func (p *eqParser) parseAndExpEq() (ast.Expr, error) {
	left, err := p.parseAtomEq()
	if err != nil {
		return nil, err
	}
	for p.atKeyword("and") {
		p.advance()
		right, err := p.parseAtomEq()
		if err != nil {
			return nil, err
		}
		left = ast.And{L: left, R: right}
	}
	return left, nil
}

func (p *eqParser) parseAtomEq() (ast.Expr, error) {
	if p.atSymbol("(") {
		p.advance()
		e, err := p.parseExpEq()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return e, nil
	}

	if p.cur.Kind != TokIdent {
		return nil, parseErrf(p.cur, "expected identifier or '('")
	}
	name := p.cur.Text
	p.advance()

	if !p.atSymbol("(") {
		return ast.Ident{Name: name}, nil
	}

	p.advance()
	var args []ast.Expr
	if !p.atSymbol(")") {
		for {
			arg, err := p.parseExpEq()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.atSymbol(",") {
				p.advance()
				continue
			}
			break
		}
	}
	if err := p.expectSymbol(")"); err != nil {
		return nil, err
	}

	arity, known := p.arities[name]
	if !known {
		return nil, refErrf(p.cur, "undeclared operator %q", name)
	}
	if arity != len(args) {
		return nil, refErrf(p.cur, "operator %q wants %d argument(s), got %d", name, arity, len(args))
	}
	return ast.Operator{Name: name, Args: args}, nil
}
