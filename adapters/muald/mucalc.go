package muald

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/parser"
)

// Sentinel errors for mu-calculus parsing. Callers branch with errors.Is.
var (
	// ErrMuParse indicates a malformed mu-calculus formula.
	ErrMuParse = errors.New("muald: mu-calculus syntax error")
	// ErrUnboundVar indicates a Var references a binder not in scope.
	ErrUnboundVar = errors.New("muald: unbound mu-calculus variable")
)

// Formula is a node of the parsed mu-calculus AST.
type Formula interface {
	muFormulaNode()
}

// Tt and Ff are the modal constants.
type Tt struct{}
type Ff struct{}

func (Tt) muFormulaNode() {}
func (Ff) muFormulaNode() {}

// Var references a binder introduced by an enclosing Eta.
type Var struct{ Name string }

func (Var) muFormulaNode() {}

// Eta is a mu (Kind=ast.Min) or nu (Kind=ast.Max) binder.
type Eta struct {
	Name string
	Kind ast.FixKind
	Sub  Formula
}

func (Eta) muFormulaNode() {}

// Label is a modal transition label: the true-wildcard, a literal
// label, or its negation ("!a": any transition not labelled a).
type Label struct {
	Wildcard bool
	Negated  bool
	Name     string
}

// Key renders the label the way operator names embed it:
// "true", "a", or "!a".
func (l Label) Key() string {
	if l.Wildcard {
		return "true"
	}
	if l.Negated {
		return "!" + l.Name
	}
	return l.Name
}

// Matches reports whether transition label actual satisfies l.
func (l Label) Matches(actual string) bool {
	if l.Wildcard {
		return true
	}
	if l.Negated {
		return actual != l.Name
	}
	return actual == l.Name
}

// Diamond is <a>sub: a successor along a satisfies sub.
type Diamond struct {
	Label Label
	Sub   Formula
}

func (Diamond) muFormulaNode() {}

// ModalBox is [a]sub: every successor along a satisfies sub.
type ModalBox struct {
	Label Label
	Sub   Formula
}

func (ModalBox) muFormulaNode() {}

// And and Or are boolean conjunction/disjunction of sub-formulas.
type And struct{ L, R Formula }
type Or struct{ L, R Formula }

func (And) muFormulaNode() {}
func (Or) muFormulaNode()  {}

// ParseMuCalc parses the grammar from spec.md §6:
//
//	Atom  ::= 'tt' | 'ff' | '(' Expr ')' | Id
//	Modal ::= '<' Label '>' Atom | '[' Label ']' Atom | Atom
//	Label ::= 'true' | Id | '!' Id
//	Conj  ::= Modal ('&&' Modal)*
//	Disj  ::= Conj ('||' Conj)*
//	Fix   ::= 'mu' Id '.' Disj | 'nu' Id '.' Disj
//	Expr  ::= Fix | Disj
func ParseMuCalc(src string) (Formula, error) {
	p := &muParser{lex: parser.NewLexer(src)}
	p.advance()
	f, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != parser.TokEOF {
		return nil, muParseErrf(p.tok, "unexpected trailing input")
	}
	return f, nil
}

type muParser struct {
	lex *parser.Lexer
	tok parser.Token
}

func (p *muParser) advance() { p.tok = p.lex.Next() }

func muParseErrf(tok parser.Token, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("muald: %d:%d: %s (at %q): %w", tok.Line, tok.Col, msg, tok.Text, ErrMuParse)
}

func (p *muParser) expectSymbol(sym string) error {
	if p.tok.Kind != parser.TokSymbol || p.tok.Text != sym {
		return muParseErrf(p.tok, "expected %q", sym)
	}
	p.advance()
	return nil
}

func (p *muParser) atKeyword(kw string) bool {
	return p.tok.Kind == parser.TokIdent && p.tok.Text == kw
}

// parseExpr ::= Fix | Disj
func (p *muParser) parseExpr() (Formula, error) {
	if p.atKeyword("mu") || p.atKeyword("nu") {
		return p.parseFix()
	}
	return p.parseDisj()
}

// parseFix ::= ('mu'|'nu') Id '.' Disj
func (p *muParser) parseFix() (Formula, error) {
	kind := ast.Min
	if p.tok.Text == "nu" {
		kind = ast.Max
	}
	p.advance()
	if p.tok.Kind != parser.TokIdent {
		return nil, muParseErrf(p.tok, "expected binder name")
	}
	name := p.tok.Text
	p.advance()
	if err := p.expectSymbol("."); err != nil {
		return nil, err
	}
	sub, err := p.parseDisj()
	if err != nil {
		return nil, err
	}
	return Eta{Name: name, Kind: kind, Sub: sub}, nil
}

// parseDisj ::= Conj ('||' Conj)*
func (p *muParser) parseDisj() (Formula, error) {
	left, err := p.parseConj()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == parser.TokSymbol && p.tok.Text == "||" {
		p.advance()
		right, err := p.parseConj()
		if err != nil {
			return nil, err
		}
		left = Or{L: left, R: right}
	}
	return left, nil
}

// parseConj ::= Modal ('&&' Modal)*
func (p *muParser) parseConj() (Formula, error) {
	left, err := p.parseModal()
	if err != nil {
		return nil, err
	}
	for p.tok.Kind == parser.TokSymbol && p.tok.Text == "&&" {
		p.advance()
		right, err := p.parseModal()
		if err != nil {
			return nil, err
		}
		left = And{L: left, R: right}
	}
	return left, nil
}

// parseModal ::= '<' Label '>' Atom | '[' Label ']' Atom | Atom
func (p *muParser) parseModal() (Formula, error) {
	switch {
	case p.tok.Kind == parser.TokSymbol && p.tok.Text == "<":
		p.advance()
		label, err := p.parseLabel()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(">"); err != nil {
			return nil, err
		}
		sub, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return Diamond{Label: label, Sub: sub}, nil

	case p.tok.Kind == parser.TokSymbol && p.tok.Text == "[":
		p.advance()
		label, err := p.parseLabel()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol("]"); err != nil {
			return nil, err
		}
		sub, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		return ModalBox{Label: label, Sub: sub}, nil

	default:
		return p.parseAtom()
	}
}

// parseLabel ::= 'true' | Id | '!' Id
func (p *muParser) parseLabel() (Label, error) {
	if p.tok.Kind == parser.TokSymbol && p.tok.Text == "!" {
		p.advance()
		if p.tok.Kind != parser.TokIdent {
			return Label{}, muParseErrf(p.tok, "expected label after '!'")
		}
		name := p.tok.Text
		p.advance()
		return Label{Negated: true, Name: name}, nil
	}
	if p.tok.Kind != parser.TokIdent {
		return Label{}, muParseErrf(p.tok, "expected label")
	}
	name := p.tok.Text
	p.advance()
	if name == "true" {
		return Label{Wildcard: true}, nil
	}
	return Label{Name: name}, nil
}

// parseAtom ::= 'tt' | 'ff' | '(' Expr ')' | Id
func (p *muParser) parseAtom() (Formula, error) {
	switch {
	case p.atKeyword("tt"):
		p.advance()
		return Tt{}, nil
	case p.atKeyword("ff"):
		p.advance()
		return Ff{}, nil
	case p.tok.Kind == parser.TokSymbol && p.tok.Text == "(":
		p.advance()
		sub, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectSymbol(")"); err != nil {
			return nil, err
		}
		return sub, nil
	case p.tok.Kind == parser.TokIdent:
		name := p.tok.Text
		p.advance()
		return Var{Name: name}, nil
	default:
		return nil, muParseErrf(p.tok, "expected 'tt', 'ff', '(', or an identifier")
	}
}
