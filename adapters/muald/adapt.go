package muald

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/moves"
)

// ErrNotFixpoint indicates the formula given to ToEquations has no
// outermost mu/nu binder: a closed fixpoint formula is the only thing
// a local check can query, per spec.md §4.7.
var ErrNotFixpoint = errors.New("muald: formula has no outermost fixpoint binder")

// ToEquations translates formula (which must be rooted at a mu/nu
// binder) over lts into a fixpoint system with one equation per
// η-binder, outermost first (equation index 1), and a move store with
// diamond_<label>/box_<label>/tt/ff instantiated at every state. The
// right-hand sides keep the formula's nesting (e.g. an Or of two
// operator applications) and are not in canonical form; pass the
// system through normalizer.Normalize to flatten it. Operators are
// created only for the modalities and constants that occur in the
// formula. It returns the system, the state basis, the move
// store, and the query equation index (always 1 — the outermost
// binder).
func ToEquations(formula Formula, lts *LTS) (ast.System, ast.Basis, *moves.Store, int, error) {
	if _, ok := formula.(Eta); !ok {
		return nil, nil, nil, 0, fmt.Errorf("muald.ToEquations: %w", ErrNotFixpoint)
	}

	basis := make(ast.Basis, len(lts.States))
	copy(basis, lts.States)

	b := &builder{
		sys:     make(ast.System, countEtas(formula)),
		varMap:  make(map[string]string),
		opSeen:  make(map[string]bool),
		opLabel: make(map[string]Label),
	}
	if _, err := b.build(formula); err != nil {
		return nil, nil, nil, 0, err
	}

	store, err := buildStore(b.ops, b.opLabel, lts)
	if err != nil {
		return nil, nil, nil, 0, err
	}

	return b.sys, basis, store, 1, nil
}

// countEtas returns the number of mu/nu binders in f, which is the
// number of equations ToEquations will produce.
func countEtas(f Formula) int {
	switch v := f.(type) {
	case Eta:
		return 1 + countEtas(v.Sub)
	case Diamond:
		return countEtas(v.Sub)
	case ModalBox:
		return countEtas(v.Sub)
	case And:
		return countEtas(v.L) + countEtas(v.R)
	case Or:
		return countEtas(v.L) + countEtas(v.R)
	default:
		return 0
	}
}

// builder walks a Formula once, reserving equation indices in
// pre-order (so the outermost binder gets index 1) and collecting the
// distinct diamond_/box_/tt/ff operator names the translation needs.
type builder struct {
	sys     ast.System
	varMap  map[string]string
	nextIdx int

	ops     []string
	opSeen  map[string]bool
	opLabel map[string]Label
}

func (b *builder) noteOp(name string, label Label, hasLabel bool) {
	if b.opSeen[name] {
		return
	}
	b.opSeen[name] = true
	b.ops = append(b.ops, name)
	if hasLabel {
		b.opLabel[name] = label
	}
}

func (b *builder) build(f Formula) (ast.Expr, error) {
	switch v := f.(type) {
	case Eta:
		b.nextIdx++
		idx := b.nextIdx
		name := eqVar(idx)
		b.varMap[v.Name] = name
		sub, err := b.build(v.Sub)
		if err != nil {
			return nil, err
		}
		b.sys[idx-1] = ast.Equation{Var: name, Kind: v.Kind, RHS: sub}
		return ast.Ident{Name: name}, nil

	case Var:
		name, ok := b.varMap[v.Name]
		if !ok {
			return nil, fmt.Errorf("muald.ToEquations: %q: %w", v.Name, ErrUnboundVar)
		}
		return ast.Ident{Name: name}, nil

	case Tt:
		b.noteOp("tt", Label{}, false)
		return ast.Operator{Name: "tt"}, nil

	case Ff:
		b.noteOp("ff", Label{}, false)
		return ast.Operator{Name: "ff"}, nil

	case Diamond:
		sub, err := b.build(v.Sub)
		if err != nil {
			return nil, err
		}
		op := "diamond_" + v.Label.Key()
		b.noteOp(op, v.Label, true)
		return ast.Operator{Name: op, Args: []ast.Expr{sub}}, nil

	case ModalBox:
		sub, err := b.build(v.Sub)
		if err != nil {
			return nil, err
		}
		op := "box_" + v.Label.Key()
		b.noteOp(op, v.Label, true)
		return ast.Operator{Name: op, Args: []ast.Expr{sub}}, nil

	case And:
		l, err := b.build(v.L)
		if err != nil {
			return nil, err
		}
		r, err := b.build(v.R)
		if err != nil {
			return nil, err
		}
		return ast.And{L: l, R: r}, nil

	case Or:
		l, err := b.build(v.L)
		if err != nil {
			return nil, err
		}
		r, err := b.build(v.R)
		if err != nil {
			return nil, err
		}
		return ast.Or{L: l, R: r}, nil

	default:
		return nil, fmt.Errorf("muald.ToEquations: unhandled formula node %T", f)
	}
}

// buildStore instantiates every operator in ops at every state of lts,
// per spec.md §4.7's bullet list: diamond_a is the disjunction of
// successors reachable along a label matching a (False if none); box_a
// is the dual conjunction (True if none); tt/ff are the constants at
// every state.
func buildStore(ops []string, opLabel map[string]Label, lts *LTS) (*moves.Store, error) {
	b := moves.NewStoreBuilder(ops, ast.Basis(lts.States))

	for _, op := range ops {
		switch {
		case op == "tt":
			for _, s := range lts.States {
				if err := b.Set(op, s, ast.True{}); err != nil {
					return nil, fmt.Errorf("muald.buildStore: %w", err)
				}
			}
		case op == "ff":
			for _, s := range lts.States {
				if err := b.Set(op, s, ast.False{}); err != nil {
					return nil, fmt.Errorf("muald.buildStore: %w", err)
				}
			}
		default:
			label := opLabel[op]
			isBox := len(op) >= 4 && op[:4] == "box_"
			for _, s := range lts.States {
				matched := matchingSuccessors(lts, s, label)
				var f ast.Formula
				if isBox {
					f = conjOf(matched)
				} else {
					f = disjOf(matched)
				}
				if err := b.Set(op, s, f); err != nil {
					return nil, fmt.Errorf("muald.buildStore: %w", err)
				}
			}
		}
	}

	return b.Build(), nil
}

// matchingSuccessors returns the distinct states reachable from s
// along an edge whose label matches label, in first-seen order.
func matchingSuccessors(lts *LTS, s string, label Label) []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range lts.Edges(s) {
		if label.Matches(e.Label) && !seen[e.To] {
			seen[e.To] = true
			out = append(out, e.To)
		}
	}
	return out
}

// disjOf builds Disj([t,1] for each t in states), or False if empty.
func disjOf(states []string) ast.Formula {
	if len(states) == 0 {
		return ast.False{}
	}
	children := make([]ast.Formula, len(states))
	for i, s := range states {
		children[i] = ast.Atom{Basis: s, Index: 1}
	}
	return ast.Disj{Children: children}
}

// conjOf builds Conj([t,1] for each t in states), or True if empty.
func conjOf(states []string) ast.Formula {
	if len(states) == 0 {
		return ast.True{}
	}
	children := make([]ast.Formula, len(states))
	for i, s := range states {
		children[i] = ast.Atom{Basis: s, Index: 1}
	}
	return ast.Conj{Children: children}
}

// eqVar names the equation variable for 1-based equation index i,
// matching normalizer.canonicalName's "x<i>" convention.
func eqVar(i int) string {
	return fmt.Sprintf("x%d", i)
}
