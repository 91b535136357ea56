package pgame

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/compose"
)

// posKey is a comparable, hashable encoding of a Position, used as a
// map key in the engine's assumption and decision tables.
type posKey string

func key(p Position) posKey {
	switch v := p.(type) {
	case EvePos:
		return posKey(fmt.Sprintf("E|%s|%d", v.B, v.I))
	case AdamPos:
		var sb strings.Builder
		sb.WriteString("A")
		for _, bs := range v.X {
			sb.WriteByte('|')
			sb.WriteString(strings.Join(bs, ","))
		}
		return posKey(sb.String())
	}
	return ""
}

func describe(p Position) string {
	switch v := p.(type) {
	case EvePos:
		return fmt.Sprintf("Eve(%s,%d)", v.B, v.I)
	case AdamPos:
		return fmt.Sprintf("Adam(%v)", v.X)
	}
	return "?"
}

// cycleWinner resolves a back-edge to an already-open ancestor
// position whose counter was k0 at first visit, now revisited with
// counter k: at the largest equation index where the two counters
// differ, a max equation means the controller was never forced to
// make progress against itself, so Eve wins the infinite play; a min
// equation means Adam wins it. This is the standard progress-measure
// argument for these counter-annotated parity games, and it is final —
// it never needs to be revisited once computed.
func cycleWinner(sys ast.System, k0, k Counter) Player {
	i := diffIndex(k0, k)
	if i == 0 {
		// Equal counters on a genuine back-edge can only happen if no
		// Eve position was ever crossed, which can't occur since Adam
		// positions never change the counter and a play alternates
		// through at least one Eve position per cycle.
		return Eve
	}
	if sys.At(i).Kind == ast.Max {
		return Eve
	}
	return Adam
}

// reduce rewrites every atom [b,j] in f whose position Eve(b,j) is
// already globally decided into the corresponding True/False constant,
// then re-simplifies. This never changes the winner of the position f
// belongs to — it only lets the engine skip generating and exploring
// moves that are already known to be settled.
func (e *Engine) reduce(f ast.Formula) ast.Formula {
	switch v := f.(type) {
	case ast.Atom:
		if d, ok := e.decisions[key(EvePos{B: v.Basis, I: v.Index})]; ok {
			if d.winner == Eve {
				return ast.True{}
			}
			return ast.False{}
		}
		return v

	case ast.Conj:
		children := make([]ast.Formula, len(v.Children))
		for i, c := range v.Children {
			children[i] = e.reduce(c)
		}
		return compose.Simplify(ast.Conj{Children: children})

	case ast.Disj:
		children := make([]ast.Formula, len(v.Children))
		for i, c := range v.Children {
			children[i] = e.reduce(c)
		}
		return compose.Simplify(ast.Disj{Children: children})

	default:
		return f
	}
}
