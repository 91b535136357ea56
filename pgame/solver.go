package pgame

import (
	"errors"
	"fmt"
)

// ErrUnknownStartBasisElem indicates LocalCheck was asked to start from
// a basis element absent from the arena's basis.
var ErrUnknownStartBasisElem = errors.New("pgame: unknown start basis element")

// ErrStartIndexOutOfRange indicates LocalCheck was asked to start from
// an equation index outside 1..m (spec.md §7's "index error").
var ErrStartIndexOutOfRange = errors.New("pgame: start index out of range")

// Option configures an Engine. Modeled on the functional-options used
// throughout this module (normalizer.Option, moves' builder pattern).
type Option func(*Engine)

// WithExplain makes the engine record a human-readable justification
// trail as it resolves positions; retrieve it with Engine.Trace after
// LocalCheck returns. Off by default, since recording costs allocation
// on every decision.
func WithExplain() Option {
	return func(e *Engine) { e.explain = true }
}

// decision is a globally memoized, final verdict for a position: once
// a frame pops, its winner never changes.
type decision struct {
	winner Player
	ts     int
}

// assumption marks a position as currently open on the playlist (an
// ancestor of the position being explored), recording the counter it
// carried when first pushed — the value a returning cycle is compared
// against.
type assumption struct {
	k  Counter
	ts int
}

// frame is one playlist entry: a position under active exploration,
// its counter, and the pre-computed, ordered list of successor
// positions still to be tried.
type frame struct {
	pos      Position
	k        Counter
	children []Position
	idx      int
}

// Engine owns all mutable state of a single LocalCheck run: the
// playlist (explicit stack, no Go-level recursion through the search),
// the assumption table for on-path cycle detection, and the decision
// table memoizing settled positions. Grounded on tsp.bbEngine: one
// struct carrying the whole search, a single entrypoint method.
type Engine struct {
	arena       *Arena
	decisions   map[posKey]decision
	assumptions map[posKey]assumption
	playlist    []*frame
	clock       int

	explain bool
	trace   []string
}

// NewEngine builds an Engine over arena, ready for LocalCheck calls.
// A fresh Engine should be used per LocalCheck call; decisions and
// assumptions are not meant to outlive a single run.
func NewEngine(arena *Arena, opts ...Option) *Engine {
	e := &Engine{
		arena:       arena,
		decisions:   make(map[posKey]decision),
		assumptions: make(map[posKey]assumption),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Trace returns the justification trail recorded when WithExplain was
// given; nil if it wasn't.
func (e *Engine) Trace() []string {
	return e.trace
}

func (e *Engine) log(format string, args ...any) {
	if e.explain {
		e.trace = append(e.trace, fmt.Sprintf(format, args...))
	}
}

// LocalCheck decides the parity game starting from Eve(b0,i): Eve wins
// iff b0 satisfies equation i (1-based). Most callers want the
// system's outermost equation, index 1 — spec.md §6's debug command
// additionally lets a caller target any equation by index. It returns
// the winner and, if the engine was built with WithExplain, leaves a
// trace retrievable via Engine.Trace.
func (e *Engine) LocalCheck(b0 string, i int) (Player, error) {
	if _, ok := e.arena.Basis.Index(b0); !ok {
		return 0, fmt.Errorf("pgame.Engine.LocalCheck: %q: %w", b0, ErrUnknownStartBasisElem)
	}
	if i < 1 || i > e.arena.Sys.Len() {
		return 0, fmt.Errorf("pgame.Engine.LocalCheck: %d: %w", i, ErrStartIndexOutOfRange)
	}
	start := EvePos{B: b0, I: i}
	startK := ZeroCounter(e.arena.Sys.Len())

	children, winner, isTerminal := e.expand(start)
	if isTerminal {
		e.log("start %s resolved without search: %s wins", describe(start), winner)
		return winner, nil
	}
	e.pushFrame(start, startK, children)

	var pending Player
	havePending := false

	for len(e.playlist) > 0 {
		top := e.playlist[len(e.playlist)-1]

		if havePending {
			havePending = false
			if e.shortCircuits(top.pos, pending) {
				e.log("%s: child decided %s, short-circuiting", describe(top.pos), pending)
				e.finalize(top, pending)
				havePending = true // propagate top's own (= pending's) verdict upward
				continue
			}
			// pending was absorbed without deciding top (an Eve
			// position saw an Adam-won child, or an Adam position saw
			// an Eve-won child); keep exploring top's remaining
			// children below.
		}

		if top.idx >= len(top.children) {
			winner := defaultWinner(top.pos)
			e.log("%s: exhausted all children, defaulting to %s", describe(top.pos), winner)
			e.finalize(top, winner)
			pending = winner
			havePending = true
			continue
		}

		child := top.children[top.idx]
		top.idx++
		childK := Next(top.k, top.pos.Priority())

		if d, ok := e.decisions[key(child)]; ok {
			e.log("%s: reusing decided %s = %s", describe(top.pos), describe(child), d.winner)
			pending = d.winner
			havePending = true
			continue
		}

		if as, ok := e.assumptions[key(child)]; ok {
			w := cycleWinner(e.arena.Sys, as.k, childK)
			e.log("%s: cycle back to %s resolved by progress measure: %s", describe(top.pos), describe(child), w)
			pending = w
			havePending = true
			continue
		}

		childChildren, terminalW, terminal := e.expand(child)
		if terminal {
			e.decisions[key(child)] = decision{winner: terminalW, ts: e.clock}
			e.clock++
			e.log("%s: %s has no further moves, %s wins", describe(top.pos), describe(child), terminalW)
			pending = terminalW
			havePending = true
			continue
		}

		e.pushFrame(child, childK, childChildren)
	}

	return pending, nil
}

// pushFrame registers an on-path assumption for pos and pushes its
// exploration frame.
func (e *Engine) pushFrame(pos Position, k Counter, children []Position) {
	e.assumptions[key(pos)] = assumption{k: k, ts: e.clock}
	e.playlist = append(e.playlist, &frame{pos: pos, k: k, children: children})
}

// finalize pops f (which must be the current top of the playlist),
// records its winner as a global decision, and removes its on-path
// assumption.
func (e *Engine) finalize(f *frame, winner Player) {
	e.playlist = e.playlist[:len(e.playlist)-1]
	delete(e.assumptions, key(f.pos))
	e.decisions[key(f.pos)] = decision{winner: winner, ts: e.clock}
	e.clock++
	e.log("%s decided: %s wins", describe(f.pos), winner)
}

// shortCircuits reports whether a child resolving to winner
// immediately decides pos: an Eve (disjunctive) position is decided
// the moment any child is Eve-won; an Adam (conjunctive) position is
// decided the moment any child is Adam-won.
func (e *Engine) shortCircuits(pos Position, winner Player) bool {
	if pos.Controller() == Eve {
		return winner == Eve
	}
	return winner == Adam
}

// defaultWinner is the verdict when every child of pos has been tried
// without short-circuiting: an Eve position with no winning move loses
// to Adam; an Adam position every one of whose children is Eve-won is
// won by Eve.
func defaultWinner(pos Position) Player {
	if pos.Controller() == Eve {
		return Adam
	}
	return Eve
}

// expand computes pos's ordered successor list. If the list is empty
// the position is terminal: an Eve position with no existential moves
// is lost (Adam wins); an Adam position with no universal obligations
// is won vacuously (Eve wins).
func (e *Engine) expand(pos Position) (children []Position, terminalWinner Player, terminal bool) {
	switch v := pos.(type) {
	case EvePos:
		f := e.reduce(e.arena.Table.At(v.B, v.I))
		moves := e.arena.ExistentialMoves(f)
		if len(moves) == 0 {
			return nil, Adam, true
		}
		children = make([]Position, len(moves))
		for i, m := range moves {
			children[i] = m
		}
		return children, 0, false

	case AdamPos:
		succs := e.arena.UniversalSuccessors(v)
		if len(succs) == 0 {
			return nil, Eve, true
		}
		children = make([]Position, len(succs))
		for i, s := range succs {
			children[i] = s
		}
		return children, 0, false
	}
	return nil, 0, false
}
