package pgame

import (
	"sort"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/compose"
)

// Position is a node of the parity game arena: either an Eve position
// Eve(b,i) or an Adam position Adam(X). Both are immutable values,
// comparable with Equal, the way ast.Expr nodes compare structurally.
type Position interface {
	positionNode()
	Equal(Position) bool
	Controller() Player
	// Priority is the controlling player's priority: the equation
	// index i for an Eve position, always 0 for an Adam position
	// (Adam positions carry no priority of their own, per spec.md §4.4).
	Priority() int
}

// EvePos is the position Eve(b,i): basis element b under scrutiny
// against equation index i.
type EvePos struct {
	B string
	I int
}

func (EvePos) positionNode() {}

// Controller returns Eve.
func (EvePos) Controller() Player { return Eve }

// Priority returns the equation index i.
func (e EvePos) Priority() int { return e.I }

// Equal reports structural equality.
func (e EvePos) Equal(other Position) bool {
	o, ok := other.(EvePos)
	return ok && o.B == e.B && o.I == e.I
}

// AdamPos is the position Adam(X): for each equation index j
// (1-based, stored 0-based as X[j-1]), the set of basis elements Adam
// must choose among, in basis order.
type AdamPos struct {
	X [][]string
}

func (AdamPos) positionNode() {}

// Controller returns Adam.
func (AdamPos) Controller() Player { return Adam }

// Priority is always 0 for an Adam position.
func (AdamPos) Priority() int { return 0 }

// Equal reports structural equality; X slices must already be in
// basis order (every constructor in this package guarantees that).
func (a AdamPos) Equal(other Position) bool {
	o, ok := other.(AdamPos)
	if !ok || len(a.X) != len(o.X) {
		return false
	}
	for i := range a.X {
		if !equalStrings(a.X[i], o.X[i]) {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// emptyAdamPos returns the Adam position with every set empty, the
// target of a True move.
func emptyAdamPos(m int) AdamPos {
	return AdamPos{X: make([][]string, m)}
}

// singletonAdamPos returns the Adam position whose only nonempty set
// is {b} at equation index j.
func singletonAdamPos(m, j int, b string) AdamPos {
	p := emptyAdamPos(m)
	p.X[j-1] = []string{b}
	return p
}

// unionAdamPos merges two Adam positions component-wise, re-sorting
// each merged set into basis order.
func unionAdamPos(a, b AdamPos, order map[string]int) AdamPos {
	out := make([][]string, len(a.X))
	for j := range a.X {
		seen := make(map[string]bool, len(a.X[j])+len(b.X[j]))
		merged := make([]string, 0, len(a.X[j])+len(b.X[j]))
		for _, s := range a.X[j] {
			if !seen[s] {
				seen[s] = true
				merged = append(merged, s)
			}
		}
		for _, s := range b.X[j] {
			if !seen[s] {
				seen[s] = true
				merged = append(merged, s)
			}
		}
		sort.Slice(merged, func(x, y int) bool { return order[merged[x]] < order[merged[y]] })
		out[j] = merged
	}
	return AdamPos{X: out}
}

// Arena bundles the read-only inputs every position/successor
// computation needs: the canonical system, the basis, and the
// composed move table. It plays the role tsp.bbEngine's embedded
// graph/config play for the branch-and-bound search: one value
// threaded through the whole traversal instead of a handful of loose
// parameters.
type Arena struct {
	Sys   ast.System
	Basis ast.Basis
	Table *compose.Table

	order map[string]int // basis element -> its index, for sorting
}

// NewArena builds an Arena over a canonical system, its basis, and its
// composed move table.
func NewArena(sys ast.System, basis ast.Basis, table *compose.Table) *Arena {
	order := make(map[string]int, len(basis))
	for i, b := range basis {
		order[b] = i
	}
	return &Arena{Sys: sys, Basis: basis, Table: table, order: order}
}

// UniversalSuccessors enumerates Adam(X)'s successors: Eve(b,j) for
// every j and every b in X[j-1], in ascending (j, basis-order) order,
// per spec.md §4.4.
func (a *Arena) UniversalSuccessors(p AdamPos) []EvePos {
	var out []EvePos
	for j, bs := range p.X {
		sorted := append([]string(nil), bs...)
		sort.SliceStable(sorted, func(x, y int) bool { return a.order[sorted[x]] < a.order[sorted[y]] })
		for _, b := range sorted {
			out = append(out, EvePos{B: b, I: j + 1})
		}
	}
	return out
}

// ExistentialMoves computes the full, deterministically ordered list
// of Adam positions reachable from Eve(b,i) by taking one next-move of
// the already-reduced-and-simplified formula f (normally f is
// a.Table.At(b,i), or a reduced residual of it during solving).
func (a *Arena) ExistentialMoves(f ast.Formula) []AdamPos {
	m := a.Sys.Len()
	return nextMove(f, m, a.order)
}

// nextMove enumerates every Adam position satisfying formula f, per
// the move-grammar duality with compose's Conj/Disj construction:
// True yields the single all-empty position, an Atom yields a single
// singleton position, a Disj concatenates its children's moves, and a
// Conj takes the component-wise union across the cartesian product of
// its children's moves. False yields no moves. f is assumed already
// passed through compose.Simplify, so a Conj child is never False and
// a Disj child is never True.
func nextMove(f ast.Formula, m int, order map[string]int) []AdamPos {
	switch v := f.(type) {
	case ast.False:
		return nil
	case ast.True:
		return []AdamPos{emptyAdamPos(m)}
	case ast.Atom:
		return []AdamPos{singletonAdamPos(m, v.Index, v.Basis)}
	case ast.Disj:
		var out []AdamPos
		for _, c := range v.Children {
			out = append(out, nextMove(c, m, order)...)
		}
		return out
	case ast.Conj:
		combos := []AdamPos{emptyAdamPos(m)}
		for _, c := range v.Children {
			childMoves := nextMove(c, m, order)
			if len(childMoves) == 0 {
				return nil
			}
			next := make([]AdamPos, 0, len(combos)*len(childMoves))
			for _, prefix := range combos {
				for _, cm := range childMoves {
					next = append(next, unionAdamPos(prefix, cm, order))
				}
			}
			combos = next
		}
		return combos
	default:
		return nil
	}
}
