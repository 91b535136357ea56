package pg

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/moves"
)

// Basis is the single-element basis every PG-derived system uses: a
// node's equation has no modal structure of its own to range over, so
// "true" is the only basis element in play.
var Basis = ast.Basis{"true"}

// ToEquations builds the fixpoint system spec.md §4.7 derives from a
// PGSolver graph: nodes are assigned equation indices in ascending-
// parity order (ties broken by declaration order), and each node's
// equation combines its successors with Or (owner Eve) or And (owner
// Adam), kinded Max for even parity, Min for odd. The returned index
// maps each node's original identifier to its assigned equation index,
// so a caller can translate a start-node id into the query
// Eve("true", indexOf(startNode)).
func ToEquations(nodes []Node) (ast.System, *moves.Store, map[string]int, error) {
	if len(nodes) == 0 {
		return nil, nil, nil, fmt.Errorf("pg.ToEquations: no nodes given")
	}

	byID := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		if _, dup := byID[n.ID]; dup {
			return nil, nil, nil, fmt.Errorf("pg.ToEquations: node %q: %w", n.ID, ErrDuplicateNode)
		}
		if n.Owner != 0 && n.Owner != 1 {
			return nil, nil, nil, fmt.Errorf("pg.ToEquations: node %q: %w", n.ID, ErrInvalidOwner)
		}
		byID[n.ID] = n
	}

	ordered := append([]Node(nil), nodes...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Parity < ordered[j].Parity })

	index := make(map[string]int, len(ordered))
	for i, n := range ordered {
		index[n.ID] = i + 1
	}

	sys := make(ast.System, len(ordered))
	for i, n := range ordered {
		for _, s := range n.Successors {
			if _, ok := byID[s]; !ok {
				return nil, nil, nil, fmt.Errorf("pg.ToEquations: node %q: successor %q: %w", n.ID, s, ErrUnknownNode)
			}
		}

		kind := ast.Min
		if n.Parity%2 == 0 {
			kind = ast.Max
		}

		var rhs ast.Expr = ast.Ident{Name: eqVar(index[n.Successors[0]])}
		for _, s := range n.Successors[1:] {
			succ := ast.Ident{Name: eqVar(index[s])}
			if n.Owner == 0 {
				rhs = ast.Or{L: rhs, R: succ}
			} else {
				rhs = ast.And{L: rhs, R: succ}
			}
		}

		sys[i] = ast.Equation{Var: eqVar(i + 1), Kind: kind, RHS: rhs}
	}

	store := moves.NewStoreBuilder(nil, Basis).Build()
	return sys, store, index, nil
}

// eqVar names the equation variable for 1-based equation index i,
// matching normalizer.canonicalName's "x<i>" convention so the system
// this adapter builds already looks canonical.
func eqVar(i int) string {
	return fmt.Sprintf("x%d", i)
}
