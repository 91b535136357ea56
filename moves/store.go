package moves

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lcsfe/ast"
)

// Sentinel errors for the moves package. Callers branch with errors.Is.
var (
	// ErrUnknownOperator indicates Set was called with an operator name
	// not present in the StoreBuilder's declared operator list.
	ErrUnknownOperator = errors.New("moves: unknown operator")

	// ErrUnknownBasisElem indicates Set was called with a basis element
	// not present in the StoreBuilder's declared basis.
	ErrUnknownBasisElem = errors.New("moves: unknown basis element")
)

// Store is an immutable, read-only dense table of (operator, basis
// element) -> formula. Missing entries resolve to ast.False.
type Store struct {
	ops    []string
	basis  ast.Basis
	opIdx  map[string]int
	grid   []ast.Formula // grid[opIdx*len(basis)+bIdx]
}

// Get returns the formula stored for (op, b), or ast.False if absent.
// Complexity: O(len(basis)), for the linear basis-element lookup.
func (s *Store) Get(op, b string) ast.Formula {
	oi, ok := s.opIdx[op]
	if !ok {
		return ast.False{}
	}
	bi, ok := s.basis.Index(b)
	if !ok {
		return ast.False{}
	}
	f := s.grid[oi*len(s.basis)+bi]
	if f == nil {
		return ast.False{}
	}
	return f
}

// Operators returns the declared operator names, in the order passed
// to NewStoreBuilder.
func (s *Store) Operators() []string {
	return append([]string(nil), s.ops...)
}

// Basis returns the declared basis, in order.
func (s *Store) Basis() ast.Basis {
	return append(ast.Basis(nil), s.basis...)
}

// StoreBuilder accumulates (operator, basis element, formula) triples
// before freezing them into an immutable Store via Build.
type StoreBuilder struct {
	ops   []string
	basis ast.Basis
	opIdx map[string]int
	grid  []ast.Formula
}

// NewStoreBuilder prepares a builder over the given operator names and
// basis. Every (op, b) combination defaults to ast.False until
// overridden by Set.
func NewStoreBuilder(ops []string, basis ast.Basis) *StoreBuilder {
	opIdx := make(map[string]int, len(ops))
	for i, op := range ops {
		opIdx[op] = i
	}

	return &StoreBuilder{
		ops:   append([]string(nil), ops...),
		basis: append(ast.Basis(nil), basis...),
		opIdx: opIdx,
		grid:  make([]ast.Formula, len(ops)*len(basis)),
	}
}

// Set records the formula for (op, b), overwriting any prior value.
// Returns ErrUnknownOperator / ErrUnknownBasisElem if op or b was not
// declared to NewStoreBuilder.
func (b *StoreBuilder) Set(op, basisElem string, f ast.Formula) error {
	oi, ok := b.opIdx[op]
	if !ok {
		return fmt.Errorf("moves.StoreBuilder.Set(%q,%q): %w", op, basisElem, ErrUnknownOperator)
	}
	bi, ok := b.basis.Index(basisElem)
	if !ok {
		return fmt.Errorf("moves.StoreBuilder.Set(%q,%q): %w", op, basisElem, ErrUnknownBasisElem)
	}
	b.grid[oi*len(b.basis)+bi] = f

	return nil
}

// Build freezes the accumulated entries into an immutable Store.
// The builder remains usable after Build; subsequent Set calls do not
// affect Stores already built (Build copies the grid).
func (b *StoreBuilder) Build() *Store {
	grid := make([]ast.Formula, len(b.grid))
	copy(grid, b.grid)

	return &Store{
		ops:   append([]string(nil), b.ops...),
		basis: append(ast.Basis(nil), b.basis...),
		opIdx: b.opIdx,
		grid:  grid,
	}
}
