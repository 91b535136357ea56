package ast

// Formula is a logical formula over atoms [b,i]: a truth constant, an
// atom, or an n-ary conjunction/disjunction. An empty Conj is
// equivalent to True, an empty Disj to False; a singleton Conj/Disj is
// equivalent to its single child. Formula values produced by the
// composer (package compose) already have these redundancies removed;
// Formula values built by hand (parsers, tests) need not.
type Formula interface {
	// formulaNode seals Formula to the implementations in this file.
	formulaNode()

	// Equal reports whether f and other have identical shape.
	Equal(other Formula) bool
}

// Atom references basis element Basis at projection index Index (1-based,
// per spec.md's i ∈ 1..m convention).
type Atom struct {
	Basis string
	Index int
}

func (Atom) formulaNode() {}

// Equal reports structural equality.
func (a Atom) Equal(other Formula) bool {
	o, ok := other.(Atom)
	return ok && a.Basis == o.Basis && a.Index == o.Index
}

// True is the constant truth formula.
type True struct{}

func (True) formulaNode() {}

// Equal reports whether other is also True.
func (True) Equal(other Formula) bool {
	_, ok := other.(True)
	return ok
}

// False is the constant falsity formula.
type False struct{}

func (False) formulaNode() {}

// Equal reports whether other is also False.
func (False) Equal(other Formula) bool {
	_, ok := other.(False)
	return ok
}

// Conj is an n-ary conjunction. Conj(nil) ≡ True, Conj([f]) ≡ f.
type Conj struct {
	Children []Formula
}

func (Conj) formulaNode() {}

// Equal reports structural equality, including child order. Nothing in
// this module offers an order-insensitive comparison: compose.Simplify
// keeps the order of the children it retains and does not flatten
// nested Conj/Disj.
func (c Conj) Equal(other Formula) bool {
	o, ok := other.(Conj)
	if !ok || len(c.Children) != len(o.Children) {
		return false
	}
	for i, ch := range c.Children {
		if !ch.Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Disj is an n-ary disjunction. Disj(nil) ≡ False, Disj([f]) ≡ f.
type Disj struct {
	Children []Formula
}

func (Disj) formulaNode() {}

// Equal reports structural equality, including child order.
func (d Disj) Equal(other Formula) bool {
	o, ok := other.(Disj)
	if !ok || len(d.Children) != len(o.Children) {
		return false
	}
	for i, ch := range d.Children {
		if !ch.Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Walk calls visit on f and, recursively, on every descendant of f,
// pre-order, e.g. to collect the atoms of a composed formula.
func Walk(f Formula, visit func(Formula)) {
	visit(f)
	switch v := f.(type) {
	case Conj:
		for _, c := range v.Children {
			Walk(c, visit)
		}
	case Disj:
		for _, c := range v.Children {
			Walk(c, visit)
		}
	}
}

// MapAtoms returns a copy of f with every Atom replaced by the result
// of calling fn on it. Non-atom nodes are rebuilt structurally; True
// and False pass through unchanged. The composer's subst and the
// solver's reduce each walk formulas with their own recursion and do
// not call MapAtoms.
func MapAtoms(f Formula, fn func(Atom) Formula) Formula {
	switch v := f.(type) {
	case Atom:
		return fn(v)
	case True:
		return v
	case False:
		return v
	case Conj:
		children := make([]Formula, len(v.Children))
		for i, c := range v.Children {
			children[i] = MapAtoms(c, fn)
		}
		return Conj{Children: children}
	case Disj:
		children := make([]Formula, len(v.Children))
		for i, c := range v.Children {
			children[i] = MapAtoms(c, fn)
		}
		return Disj{Children: children}
	default:
		return f
	}
}
