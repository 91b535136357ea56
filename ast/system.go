package ast

import "errors"

// Sentinel errors for ast-level validation. Callers branch with errors.Is.
var (
	// ErrDuplicateVar indicates two equations in a System share a Var.
	ErrDuplicateVar = errors.New("ast: duplicate equation variable")

	// ErrUnknownVar indicates an Ident references a variable absent from the System.
	ErrUnknownVar = errors.New("ast: unknown variable reference")

	// ErrEmptyBasis indicates a Basis with no elements was supplied where one was required.
	ErrEmptyBasis = errors.New("ast: basis is empty")

	// ErrDuplicateBasisElem indicates a Basis lists the same element twice.
	ErrDuplicateBasisElem = errors.New("ast: duplicate basis element")
)

// FixKind distinguishes least (Min) from greatest (Max) fixpoints.
type FixKind int

const (
	// Min denotes a least-fixpoint (mu) equation.
	Min FixKind = iota
	// Max denotes a greatest-fixpoint (nu) equation.
	Max
)

// String renders the fixpoint kind the way the equation-system grammar
// spells it ("=min" / "=max").
func (k FixKind) String() string {
	if k == Max {
		return "max"
	}
	return "min"
}

// Flip swaps Min and Max — used by the duality sanity check (spec.md
// property 7): replacing every Min with Max and vice versa inverts the
// winner of a local check.
func (k FixKind) Flip() FixKind {
	if k == Max {
		return Min
	}
	return Max
}

// Equation is one xVar =Kind RHS line of a fixpoint system.
type Equation struct {
	Var  string
	Kind FixKind
	RHS  Expr
}

// System is an ordered sequence of equations. Index order is
// semantically significant: System[i] is more outer than System[i+1].
// Equation indices are 1-based throughout the rest of this module
// (Index returns and At accepts 1-based indices), matching spec.md's
// i ∈ 1..m convention.
type System []Equation

// Index returns the 1-based position of varName in sys, or false if
// sys has no equation with that Var.
func (sys System) Index(varName string) (int, bool) {
	for i, eq := range sys {
		if eq.Var == varName {
			return i + 1, true
		}
	}
	return 0, false
}

// At returns the equation at 1-based index i.
func (sys System) At(i int) Equation {
	return sys[i-1]
}

// Len returns m, the number of equations (spec.md's m).
func (sys System) Len() int {
	return len(sys)
}

// Validate checks the System-level invariants from spec.md §3: all Var
// fields unique, and every Ident appearing anywhere in a RHS names an
// equation variable. It does not check canonical shape — that is the
// Normalizer's output contract, not an input precondition.
func (sys System) Validate() error {
	seen := make(map[string]struct{}, len(sys))
	for _, eq := range sys {
		if _, dup := seen[eq.Var]; dup {
			return ErrDuplicateVar
		}
		seen[eq.Var] = struct{}{}
	}
	for _, eq := range sys {
		if err := validateRefs(eq.RHS, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateRefs(e Expr, known map[string]struct{}) error {
	switch v := e.(type) {
	case Ident:
		if _, ok := known[v.Name]; !ok {
			return ErrUnknownVar
		}
	case And:
		if err := validateRefs(v.L, known); err != nil {
			return err
		}
		return validateRefs(v.R, known)
	case Or:
		if err := validateRefs(v.L, known); err != nil {
			return err
		}
		return validateRefs(v.R, known)
	case Operator:
		for _, a := range v.Args {
			if err := validateRefs(a, known); err != nil {
				return err
			}
		}
	}
	return nil
}

// Basis is a finite ordered sequence of distinct basis-element names.
type Basis []string

// Index returns the 0-based position of name in b, or false if absent.
func (b Basis) Index(name string) (int, bool) {
	for i, e := range b {
		if e == name {
			return i, true
		}
	}
	return 0, false
}

// Validate reports ErrEmptyBasis or ErrDuplicateBasisElem.
func (b Basis) Validate() error {
	if len(b) == 0 {
		return ErrEmptyBasis
	}
	seen := make(map[string]struct{}, len(b))
	for _, e := range b {
		if _, dup := seen[e]; dup {
			return ErrDuplicateBasisElem
		}
		seen[e] = struct{}{}
	}
	return nil
}
