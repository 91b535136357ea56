package ast

// Expr is a fixpoint expression: an identifier, a binary And/Or, or an
// uninterpreted Operator applied to a (possibly empty) argument list.
//
// Expr is a closed sum type: the only implementations are Ident, And,
// Or, and Operator, all declared in this file. Callers type-switch on
// the concrete type rather than calling interface methods, mirroring
// how core.Edge/core.Vertex in the teacher corpus are plain structs
// inspected by field access rather than behavior.
type Expr interface {
	// exprNode seals Expr to the implementations in this package.
	exprNode()

	// Equal reports whether e and other have identical shape and leaves.
	Equal(other Expr) bool
}

// Ident is a reference to an equation's variable.
type Ident struct {
	Name string
}

func (Ident) exprNode() {}

// Equal reports structural equality.
func (i Ident) Equal(other Expr) bool {
	o, ok := other.(Ident)
	return ok && o.Name == i.Name
}

// And is conjunction of two sub-expressions.
type And struct {
	L, R Expr
}

func (And) exprNode() {}

// Equal reports structural equality.
func (a And) Equal(other Expr) bool {
	o, ok := other.(And)
	return ok && a.L.Equal(o.L) && a.R.Equal(o.R)
}

// Or is disjunction of two sub-expressions.
type Or struct {
	L, R Expr
}

func (Or) exprNode() {}

// Equal reports structural equality.
func (d Or) Equal(other Expr) bool {
	o, ok := other.(Or)
	return ok && d.L.Equal(o.L) && d.R.Equal(o.R)
}

// Operator applies an uninterpreted named operator to Args. Arity is
// len(Args); a zero-arity Operator is valid (e.g. "tt", "ff" in the
// mu-calculus adapter).
type Operator struct {
	Name string
	Args []Expr
}

func (Operator) exprNode() {}

// Equal reports structural equality, including argument order.
func (op Operator) Equal(other Expr) bool {
	o, ok := other.(Operator)
	if !ok || op.Name != o.Name || len(op.Args) != len(o.Args) {
		return false
	}
	for i, a := range op.Args {
		if !a.Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// IsIdentArgs reports whether every element of args is an Ident —
// the shape normalized equations require for Operator/And/Or children.
func IsIdentArgs(args []Expr) bool {
	for _, a := range args {
		if _, ok := a.(Ident); !ok {
			return false
		}
	}
	return true
}
