package compose

import "github.com/katalvlaran/lcsfe/ast"

// Simplify applies the bottom-up algebraic laws of spec.md §4.3:
// an empty Conj/Disj collapses to True/False, True children are
// dropped from a Conj (and a False child collapses the whole Conj to
// False), the dual for Disj, and a singleton Conj/Disj collapses to
// its child. Simplify is idempotent: Simplify(Simplify(f)) == Simplify(f).
func Simplify(f ast.Formula) ast.Formula {
	switch v := f.(type) {
	case ast.Conj:
		children := make([]ast.Formula, 0, len(v.Children))
		for _, c := range v.Children {
			sc := Simplify(c)
			if _, isTrue := sc.(ast.True); isTrue {
				continue
			}
			children = append(children, sc)
		}
		if len(children) == 0 {
			return ast.True{}
		}
		for _, c := range children {
			if _, isFalse := c.(ast.False); isFalse {
				return ast.False{}
			}
		}
		return extract(ast.Conj{Children: children})

	case ast.Disj:
		children := make([]ast.Formula, 0, len(v.Children))
		for _, c := range v.Children {
			sc := Simplify(c)
			if _, isFalse := sc.(ast.False); isFalse {
				continue
			}
			children = append(children, sc)
		}
		if len(children) == 0 {
			return ast.False{}
		}
		for _, c := range children {
			if _, isTrue := c.(ast.True); isTrue {
				return ast.True{}
			}
		}
		return extract(ast.Disj{Children: children})

	default:
		return f
	}
}

// extract collapses a singleton Conj/Disj to its sole child.
func extract(f ast.Formula) ast.Formula {
	switch v := f.(type) {
	case ast.Conj:
		if len(v.Children) == 1 {
			return v.Children[0]
		}
	case ast.Disj:
		if len(v.Children) == 1 {
			return v.Children[0]
		}
	}
	return f
}
