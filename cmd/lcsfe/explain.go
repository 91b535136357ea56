package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/lcsfe/ast"
	"github.com/katalvlaran/lcsfe/compose"
	"github.com/katalvlaran/lcsfe/moves"
	"github.com/katalvlaran/lcsfe/normalizer"
)

// explainDump writes the --explain trail spec.md §6 asks for: the
// system, the normalized system (if normalization ran), the
// uncomposed moves, the composed moves, then the result (the result
// itself is printed separately by the caller after LocalCheck returns).
type explainDump struct {
	w io.Writer
}

func (d explainDump) system(label string, sys ast.System) {
	fmt.Fprintf(d.w, "-- %s --\n", label)
	for _, eq := range sys {
		fmt.Fprintf(d.w, "%s =%s %s ;\n", eq.Var, eq.Kind, exprString(eq.RHS))
	}
}

func (d explainDump) renameMap(rm normalizer.RenameMap) {
	if len(rm) == 0 {
		return
	}
	fmt.Fprintln(d.w, "-- rename map --")
	names := make([]string, 0, len(rm))
	for k := range rm {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(d.w, "%s -> %s\n", k, rm[k])
	}
}

func (d explainDump) moves(label string, store *moves.Store, basis ast.Basis) {
	fmt.Fprintf(d.w, "-- %s --\n", label)
	for _, op := range store.Operators() {
		for _, b := range basis {
			fmt.Fprintf(d.w, "phi(%s)(%s) = %s ;\n", b, op, formulaString(store.Get(op, b)))
		}
	}
}

func (d explainDump) composed(label string, table *compose.Table, sys ast.System, basis ast.Basis) {
	fmt.Fprintf(d.w, "-- %s --\n", label)
	for i := 1; i <= sys.Len(); i++ {
		for _, b := range basis {
			fmt.Fprintf(d.w, "phi_%d(%s) = %s ;\n", i, b, formulaString(table.At(b, i)))
		}
	}
}

func exprString(e ast.Expr) string {
	switch v := e.(type) {
	case ast.Ident:
		return v.Name
	case ast.And:
		return fmt.Sprintf("(%s and %s)", exprString(v.L), exprString(v.R))
	case ast.Or:
		return fmt.Sprintf("(%s or %s)", exprString(v.L), exprString(v.R))
	case ast.Operator:
		if len(v.Args) == 0 {
			return v.Name
		}
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = exprString(a)
		}
		return fmt.Sprintf("%s(%s)", v.Name, strings.Join(args, ", "))
	default:
		return fmt.Sprintf("%v", e)
	}
}

func formulaString(f ast.Formula) string {
	switch v := f.(type) {
	case ast.True:
		return "true"
	case ast.False:
		return "false"
	case ast.Atom:
		return fmt.Sprintf("[%s,%d]", v.Basis, v.Index)
	case ast.Conj:
		return joinFormula(v.Children, "and")
	case ast.Disj:
		return joinFormula(v.Children, "or")
	default:
		return fmt.Sprintf("%v", f)
	}
}

func joinFormula(children []ast.Formula, op string) string {
	if len(children) == 0 {
		if op == "and" {
			return "true"
		}
		return "false"
	}
	parts := make([]string, len(children))
	for i, c := range children {
		parts[i] = formulaString(c)
	}
	return "(" + strings.Join(parts, " "+op+" ") + ")"
}
