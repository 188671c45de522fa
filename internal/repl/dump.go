/*
File    : pyparse/internal/repl/dump.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Dump renders an ast.Node as an indented tree, grounded on the prior parser's
print_visitor.go PrintingVisitor: same indent-tracking, one line per node
style. PrintingVisitor hand-wrote one Visit method per node type because
the prior grammar's AST had a handful of variants; this module's AST is a
much larger schema, so Dump is a single recursive type switch instead of a
per-type visitor, covering every statement and expression variant rather
than requiring an interface method on each ast type.
*/
package repl

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/pyparse/ast"
)

const dumpIndentSize = 2

// Dump renders node as a multi-line indented tree starting at indent 0.
func Dump(node ast.Node) string {
	var b strings.Builder
	dumpNode(&b, node, 0)
	return strings.TrimRight(b.String(), "\n")
}

func dumpIndent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat(" ", depth*dumpIndentSize))
}

func dumpLine(b *strings.Builder, depth int, format string, args ...any) {
	dumpIndent(b, depth)
	fmt.Fprintf(b, format, args...)
	b.WriteString("\n")
}

func dumpNode(b *strings.Builder, node ast.Node, depth int) {
	if node == nil {
		dumpLine(b, depth, "<nil>")
		return
	}
	switch n := node.(type) {
	case *ast.Module:
		dumpLine(b, depth, "Module")
		for _, s := range n.Body {
			dumpNode(b, s, depth+1)
		}

	// --- statements ---
	case *ast.ExprStmt:
		dumpLine(b, depth, "ExprStmt")
		dumpNode(b, n.Value, depth+1)
	case *ast.Assign:
		dumpLine(b, depth, "Assign targets=%d", len(n.Targets))
		for _, t := range n.Targets {
			dumpNode(b, t, depth+1)
		}
		dumpNode(b, n.Value, depth+1)
	case *ast.AugAssign:
		dumpLine(b, depth, "AugAssign op=%s", n.Op.Kind)
		dumpNode(b, n.Target, depth+1)
		dumpNode(b, n.Value, depth+1)
	case *ast.Pass:
		dumpLine(b, depth, "Pass")
	case *ast.Break:
		dumpLine(b, depth, "Break")
	case *ast.Continue:
		dumpLine(b, depth, "Continue")
	case *ast.Return:
		dumpLine(b, depth, "Return")
		if n.Value != nil {
			dumpNode(b, n.Value, depth+1)
		}
	case *ast.Raise:
		dumpLine(b, depth, "Raise")
		if n.Exc != nil {
			dumpNode(b, n.Exc, depth+1)
		}
	case *ast.Del:
		dumpLine(b, depth, "Del targets=%d", len(n.Targets))
		for _, t := range n.Targets {
			dumpNode(b, t, depth+1)
		}
	case *ast.Global:
		dumpLine(b, depth, "Global names=%v", n.Names)
	case *ast.Nonlocal:
		dumpLine(b, depth, "Nonlocal names=%v", n.Names)
	case *ast.Assert:
		dumpLine(b, depth, "Assert")
		dumpNode(b, n.Test, depth+1)
		if n.Msg != nil {
			dumpNode(b, n.Msg, depth+1)
		}
	case *ast.Import:
		dumpLine(b, depth, "Import")
	case *ast.ImportFrom:
		dumpLine(b, depth, "ImportFrom module=%s level=%d", n.Module, n.Level)
	case *ast.Print:
		dumpLine(b, depth, "Print")
		for _, v := range n.Values {
			dumpNode(b, v, depth+1)
		}
	case *ast.Exec:
		dumpLine(b, depth, "Exec")
		dumpNode(b, n.Body, depth+1)
	case *ast.If:
		dumpLine(b, depth, "If")
		dumpNode(b, n.Test, depth+1)
		dumpLine(b, depth+1, "Body:")
		for _, s := range n.Body {
			dumpNode(b, s, depth+2)
		}
		if len(n.Orelse) > 0 {
			dumpLine(b, depth+1, "Orelse:")
			for _, s := range n.Orelse {
				dumpNode(b, s, depth+2)
			}
		}
	case *ast.While:
		dumpLine(b, depth, "While")
		dumpNode(b, n.Test, depth+1)
		for _, s := range n.Body {
			dumpNode(b, s, depth+1)
		}
		if len(n.Orelse) > 0 {
			dumpLine(b, depth+1, "Orelse:")
			for _, s := range n.Orelse {
				dumpNode(b, s, depth+2)
			}
		}
	case *ast.For:
		dumpLine(b, depth, "For")
		dumpNode(b, n.Target, depth+1)
		dumpNode(b, n.Iter, depth+1)
		for _, s := range n.Body {
			dumpNode(b, s, depth+1)
		}
		if len(n.Orelse) > 0 {
			dumpLine(b, depth+1, "Orelse:")
			for _, s := range n.Orelse {
				dumpNode(b, s, depth+2)
			}
		}
	case *ast.With:
		dumpLine(b, depth, "With items=%d", len(n.Items))
		for _, item := range n.Items {
			dumpNode(b, item.ContextExpr, depth+1)
			if item.OptionalVars != nil {
				dumpNode(b, item.OptionalVars, depth+1)
			}
		}
		for _, s := range n.Body {
			dumpNode(b, s, depth+1)
		}
	case *ast.Try:
		dumpLine(b, depth, "Try")
		for _, s := range n.Body {
			dumpNode(b, s, depth+1)
		}
		for _, h := range n.Handlers {
			dumpLine(b, depth+1, "ExceptHandler")
			if h.Type != nil {
				dumpNode(b, h.Type, depth+2)
			}
			for _, s := range h.Body {
				dumpNode(b, s, depth+2)
			}
		}
		if len(n.Orelse) > 0 {
			dumpLine(b, depth+1, "Orelse:")
			for _, s := range n.Orelse {
				dumpNode(b, s, depth+2)
			}
		}
		if len(n.Finalbody) > 0 {
			dumpLine(b, depth+1, "Finalbody:")
			for _, s := range n.Finalbody {
				dumpNode(b, s, depth+2)
			}
		}
	case *ast.FunctionDef:
		dumpLine(b, depth, "FunctionDef name=%s decorators=%d", n.Name, len(n.Decorators))
		for _, s := range n.Body {
			dumpNode(b, s, depth+1)
		}
	case *ast.ClassDef:
		dumpLine(b, depth, "ClassDef name=%s bases=%d keywords=%d", n.Name, len(n.Bases), len(n.Keywords))
		for _, s := range n.Body {
			dumpNode(b, s, depth+1)
		}

	// --- expressions ---
	case *ast.Num:
		dumpLine(b, depth, "Num %v", n.N)
	case *ast.Str:
		marker := ""
		if n.IsByte {
			marker = " byte"
		}
		dumpLine(b, depth, "Str%s %q", marker, n.Value)
	case *ast.Name:
		dumpLine(b, depth, "Name %s", n.Id)
	case *ast.Repr:
		dumpLine(b, depth, "Repr")
		dumpNode(b, n.Value, depth+1)
	case *ast.Tuple:
		dumpLine(b, depth, "Tuple elts=%d", len(n.Elts))
		for _, e := range n.Elts {
			dumpNode(b, e, depth+1)
		}
	case *ast.List:
		dumpLine(b, depth, "List elts=%d", len(n.Elts))
		for _, e := range n.Elts {
			dumpNode(b, e, depth+1)
		}
	case *ast.Set:
		dumpLine(b, depth, "Set elts=%d", len(n.Elts))
		for _, e := range n.Elts {
			dumpNode(b, e, depth+1)
		}
	case *ast.Dict:
		dumpLine(b, depth, "Dict pairs=%d", len(n.Keys))
		for i := range n.Keys {
			dumpNode(b, n.Keys[i], depth+1)
			dumpNode(b, n.Values[i], depth+1)
		}
	case *ast.ListComp:
		dumpLine(b, depth, "ListComp")
		dumpNode(b, n.Elt, depth+1)
		for _, c := range n.Generators {
			dumpComprehension(b, *c, depth+1)
		}
	case *ast.SetComp:
		dumpLine(b, depth, "SetComp")
		dumpNode(b, n.Elt, depth+1)
		for _, c := range n.Generators {
			dumpComprehension(b, *c, depth+1)
		}
	case *ast.DictComp:
		dumpLine(b, depth, "DictComp")
		dumpNode(b, n.Key, depth+1)
		dumpNode(b, n.Value, depth+1)
		for _, c := range n.Generators {
			dumpComprehension(b, *c, depth+1)
		}
	case *ast.GeneratorExp:
		dumpLine(b, depth, "GeneratorExp")
		dumpNode(b, n.Elt, depth+1)
		for _, c := range n.Generators {
			dumpComprehension(b, *c, depth+1)
		}
	case *ast.Yield:
		dumpLine(b, depth, "Yield")
		if n.Value != nil {
			dumpNode(b, n.Value, depth+1)
		}
	case *ast.BoolOp:
		dumpLine(b, depth, "BoolOp op=%s values=%d", n.Op, len(n.Values))
		for _, v := range n.Values {
			dumpNode(b, v, depth+1)
		}
	case *ast.BinOp:
		dumpLine(b, depth, "BinOp op=%s", n.Op.Kind)
		dumpNode(b, n.Left, depth+1)
		dumpNode(b, n.Right, depth+1)
	case *ast.UnaryOp:
		dumpLine(b, depth, "UnaryOp op=%s", n.Op.Kind)
		dumpNode(b, n.Operand, depth+1)
	case *ast.Lambda:
		dumpLine(b, depth, "Lambda")
		dumpNode(b, n.Body, depth+1)
	case *ast.IfExp:
		dumpLine(b, depth, "IfExp")
		dumpNode(b, n.Test, depth+1)
		dumpNode(b, n.Body, depth+1)
		dumpNode(b, n.Orelse, depth+1)
	case *ast.Compare:
		dumpLine(b, depth, "Compare ops=%d", len(n.Ops))
		dumpNode(b, n.Left, depth+1)
		for _, c := range n.Comparators {
			dumpNode(b, c, depth+1)
		}
	case *ast.Call:
		dumpLine(b, depth, "Call args=%d keywords=%d", len(n.Args), len(n.Keywords))
		dumpNode(b, n.Func, depth+1)
		for _, a := range n.Args {
			dumpNode(b, a, depth+1)
		}
		for _, k := range n.Keywords {
			dumpLine(b, depth+1, "Keyword %s", k.Arg)
			dumpNode(b, k.Value, depth+2)
		}
	case *ast.Attribute:
		dumpLine(b, depth, "Attribute .%s", n.Attr)
		dumpNode(b, n.Value, depth+1)
	case *ast.Subscript:
		dumpLine(b, depth, "Subscript")
		dumpNode(b, n.Value, depth+1)
		dumpNode(b, n.Slice, depth+1)
	case *ast.Index:
		dumpLine(b, depth, "Index")
		dumpNode(b, n.Value, depth+1)
	case *ast.Slice:
		dumpLine(b, depth, "Slice")
		for _, part := range []ast.Expr{n.Lower, n.Upper, n.Step} {
			if part != nil {
				dumpNode(b, part, depth+1)
			}
		}
	case *ast.ExtSlice:
		dumpLine(b, depth, "ExtSlice dims=%d", len(n.Dims))
		for _, d := range n.Dims {
			dumpNode(b, d, depth+1)
		}

	default:
		dumpLine(b, depth, "%T", node)
	}
}

func dumpComprehension(b *strings.Builder, c ast.Comprehension, depth int) {
	dumpLine(b, depth, "Comprehension")
	dumpNode(b, c.Target, depth+1)
	dumpNode(b, c.Iter, depth+1)
	for _, cond := range c.Ifs {
		dumpNode(b, cond, depth+1)
	}
}
