/*
File    : pyparse/parser/stmt_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/pyparse/ast"
	"github.com/akashmaji946/pyparse/lexer"
	"github.com/akashmaji946/pyparse/source"
	"github.com/akashmaji946/pyparse/version"
)

// Scenario 6: `x = y = 1` -> Assign{targets: [Name{x}, Name{y}], value: Num{1},
// op_locs: [[2,3), [6,7)]}.
func TestStmtChainedAssignment(t *testing.T) {
	mod := parseModule(t, "x = y = 1\n", py3())
	require.Len(t, mod.Body, 1)
	as, ok := mod.Body[0].(*ast.Assign)
	require.True(t, ok, "expected *ast.Assign, got %T", mod.Body[0])
	require.Len(t, as.Targets, 2)
	require.Len(t, as.OpLocsVal, 2)
	assert.Equal(t, 2, as.OpLocsVal[0].Lo)
	assert.Equal(t, 3, as.OpLocsVal[0].Hi)
	assert.Equal(t, 6, as.OpLocsVal[1].Lo)
	assert.Equal(t, 7, as.OpLocsVal[1].Hi)
	num, ok := as.Value.(*ast.Num)
	require.True(t, ok)
	assert.Equal(t, "1", num.N)
}

func TestStmtAugmentedAssignment(t *testing.T) {
	mod := parseModule(t, "x += 1\n", py3())
	aug, ok := mod.Body[0].(*ast.AugAssign)
	require.True(t, ok, "expected *ast.AugAssign, got %T", mod.Body[0])
	assert.Equal(t, ast.AugAdd, aug.Op.Kind)
}

func TestStmtAssignToTupleTarget(t *testing.T) {
	mod := parseModule(t, "a, b = 1, 2\n", py3())
	as, ok := mod.Body[0].(*ast.Assign)
	require.True(t, ok)
	require.Len(t, as.Targets, 1)
	_, ok = as.Targets[0].(*ast.Tuple)
	require.True(t, ok, "expected tuple target, got %T", as.Targets[0])
}

func TestStmtAssignToLiteralFails(t *testing.T) {
	buf := source.NewBuffer("<test>", "1 = 2\n")
	stream := lexer.NewStream(buf)
	_, err := File(stream, py3(), nil)
	require.NotNil(t, err)
	assert.Contains(t, err.Diagnostic.Reason, "assignment target")
}

func TestStmtIfElifElseDesugarsToNestedOrelse(t *testing.T) {
	src := "if a:\n    pass\nelif b:\n    pass\nelse:\n    pass\n"
	mod := parseModule(t, src, py3())
	outer, ok := mod.Body[0].(*ast.If)
	require.True(t, ok)
	require.Len(t, outer.Orelse, 1)
	inner, ok := outer.Orelse[0].(*ast.If)
	require.True(t, ok, "elif must desugar into a nested *ast.If")
	require.Len(t, inner.Orelse, 1)
	_, ok = inner.Orelse[0].(*ast.Pass)
	require.True(t, ok)
}

func TestStmtWhileWithElse(t *testing.T) {
	src := "while x:\n    pass\nelse:\n    pass\n"
	mod := parseModule(t, src, py3())
	w, ok := mod.Body[0].(*ast.While)
	require.True(t, ok)
	require.Len(t, w.Orelse, 1)
}

func TestStmtForLoop(t *testing.T) {
	src := "for x in y:\n    pass\n"
	mod := parseModule(t, src, py3())
	f, ok := mod.Body[0].(*ast.For)
	require.True(t, ok)
	target, ok := f.Target.(*ast.Name)
	require.True(t, ok)
	assert.Equal(t, "x", target.Id)
}

func TestStmtWithSingleItem(t *testing.T) {
	src := "with open(p) as f:\n    pass\n"
	mod := parseModule(t, src, py3())
	w, ok := mod.Body[0].(*ast.With)
	require.True(t, ok)
	require.Len(t, w.Items, 1)
	require.NotNil(t, w.Items[0].OptionalVars)
}

func TestStmtWithMultipleItemsRequiresVersionGate(t *testing.T) {
	buf := source.NewBuffer("<test>", "with a, b:\n    pass\n")
	stream := lexer.NewStream(buf)
	_, err := File(stream, version.Selector{Major: 2, Minor: 5}, nil)
	require.NotNil(t, err)
}

func TestStmtWithMultipleItemsAllowedAt27(t *testing.T) {
	src := "with a, b:\n    pass\n"
	mod := parseModule(t, src, py2())
	w, ok := mod.Body[0].(*ast.With)
	require.True(t, ok)
	require.Len(t, w.Items, 2)
}

func TestStmtTryExceptAsNameElseFinally(t *testing.T) {
	src := "try:\n    pass\nexcept Exception as e:\n    pass\nelse:\n    pass\nfinally:\n    pass\n"
	mod := parseModule(t, src, py3())
	tr, ok := mod.Body[0].(*ast.Try)
	require.True(t, ok)
	require.Len(t, tr.Handlers, 1)
	assert.NotNil(t, tr.Handlers[0].Name)
	assert.Len(t, tr.Orelse, 1)
	assert.Len(t, tr.Finalbody, 1)
}

func TestStmtTryExceptCommaNameFormPy2(t *testing.T) {
	src := "try:\n    pass\nexcept Exception, e:\n    pass\n"
	mod := parseModule(t, src, py2())
	tr, ok := mod.Body[0].(*ast.Try)
	require.True(t, ok)
	require.Len(t, tr.Handlers, 1)
	require.NotNil(t, tr.Handlers[0].Name)
	name, ok := tr.Handlers[0].Name.(*ast.Name)
	require.True(t, ok)
	assert.Equal(t, "e", name.Id)
}

func TestStmtFunctionDefWithDefaultsAndVarargs(t *testing.T) {
	src := "def f(a, b=1, *args, **kwargs):\n    pass\n"
	mod := parseModule(t, src, py3())
	fn, ok := mod.Body[0].(*ast.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "f", fn.Name)
	require.Len(t, fn.Args.Args, 2)
	require.Len(t, fn.Args.Defaults, 1)
	require.NotNil(t, fn.Args.Vararg)
	require.NotNil(t, fn.Args.Kwarg)
}

func TestStmtDecoratedFunctionDef(t *testing.T) {
	src := "@decorator\ndef f():\n    pass\n"
	mod := parseModule(t, src, py3())
	fn, ok := mod.Body[0].(*ast.FunctionDef)
	require.True(t, ok)
	require.Len(t, fn.Decorators, 1)
}

func TestStmtClassDefWithBasesAndMetaclassKeyword(t *testing.T) {
	src := "class C(Base, metaclass=Meta):\n    pass\n"
	mod := parseModule(t, src, py3())
	cd, ok := mod.Body[0].(*ast.ClassDef)
	require.True(t, ok)
	require.Len(t, cd.Bases, 1)
	require.Len(t, cd.Keywords, 1)
	assert.Equal(t, "metaclass", cd.Keywords[0].Arg)
}

func TestStmtClassDefNoBases(t *testing.T) {
	src := "class C:\n    pass\n"
	mod := parseModule(t, src, py3())
	cd, ok := mod.Body[0].(*ast.ClassDef)
	require.True(t, ok)
	assert.Empty(t, cd.Bases)
	assert.True(t, cd.BeginLocVal.IsZero())
}

func TestStmtPrintStatementGatedPy2(t *testing.T) {
	mod := parseModule(t, "print x, y\n", py2())
	pr, ok := mod.Body[0].(*ast.Print)
	require.True(t, ok)
	require.Len(t, pr.Values, 2)
}

func TestStmtPrintStatementRejectedAt3(t *testing.T) {
	buf := source.NewBuffer("<test>", "print x\n")
	stream := lexer.NewStream(buf)
	_, err := File(stream, py3(), nil)
	require.NotNil(t, err)
}

func TestStmtNonlocalGatedAt3(t *testing.T) {
	src := "def f():\n    def g():\n        nonlocal x\n        pass\n"
	mod := parseModule(t, src, py3())
	outer, ok := mod.Body[0].(*ast.FunctionDef)
	require.True(t, ok)
	inner, ok := outer.Body[0].(*ast.FunctionDef)
	require.True(t, ok)
	_, ok = inner.Body[0].(*ast.Nonlocal)
	require.True(t, ok)
}

func TestStmtNonlocalRejectedPre3(t *testing.T) {
	buf := source.NewBuffer("<test>", "def f():\n    nonlocal x\n    pass\n")
	stream := lexer.NewStream(buf)
	_, err := File(stream, py2(), nil)
	require.NotNil(t, err)
}

func TestStmtImportFromRelativeLevel(t *testing.T) {
	mod := parseModule(t, "from .. import x\n", py3())
	imp, ok := mod.Body[0].(*ast.ImportFrom)
	require.True(t, ok)
	assert.Equal(t, 2, imp.Level)
}

func TestStmtImportFromStar(t *testing.T) {
	mod := parseModule(t, "from mod import *\n", py3())
	imp, ok := mod.Body[0].(*ast.ImportFrom)
	require.True(t, ok)
	assert.True(t, imp.IsStar)
}

func TestStmtGlobalAndDel(t *testing.T) {
	mod := parseModule(t, "global x, y\ndel x, y\n", py3())
	require.Len(t, mod.Body, 2)
	g, ok := mod.Body[0].(*ast.Global)
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, g.Names)
	d, ok := mod.Body[1].(*ast.Del)
	require.True(t, ok)
	assert.Len(t, d.Targets, 2)
}

func TestStmtFunctionDefArrowAnnotationRejected(t *testing.T) {
	buf := source.NewBuffer("<test>", "def f() -> int:\n    pass\n")
	stream := lexer.NewStream(buf)
	_, err := File(stream, py3(), nil)
	require.NotNil(t, err, "DESIGN.md Open Question 4: annotations are not accepted")
}

func TestModuleLocationSpansWholeBody(t *testing.T) {
	mod := parseModule(t, "x = 1\ny = 2\n", py3())
	require.Len(t, mod.Body, 2)
	assert.Equal(t, mod.Body[0].Loc().Lo, mod.Rng.Lo)
	assert.Equal(t, mod.Body[len(mod.Body)-1].Loc().Hi, mod.Rng.Hi)
}
