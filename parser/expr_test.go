/*
File    : pyparse/parser/expr_test.go
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

func py3() version.Selector { return version.Selector{Major: 3, Minor: 6} }
func py2() version.Selector { return version.Selector{Major: 2, Minor: 7} }

func parseExpr(t *testing.T, src string, ver version.Selector) ast.Expr {
	t.Helper()
	buf := source.NewBuffer("<test>", src)
	stream := lexer.NewStream(buf)
	expr, err := Expression(stream, ver, nil)
	require.Nil(t, err, "unexpected diagnostic: %v", err)
	require.NotNil(t, expr)
	return expr
}

func parseModule(t *testing.T, src string, ver version.Selector) *ast.Module {
	t.Helper()
	buf := source.NewBuffer("<test>", src)
	stream := lexer.NewStream(buf)
	mod, err := File(stream, ver, nil)
	require.Nil(t, err, "unexpected diagnostic: %v", err)
	require.NotNil(t, mod)
	return mod
}

// Scenario 1: `1 + 1` -> BinOp{op: Add, left: Num{1}, right: Num{1}}.
func TestExprBinOpAddition(t *testing.T) {
	expr := parseExpr(t, "1 + 1", py3())
	bin, ok := expr.(*ast.BinOp)
	require.True(t, ok, "expected *ast.BinOp, got %T", expr)
	assert.Equal(t, ast.Add, bin.Op.Kind)
	assert.Equal(t, 0, bin.Rng.Lo)
	assert.Equal(t, 5, bin.Rng.Hi)
	assert.Equal(t, 2, bin.Op.Rng.Lo)
	assert.Equal(t, 3, bin.Op.Rng.Hi)
	left, ok := bin.Left.(*ast.Num)
	require.True(t, ok)
	assert.Equal(t, "1", left.N)
	right, ok := bin.Right.(*ast.Num)
	require.True(t, ok)
	assert.Equal(t, "1", right.N)
}

// Scenario 2: `1 < 2 <= 3` -> Compare{left: Num{1}, ops: [Lt, LtE], ...}.
func TestExprChainedComparison(t *testing.T) {
	expr := parseExpr(t, "1 < 2 <= 3", py3())
	cmp, ok := expr.(*ast.Compare)
	require.True(t, ok, "expected *ast.Compare, got %T", expr)
	require.Len(t, cmp.Ops, 2)
	require.Len(t, cmp.Comparators, 2)
	assert.Equal(t, ast.Lt, cmp.Ops[0].Kind)
	assert.Equal(t, ast.LtE, cmp.Ops[1].Kind)
	assert.Equal(t, 2, cmp.Ops[0].Rng.Lo)
	assert.Equal(t, 3, cmp.Ops[0].Rng.Hi)
	assert.Equal(t, 6, cmp.Ops[1].Rng.Lo)
	assert.Equal(t, 8, cmp.Ops[1].Rng.Hi)
}

// Scenario 3: `1 or 1 or 1` folds into a single BoolOp with two op_locs.
func TestExprBoolOpFoldsChain(t *testing.T) {
	expr := parseExpr(t, "1 or 1 or 1", py3())
	b, ok := expr.(*ast.BoolOp)
	require.True(t, ok, "expected *ast.BoolOp, got %T", expr)
	assert.Equal(t, ast.Or, b.Op)
	require.Len(t, b.Values, 3)
	require.Len(t, b.OpLocsVal, 2)
	assert.Equal(t, 2, b.OpLocsVal[0].Lo)
	assert.Equal(t, 4, b.OpLocsVal[0].Hi)
	assert.Equal(t, 7, b.OpLocsVal[1].Lo)
	assert.Equal(t, 9, b.OpLocsVal[1].Hi)
}

// Scenario 4: `[x for y in z if t]` -> ListComp with one generator.
func TestExprListComprehension(t *testing.T) {
	expr := parseExpr(t, "[x for y in z if t]", py3())
	lc, ok := expr.(*ast.ListComp)
	require.True(t, ok, "expected *ast.ListComp, got %T", expr)
	elt, ok := lc.Elt.(*ast.Name)
	require.True(t, ok)
	assert.Equal(t, "x", elt.Id)
	require.Len(t, lc.Generators, 1)
	gen := lc.Generators[0]
	target, ok := gen.Target.(*ast.Name)
	require.True(t, ok)
	assert.Equal(t, "y", target.Id)
	iter, ok := gen.Iter.(*ast.Name)
	require.True(t, ok)
	assert.Equal(t, "z", iter.Id)
	require.Len(t, gen.Ifs, 1)
	assert.Equal(t, 3, gen.ForLocVal.Lo)
	assert.Equal(t, 6, gen.ForLocVal.Hi)
	assert.Equal(t, 9, gen.InLocVal.Lo)
	assert.Equal(t, 11, gen.InLocVal.Hi)
	require.Len(t, gen.IfLocsVal, 1)
	assert.Equal(t, 14, gen.IfLocsVal[0].Lo)
	assert.Equal(t, 16, gen.IfLocsVal[0].Hi)
}

// Scenario 5: `x(y, z=z)` -> Call with one positional and one keyword arg.
func TestExprCallPositionalAndKeyword(t *testing.T) {
	expr := parseExpr(t, "x(y, z=z)", py3())
	call, ok := expr.(*ast.Call)
	require.True(t, ok, "expected *ast.Call, got %T", expr)
	require.Len(t, call.Args, 1)
	require.Len(t, call.Keywords, 1)
	assert.Nil(t, call.Starargs)
	assert.Nil(t, call.Kwargs)
	kw := call.Keywords[0]
	assert.Equal(t, "z", kw.Arg)
	assert.Equal(t, 5, kw.ArgLocVal.Lo)
	assert.Equal(t, 6, kw.ArgLocVal.Hi)
	assert.Equal(t, 6, kw.EqualsLocVal.Lo)
	assert.Equal(t, 7, kw.EqualsLocVal.Hi)
	assert.Equal(t, 5, kw.Rng.Lo)
	assert.Equal(t, 8, kw.Rng.Hi)
}

// DESIGN.md Open Question 3: both *args and **kwargs on the same call are
// accepted simultaneously.
func TestExprCallStarAndDoubleStarTogether(t *testing.T) {
	expr := parseExpr(t, "x(a, *b, c=1, **d)", py3())
	call, ok := expr.(*ast.Call)
	require.True(t, ok, "expected *ast.Call, got %T", expr)
	require.Len(t, call.Args, 1)
	require.Len(t, call.Keywords, 1)
	require.NotNil(t, call.Starargs)
	require.NotNil(t, call.Kwargs)
	star, ok := call.Starargs.(*ast.Name)
	require.True(t, ok)
	assert.Equal(t, "b", star.Id)
	dstar, ok := call.Kwargs.(*ast.Name)
	require.True(t, ok)
	assert.Equal(t, "d", dstar.Id)
}

func TestExprCallDuplicateKeywordArgumentFails(t *testing.T) {
	buf := source.NewBuffer("<test>", "x(a=1, a=2)")
	stream := lexer.NewStream(buf)
	_, err := Expression(stream, py3(), nil)
	require.NotNil(t, err)
	assert.Contains(t, err.Diagnostic.Reason, "duplicate keyword argument")
}

func TestExprCallPositionalAfterKeywordFails(t *testing.T) {
	buf := source.NewBuffer("<test>", "x(a=1, 2)")
	stream := lexer.NewStream(buf)
	_, err := Expression(stream, py3(), nil)
	require.NotNil(t, err)
}

func TestExprCallMultipleStarArgsFails(t *testing.T) {
	buf := source.NewBuffer("<test>", "x(*a, *b)")
	stream := lexer.NewStream(buf)
	_, err := Expression(stream, py3(), nil)
	require.NotNil(t, err)
}

func TestExprParenDoesNotWidenLocAtAnyDepth(t *testing.T) {
	inner := parseExpr(t, "x", py3())
	once := parseExpr(t, "(x)", py3())
	thrice := parseExpr(t, "(((x)))", py3())
	assert.Equal(t, inner.Loc().Text(), once.Loc().Text())
	assert.Equal(t, inner.Loc().Text(), thrice.Loc().Text())
}

func TestExprPowerIsRightAssociative(t *testing.T) {
	expr := parseExpr(t, "2 ** 3 ** 2", py3())
	outer, ok := expr.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.Pow, outer.Op.Kind)
	left, ok := outer.Left.(*ast.Num)
	require.True(t, ok)
	assert.Equal(t, "2", left.N)
	_, ok = outer.Right.(*ast.BinOp)
	require.True(t, ok, "expected right-associative nesting")
}

func TestExprSubscriptSliceWithStepColonOmittedStep(t *testing.T) {
	expr := parseExpr(t, "a[1:2:]", py3())
	sub, ok := expr.(*ast.Subscript)
	require.True(t, ok)
	sl, ok := sub.Slice.(*ast.Slice)
	require.True(t, ok)
	assert.True(t, sl.HasStepColon)
	assert.Nil(t, sl.Step)
}

func TestExprSetComprehensionRequiresVersionGate(t *testing.T) {
	buf := source.NewBuffer("<test>", "{x for x in y}")
	stream := lexer.NewStream(buf)
	_, err := Expression(stream, version.Selector{Major: 2, Minor: 5}, nil)
	require.NotNil(t, err)
	assert.Contains(t, err.Diagnostic.Reason, "{construct}")
	assert.Equal(t, "set display", err.Diagnostic.Arguments["construct"])
}

func TestExprBackquoteReprGatedPre3(t *testing.T) {
	expr := parseExpr(t, "`x`", py2())
	_, ok := expr.(*ast.Repr)
	require.True(t, ok)
}

func TestExprBackquoteReprRejectedAt3(t *testing.T) {
	buf := source.NewBuffer("<test>", "`x`")
	stream := lexer.NewStream(buf)
	_, err := Expression(stream, py3(), nil)
	require.NotNil(t, err)
}

func TestExprByteStringPrefixSetsIsByte(t *testing.T) {
	expr := parseExpr(t, `b"hi"`, py3())
	s, ok := expr.(*ast.Str)
	require.True(t, ok)
	assert.True(t, s.IsByte)
}

func TestExprAdjacentStringConcatenationMixedByteDegradesToText(t *testing.T) {
	expr := parseExpr(t, `b"a" "b"`, py3())
	s, ok := expr.(*ast.Str)
	require.True(t, ok)
	assert.False(t, s.IsByte)
}

func TestExprStringBeginEndLocPointAtQuotes(t *testing.T) {
	expr := parseExpr(t, `'foo'`, py3())
	s, ok := expr.(*ast.Str)
	require.True(t, ok)
	assert.Equal(t, 0, s.Rng.Lo)
	assert.Equal(t, 5, s.Rng.Hi)
	assert.Equal(t, 0, s.BeginLoc().Lo)
	assert.Equal(t, 1, s.BeginLoc().Hi)
	assert.Equal(t, 4, s.EndLoc().Lo)
	assert.Equal(t, 5, s.EndLoc().Hi)
}

func TestExprStringBeginEndLocSkipsPrefix(t *testing.T) {
	expr := parseExpr(t, `b'hi'`, py3())
	s, ok := expr.(*ast.Str)
	require.True(t, ok)
	assert.Equal(t, 0, s.Rng.Lo)
	assert.Equal(t, 5, s.Rng.Hi)
	assert.Equal(t, 1, s.BeginLoc().Lo)
	assert.Equal(t, 2, s.BeginLoc().Hi)
	assert.Equal(t, 4, s.EndLoc().Lo)
	assert.Equal(t, 5, s.EndLoc().Hi)
}

func TestDiagnosticUnclosedParenPointsAtEOF(t *testing.T) {
	buf := source.NewBuffer("<test>", "(1 + 1")
	stream := lexer.NewStream(buf)
	_, err := Expression(stream, py3(), nil)
	require.NotNil(t, err)
	assert.Equal(t, buf, err.Diagnostic.Location.Buffer)
}
