/*
File    : pyparse/parser/expr_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

The operator-precedence cascade of , levels 0-12. Grounded on
the prior parser's parser_expressions.go (one method per production, each
calling the next-tighter production for its operands) generalized from
the prior grammar's C-style operator set onto Python's, with the two productions a
uniform left-assoc loop cannot express — chained comparisons and
folded boolean runs — built as bespoke accumulators instead of generic
binary parsing.
*/
package parser

import (
	"github.com/akashmaji946/pyparse/ast"
	"github.com/akashmaji946/pyparse/source"
	"github.com/akashmaji946/pyparse/token"
)

// parseTest is level 0: `or_test ['if' or_test 'else' test] | lambdef`.
func (p *Parser) parseTest() ast.Expr {
	if p.at(token.KwLambda) {
		return p.parseLambda()
	}
	body := p.parseOrTest()
	if !p.at(token.KwIf) {
		return body
	}
	ifLoc := p.expect(token.KwIf).Range
	test := p.parseOrTest()
	elseLoc := p.expect(token.KwElse).Range
	orelse := p.parseTest()
	return &ast.IfExp{
		Body: body, Test: test, Orelse: orelse,
		IfLocVal: ifLoc, ElseLocVal: elseLoc,
		Rng: body.Loc().Join(orelse.Loc()),
	}
}

// parseLambda is `'lambda' [arglist] ':' test`.
func (p *Parser) parseLambda() ast.Expr {
	kwLoc := p.expect(token.KwLambda).Range
	args := p.parseLambdaArgs()
	p.expect(token.Colon)
	body := p.parseTest()
	return &ast.Lambda{
		Args: args, Body: body, KeywordLocVal: kwLoc,
		Rng: kwLoc.Join(body.Loc()),
	}
}

// parseOrTest is level 1: a run of `and_test ('or' and_test)*` folded into
// one BoolOp when more than one value is present ("Boolean
// chains").
func (p *Parser) parseOrTest() ast.Expr {
	first := p.parseAndTest()
	if !p.at(token.KwOr) {
		return first
	}
	values := []ast.Expr{first}
	var opLocs []source.Range
	for p.at(token.KwOr) {
		opLocs = append(opLocs, p.cur.Range)
		p.advance()
		values = append(values, p.parseAndTest())
	}
	return &ast.BoolOp{
		Op: ast.Or, Values: values, OpLocsVal: opLocs,
		Rng: values[0].Loc().Join(values[len(values)-1].Loc()),
	}
}

// parseAndTest is level 2: `not_test ('and' not_test)*` folded likewise.
func (p *Parser) parseAndTest() ast.Expr {
	first := p.parseNotTest()
	if !p.at(token.KwAnd) {
		return first
	}
	values := []ast.Expr{first}
	var opLocs []source.Range
	for p.at(token.KwAnd) {
		opLocs = append(opLocs, p.cur.Range)
		p.advance()
		values = append(values, p.parseNotTest())
	}
	return &ast.BoolOp{
		Op: ast.And, Values: values, OpLocsVal: opLocs,
		Rng: values[0].Loc().Join(values[len(values)-1].Loc()),
	}
}

// parseNotTest is level 3: `'not' not_test | comparison`.
func (p *Parser) parseNotTest() ast.Expr {
	if p.at(token.KwNot) {
		opLoc := p.cur.Range
		p.advance()
		operand := p.parseNotTest()
		return &ast.UnaryOp{
			Op:      ast.UnaryOperator{Kind: ast.Not, Rng: opLoc},
			Operand: operand,
			Rng:     opLoc.Join(operand.Loc()),
		}
	}
	return p.parseComparison()
}

// parseComparison is level 4: chained comparisons fold into one Compare
// node ("Comparison chaining").
func (p *Parser) parseComparison() ast.Expr {
	left := p.parseBitOr()
	op, opRng, ok := p.tryCmpOp()
	if !ok {
		return left
	}
	var ops []ast.CmpOp
	var comparators []ast.Expr
	for ok {
		ops = append(ops, ast.CmpOp{Kind: op, Rng: opRng})
		comparators = append(comparators, p.parseBitOr())
		op, opRng, ok = p.tryCmpOp()
	}
	return &ast.Compare{
		Left: left, Ops: ops, Comparators: comparators,
		Rng: left.Loc().Join(comparators[len(comparators)-1].Loc()),
	}
}

// tryCmpOp consumes one comparison operator (including the two-token forms
// `not in`/`is not`) if the current token starts one, joining both
// sub-tokens' ranges per DESIGN.md Open Question 2.
func (p *Parser) tryCmpOp() (ast.CmpOpKind, source.Range, bool) {
	switch p.cur.Kind {
	case token.Lt:
		r := p.cur.Range
		p.advance()
		return ast.Lt, r, true
	case token.LtE:
		r := p.cur.Range
		p.advance()
		return ast.LtE, r, true
	case token.Gt:
		r := p.cur.Range
		p.advance()
		return ast.Gt, r, true
	case token.GtE:
		r := p.cur.Range
		p.advance()
		return ast.GtE, r, true
	case token.Eq:
		r := p.cur.Range
		p.advance()
		return ast.CmpEq, r, true
	case token.NotEq:
		r := p.cur.Range
		p.advance()
		return ast.NotEq, r, true
	case token.OldNotEq:
		r := p.cur.Range
		p.versionGate(p.version.OldNotEqAllowed(), "<>", "< (3, 0)", r)
		p.advance()
		return ast.NotEq, r, true
	case token.KwIn:
		r := p.cur.Range
		p.advance()
		return ast.In, r, true
	case token.KwIs:
		lo := p.cur.Range
		p.advance()
		if p.at(token.KwNot) {
			hi := p.cur.Range
			p.advance()
			return ast.IsNot, lo.Join(hi), true
		}
		return ast.Is, lo, true
	case token.KwNot:
		if p.peekIs(token.KwIn) {
			lo := p.cur.Range
			p.advance()
			hi := p.cur.Range
			p.advance()
			return ast.NotIn, lo.Join(hi), true
		}
		return 0, source.Range{}, false
	default:
		return 0, source.Range{}, false
	}
}

// parseBitOr is level 5: `xor_expr ('|' xor_expr)*`, left-assoc.
func (p *Parser) parseBitOr() ast.Expr {
	left := p.parseBitXor()
	for p.at(token.Pipe) {
		opRng := p.cur.Range
		p.advance()
		right := p.parseBitXor()
		left = &ast.BinOp{
			Left: left, Op: ast.Operator{Kind: ast.BitOr, Rng: opRng}, Right: right,
			Rng: left.Loc().Join(right.Loc()),
		}
	}
	return left
}

// parseBitXor is level 6: `and_expr ('^' and_expr)*`.
func (p *Parser) parseBitXor() ast.Expr {
	left := p.parseBitAnd()
	for p.at(token.Caret) {
		opRng := p.cur.Range
		p.advance()
		right := p.parseBitAnd()
		left = &ast.BinOp{
			Left: left, Op: ast.Operator{Kind: ast.BitXor, Rng: opRng}, Right: right,
			Rng: left.Loc().Join(right.Loc()),
		}
	}
	return left
}

// parseBitAnd is level 7: `shift_expr ('&' shift_expr)*`.
func (p *Parser) parseBitAnd() ast.Expr {
	left := p.parseShift()
	for p.at(token.Amp) {
		opRng := p.cur.Range
		p.advance()
		right := p.parseShift()
		left = &ast.BinOp{
			Left: left, Op: ast.Operator{Kind: ast.BitAnd, Rng: opRng}, Right: right,
			Rng: left.Loc().Join(right.Loc()),
		}
	}
	return left
}

// parseShift is level 8: `arith_expr (('<<'|'>>') arith_expr)*`.
func (p *Parser) parseShift() ast.Expr {
	left := p.parseArith()
	for p.at(token.LShift) || p.at(token.RShift) {
		kind := ast.LShift
		if p.at(token.RShift) {
			kind = ast.RShift
		}
		opRng := p.cur.Range
		p.advance()
		right := p.parseArith()
		left = &ast.BinOp{
			Left: left, Op: ast.Operator{Kind: kind, Rng: opRng}, Right: right,
			Rng: left.Loc().Join(right.Loc()),
		}
	}
	return left
}

// parseArith is level 9: `term (('+'|'-') term)*`.
func (p *Parser) parseArith() ast.Expr {
	left := p.parseTerm()
	for p.at(token.Plus) || p.at(token.Minus) {
		kind := ast.Add
		if p.at(token.Minus) {
			kind = ast.Sub
		}
		opRng := p.cur.Range
		p.advance()
		right := p.parseTerm()
		left = &ast.BinOp{
			Left: left, Op: ast.Operator{Kind: kind, Rng: opRng}, Right: right,
			Rng: left.Loc().Join(right.Loc()),
		}
	}
	return left
}

// parseTerm is level 10: `factor (('*'|'/'|'%'|'//') factor)*`.
func (p *Parser) parseTerm() ast.Expr {
	left := p.parseFactor()
	for p.at(token.Star) || p.at(token.Slash) || p.at(token.Percent) || p.at(token.DSlash) {
		var kind ast.OperatorKind
		switch p.cur.Kind {
		case token.Star:
			kind = ast.Mult
		case token.Slash:
			kind = ast.Div
		case token.Percent:
			kind = ast.Mod
		case token.DSlash:
			kind = ast.FloorDiv
		}
		opRng := p.cur.Range
		p.advance()
		right := p.parseFactor()
		left = &ast.BinOp{
			Left: left, Op: ast.Operator{Kind: kind, Rng: opRng}, Right: right,
			Rng: left.Loc().Join(right.Loc()),
		}
	}
	return left
}

// parseFactor is level 11: `('+'|'-'|'~') factor | power`, right-recursive
// so `--x` and `-x**2` (== `-(x**2)`) both fall out naturally.
func (p *Parser) parseFactor() ast.Expr {
	var kind ast.UnaryOpKind
	switch p.cur.Kind {
	case token.Plus:
		kind = ast.UAdd
	case token.Minus:
		kind = ast.USub
	case token.Tilde:
		kind = ast.Invert
	default:
		return p.parsePower()
	}
	opRng := p.cur.Range
	p.advance()
	operand := p.parseFactor()
	return &ast.UnaryOp{
		Op: ast.UnaryOperator{Kind: kind, Rng: opRng}, Operand: operand,
		Rng: opRng.Join(operand.Loc()),
	}
}

// parsePower is level 12: `atom_trailer ['**' factor]`, right-associative
// (the exponent recurses into parseFactor, not parsePower, so `2**-1`
// parses and `2**3**2` is `2**(3**2)`).
func (p *Parser) parsePower() ast.Expr {
	base := p.parseAtomTrailer()
	if !p.at(token.DStar) {
		return base
	}
	opRng := p.cur.Range
	p.advance()
	exp := p.parseFactor()
	return &ast.BinOp{
		Left: base, Op: ast.Operator{Kind: ast.Pow, Rng: opRng}, Right: exp,
		Rng: base.Loc().Join(exp.Loc()),
	}
}
