/*
File    : pyparse/parser/expr_trailers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Level 13: trailers. A primary (the result of parseAtom)
followed by zero or more `(args)`, `[slice]`, `.name` applied left to
right. Grounded on the prior parser's parser_collections.go parseIndexExpression
(consume `[`, branch on whether a `:` follows immediately, parse bound
expressions, consume `]`), extended with the call-argument grammar (
 "Trailers": positional/keyword/`*`/`**` arguments, each with its own
fatal diagnostic) and with the attribute-access form the prior parser's
brace-delimited language never had.
*/
package parser

import (
	"github.com/akashmaji946/pyparse/ast"
	"github.com/akashmaji946/pyparse/diag"
	"github.com/akashmaji946/pyparse/source"
	"github.com/akashmaji946/pyparse/token"
)

// parseAtomTrailer is level 13: `atom trailer*`.
func (p *Parser) parseAtomTrailer() ast.Expr {
	node := p.parseAtom()
	for {
		switch p.cur.Kind {
		case token.LParen:
			node = p.parseCall(node)
		case token.LBracket:
			node = p.parseSubscript(node)
		case token.Dot:
			node = p.parseAttribute(node)
		default:
			return node
		}
	}
}

// parseAttribute is `value '.' name`.
func (p *Parser) parseAttribute(value ast.Expr) ast.Expr {
	dotLoc := p.expect(token.Dot).Range
	name := p.expect(token.Ident)
	return &ast.Attribute{
		Value: value, Attr: name.Ident(), Ctx: ast.CtxUnset,
		DotLocVal: dotLoc, AttrLocVal: name.Range,
		Rng: value.Loc().Join(name.Range),
	}
}

// parseCall is `func '(' [arglist] ')'` ("Trailers"):
// positional args, `name=expr` keyword args, at most one `*expr`, at most
// one `**expr`, in any relative order Python itself accepts (star/dstar
// may precede or follow keyword args; only a positional arg written after
// a keyword arg is rejected — DESIGN.md Open Question 3 keeps both splats
// simultaneously legal).
func (p *Parser) parseCall(fn ast.Expr) ast.Expr {
	beginLoc := p.expect(token.LParen).Range
	p.openBracket()

	var args []ast.Expr
	var keywords []*ast.Keyword
	var starargs, kwargs ast.Expr
	var starLoc, dstarLoc source.Range
	seenKeyword := false
	seenNames := map[string]bool{}

	for !p.at(token.RParen) {
		switch {
		case p.at(token.Star):
			loc := p.cur.Range
			p.advance()
			val := p.parseTest()
			if starargs != nil {
				p.fail(diag.MultipleStarArgs(loc))
			}
			starargs, starLoc = val, loc
		case p.at(token.DStar):
			loc := p.cur.Range
			p.advance()
			val := p.parseTest()
			if kwargs != nil {
				p.fail(diag.MultipleDoubleStarArgs(loc))
			}
			kwargs, dstarLoc = val, loc
		case p.at(token.Ident) && p.peekIs(token.Assign):
			argTok := p.cur
			name := argTok.Ident()
			p.advance()
			eqLoc := p.cur.Range
			p.advance()
			val := p.parseTest()
			if seenNames[name] {
				p.fail(diag.DuplicateKeywordArgument(name, argTok.Range))
			}
			seenNames[name] = true
			seenKeyword = true
			keywords = append(keywords, &ast.Keyword{
				Arg: name, Value: val,
				ArgLocVal: argTok.Range, EqualsLocVal: eqLoc,
				Rng: argTok.Range.Join(val.Loc()),
			})
		default:
			val := p.parseTest()
			if seenKeyword {
				p.fail(diag.PositionalAfterKeyword(val.Loc()))
			}
			args = append(args, val)
		}

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	endLoc := p.expect(token.RParen).Range
	p.closeBracket()
	return &ast.Call{
		Func: fn, Args: args, Keywords: keywords,
		Starargs: starargs, Kwargs: kwargs,
		StarLocVal: starLoc, DStarLocVal: dstarLoc,
		BeginLocVal: beginLoc, EndLocVal: endLoc,
		Rng: fn.Loc().Join(endLoc),
	}
}

// parseSubscript is `value '[' slicelist ']'`: a single element folds into
// *ast.Index, a comma-separated run into *ast.ExtSlice (
// "Subscripting").
func (p *Parser) parseSubscript(value ast.Expr) ast.Expr {
	beginLoc := p.expect(token.LBracket).Range
	p.openBracket()

	var dims []ast.Expr
	for {
		dims = append(dims, p.parseSubscriptElement())
		if p.at(token.Comma) {
			p.advance()
			if p.at(token.RBracket) {
				break
			}
			continue
		}
		break
	}

	endLoc := p.expect(token.RBracket).Range
	p.closeBracket()

	var slice ast.Expr
	if len(dims) == 1 {
		slice = dims[0]
	} else {
		slice = &ast.ExtSlice{
			Dims: dims,
			Rng:  dims[0].Loc().Join(dims[len(dims)-1].Loc()),
		}
	}
	return &ast.Subscript{
		Value: value, Slice: slice, Ctx: ast.CtxUnset,
		BeginLocVal: beginLoc, EndLocVal: endLoc,
		Rng: value.Loc().Join(endLoc),
	}
}

// parseSubscriptElement parses one comma-separated slicelist element: a
// plain expression folds into *ast.Index, a `:`-bearing one into *ast.Slice
// with HasStepColon tracking whether a second colon was written even if
// the step itself was omitted.
func (p *Parser) parseSubscriptElement() ast.Expr {
	startLoc := p.cur.Range

	var lower ast.Expr
	if !p.atSliceBoundary() {
		lower = p.parseTest()
	}

	if !p.at(token.Colon) {
		return &ast.Index{Value: lower, Rng: lower.Loc()}
	}

	boundColonLoc := p.cur.Range
	p.advance()

	var upper ast.Expr
	if !p.atSliceBoundary() {
		upper = p.parseTest()
	}

	hasStepColon := false
	var stepColonLoc source.Range
	var step ast.Expr
	if p.at(token.Colon) {
		hasStepColon = true
		stepColonLoc = p.cur.Range
		p.advance()
		if !p.atSliceBoundary() {
			step = p.parseTest()
		}
	}

	endLoc := boundColonLoc
	switch {
	case step != nil:
		endLoc = step.Loc()
	case hasStepColon:
		endLoc = stepColonLoc
	case upper != nil:
		endLoc = upper.Loc()
	}

	return &ast.Slice{
		Lower: lower, Upper: upper, Step: step,
		BoundColonLocVal: boundColonLoc,
		HasStepColon:     hasStepColon,
		StepColonLocVal:  stepColonLoc,
		Rng:              startLoc.Join(endLoc),
	}
}

// atSliceBoundary reports whether the current token can only end a slice
// bound (an omitted lower/upper/step).
func (p *Parser) atSliceBoundary() bool {
	switch p.cur.Kind {
	case token.Colon, token.Comma, token.RBracket:
		return true
	default:
		return false
	}
}
