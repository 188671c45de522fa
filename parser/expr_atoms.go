/*
File    : pyparse/parser/expr_atoms.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Level 14: atoms. Grounded on the prior parser's
parser_literals.go/parser_collections.go (one parseXxxLiteral method per
bracket/quote shape, consume-open/loop-elements/consume-close), re-keyed
from the prior grammar's array/map literals onto Python's much larger atom grammar —
parenthesized forms, bracketed forms, braced forms, adjacent string-literal
concatenation, and the version-gated backquote repr.
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/pyparse/ast"
	"github.com/akashmaji946/pyparse/diag"
	"github.com/akashmaji946/pyparse/source"
	"github.com/akashmaji946/pyparse/token"
)

// parseAtom is level 14: the innermost production, dispatching on the
// current token's kind.
func (p *Parser) parseAtom() ast.Expr {
	switch p.cur.Kind {
	case token.Int, token.Float, token.Imag:
		return p.parseNumber()
	case token.String, token.Bytes:
		return p.parseStringRun()
	case token.Ident:
		return p.parseName()
	case token.LParen:
		return p.parseParenForm()
	case token.LBracket:
		return p.parseBracketForm()
	case token.LBrace:
		return p.parseBraceForm()
	case token.Backtick:
		return p.parseRepr()
	case token.KwPrint, token.KwExec:
		if (p.at(token.KwPrint) && !p.version.PrintIsStatement()) ||
			(p.at(token.KwExec) && !p.version.ExecIsStatement()) {
			t := p.cur
			p.advance()
			return &ast.Name{Id: t.Ident(), Ctx: ast.CtxUnset, Rng: t.Range}
		}
		p.fail(diag.Unexpected(p.cur.Kind.String(), "expression", p.cur.Range))
		return nil
	case token.Illegal:
		p.fail(diag.MalformedLiteral(p.cur.Ident(), p.cur.Range))
		return nil
	default:
		p.fail(diag.Unexpected(p.cur.Kind.String(), "expression", p.cur.Range))
		return nil
	}
}

func (p *Parser) parseNumber() ast.Expr {
	t := p.cur
	p.advance()
	return &ast.Num{N: t.Value, Rng: t.Range}
}

// parseStringRun folds a run of adjacent string/byte-string literals into
// one Str node ("adjacent string literals concatenate at
// parse time"). IsByte is set iff every literal in the run carried a `b`
// prefix; mixing plain and byte literals is accepted the way
// original_source/pyparser accepts it, and the run is simply treated as a
// text literal once any member lacks the byte prefix.
func (p *Parser) parseStringRun() ast.Expr {
	first := p.cur
	isByte := first.Kind == token.Bytes
	var b strings.Builder
	b.WriteString(first.Value.(string))
	beginLoc := first.OpenQuote
	endLoc := first.CloseQuote
	rng := first.Range
	p.advance()
	for p.at(token.String) || p.at(token.Bytes) {
		if p.cur.Kind != token.Bytes {
			isByte = false
		}
		b.WriteString(p.cur.Value.(string))
		endLoc = p.cur.CloseQuote
		rng = rng.Join(p.cur.Range)
		p.advance()
	}
	return &ast.Str{
		Value:       b.String(),
		IsByte:      isByte,
		BeginLocVal: beginLoc,
		EndLocVal:   endLoc,
		Rng:         rng,
	}
}

func (p *Parser) parseName() ast.Expr {
	t := p.expect(token.Ident)
	return &ast.Name{Id: t.Ident(), Ctx: ast.CtxUnset, Rng: t.Range}
}

// parseRepr is the version-gated `` `expr` `` form (removed at 3.0).
func (p *Parser) parseRepr() ast.Expr {
	beginLoc := p.cur.Range
	p.versionGate(p.version.BackquoteRepr(), "`expr`", "< (3, 0)", beginLoc)
	p.advance()
	value := p.parseTestList()
	endLoc := p.expect(token.Backtick).Range
	return &ast.Repr{
		Value:       value,
		BeginLocVal: beginLoc,
		EndLocVal:   endLoc,
		Rng:         beginLoc.Join(endLoc),
	}
}

// parseParenForm handles every `(` ... `)` shape: `()`, `(e)`, `(e,)`,
// `(e1, e2, ...)`, `(yield)`/`(yield e)`, and `(elt for target in iter
// ...)` ("Parenthesized forms").
func (p *Parser) parseParenForm() ast.Expr {
	beginLoc := p.expect(token.LParen).Range
	p.openBracket()

	if p.at(token.RParen) {
		endLoc := p.cur.Range
		p.advance()
		p.closeBracket()
		return &ast.Tuple{Elts: nil, Ctx: ast.CtxUnset, Rng: beginLoc.Join(endLoc)}
	}

	if p.at(token.KwYield) {
		y := p.parseYield()
		endLoc := p.expect(token.RParen).Range
		p.closeBracket()
		if yy, ok := y.(*ast.Yield); ok {
			yy.Rng = beginLoc.Join(endLoc)
		}
		return y
	}

	first := p.parseTest()

	if p.at(token.KwFor) {
		gens := p.parseComprehensionClauses()
		endLoc := p.expect(token.RParen).Range
		p.closeBracket()
		return &ast.GeneratorExp{
			Elt: first, Generators: gens,
			BeginLocVal: beginLoc, EndLocVal: endLoc,
			Rng: beginLoc.Join(endLoc),
		}
	}

	if !p.at(token.Comma) {
		// (e) — loc is never widened to include the parens (DESIGN.md Open
		// Question 1).
		p.expect(token.RParen)
		p.closeBracket()
		return first
	}

	elts := []ast.Expr{first}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.RParen) {
			break
		}
		elts = append(elts, p.parseTest())
	}
	endLoc := p.expect(token.RParen).Range
	p.closeBracket()
	return &ast.Tuple{Elts: elts, Ctx: ast.CtxUnset, Rng: beginLoc.Join(endLoc)}
}

// parseYield is `yield [testlist]`, legal as an expression only inside a
// parenthesized context; the bare statement form is handled separately by
// the statement parser.
func (p *Parser) parseYield() ast.Expr {
	kwLoc := p.expect(token.KwYield).Range
	var value ast.Expr
	if !p.at(token.RParen) {
		value = p.parseTestList()
	}
	rng := kwLoc
	if value != nil {
		rng = kwLoc.Join(value.Loc())
	}
	return &ast.Yield{Value: value, KeywordLocVal: kwLoc, Rng: rng}
}

// parseTestList parses `test (',' test)* [',']`, folding more than one
// element into a bare (unparenthesized) Tuple the way assignment targets
// and yield operands do.
func (p *Parser) parseTestList() ast.Expr {
	first := p.parseTest()
	if !p.at(token.Comma) {
		return first
	}
	elts := []ast.Expr{first}
	lastLoc := first.Loc()
	for p.at(token.Comma) {
		p.advance()
		if p.atTestListEnd() {
			break
		}
		elts = append(elts, p.parseTest())
		lastLoc = elts[len(elts)-1].Loc()
	}
	return &ast.Tuple{Elts: elts, Ctx: ast.CtxUnset, Rng: first.Loc().Join(lastLoc)}
}

// atTestListEnd reports whether the current token can only end a testlist
// (used to recognize a legal trailing comma).
func (p *Parser) atTestListEnd() bool {
	switch p.cur.Kind {
	case token.RParen, token.RBracket, token.RBrace, token.Colon,
		token.Newline, token.EOF, token.Semi, token.Assign:
		return true
	default:
		return false
	}
}

// parseBracketForm handles `[]`, `[e, ...]`, and `[elt for target in iter
// ...]` ("Bracketed forms").
func (p *Parser) parseBracketForm() ast.Expr {
	beginLoc := p.expect(token.LBracket).Range
	p.openBracket()

	if p.at(token.RBracket) {
		endLoc := p.cur.Range
		p.advance()
		p.closeBracket()
		return &ast.List{Elts: nil, Ctx: ast.CtxUnset, Rng: beginLoc.Join(endLoc)}
	}

	first := p.parseTest()

	if p.at(token.KwFor) {
		gens := p.parseComprehensionClauses()
		endLoc := p.expect(token.RBracket).Range
		p.closeBracket()
		return &ast.ListComp{
			Elt: first, Generators: gens,
			BeginLocVal: beginLoc, EndLocVal: endLoc,
			Rng: beginLoc.Join(endLoc),
		}
	}

	elts := []ast.Expr{first}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.RBracket) {
			break
		}
		elts = append(elts, p.parseTest())
	}
	endLoc := p.expect(token.RBracket).Range
	p.closeBracket()
	return &ast.List{Elts: elts, Ctx: ast.CtxUnset, Rng: beginLoc.Join(endLoc)}
}

// parseBraceForm handles every `{` ... `}` shape: `{}` (empty Dict), dict
// displays/comprehensions, and set displays/comprehensions (the latter two
// gated by version.Selector.SetAndDictComprehensions, introduced in 2.7;
// ).
func (p *Parser) parseBraceForm() ast.Expr {
	beginLoc := p.expect(token.LBrace).Range
	p.openBracket()

	if p.at(token.RBrace) {
		endLoc := p.cur.Range
		p.advance()
		p.closeBracket()
		return &ast.Dict{Rng: beginLoc.Join(endLoc)}
	}

	firstKey := p.parseTest()

	if p.at(token.Colon) {
		colonLoc := p.cur.Range
		p.advance()
		firstVal := p.parseTest()

		if p.at(token.KwFor) {
			p.versionGate(p.version.SetAndDictComprehensions(), "dict comprehension", ">= (2, 7)", beginLoc)
			gens := p.parseComprehensionClauses()
			endLoc := p.expect(token.RBrace).Range
			p.closeBracket()
			return &ast.DictComp{
				Key: firstKey, Value: firstVal, Generators: gens,
				ColonLocVal: colonLoc, BeginLocVal: beginLoc, EndLocVal: endLoc,
				Rng: beginLoc.Join(endLoc),
			}
		}

		keys := []ast.Expr{firstKey}
		values := []ast.Expr{firstVal}
		colonLocs := []source.Range{colonLoc}
		for p.at(token.Comma) {
			p.advance()
			if p.at(token.RBrace) {
				break
			}
			k := p.parseTest()
			cLoc := p.expect(token.Colon).Range
			v := p.parseTest()
			keys = append(keys, k)
			values = append(values, v)
			colonLocs = append(colonLocs, cLoc)
		}
		endLoc := p.expect(token.RBrace).Range
		p.closeBracket()
		return &ast.Dict{
			Keys: keys, Values: values, ColonLocsVal: colonLocs,
			Rng: beginLoc.Join(endLoc),
		}
	}

	setLoc := beginLoc
	p.versionGate(p.version.SetAndDictComprehensions(), "set display", ">= (2, 7)", setLoc)

	if p.at(token.KwFor) {
		gens := p.parseComprehensionClauses()
		endLoc := p.expect(token.RBrace).Range
		p.closeBracket()
		return &ast.SetComp{
			Elt: firstKey, Generators: gens,
			BeginLocVal: beginLoc, EndLocVal: endLoc,
			Rng: beginLoc.Join(endLoc),
		}
	}

	elts := []ast.Expr{firstKey}
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.RBrace) {
			break
		}
		elts = append(elts, p.parseTest())
	}
	endLoc := p.expect(token.RBrace).Range
	p.closeBracket()
	return &ast.Set{Elts: elts, Rng: beginLoc.Join(endLoc)}
}

// parseComprehensionClauses parses one or more `for target in iter (if
// cond)*` clauses ("Comprehensions"); the caller has already
// consumed the leading element expression(s) and left p.cur on the first
// `for`.
func (p *Parser) parseComprehensionClauses() []*ast.Comprehension {
	var gens []*ast.Comprehension
	for p.at(token.KwFor) {
		forLoc := p.cur.Range
		p.advance()
		target := p.parseTargetList()
		inLoc := p.expect(token.KwIn).Range
		iter := p.parseOrTest()

		var ifs []ast.Expr
		var ifLocs []source.Range
		for p.at(token.KwIf) {
			ifLocs = append(ifLocs, p.cur.Range)
			p.advance()
			ifs = append(ifs, p.parseOrTest())
		}

		endLoc := iter.Loc()
		if len(ifs) > 0 {
			endLoc = ifs[len(ifs)-1].Loc()
		}
		gens = append(gens, &ast.Comprehension{
			Target: target, Iter: iter, Ifs: ifs,
			ForLocVal: forLoc, InLocVal: inLoc, IfLocsVal: ifLocs,
			Rng: forLoc.Join(endLoc),
		})
	}
	return gens
}

// parseTargetList parses a comprehension/for-statement target: a single
// primary target, or a bare comma-separated run folded into a Tuple
// (`for k, v in items:`).
func (p *Parser) parseTargetList() ast.Expr {
	first := p.parseBitOr()
	if !p.at(token.Comma) {
		return first
	}
	elts := []ast.Expr{first}
	lastLoc := first.Loc()
	for p.at(token.Comma) {
		p.advance()
		if p.at(token.KwIn) {
			break
		}
		elts = append(elts, p.parseBitOr())
		lastLoc = elts[len(elts)-1].Loc()
	}
	return &ast.Tuple{Elts: elts, Ctx: ast.CtxUnset, Rng: first.Loc().Join(lastLoc)}
}
