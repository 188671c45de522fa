/*
File    : pyparse/parser/stmt_compound.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Compound statements: the kind that opens a suite. Grounded
on the prior parser's parser_conditionals.go/parser_loops.go/parser_structs.go
consume-keyword/parse-condition/parse-block shape (one method per
statement kind, each ending in a call to parseBlockStatement), re-keyed
from the prior grammar's brace-delimited `{ ... }` block onto Python's indentation
suite (`simple_stmt` on the same line, or NEWLINE INDENT stmt+ DEDENT) —
the prior parser's "consume open brace, loop until close brace" idiom becomes
"consume NEWLINE, expect INDENT, loop until DEDENT".
*/
package parser

import (
	"github.com/akashmaji946/pyparse/ast"
	"github.com/akashmaji946/pyparse/diag"
	"github.com/akashmaji946/pyparse/source"
	"github.com/akashmaji946/pyparse/token"
)

// parseStatement parses one `stmt`: a compound statement (one node) or a
// line of `simple_stmt` (one or more nodes, from `;`-separated small_stmts).
func (p *Parser) parseStatement() []ast.Stmt {
	switch p.cur.Kind {
	case token.KwIf:
		return []ast.Stmt{p.parseIfStmt()}
	case token.KwWhile:
		return []ast.Stmt{p.parseWhileStmt()}
	case token.KwFor:
		return []ast.Stmt{p.parseForStmt()}
	case token.KwTry:
		return []ast.Stmt{p.parseTryStmt()}
	case token.KwWith:
		return []ast.Stmt{p.parseWithStmt()}
	case token.KwDef:
		return []ast.Stmt{p.parseFunctionDef(nil, source.Range{})}
	case token.KwClass:
		return []ast.Stmt{p.parseClassDef(nil, source.Range{})}
	case token.At:
		return []ast.Stmt{p.parseDecorated()}
	default:
		return p.parseSimpleStmtLine()
	}
}

// parseSuite parses a `suite`: either one line of `simple_stmt`, or a
// NEWLINE followed by an indented block of one or more statements.
func (p *Parser) parseSuite() []ast.Stmt {
	if !p.at(token.Newline) {
		return p.parseSimpleStmtLine()
	}
	p.advance()
	p.expect(token.Indent)
	var stmts []ast.Stmt
	for !p.at(token.Dedent) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStatement()...)
	}
	p.expect(token.Dedent)
	return stmts
}

// parseIfOrElif parses `if test: suite [elif ...]* [else: suite]`, folding
// each `elif` into a single-statement `Orelse` holding another *ast.If —
// the desugaring original_source/pyparser's own parser.py uses.
// expectKind is token.KwIf for the outermost call, token.KwElif for the
// recursive elif chain.
func (p *Parser) parseIfOrElif(expectKind token.Kind) ast.Stmt {
	kwLoc := p.expect(expectKind).Range
	test := p.parseTest()
	colonLoc := p.expect(token.Colon).Range
	body := p.parseSuite()
	node := &ast.If{Test: test, Body: body, KeywordLocVal: kwLoc, ColonLocVal: colonLoc}
	last := body[len(body)-1].Loc()

	switch {
	case p.at(token.KwElif):
		elifLoc := p.cur.Range
		nested := p.parseIfOrElif(token.KwElif)
		node.Orelse = []ast.Stmt{nested}
		node.ElseLocVal = elifLoc
		last = nested.Loc()
	case p.at(token.KwElse):
		elseLoc := p.cur.Range
		p.advance()
		p.expect(token.Colon)
		orelse := p.parseSuite()
		node.Orelse = orelse
		node.ElseLocVal = elseLoc
		last = orelse[len(orelse)-1].Loc()
	}
	node.Rng = kwLoc.Join(last)
	return node
}

func (p *Parser) parseIfStmt() ast.Stmt {
	return p.parseIfOrElif(token.KwIf)
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	kwLoc := p.expect(token.KwWhile).Range
	test := p.parseTest()
	colonLoc := p.expect(token.Colon).Range
	body := p.parseSuite()
	w := &ast.While{Test: test, Body: body, KeywordLocVal: kwLoc, ColonLocVal: colonLoc}
	last := body[len(body)-1].Loc()
	if p.at(token.KwElse) {
		elseLoc := p.cur.Range
		p.advance()
		p.expect(token.Colon)
		w.Orelse = p.parseSuite()
		w.ElseLocVal = elseLoc
		last = w.Orelse[len(w.Orelse)-1].Loc()
	}
	w.Rng = kwLoc.Join(last)
	return w
}

func (p *Parser) parseForStmt() ast.Stmt {
	kwLoc := p.expect(token.KwFor).Range
	target := p.parseTargetList()
	p.checkAssignTarget(target)
	inLoc := p.expect(token.KwIn).Range
	iter := p.parseTestList()
	colonLoc := p.expect(token.Colon).Range
	body := p.parseSuite()
	f := &ast.For{
		Target: target, Iter: iter, Body: body,
		KeywordLocVal: kwLoc, InLocVal: inLoc, ColonLocVal: colonLoc,
	}
	last := body[len(body)-1].Loc()
	if p.at(token.KwElse) {
		elseLoc := p.cur.Range
		p.advance()
		p.expect(token.Colon)
		f.Orelse = p.parseSuite()
		f.ElseLocVal = elseLoc
		last = f.Orelse[len(f.Orelse)-1].Loc()
	}
	f.Rng = kwLoc.Join(last)
	return f
}

// parseWithItem is `context_expr [as optional_vars]`.
func (p *Parser) parseWithItem() *ast.WithItem {
	expr := p.parseTest()
	w := &ast.WithItem{ContextExpr: expr, Rng: expr.Loc()}
	if p.at(token.KwAs) {
		asLoc := p.cur.Range
		p.advance()
		target := p.parseOrTest()
		p.checkAssignTarget(target)
		w.OptionalVars = target
		w.AsLocVal = asLoc
		w.Rng = expr.Loc().Join(target.Loc())
	}
	return w
}

// parseWithStmt is `with item (',' item)*: suite`; more than one item is
// gated by version.Selector.MultiContextWith (introduced 2.7).
func (p *Parser) parseWithStmt() ast.Stmt {
	kwLoc := p.expect(token.KwWith).Range
	items := []*ast.WithItem{p.parseWithItem()}
	for p.at(token.Comma) {
		commaLoc := p.cur.Range
		p.versionGate(p.version.MultiContextWith(), "multiple with-items", ">= (2, 7)", commaLoc)
		p.advance()
		items = append(items, p.parseWithItem())
	}
	colonLoc := p.expect(token.Colon).Range
	body := p.parseSuite()
	return &ast.With{
		Items: items, Body: body, KeywordLocVal: kwLoc, ColonLocVal: colonLoc,
		Rng: kwLoc.Join(body[len(body)-1].Loc()),
	}
}

// parseExceptHandler is `except [type [(as|,) name]]: suite`, accepting
// both the 2.x `except Type, name:` comma form and the `as name:` form.
func (p *Parser) parseExceptHandler() *ast.ExceptHandler {
	kwLoc := p.expect(token.KwExcept).Range
	h := &ast.ExceptHandler{KeywordLocVal: kwLoc, Rng: kwLoc}
	if !p.at(token.Colon) {
		h.Type = p.parseTest()
		h.Rng = kwLoc.Join(h.Type.Loc())
		switch {
		case p.at(token.KwAs):
			p.advance()
			name := p.expect(token.Ident)
			h.Name = &ast.Name{Id: name.Ident(), Ctx: ast.CtxUnset, Rng: name.Range}
			h.Rng = kwLoc.Join(name.Range)
		case p.at(token.Comma):
			p.advance()
			name := p.expect(token.Ident)
			h.Name = &ast.Name{Id: name.Ident(), Ctx: ast.CtxUnset, Rng: name.Range}
			h.Rng = kwLoc.Join(name.Range)
		}
	}
	colonLoc := p.expect(token.Colon).Range
	h.ColonLocVal = colonLoc
	h.Body = p.parseSuite()
	h.Rng = kwLoc.Join(h.Body[len(h.Body)-1].Loc())
	return h
}

// parseTryStmt is `try: suite (except ...: suite)* [else: suite] [finally:
// suite]`.
func (p *Parser) parseTryStmt() ast.Stmt {
	kwLoc := p.expect(token.KwTry).Range
	colonLoc := p.expect(token.Colon).Range
	body := p.parseSuite()
	t := &ast.Try{
		Body: body, KeywordLocVal: kwLoc, ColonLocVal: colonLoc,
		Rng: kwLoc.Join(body[len(body)-1].Loc()),
	}
	for p.at(token.KwExcept) {
		t.Handlers = append(t.Handlers, p.parseExceptHandler())
	}
	last := t.Rng
	if len(t.Handlers) > 0 {
		last = t.Handlers[len(t.Handlers)-1].Loc()
	}
	if p.at(token.KwElse) {
		elseLoc := p.cur.Range
		p.advance()
		p.expect(token.Colon)
		t.Orelse = p.parseSuite()
		t.ElseLocVal = elseLoc
		last = t.Orelse[len(t.Orelse)-1].Loc()
	}
	if p.at(token.KwFinally) {
		finLoc := p.cur.Range
		p.advance()
		finColon := p.expect(token.Colon).Range
		t.Finalbody = p.parseSuite()
		t.FinallyLocVal = finLoc
		t.FinallyColonVal = finColon
		last = t.Finalbody[len(t.Finalbody)-1].Loc()
	}
	t.Rng = kwLoc.Join(last)
	return t
}

// parseDecorated parses one or more `@expr` decorator lines immediately
// preceding a `def` or `class` ("[@decorator]* def/class").
func (p *Parser) parseDecorated() ast.Stmt {
	var decorators []ast.Expr
	var firstLoc source.Range
	for p.at(token.At) {
		atLoc := p.cur.Range
		if firstLoc.IsZero() {
			firstLoc = atLoc
		}
		p.advance()
		decorators = append(decorators, p.parseAtomTrailer())
		if p.at(token.Newline) {
			p.advance()
		}
	}
	switch p.cur.Kind {
	case token.KwDef:
		return p.parseFunctionDef(decorators, firstLoc)
	case token.KwClass:
		return p.parseClassDef(decorators, firstLoc)
	default:
		p.fail(diag.Unexpected(p.cur.Kind.String(), "def or class", p.cur.Range))
		return nil
	}
}

// parseFunctionDef is `[@decorator]* 'def' name '(' [arglist] ')' ':'
// suite`.
func (p *Parser) parseFunctionDef(decorators []ast.Expr, firstDecoLoc source.Range) ast.Stmt {
	kwLoc := p.expect(token.KwDef).Range
	name := p.expect(token.Ident)
	p.expect(token.LParen)
	p.openBracket()
	args := p.parseArguments(token.RParen)
	p.expect(token.RParen)
	p.closeBracket()
	colonLoc := p.expect(token.Colon).Range
	body := p.parseSuite()

	startLoc := kwLoc
	if len(decorators) > 0 {
		startLoc = firstDecoLoc
	}
	return &ast.FunctionDef{
		Name: name.Ident(), Args: args, Body: body, Decorators: decorators,
		KeywordLocVal: kwLoc, NameLocVal: name.Range, ColonLocVal: colonLoc,
		Rng: startLoc.Join(body[len(body)-1].Loc()),
	}
}

// parseClassDef is `[@decorator]* 'class' name ['(' [arglist] ')'] ':'
// suite`. The base-class list reuses Call's
// positional/keyword argument split (Python 3's `class C(Base,
// metaclass=M):`); pre-3.0 grammars simply never populate Keywords.
func (p *Parser) parseClassDef(decorators []ast.Expr, firstDecoLoc source.Range) ast.Stmt {
	kwLoc := p.expect(token.KwClass).Range
	name := p.expect(token.Ident)
	c := &ast.ClassDef{
		Name: name.Ident(), Decorators: decorators,
		KeywordLocVal: kwLoc, NameLocVal: name.Range,
	}

	if p.at(token.LParen) {
		beginLoc := p.cur.Range
		p.advance()
		p.openBracket()
		for !p.at(token.RParen) {
			if p.at(token.Ident) && p.peekIs(token.Assign) {
				argTok := p.cur
				name := argTok.Ident()
				p.advance()
				eqLoc := p.cur.Range
				p.advance()
				val := p.parseTest()
				c.Keywords = append(c.Keywords, &ast.Keyword{
					Arg: name, Value: val,
					ArgLocVal: argTok.Range, EqualsLocVal: eqLoc,
					Rng: argTok.Range.Join(val.Loc()),
				})
			} else {
				c.Bases = append(c.Bases, p.parseTest())
			}
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		endLoc := p.expect(token.RParen).Range
		p.closeBracket()
		c.BeginLocVal = beginLoc
		c.EndLocVal = endLoc
	}

	colonLoc := p.expect(token.Colon).Range
	c.ColonLocVal = colonLoc
	c.Body = p.parseSuite()

	startLoc := kwLoc
	if len(decorators) > 0 {
		startLoc = firstDecoLoc
	}
	c.Rng = startLoc.Join(c.Body[len(c.Body)-1].Loc())
	return c
}
