/*
File    : pyparse/parser/stmt_simple.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Simple statements: the kind that never opens a suite.
Grounded on the prior parser's parser_statements.go/parser_assignments.go
consume-keyword/parse-operand/build-node shape, generalized from the prior grammar's
`var`/`let`/`const` declarations onto Python's much larger simple_stmt
family (assignment, augmented assignment, pass/break/continue/return/
raise/global/nonlocal/assert/del/print/exec/import/from-import), and from
the prior grammar's `;`-free statement list onto `simple_stmt (';' small_stmt)* [';']
NEWLINE`.
*/
package parser

import (
	"github.com/akashmaji946/pyparse/ast"
	"github.com/akashmaji946/pyparse/diag"
	"github.com/akashmaji946/pyparse/source"
	"github.com/akashmaji946/pyparse/token"
)

// parseSimpleStmtLine parses one logical line of `simple_stmt`:
// `small_stmt (';' small_stmt)* [';'] NEWLINE`. The NEWLINE may be absent
// only on the last line of the input (EOF or the closing DEDENTs follow).
func (p *Parser) parseSimpleStmtLine() []ast.Stmt {
	stmts := []ast.Stmt{p.parseSmallStmt()}
	for p.at(token.Semi) {
		p.advance()
		if p.at(token.Newline) || p.at(token.EOF) {
			break
		}
		stmts = append(stmts, p.parseSmallStmt())
	}
	switch {
	case p.at(token.Newline):
		p.advance()
	case p.at(token.EOF), p.at(token.Dedent):
	default:
		p.fail(diag.Unexpected(p.cur.Kind.String(), token.Newline.String(), p.cur.Range))
	}
	return stmts
}

// parseSmallStmt dispatches on the leading keyword (or lack of one) of a
// single `small_stmt`.
func (p *Parser) parseSmallStmt() ast.Stmt {
	switch p.cur.Kind {
	case token.KwPass:
		return p.parsePass()
	case token.KwBreak:
		return p.parseBreakStmt()
	case token.KwContinue:
		return p.parseContinueStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwRaise:
		return p.parseRaiseStmt()
	case token.KwGlobal:
		return p.parseGlobalStmt()
	case token.KwNonlocal:
		return p.parseNonlocalStmt()
	case token.KwAssert:
		return p.parseAssertStmt()
	case token.KwDel:
		return p.parseDelStmt()
	case token.KwImport:
		return p.parseImportStmt()
	case token.KwFrom:
		return p.parseImportFromStmt()
	case token.KwPrint:
		if p.version.PrintIsStatement() {
			return p.parsePrintStmt()
		}
		return p.parseExprOrAssignStmt()
	case token.KwExec:
		if p.version.ExecIsStatement() {
			return p.parseExecStmt()
		}
		return p.parseExprOrAssignStmt()
	default:
		return p.parseExprOrAssignStmt()
	}
}

func (p *Parser) parsePass() ast.Stmt {
	loc := p.cur.Range
	p.advance()
	return &ast.Pass{KeywordLocVal: loc, Rng: loc}
}

func (p *Parser) parseBreakStmt() ast.Stmt {
	loc := p.cur.Range
	p.advance()
	return &ast.Break{KeywordLocVal: loc, Rng: loc}
}

func (p *Parser) parseContinueStmt() ast.Stmt {
	loc := p.cur.Range
	p.advance()
	return &ast.Continue{KeywordLocVal: loc, Rng: loc}
}

// atSimpleStmtEnd reports whether the current token ends a small_stmt with
// no operand following (used by `return`/`raise`'s optional operand,
// `yield`'s bare form, etc.).
func (p *Parser) atSimpleStmtEnd() bool {
	return p.at(token.Newline) || p.at(token.Semi) || p.at(token.EOF)
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	kwLoc := p.cur.Range
	p.advance()
	var value ast.Expr
	if !p.atSimpleStmtEnd() {
		value = p.parseTestList()
	}
	rng := kwLoc
	if value != nil {
		rng = kwLoc.Join(value.Loc())
	}
	return &ast.Return{Value: value, KeywordLocVal: kwLoc, Rng: rng}
}

// parseRaiseStmt is `raise [exc [, inst [, tback]]]` (the 2.x three-operand
// form, supplemented here).
func (p *Parser) parseRaiseStmt() ast.Stmt {
	kwLoc := p.cur.Range
	p.advance()
	r := &ast.Raise{KeywordLocVal: kwLoc, Rng: kwLoc}
	if p.atSimpleStmtEnd() {
		return r
	}
	r.Exc = p.parseTest()
	r.Rng = kwLoc.Join(r.Exc.Loc())
	if p.at(token.Comma) {
		p.advance()
		r.Inst = p.parseTest()
		r.Rng = kwLoc.Join(r.Inst.Loc())
		if p.at(token.Comma) {
			p.advance()
			r.Tback = p.parseTest()
			r.Rng = kwLoc.Join(r.Tback.Loc())
		}
	}
	return r
}

func (p *Parser) parseNameList() ([]string, []source.Range) {
	var names []string
	var locs []source.Range
	t := p.expect(token.Ident)
	names = append(names, t.Ident())
	locs = append(locs, t.Range)
	for p.at(token.Comma) {
		p.advance()
		t := p.expect(token.Ident)
		names = append(names, t.Ident())
		locs = append(locs, t.Range)
	}
	return names, locs
}

func (p *Parser) parseGlobalStmt() ast.Stmt {
	kwLoc := p.cur.Range
	p.advance()
	names, locs := p.parseNameList()
	return &ast.Global{
		Names: names, NameLocsVal: locs, KeywordLocVal: kwLoc,
		Rng: kwLoc.Join(locs[len(locs)-1]),
	}
}

// parseNonlocalStmt is gated by version.Selector.NonlocalAllowed
// (introduced at 3.0; supplemented here).
func (p *Parser) parseNonlocalStmt() ast.Stmt {
	kwLoc := p.cur.Range
	p.versionGate(p.version.NonlocalAllowed(), "nonlocal", ">= (3, 0)", kwLoc)
	p.advance()
	names, locs := p.parseNameList()
	return &ast.Nonlocal{
		Names: names, NameLocsVal: locs, KeywordLocVal: kwLoc,
		Rng: kwLoc.Join(locs[len(locs)-1]),
	}
}

func (p *Parser) parseAssertStmt() ast.Stmt {
	kwLoc := p.cur.Range
	p.advance()
	test := p.parseTest()
	a := &ast.Assert{Test: test, KeywordLocVal: kwLoc, Rng: kwLoc.Join(test.Loc())}
	if p.at(token.Comma) {
		p.advance()
		a.Msg = p.parseTest()
		a.Rng = kwLoc.Join(a.Msg.Loc())
	}
	return a
}

func (p *Parser) parseDelStmt() ast.Stmt {
	kwLoc := p.cur.Range
	p.advance()
	first := p.parseOrTest()
	p.checkAssignTarget(first)
	targets := []ast.Expr{first}
	for p.at(token.Comma) {
		p.advance()
		if p.atSimpleStmtEnd() {
			break
		}
		t := p.parseOrTest()
		p.checkAssignTarget(t)
		targets = append(targets, t)
	}
	return &ast.Del{Targets: targets, KeywordLocVal: kwLoc, Rng: kwLoc.Join(targets[len(targets)-1].Loc())}
}

// parsePrintStmt is the Python-2 `print [>> dest,] [value, ...] [,]`
// statement (supplemented, gated by version.Selector.PrintIsStatement).
func (p *Parser) parsePrintStmt() ast.Stmt {
	kwLoc := p.cur.Range
	p.advance()
	pr := &ast.Print{KeywordLocVal: kwLoc, Nl: true, Rng: kwLoc}
	if p.atSimpleStmtEnd() {
		return pr
	}
	if p.at(token.RShift) {
		p.advance()
		pr.Dest = p.parseTest()
		if p.at(token.Comma) {
			p.advance()
		}
	}
	for !p.atSimpleStmtEnd() {
		pr.Values = append(pr.Values, p.parseTest())
		if p.at(token.Comma) {
			p.advance()
			if p.atSimpleStmtEnd() {
				pr.Nl = false
				break
			}
			continue
		}
		break
	}
	last := pr.KeywordLocVal
	if len(pr.Values) > 0 {
		last = pr.Values[len(pr.Values)-1].Loc()
	} else if pr.Dest != nil {
		last = pr.Dest.Loc()
	}
	pr.Rng = kwLoc.Join(last)
	return pr
}

// parseExecStmt is `exec body [in globals [, locals]]` (supplemented,
// gated by version.Selector.ExecIsStatement).
func (p *Parser) parseExecStmt() ast.Stmt {
	kwLoc := p.cur.Range
	p.advance()
	body := p.parseOrTest()
	e := &ast.Exec{Body: body, KeywordLocVal: kwLoc, Rng: kwLoc.Join(body.Loc())}
	if p.at(token.KwIn) {
		p.advance()
		e.Globals = p.parseTest()
		e.Rng = kwLoc.Join(e.Globals.Loc())
		if p.at(token.Comma) {
			p.advance()
			e.Locals = p.parseTest()
			e.Rng = kwLoc.Join(e.Locals.Loc())
		}
	}
	return e
}

// parseDottedName parses `name ('.' name)*` and reports its full spelling
// and full range.
func (p *Parser) parseDottedName() (string, source.Range) {
	t := p.expect(token.Ident)
	text := t.Ident()
	rng := t.Range
	for p.at(token.Dot) {
		p.advance()
		t := p.expect(token.Ident)
		text += "." + t.Ident()
		rng = rng.Join(t.Range)
	}
	return text, rng
}

func (p *Parser) parseAlias() *ast.Alias {
	name, nameLoc := p.parseDottedName()
	a := &ast.Alias{Name: name, NameLocVal: nameLoc, Rng: nameLoc}
	if p.at(token.KwAs) {
		asLoc := p.cur.Range
		p.advance()
		asName := p.expect(token.Ident)
		a.AsName = asName.Ident()
		a.AsLocVal = asLoc
		a.Rng = nameLoc.Join(asName.Range)
	}
	return a
}

// parseImportStmt is `import name [as asname], ...` (supplemented).
func (p *Parser) parseImportStmt() ast.Stmt {
	kwLoc := p.cur.Range
	p.advance()
	names := []*ast.Alias{p.parseAlias()}
	for p.at(token.Comma) {
		p.advance()
		names = append(names, p.parseAlias())
	}
	return &ast.Import{
		Names: names, KeywordLocVal: kwLoc,
		Rng: kwLoc.Join(names[len(names)-1].Loc()),
	}
}

// parseImportFromStmt is `from [dots]module import (name [as asname], ...
// | '*' | '(' name [as asname], ... ')')` (supplemented). Level counts
// leading `.`/`...` dots for relative imports.
func (p *Parser) parseImportFromStmt() ast.Stmt {
	fromLoc := p.cur.Range
	p.advance()

	level := 0
	for p.at(token.Dot) {
		level++
		p.advance()
	}

	module := ""
	if p.at(token.Ident) {
		module, _ = p.parseDottedName()
	}

	importLoc := p.expect(token.KwImport).Range
	i := &ast.ImportFrom{
		Module: module, Level: level,
		FromLocVal: fromLoc, ImportLocVal: importLoc,
		Rng: fromLoc.Join(importLoc),
	}

	if p.at(token.Star) {
		i.IsStar = true
		i.Rng = fromLoc.Join(p.cur.Range)
		p.advance()
		return i
	}

	parenthesized := p.at(token.LParen)
	if parenthesized {
		p.advance()
		p.openBracket()
	}
	i.Names = append(i.Names, p.parseAlias())
	for p.at(token.Comma) {
		p.advance()
		if parenthesized && p.at(token.RParen) {
			break
		}
		i.Names = append(i.Names, p.parseAlias())
	}
	if parenthesized {
		endLoc := p.expect(token.RParen).Range
		p.closeBracket()
		i.Rng = fromLoc.Join(endLoc)
	} else {
		i.Rng = fromLoc.Join(i.Names[len(i.Names)-1].Loc())
	}
	return i
}

// tryAugAssignOp consumes one augmented-assignment operator if the current
// token starts one.
func (p *Parser) tryAugAssignOp() (ast.AugOpKind, source.Range, bool) {
	kinds := map[token.Kind]ast.AugOpKind{
		token.PlusEq: ast.AugAdd, token.MinusEq: ast.AugSub, token.StarEq: ast.AugMult,
		token.SlashEq: ast.AugDiv, token.PercentEq: ast.AugMod, token.DStarEq: ast.AugPow,
		token.DSlashEq: ast.AugFloorDiv, token.RShiftEq: ast.AugRShift, token.LShiftEq: ast.AugLShift,
		token.AmpEq: ast.AugBitAnd, token.PipeEq: ast.AugBitOr, token.CaretEq: ast.AugBitXor,
	}
	if kind, ok := kinds[p.cur.Kind]; ok {
		r := p.cur.Range
		p.advance()
		return kind, r, true
	}
	return 0, source.Range{}, false
}

// checkAssignTarget validates that e has a legal assignment-target shape
// ("invalid assignment target"), recursing into Tuple/List
// displays since `(a, b), c = ...` is legal.
func (p *Parser) checkAssignTarget(e ast.Expr) {
	switch t := e.(type) {
	case *ast.Name, *ast.Attribute, *ast.Subscript:
		return
	case *ast.Tuple:
		for _, el := range t.Elts {
			p.checkAssignTarget(el)
		}
	case *ast.List:
		for _, el := range t.Elts {
			p.checkAssignTarget(el)
		}
	default:
		p.fail(diag.InvalidAssignmentTarget(e.Loc()))
	}
}

// parseExprOrAssignStmt is the fallback `small_stmt`: an expression
// statement, a (possibly chained) assignment, or an augmented assignment.
func (p *Parser) parseExprOrAssignStmt() ast.Stmt {
	first := p.parseTestList()

	if kind, opLoc, ok := p.tryAugAssignOp(); ok {
		p.checkAssignTarget(first)
		value := p.parseTestList()
		return &ast.AugAssign{
			Target: first, Op: ast.AugOperator{Kind: kind, Rng: opLoc}, Value: value,
			Rng: first.Loc().Join(value.Loc()),
		}
	}

	if !p.at(token.Assign) {
		return &ast.ExprStmt{Value: first, Rng: first.Loc()}
	}

	exprs := []ast.Expr{first}
	var opLocs []source.Range
	for p.at(token.Assign) {
		opLocs = append(opLocs, p.cur.Range)
		p.advance()
		exprs = append(exprs, p.parseTestList())
	}
	value := exprs[len(exprs)-1]
	targets := exprs[:len(exprs)-1]
	for _, t := range targets {
		p.checkAssignTarget(t)
	}
	return &ast.Assign{
		Targets: targets, Value: value, OpLocsVal: opLocs,
		Rng: first.Loc().Join(value.Loc()),
	}
}
