/*
File    : pyparse/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements a recursive-descent/precedence-climbing parser:
a grammar-driven engine over a token.Stream that yields an annotated
ast.Module or ast.Expr, raising structured diag.Diagnostic values on
grammar mismatch.

Grounded on the prior parser's parser/parser.go: the Parser struct shape
(Lex/CurrToken/NextToken, advance/expectAdvance/expectNext, Errors/addError/
HasErrors/GetErrors), generalized so CurrToken/NextToken are the closed
token.Token rather than the prior grammar's lexer.Token, Errors becomes a diag.Sink,
and the "return nil on error" propagation becomes diag.Raise/diag.Recover
(a fatal diagnostic unwinds parsing immediately, no partial
AST is returned). The evaluation-time fields (Env, Consts, LetVars,
LetTypes, objects.GoMixObject) have no place in a non-evaluating parser and
are dropped.
*/
package parser

import (
	"github.com/akashmaji946/pyparse/diag"
	"github.com/akashmaji946/pyparse/source"
	"github.com/akashmaji946/pyparse/token"
	"github.com/akashmaji946/pyparse/version"
)

// Parser holds all state needed to drive the grammar cascade over a single
// token.Stream. Unlike the prior parser's Parser it carries no evaluation
// environment: this grammar's Non-goals exclude semantic analysis entirely.
type Parser struct {
	lex  token.Stream
	cur  token.Token
	next token.Token

	// parenDepth tracks unclosed (, [, { so the parser can decide which
	// token.Mode to request ("the parser must match bracket
	// nesting itself to decide which mode to request").
	parenDepth int

	version version.Selector
	sink    diag.Sink
}

// New builds a Parser over lex, gated by ver, reporting collected
// diagnostics (if any accumulate beyond the first fatal one) to sink. sink
// may be nil, matching the prior parser's pattern of an always-present but
// possibly-unused Errors slice.
func New(lex token.Stream, ver version.Selector, sink diag.Sink) *Parser {
	p := &Parser{lex: lex, version: ver, sink: sink}
	p.advance()
	p.advance()
	return p
}

// mode reports the token.Mode the parser should currently request: inside
// any unclosed bracket, newlines are insignificant.
func (p *Parser) mode() token.Mode {
	if p.parenDepth > 0 {
		return token.ModeNoNewline
	}
	return token.ModeNormal
}

// advance moves the lookahead window forward by one token, the prior parser's
// two-token-lookahead mechanism (CurrToken/NextToken) re-keyed onto
// token.Stream's Next/Peek. Callers run closeBracket only after consuming
// the closing token, so the depth used for the lookahead discounts a
// closing bracket being consumed or becoming current; a NEWLINE that
// follows the outermost closing bracket therefore stays visible.
func (p *Parser) advance() {
	depth := p.parenDepth
	if isCloseBracket(p.cur.Kind) {
		depth--
	}
	p.cur = p.next
	if isCloseBracket(p.cur.Kind) {
		depth--
	}
	mode := token.ModeNormal
	if depth > 0 {
		mode = token.ModeNoNewline
	}
	p.next = p.lex.Next(mode)
}

func isCloseBracket(k token.Kind) bool {
	return k == token.RParen || k == token.RBracket || k == token.RBrace
}

// openBracket records entry into a (, [ or { so mode() switches to
// ModeNoNewline; pairs with closeBracket.
func (p *Parser) openBracket() {
	p.parenDepth++
}

func (p *Parser) closeBracket() {
	if p.parenDepth > 0 {
		p.parenDepth--
	}
}

// at reports whether the current token has kind k.
func (p *Parser) at(k token.Kind) bool {
	return p.cur.Kind == k
}

// peekIs reports whether the lookahead token has kind k.
func (p *Parser) peekIs(k token.Kind) bool {
	return p.next.Kind == k
}

// expect raises the canonical "unexpected token" diagnostic ()
// if the current token isn't k, otherwise returns it and advances.
func (p *Parser) expect(k token.Kind) token.Token {
	if p.cur.Kind != k {
		p.fail(diag.Unexpected(p.cur.Kind.String(), k.String(), p.cur.Range))
	}
	t := p.cur
	p.advance()
	return t
}

// expectNext mirrors the prior parser's expectNext: asserts the lookahead token
// has kind k without consuming anything yet.
func (p *Parser) expectNext(k token.Kind) {
	if p.next.Kind != k {
		p.fail(diag.Unexpected(p.next.Kind.String(), k.String(), p.next.Range))
	}
}

// fail records d (if a sink is present) and aborts the current parse via
// diag.Raise, matching : "fatal errors unwind to the top-level
// entry point. No automatic error recovery is performed."
func (p *Parser) fail(d diag.Diagnostic) {
	if p.sink != nil {
		p.sink.Add(d)
	}
	diag.Raise(d)
}

// versionGate raises a VersionMismatch diagnostic unless ok, the shared
// helper the version-gated productions (backquote repr, `<>`, nonlocal,
// set displays and set/dict comprehensions pre-2.7, multi-context with)
// call through. The print/exec statement forms instead branch on the
// version in parseSmallStmt.
func (p *Parser) versionGate(ok bool, construct, required string, loc source.Range) {
	if !ok {
		p.fail(diag.VersionMismatch(construct, required, p.version.String(), loc))
	}
}
