/*
File    : pyparse/parser/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Top-level entry points: `file_input()` drives statements until
EOF into a Module, `expression()` parses a single standalone expression.
Grounded on the prior parser's parser/parser.go ParseProgram (loop-until-EOF,
collect top-level statements) combined with the Recover-at-entry-point
pattern diag/error.go documents.
*/
package parser

import (
	"github.com/akashmaji946/pyparse/ast"
	"github.com/akashmaji946/pyparse/diag"
	"github.com/akashmaji946/pyparse/token"
	"github.com/akashmaji946/pyparse/version"
)

// File parses a complete module: `(NEWLINE | stmt)* EOF` (
// "file_input"). Stray NEWLINE tokens between statements are skipped.
func File(lex token.Stream, ver version.Selector, sink diag.Sink) (mod *ast.Module, err *diag.Error) {
	defer diag.Recover(&err)

	p := New(lex, ver, sink)
	startLoc := p.cur.Range

	var stmts []ast.Stmt
	for !p.at(token.EOF) {
		if p.at(token.Newline) {
			p.advance()
			continue
		}
		stmts = append(stmts, p.parseStatement()...)
	}

	endLoc := p.cur.Range
	rng := startLoc.Join(endLoc)
	if len(stmts) > 0 {
		rng = startLoc.Join(stmts[len(stmts)-1].Loc())
	}
	return &ast.Module{Body: stmts, Rng: rng}, nil
}

// Expression parses a single standalone expression followed by optional
// trailing newlines and EOF ("expression()" — for callers that only need
// an expression tree, not a full module).
func Expression(lex token.Stream, ver version.Selector, sink diag.Sink) (expr ast.Expr, err *diag.Error) {
	defer diag.Recover(&err)

	p := New(lex, ver, sink)
	expr = p.parseTestList()
	for p.at(token.Newline) {
		p.advance()
	}
	p.expect(token.EOF)
	return expr, nil
}
