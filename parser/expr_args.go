/*
File    : pyparse/parser/expr_args.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Parameter-list parsing shared by lambda and `def`, grounded on the prior
parser's parser_functions.go parseFunctionStatement parameter loop
(expectAdvance IDENTIFIER_ID, consume commas, repeat), extended with
default values and the `*args`/`**kwargs` forms Call already mirrors on
the call-site ("Trailers").
*/
package parser

import (
	"github.com/akashmaji946/pyparse/ast"
	"github.com/akashmaji946/pyparse/source"
	"github.com/akashmaji946/pyparse/token"
)

// parseLambdaArgs parses `[arglist]` up to (not including) the lambda's
// `:`.
func (p *Parser) parseLambdaArgs() *ast.Arguments {
	return p.parseArguments(token.Colon)
}

// parseArguments parses a parameter list up to (not including) terminator:
// plain names, `name=default`, at most one `*name`, at most one `**name`.
func (p *Parser) parseArguments(terminator token.Kind) *ast.Arguments {
	args := &ast.Arguments{}
	startLoc := p.cur.Range

	if p.at(terminator) {
		args.Rng = source.Range{Buffer: startLoc.Buffer, Lo: startLoc.Lo, Hi: startLoc.Lo}
		return args
	}

	var lastLoc source.Range
	for {
		switch {
		case p.at(token.Star):
			starLoc := p.cur.Range
			p.advance()
			name := p.expect(token.Ident)
			args.Vararg = &ast.Name{Id: name.Ident(), Ctx: ast.CtxUnset, Rng: name.Range}
			args.StarLocVal = starLoc
			lastLoc = name.Range
		case p.at(token.DStar):
			dstarLoc := p.cur.Range
			p.advance()
			name := p.expect(token.Ident)
			args.Kwarg = &ast.Name{Id: name.Ident(), Ctx: ast.CtxUnset, Rng: name.Range}
			args.DStarLocVal = dstarLoc
			lastLoc = name.Range
		default:
			name := p.expect(token.Ident)
			args.Args = append(args.Args, &ast.Name{Id: name.Ident(), Ctx: ast.CtxUnset, Rng: name.Range})
			lastLoc = name.Range
			if p.at(token.Assign) {
				p.advance()
				def := p.parseTest()
				args.Defaults = append(args.Defaults, def)
				lastLoc = def.Loc()
			}
		}

		if p.at(token.Comma) {
			p.advance()
			if p.at(terminator) {
				break
			}
			continue
		}
		break
	}

	args.Rng = startLoc.Join(lastLoc)
	return args
}
