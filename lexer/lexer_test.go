/*
File    : pyparse/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/pyparse/source"
	"github.com/akashmaji946/pyparse/token"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	buf := source.NewBuffer("<test>", src)
	return New(buf).Tokens()
}

func TestLexerSimpleExpression(t *testing.T) {
	toks := scanAll(t, "123 + 2 - 12\n")
	require.Equal(t, []token.Kind{
		token.Int, token.Plus, token.Int, token.Minus, token.Int, token.Newline, token.EOF,
	}, kinds(toks))
	assert.Equal(t, "123", toks[0].Value)
}

func TestLexerKeywordsAndIdentifiers(t *testing.T) {
	toks := scanAll(t, "if x and not y_2:\n")
	require.Equal(t, []token.Kind{
		token.KwIf, token.Ident, token.KwAnd, token.KwNot, token.Ident, token.Colon, token.Newline, token.EOF,
	}, kinds(toks))
	assert.Equal(t, "x", toks[1].Value)
	assert.Equal(t, "y_2", toks[4].Value)
}

func TestLexerIndentDedent(t *testing.T) {
	src := "if x:\n    y\n    z\nw\n"
	toks := scanAll(t, src)
	require.Equal(t, []token.Kind{
		token.KwIf, token.Ident, token.Colon, token.Newline,
		token.Indent, token.Ident, token.Newline,
		token.Ident, token.Newline,
		token.Dedent, token.Ident, token.Newline,
		token.EOF,
	}, kinds(toks))
}

func TestLexerDedentAtEOFWithoutTrailingNewline(t *testing.T) {
	src := "if x:\n    y"
	toks := scanAll(t, src)
	require.Equal(t, []token.Kind{
		token.KwIf, token.Ident, token.Colon, token.Newline,
		token.Indent, token.Ident, token.Dedent, token.EOF,
	}, kinds(toks))
}

func TestLexerBlankAndCommentLinesDoNotAffectIndentation(t *testing.T) {
	src := "if x:\n    y\n\n    # comment\n    z\n"
	toks := scanAll(t, src)
	require.Equal(t, []token.Kind{
		token.KwIf, token.Ident, token.Colon, token.Newline,
		token.Indent, token.Ident, token.Newline,
		token.Ident, token.Newline,
		token.Dedent, token.EOF,
	}, kinds(toks))
}

func TestLexerNewlineInsignificantInsideBrackets(t *testing.T) {
	src := "f(1,\n  2)\n"
	toks := scanAll(t, src)
	require.Equal(t, []token.Kind{
		token.Ident, token.LParen, token.Int, token.Comma, token.Int, token.RParen,
		token.Newline, token.EOF,
	}, kinds(toks))
}

func TestLexerNumbers(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"123", token.Int},
		{"0x1F", token.Int},
		{"0o17", token.Int},
		{"0b101", token.Int},
		{"3.14", token.Float},
		{"1e9", token.Float},
		{"1.4e-9", token.Float},
		{"2j", token.Imag},
		{"3.5J", token.Imag},
	}
	for _, c := range cases {
		toks := scanAll(t, c.src)
		require.Len(t, toks, 2, c.src) // literal + EOF
		assert.Equal(t, c.kind, toks[0].Kind, c.src)
		assert.Equal(t, c.src, toks[0].Value, c.src)
	}
}

func TestLexerStrings(t *testing.T) {
	toks := scanAll(t, `"hello\nworld"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "hello\nworld", toks[0].Value)
}

func TestLexerRawString(t *testing.T) {
	toks := scanAll(t, `r"a\nb"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, `a\nb`, toks[0].Value)
}

func TestLexerTripleQuotedStringSpansLines(t *testing.T) {
	toks := scanAll(t, "'''a\nb'''\n")
	require.Equal(t, []token.Kind{token.String, token.Newline, token.EOF}, kinds(toks))
	assert.Equal(t, "a\nb", toks[0].Value)
}

func TestLexerOperators(t *testing.T) {
	toks := scanAll(t, "** **= // //= << <<= >> >>= <> -> == != <= >=")
	require.Equal(t, []token.Kind{
		token.DStar, token.DStarEq, token.DSlash, token.DSlashEq,
		token.LShift, token.LShiftEq, token.RShift, token.RShiftEq,
		token.OldNotEq, token.Arrow, token.Eq, token.NotEq, token.LtE, token.GtE,
		token.EOF,
	}, kinds(toks))
}

func TestLexerLineContinuation(t *testing.T) {
	toks := scanAll(t, "x = 1 + \\\n    2\n")
	require.Equal(t, []token.Kind{
		token.Ident, token.Assign, token.Int, token.Plus, token.Int, token.Newline, token.EOF,
	}, kinds(toks))
}

func TestLexerRangesAreByteAccurate(t *testing.T) {
	buf := source.NewBuffer("<test>", "abc + 1")
	toks := New(buf).Tokens()
	require.True(t, len(toks) >= 3)
	assert.Equal(t, "abc", toks[0].Range.Text())
	assert.Equal(t, "+", toks[1].Range.Text())
}

func TestStreamModeNoNewlineSkipsNewlines(t *testing.T) {
	buf := source.NewBuffer("<test>", "x\ny")
	s := NewStream(buf)
	require.Equal(t, token.Ident, s.Next(token.ModeNormal).Kind)
	require.Equal(t, token.Ident, s.Peek(token.ModeNoNewline).Kind)
}

func TestStreamPeekIsIdempotent(t *testing.T) {
	buf := source.NewBuffer("<test>", "x + y")
	s := NewStream(buf)
	first := s.Peek(token.ModeNormal)
	second := s.Peek(token.ModeNormal)
	assert.Equal(t, first, second)
}
