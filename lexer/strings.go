/*
File    : pyparse/lexer/strings.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

String scanning, grounded on the prior parser's lexer_utils.go readStringLiteral
and escapeChar (consume the opening quote, accumulate into a
strings.Builder, translate "\\" escapes one at a time, require a matching
closing quote before EOF). Extended with triple-quoted strings, the
single-quote alternative, and raw/byte/unicode prefixes — string/number
decoding is the lexer's responsibility, with the decoded value handed to
ast.Str by the parser.
*/
package lexer

import (
	"strings"

	"github.com/akashmaji946/pyparse/token"
)

// scanStringLiteral scans one (possibly prefixed, possibly triple-quoted)
// string literal starting at lo. prefix is the lowercased prefix text
// already consumed by scanIdentOrString ("" if the literal has none).
// The opening quote does not necessarily start at lo (a `b`/`r`/`rb`
// prefix precedes it), so the opening/closing quote sub-ranges are tracked
// separately from the token's overall range and carried on the emitted
// token for the parser to build Str.BeginLoc/EndLoc from.
func (lex *Lexer) scanStringLiteral(lo int, prefix string) {
	quote := lex.current
	raw := strings.Contains(prefix, "r")
	kind := token.String
	if strings.Contains(prefix, "b") {
		kind = token.Bytes
	}

	openLo := lex.position
	lex.advance() // opening quote
	triple := lex.current == quote && lex.peek() == quote
	if triple {
		lex.advance()
		lex.advance()
	}
	openHi := lex.position

	var b strings.Builder
	var closeLo, closeHi int
	for {
		if lex.current == 0 {
			lex.tokens = append(lex.tokens, token.Token{
				Kind:  token.Illegal,
				Value: "unterminated string literal",
				Range: lex.buf.Range(lo, lex.position),
			})
			return
		}
		if !triple && lex.current == '\n' {
			lex.tokens = append(lex.tokens, token.Token{
				Kind:  token.Illegal,
				Value: "newline in single-quoted string literal",
				Range: lex.buf.Range(lo, lex.position),
			})
			return
		}
		if triple && lex.current == quote && lex.peek() == quote && lex.peekAt2() == quote {
			closeLo = lex.position
			lex.advance()
			lex.advance()
			lex.advance()
			closeHi = lex.position
			break
		}
		if !triple && lex.current == quote {
			closeLo = lex.position
			lex.advance()
			closeHi = lex.position
			break
		}
		if lex.current == '\\' && !raw {
			lex.advance()
			if c, ok := escapeChar(lex.current); ok {
				b.WriteByte(c)
				lex.advance()
			} else if lex.current == '\n' {
				lex.advance() // line continuation inside a string
			} else {
				b.WriteByte('\\')
				b.WriteByte(lex.current)
				lex.advance()
			}
			continue
		}
		b.WriteByte(lex.current)
		lex.advance()
	}

	lex.emitString(kind, b.String(), lo, lex.position, openLo, openHi, closeLo, closeHi)
}

func (lex *Lexer) peekAt2() byte {
	if lex.position+2 >= lex.srcLength {
		return 0
	}
	return lex.src[lex.position+2]
}

// escapeChar converts the character following a backslash to its decoded
// byte value, exactly the prior parser's escapeChar table extended with \a
// and \b.
func escapeChar(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case 'f':
		return '\f', true
	case 'v':
		return '\v', true
	case 'a':
		return '\a', true
	case 'b':
		return '\b', true
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	case '\'':
		return '\'', true
	case '0':
		return 0, true
	default:
		return 0, false
	}
}
