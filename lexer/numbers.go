/*
File    : pyparse/lexer/numbers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Number scanning, grounded on the prior parser's lexer_utils.go readNumber (the
fast-path hex-literal check, then a linear scan tracking hasDot/hasExp over
a byte slice). Extended with octal/binary prefixes and the imaginary ("j")
suffix ("Num{n} where n carries integer, floating, or imaginary
semantics (decided by the lexer)") requires.
*/
package lexer

import "github.com/akashmaji946/pyparse/token"

// scanNumber scans one numeric literal starting at lo (lex.current already
// positioned on its first digit) and emits an Int, Float or Imag token.
func (lex *Lexer) scanNumber(lo int) {
	if lex.current == '0' && (lex.peek() == 'x' || lex.peek() == 'X') {
		lex.advance()
		lex.advance()
		for isHexDigit(lex.current) {
			lex.advance()
		}
		lex.emit(token.Int, lex.src[lo:lex.position], lo, lex.position)
		return
	}
	if lex.current == '0' && (lex.peek() == 'o' || lex.peek() == 'O') {
		lex.advance()
		lex.advance()
		for isOctDigit(lex.current) {
			lex.advance()
		}
		lex.emit(token.Int, lex.src[lo:lex.position], lo, lex.position)
		return
	}
	if lex.current == '0' && (lex.peek() == 'b' || lex.peek() == 'B') {
		lex.advance()
		lex.advance()
		for isBinDigit(lex.current) {
			lex.advance()
		}
		lex.emit(token.Int, lex.src[lo:lex.position], lo, lex.position)
		return
	}

	hasDot, hasExp := false, false
	for isDigit(lex.current) {
		lex.advance()
	}
	if lex.current == '.' && lex.peek() != '.' {
		hasDot = true
		lex.advance()
		for isDigit(lex.current) {
			lex.advance()
		}
	}
	if lex.current == 'e' || lex.current == 'E' {
		save := lex.position
		lex.advance()
		if lex.current == '+' || lex.current == '-' {
			lex.advance()
		}
		if isDigit(lex.current) {
			hasExp = true
			for isDigit(lex.current) {
				lex.advance()
			}
		} else {
			lex.rewindTo(save)
		}
	}

	if lex.current == 'j' || lex.current == 'J' {
		lex.advance()
		lex.emit(token.Imag, lex.src[lo:lex.position], lo, lex.position)
		return
	}

	kind := token.Int
	if hasDot || hasExp {
		kind = token.Float
	}
	lex.emit(kind, lex.src[lo:lex.position], lo, lex.position)
}

// rewindTo resets scan position to pos, recomputing current without
// touching line/column (only used mid-token, where no newline can occur).
func (lex *Lexer) rewindTo(pos int) {
	lex.position = pos
	if pos >= lex.srcLength {
		lex.current = 0
	} else {
		lex.current = lex.src[pos]
	}
}
