/*
File    : pyparse/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Character classifiers, grounded on the prior parser's lexer_utils.go
(isAlpha/isNumeric/isAlphanumeric/isWhitespace) re-specialized to ASCII
byte classification (identifiers are ASCII-only per this grammar's grammar) and
extended with the string-prefix table Python's lexer needs.
*/
package lexer

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isOctDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func isBinDigit(c byte) bool {
	return c == '0' || c == '1'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

// stringPrefixes is every valid combination of string-literal prefix
// letters "Atoms" alludes to ("string/number decoding" is the
// lexer's job): raw, unicode, byte, and raw+byte combinations, case
// insensitive.
var stringPrefixes = map[string]bool{
	"r": true, "u": true, "b": true,
	"rb": true, "br": true,
}

func isStringPrefix(text string) bool {
	if len(text) > 2 {
		return false
	}
	return stringPrefixes[lower(text)]
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
