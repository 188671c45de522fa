package token

// Mode selects an alternate tokenization policy for the next token request.
// The parser, not the lexer, decides which mode applies at any given
// position: it tracks bracket nesting itself (— "the parser must
// match bracket nesting itself to decide which mode to request") and
// requests ModeNoNewline while inside an unclosed (, [ or {.
type Mode uint8

const (
	// ModeNormal tokenizes NEWLINE/INDENT/DEDENT significantly, as at
	// statement level.
	ModeNormal Mode = iota
	// ModeNoNewline treats line breaks as insignificant whitespace, the
	// policy used inside parenthesized/bracketed/braced expressions so a
	// call or literal may freely span multiple physical lines.
	ModeNoNewline
)

// Stream is the parser's only dependency on the lexer: a single-token
// lookahead source with an optional independent peek. Implementations may
// maintain at most a small pushback buffer (typically one token, two for
// "not in"/"is not" disambiguation); the parser never assumes more.
type Stream interface {
	// Next consumes and returns the next token under mode.
	Next(mode Mode) Token
	// Peek returns the next token under mode without consuming it. Calling
	// Peek twice in a row with the same mode, with no intervening Next,
	// must return the same token.
	Peek(mode Mode) Token
}
