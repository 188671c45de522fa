/*
File    : pyparse/lexer/stream.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Stream adapts a fully-scanned token slice to token.Stream: one-token
lookahead, with an independent Peek ("the parser treats the lexer as a
stream with one-token lookahead and configurable peek modes"). The prior
parser has no analogue (its Parser pulls straight from Lexer.NextToken with
no mode concept) — this is new code grounded directly on the token.Stream
interface comment.
*/
package lexer

import (
	"github.com/akashmaji946/pyparse/source"
	"github.com/akashmaji946/pyparse/token"
)

// Stream walks a pre-scanned token slice, skipping Newline tokens when the
// caller requests token.ModeNoNewline. INDENT/DEDENT never appear inside
// brackets because Lexer's own parenDepth counter already suppresses them
// at scan time (see lexer.go), so Mode only needs to govern Newline here.
type Stream struct {
	toks []token.Token
	pos  int
}

// NewStream scans buf and returns a ready-to-use Stream.
func NewStream(buf *source.Buffer) *Stream {
	return &Stream{toks: New(buf).Tokens()}
}

// NewStreamFromTokens builds a Stream over an already-scanned slice,
// primarily for tests that want to hand-construct token sequences.
func NewStreamFromTokens(toks []token.Token) *Stream {
	return &Stream{toks: toks}
}

func (s *Stream) Next(mode token.Mode) token.Token {
	s.pos = s.indexAfterSkipped(mode)
	if s.pos >= len(s.toks) {
		return s.toks[len(s.toks)-1] // EOF is always the last token
	}
	t := s.toks[s.pos]
	s.pos++
	return t
}

func (s *Stream) Peek(mode token.Mode) token.Token {
	i := s.indexAfterSkipped(mode)
	if i >= len(s.toks) {
		return s.toks[len(s.toks)-1] // EOF is always the last token
	}
	return s.toks[i]
}

// indexAfterSkipped returns the index of the next token visible under
// mode, skipping over Newline tokens when mode is ModeNoNewline.
func (s *Stream) indexAfterSkipped(mode token.Mode) int {
	i := s.pos
	if mode == token.ModeNoNewline {
		for i < len(s.toks) && s.toks[i].Kind == token.Newline {
			i++
		}
	}
	return i
}
