package token

import (
	"fmt"

	"github.com/akashmaji946/pyparse/source"
)

// Token is the shape the parser consumes from the lexer: a tagged kind, an
// optional decoded semantic value, and a range. OpenQuote/CloseQuote are
// only populated for String/Bytes tokens — the sub-ranges of the opening
// and closing quote, which do not start at Range.Lo when the literal
// carries a `b`/`r`/`rb` prefix — so the parser can build Str.BeginLoc and
// Str.EndLoc without re-scanning the literal's surface text.
type Token struct {
	Kind       Kind
	Value      any // identifier/keyword spelling, number surface text, or decoded string value; nil for punctuation
	Range      source.Range
	OpenQuote  source.Range
	CloseQuote source.Range
}

// Ident returns the token's identifier/keyword spelling, or "" if Value
// isn't a string.
func (t Token) Ident() string {
	s, _ := t.Value.(string)
	return s
}

func (t Token) String() string {
	if t.Value != nil {
		return fmt.Sprintf("%s(%v)@%s", t.Kind, t.Value, t.Range)
	}
	return fmt.Sprintf("%s@%s", t.Kind, t.Range)
}
