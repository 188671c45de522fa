/*
File    : pyparse/diag/diagnostic.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package diag is the structured replacement for the prior parser's
Parser.Errors []string / addError / HasErrors / GetErrors discipline
(parser/parser.go in the prior codebase). Where the prior parser formats an error
message immediately with fmt.Sprintf, we keep the reason template and its
arguments as data ("Implementations should keep the template as
opaque data and perform substitution only at display time") so tests can
assert on (Reason, Arguments) without depending on a rendered string.
*/
package diag

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/pyparse/source"
)

// Level is the severity of a diagnostic.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelNote    Level = "note"
)

// Diagnostic is a structured parser error: a level, an opaque reason
// template, the keyword arguments that fill its placeholders, and the
// source range the diagnostic points at.
type Diagnostic struct {
	Level     Level
	Reason    string
	Arguments map[string]string
	Location  source.Range
}

// Message substitutes Arguments into Reason for display. Placeholders are
// written "{name}", matching this grammar's canonical template
// "unexpected {actual}: expected {expected}".
func (d Diagnostic) Message() string {
	msg := d.Reason
	for k, v := range d.Arguments {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

// String renders a diagnostic the way a CLI reports it: "<location>:
// <level>: <message>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Location, d.Level, d.Message())
}

// Unexpected builds the canonical "unexpected token" diagnostic of
// 
func Unexpected(actual, expected string, loc source.Range) Diagnostic {
	return Diagnostic{
		Level:  LevelError,
		Reason: "unexpected {actual}: expected {expected}",
		Arguments: map[string]string{
			"actual":   actual,
			"expected": expected,
		},
		Location: loc,
	}
}

// MalformedLiteral builds the diagnostic for a token the lexer already
// flagged as ill-formed (unterminated string, bad escape) — 
// "signaled by lexer; parser propagates". reason is the lexer's own
// token.Illegal value text.
func MalformedLiteral(reason string, loc source.Range) Diagnostic {
	return Diagnostic{
		Level:     LevelError,
		Reason:    "malformed literal: {reason}",
		Arguments: map[string]string{"reason": reason},
		Location:  loc,
	}
}

// InvalidAssignmentTarget builds the diagnostic for an LHS whose syntax is
// not a legal assignment target.
func InvalidAssignmentTarget(loc source.Range) Diagnostic {
	return Diagnostic{
		Level:    LevelError,
		Reason:   "invalid assignment target",
		Location: loc,
	}
}

// DuplicateKeywordArgument builds the diagnostic for a call repeating the
// same keyword argument name.
func DuplicateKeywordArgument(name string, loc source.Range) Diagnostic {
	return Diagnostic{
		Level:     LevelError,
		Reason:    "duplicate keyword argument {name}",
		Arguments: map[string]string{"name": name},
		Location:  loc,
	}
}

// PositionalAfterKeyword builds the diagnostic for a positional argument
// written after a keyword argument in the same call.
func PositionalAfterKeyword(loc source.Range) Diagnostic {
	return Diagnostic{
		Level:    LevelError,
		Reason:   "positional argument follows keyword argument",
		Location: loc,
	}
}

// MultipleStarArgs builds the diagnostic for a call with more than one
// *expr splat.
func MultipleStarArgs(loc source.Range) Diagnostic {
	return Diagnostic{
		Level:    LevelError,
		Reason:   "multiple starred expressions in call",
		Location: loc,
	}
}

// MultipleDoubleStarArgs builds the diagnostic for a call with more than
// one **expr splat.
func MultipleDoubleStarArgs(loc source.Range) Diagnostic {
	return Diagnostic{
		Level:    LevelError,
		Reason:   "multiple double-starred expressions in call",
		Location: loc,
	}
}

// VersionMismatch builds the diagnostic for a production disabled by the
// selected grammar variant.
func VersionMismatch(construct, required, actual string, loc source.Range) Diagnostic {
	return Diagnostic{
		Level:  LevelError,
		Reason: "{construct} requires grammar version {required}, got {actual}",
		Arguments: map[string]string{
			"construct": construct,
			"required":  required,
			"actual":    actual,
		},
		Location: loc,
	}
}
