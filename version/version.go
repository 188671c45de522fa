/*
File    : pyparse/version/version.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package version implements the grammar-variant selector:
a (major, minor) tuple, set at parser construction, that gates which
productions are legal. There is no direct precedent — the prior grammar has a single
fixed grammar — so this package is grounded on original_source/pyparser's
parser.py version checks, which the test harness exercises via
parser_for(code, version=(2, 6)).
*/
package version

import "fmt"

// Selector is a grammar version tuple, e.g. (2, 6) or (3, 0).
type Selector struct {
	Major int
	Minor int
}

// Default is the version the prior parser's test harness defaults to
// (parser_for's version=(2, 6) default parameter).
var Default = Selector{Major: 2, Minor: 6}

// New builds a Selector from a (major, minor) pair.
func New(major, minor int) Selector {
	return Selector{Major: major, Minor: minor}
}

// Atleast reports whether the selector is >= (major, minor).
func (s Selector) Atleast(major, minor int) bool {
	if s.Major != major {
		return s.Major > major
	}
	return s.Minor >= minor
}

// Before reports whether the selector is strictly less than (major, minor).
func (s Selector) Before(major, minor int) bool {
	return !s.Atleast(major, minor)
}

func (s Selector) String() string {
	return fmt.Sprintf("(%d, %d)", s.Major, s.Minor)
}

// PrintIsStatement reports whether `print` parses as a statement keyword
// rather than an ordinary identifier. True for every 2.x grammar; false at
// 3.0 and above, where print is a builtin function.
func (s Selector) PrintIsStatement() bool {
	return s.Before(3, 0)
}

// ExecIsStatement reports whether `exec` parses as a statement keyword.
// True for every 2.x grammar; false at 3.0 and above.
func (s Selector) ExecIsStatement() bool {
	return s.Before(3, 0)
}

// BackquoteRepr reports whether backtick `expr` parses as a Repr node.
// Removed in 3.0.
func (s Selector) BackquoteRepr() bool {
	return s.Before(3, 0)
}

// OldNotEqAllowed reports whether `<>` is accepted as a synonym for `!=`.
// Removed in 3.0.
func (s Selector) OldNotEqAllowed() bool {
	return s.Before(3, 0)
}

// SetAndDictComprehensions reports whether `{x for x in y}` /
// `{k: v for k, v in y}` comprehension forms, and bare set literals
// `{1, 2, 3}`, are legal. Introduced in 2.7.
func (s Selector) SetAndDictComprehensions() bool {
	return s.Atleast(2, 7)
}

// MultiContextWith reports whether `with a as x, b as y:` (multiple context
// managers in one with-statement) is legal. Introduced in 2.7.
func (s Selector) MultiContextWith() bool {
	return s.Atleast(2, 7)
}

// NonlocalAllowed reports whether the `nonlocal` statement is recognized.
// Introduced in 3.0; below that version the lexer still emits the keyword
// and the parser rejects the statement with a version-mismatch diagnostic.
func (s Selector) NonlocalAllowed() bool {
	return s.Atleast(3, 0)
}
