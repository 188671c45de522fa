/*
File    : pyparse/source/range.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package source owns the input text the parser reads and vends half-open
byte-index ranges into it. It is the "source buffer" external collaborator
of the parser core: the parser and the lexer share it read-only, never
mutate it, and address all of their location bookkeeping through Range
values that carry a Buffer identity alongside the two offsets.
*/
package source

import "fmt"

// Range is an immutable half-open byte interval [Lo, Hi) within Buffer.
//
// Two ranges compare equal iff their Buffer, Lo and Hi all match. Range is
// deliberately a small value type (a pointer plus two ints) so it can be
// embedded in AST nodes by value without indirection.
type Range struct {
	Buffer *Buffer
	Lo     int
	Hi     int
}

// Eq reports whether two ranges reference the same buffer and span the same
// bytes.
func (r Range) Eq(other Range) bool {
	return r.Buffer == other.Buffer && r.Lo == other.Lo && r.Hi == other.Hi
}

// IsZero reports whether r is the unpopulated zero value. Used by the AST
// completeness checks to tell "never set" apart from "set to an empty
// range at offset zero".
func (r Range) IsZero() bool {
	return r.Buffer == nil && r.Lo == 0 && r.Hi == 0
}

// Contains reports whether other lies entirely within r, in the same
// buffer. An empty range at r's own boundary is contained.
func (r Range) Contains(other Range) bool {
	if r.Buffer != other.Buffer {
		return false
	}
	return r.Lo <= other.Lo && other.Hi <= r.Hi
}

// Join returns the smallest range enclosing both r and other. Both ranges
// must reference the same buffer; joining ranges from different buffers is
// a programming error and panics, mirroring the invariant that every node's
// sub-locations live in the single buffer being parsed.
func (r Range) Join(other Range) Range {
	if r.Buffer != other.Buffer {
		panic("source: Join of ranges from different buffers")
	}
	lo, hi := r.Lo, r.Hi
	if other.Lo < lo {
		lo = other.Lo
	}
	if other.Hi > hi {
		hi = other.Hi
	}
	return Range{Buffer: r.Buffer, Lo: lo, Hi: hi}
}

// Text returns the source text spanned by r.
func (r Range) Text() string {
	if r.Buffer == nil {
		return ""
	}
	return r.Buffer.Slice(r.Lo, r.Hi)
}

// String renders a range as "name:lo-hi", useful in diagnostic output and
// test failure messages.
func (r Range) String() string {
	name := "<nil>"
	if r.Buffer != nil {
		name = r.Buffer.Name
	}
	return fmt.Sprintf("%s:%d-%d", name, r.Lo, r.Hi)
}
