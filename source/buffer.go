package source

// Buffer owns a single source file's (or REPL line's) text. It is addressed
// by pointer identity: two buffers built from identical text are still
// distinct buffers, which is what makes Range equality well defined
// (this grammar's "(buffer, lo, hi)" triple compares the buffer handle, not the
// bytes).
type Buffer struct {
	Name string
	Data string
}

// NewBuffer wraps data as a Buffer identified by name (typically a file
// path, or "<stdin>"/"<repl>" for interactive input).
func NewBuffer(name, data string) *Buffer {
	return &Buffer{Name: name, Data: data}
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	return len(b.Data)
}

// Slice returns the raw bytes in [lo, hi) as a string. It panics on an
// out-of-range request, the same contract Go's own slicing gives; callers
// construct Lo/Hi from token ranges, which are always in bounds by
// construction.
func (b *Buffer) Slice(lo, hi int) string {
	return b.Data[lo:hi]
}

// Range builds a Range over this buffer. Convenience used throughout the
// lexer and parser to avoid repeating the buffer pointer at every call
// site.
func (b *Buffer) Range(lo, hi int) Range {
	return Range{Buffer: b, Lo: lo, Hi: hi}
}
