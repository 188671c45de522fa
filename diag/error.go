package diag

// Error wraps a fatal Diagnostic as a Go error, the concrete shape of the
// "DiagnosticException-shaped signal" parsing is required to unwind with.
// A production that hits a fatal mismatch returns (or panics
// with, see Raise/Recover below) an *Error instead of a partial node; the
// top-level entry points (parser.File, parser.Expression) are the only
// places that catch it.
type Error struct {
	Diagnostic Diagnostic
}

// NewError wraps d as an unwind-carrying error.
func NewError(d Diagnostic) *Error {
	return &Error{Diagnostic: d}
}

func (e *Error) Error() string {
	return e.Diagnostic.String()
}

// Unwind is the sentinel value passed to panic/recover to abort the current
// parse. Go has no built-in exception type, so the parser models "a fatal
// diagnostic unwinds parsing immediately" with panic(carrying *Error) and a
// single recover at each entry point — recursive-descent parsers elsewhere
// in the retrieval pack, e.g. other_examples' skylark parser, use
// scanner.recover(&err) at the top-level Parse call for exactly this reason.
type Unwind struct {
	Err *Error
}

// Raise panics with an Unwind carrying d, aborting the current parse. Only
// top-level entry points recover from it.
func Raise(d Diagnostic) {
	panic(Unwind{Err: NewError(d)})
}

// Recover should be deferred by every top-level entry point. If the
// goroutine is unwinding because of Raise, it sets *errOut to the wrapped
// error and stops the panic; any other panic value is re-raised.
func Recover(errOut **Error) {
	if r := recover(); r != nil {
		if u, ok := r.(Unwind); ok {
			*errOut = u.Err
			return
		}
		panic(r)
	}
}
