package diag

import (
	"testing"

	"github.com/akashmaji946/pyparse/source"
	"github.com/stretchr/testify/require"
)

func TestMessageSubstitution(t *testing.T) {
	buf := source.NewBuffer("t", "(")
	d := Unexpected("EOF", "')'", buf.Range(1, 1))
	require.Equal(t, "unexpected EOF: expected ')'", d.Message())
}

func TestListSinkHasErrors(t *testing.T) {
	sink := NewListSink()
	require.False(t, sink.HasErrors())

	buf := source.NewBuffer("t", "x")
	sink.Add(Diagnostic{Level: LevelWarning, Reason: "just a note", Location: buf.Range(0, 1)})
	require.False(t, sink.HasErrors())

	sink.Add(Unexpected("NEWLINE", "identifier", buf.Range(0, 1)))
	require.True(t, sink.HasErrors())
	require.Len(t, sink.All(), 2)
}

func TestRaiseRecover(t *testing.T) {
	buf := source.NewBuffer("t", "(")
	var caught *Error
	func() {
		defer Recover(&caught)
		Raise(Unexpected("EOF", "')'", buf.Range(1, 1)))
	}()
	require.NotNil(t, caught)
	require.Equal(t, "EOF", caught.Diagnostic.Arguments["actual"])
}
