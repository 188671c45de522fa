package source

import "testing"

import "github.com/stretchr/testify/require"

func TestRangeEq(t *testing.T) {
	buf := NewBuffer("t", "hello world")
	a := buf.Range(0, 5)
	b := buf.Range(0, 5)
	c := buf.Range(0, 6)
	require.True(t, a.Eq(b))
	require.False(t, a.Eq(c))

	other := NewBuffer("t", "hello world")
	d := other.Range(0, 5)
	require.False(t, a.Eq(d), "same text, different buffer identity must not compare equal")
}

func TestRangeContains(t *testing.T) {
	buf := NewBuffer("t", "hello world")
	outer := buf.Range(0, 11)
	inner := buf.Range(0, 5)
	require.True(t, outer.Contains(inner))
	require.True(t, outer.Contains(outer))
	require.False(t, inner.Contains(outer))
}

func TestRangeJoin(t *testing.T) {
	buf := NewBuffer("t", "hello world")
	a := buf.Range(0, 5)
	b := buf.Range(6, 11)
	joined := a.Join(b)
	require.Equal(t, 0, joined.Lo)
	require.Equal(t, 11, joined.Hi)
}

func TestRangeJoinDifferentBuffersPanics(t *testing.T) {
	a := NewBuffer("a", "x").Range(0, 1)
	b := NewBuffer("b", "x").Range(0, 1)
	require.Panics(t, func() { a.Join(b) })
}

func TestRangeText(t *testing.T) {
	buf := NewBuffer("t", "hello world")
	r := buf.Range(6, 11)
	require.Equal(t, "world", r.Text())
}
