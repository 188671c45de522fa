package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/pyparse/version"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	saved := os.Stdout
	os.Stdout = w
	fn()
	os.Stdout = saved
	w.Close()
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func writeTempSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.py")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunParsePrintsASTForValidSource(t *testing.T) {
	path := writeTempSource(t, "x = 1 + 2\n")
	st := &cliState{grammar: version.New(3, 6)}

	out := captureStdout(t, func() {
		require.NoError(t, runParse(st, path))
	})
	assert.Contains(t, out, "Assign")
	assert.Contains(t, out, "BinOp")
}

func TestRunTokensDumpsStreamIncludingEOF(t *testing.T) {
	path := writeTempSource(t, "x = 1\n")

	out := captureStdout(t, func() {
		require.NoError(t, runTokens(path))
	})
	assert.True(t, strings.Contains(out, "identifier"))
	assert.True(t, strings.Contains(out, "EOF"))
}

func TestParseVersionFlagParsesMajorMinor(t *testing.T) {
	sel, err := parseVersionFlag("3.6")
	require.NoError(t, err)
	assert.Equal(t, version.New(3, 6), sel)
}

func TestParseVersionFlagRejectsMalformedInput(t *testing.T) {
	_, err := parseVersionFlag("nope")
	assert.Error(t, err)
}
