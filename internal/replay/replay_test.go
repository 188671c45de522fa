/*
File    : pyparse/internal/replay/replay_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/pyparse/ast"
	"github.com/akashmaji946/pyparse/lexer"
	"github.com/akashmaji946/pyparse/parser"
	"github.com/akashmaji946/pyparse/source"
	"github.com/akashmaji946/pyparse/version"
)

func TestTokenRoundTripsReproducesSurfaceText(t *testing.T) {
	buf := source.NewBuffer("<test>", "123 + 456")
	toks := lexer.New(buf).Tokens()
	assert.True(t, TokenRoundTrips(toks[0].Range, "123"))
	assert.True(t, TokenRoundTrips(toks[2].Range, "456"))
	assert.False(t, TokenRoundTrips(toks[0].Range, "456"))
}

func TestCheckContainmentOnParsedIfStatement(t *testing.T) {
	buf := source.NewBuffer("<test>", "if a:\n    pass\nelse:\n    pass\n")
	stream := lexer.NewStream(buf)
	mod, err := parser.File(stream, version.Selector{Major: 3, Minor: 6}, nil)
	require.Nil(t, err)
	require.Len(t, mod.Body, 1)

	ifStmt := mod.Body[0].(*ast.If)
	errs := CheckContainment(ifStmt)
	assert.Empty(t, errs)
}

func TestAssignInvariantsHold(t *testing.T) {
	buf := source.NewBuffer("<test>", "x = y = 1\n")
	stream := lexer.NewStream(buf)
	mod, err := parser.File(stream, version.Selector{Major: 3, Minor: 6}, nil)
	require.Nil(t, err)
	as := mod.Body[0].(*ast.Assign)
	assert.True(t, AssignInvariantsHold(as))
}
