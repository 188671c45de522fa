package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/pyparse/internal/repl"
	"github.com/akashmaji946/pyparse/lexer"
	"github.com/akashmaji946/pyparse/parser"
	"github.com/akashmaji946/pyparse/source"
)

func newParseCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and print its AST, or its diagnostic on failure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(st, args[0])
		},
	}
}

func runParse(st *cliState, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	buf := source.NewBuffer(path, string(data))
	stream := lexer.NewStream(buf)

	mod, parseErr := parser.File(stream, st.grammar, nil)
	if parseErr != nil {
		color.New(color.FgRed).Fprintf(os.Stdout, "%s\n", parseErr.Diagnostic.String())
		os.Exit(1)
	}
	for _, stmt := range mod.Body {
		fmt.Println(repl.Dump(stmt))
	}
	return nil
}
