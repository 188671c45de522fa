package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akashmaji946/pyparse/lexer"
	"github.com/akashmaji946/pyparse/source"
	"github.com/akashmaji946/pyparse/token"
)

func newTokensCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the lexer's token stream for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(args[0])
		},
	}
}

func runTokens(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	buf := source.NewBuffer(path, string(data))
	for _, t := range lexer.New(buf).Tokens() {
		fmt.Println(t)
		if t.Kind == token.EOF {
			break
		}
	}
	return nil
}
