package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the module version and default grammar version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("pyparse %s (default grammar %s)\n", moduleVersion, st.grammar)
			return nil
		},
	}
}
