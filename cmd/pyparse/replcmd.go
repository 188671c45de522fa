package main

import (
	"os"

	"github.com/spf13/cobra"

	pyrepl "github.com/akashmaji946/pyparse/internal/repl"
)

const (
	banner = `
 ██████╗ ██╗   ██╗██████╗  █████╗ ██████╗ ███████╗███████╗
 ██╔══██╗╚██╗ ██╔╝██╔══██╗██╔══██╗██╔══██╗██╔════╝██╔════╝
 ██████╔╝ ╚████╔╝ ██████╔╝███████║██████╔╝███████╗█████╗
 ██╔═══╝   ╚██╔╝  ██╔═══╝ ██╔══██║██╔══██╗╚════██║██╔══╝
 ██║        ██║   ██║     ██║  ██║██║  ██║███████║███████╗
 ╚═╝        ╚═╝   ╚═╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚══════╝
`
	line   = "----------------------------------------------------------------"
	prompt = "pyparse >>> "
)

func newReplCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive parsing session",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := pyrepl.New(banner, moduleVersion, "akashmaji(@iisc.ac.in)", line, "MIT", prompt, st.grammar, !st.noColor)
			r.Start(os.Stdin, os.Stdout)
			return nil
		},
	}
}
