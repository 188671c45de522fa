package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/pyparse/internal/config"
	"github.com/akashmaji946/pyparse/version"
)

const moduleVersion = "v1.0.0"

// cliState holds the parsed persistent flags, threaded into every
// subcommand the way the prior parser's package-level VERSION/AUTHOR/LICENCE
// vars are threaded into main/main.go and repl/repl.go.
type cliState struct {
	grammar  version.Selector
	noColor  bool
	tabWidth int
}

func newRootCmd() *cobra.Command {
	st := &cliState{}
	var versionFlag string

	cmd := &cobra.Command{
		Use:   "pyparse",
		Short: "pyparse - a Python grammar recursive-descent parser",
		Long: "pyparse parses Python source into a located AST without evaluating it.\n" +
			"It does not execute, type-check, or format the programs it parses.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath())
			if err != nil {
				return err
			}
			st.grammar = cfg.Selector()
			st.tabWidth = cfg.TabWidth
			if versionFlag != "" {
				sel, err := parseVersionFlag(versionFlag)
				if err != nil {
					return err
				}
				st.grammar = sel
			}
			if st.noColor || !cfg.Color {
				color.NoColor = true
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&versionFlag, "version", "", "grammar version, e.g. 3.6 (default: from config, else (2, 6))")
	cmd.PersistentFlags().BoolVar(&st.noColor, "no-color", false, "disable colorized diagnostic output")

	cmd.AddCommand(newParseCmd(st))
	cmd.AddCommand(newTokensCmd(st))
	cmd.AddCommand(newReplCmd(st))
	cmd.AddCommand(newVersionCmd(st))
	return cmd
}

func configPath() string {
	if p := os.Getenv("PYPARSE_CONFIG"); p != "" {
		return p
	}
	return "pyparse.yaml"
}

func parseVersionFlag(s string) (version.Selector, error) {
	var major, minor int
	if _, err := fmt.Sscanf(s, "%d.%d", &major, &minor); err != nil {
		return version.Selector{}, fmt.Errorf("invalid --version %q, want MAJOR.MINOR (e.g. 3.6): %w", s, err)
	}
	return version.New(major, minor), nil
}
