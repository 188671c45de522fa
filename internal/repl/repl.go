/*
File    : pyparse/internal/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements an interactive mode grounded directly on the prior
parser's repl/repl.go: same `chzyer/readline` + `fatih/color` stack, same
banner/prompt/history shape, retargeted from "evaluate and print a runtime
value" to "parse each line (or an accumulated indented block for compound
statements) as a module with parser.File and print its AST or
diagnostics" — there
is no evaluator in this module.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/pyparse/diag"
	"github.com/akashmaji946/pyparse/lexer"
	"github.com/akashmaji946/pyparse/parser"
	"github.com/akashmaji946/pyparse/source"
	"github.com/akashmaji946/pyparse/version"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive pyparse session: one logical unit of source text
// per Readline round trip, parsed with Grammar and echoed back as an AST
// dump or a diagnostic.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	Grammar version.Selector
	Color   bool
}

// New builds a Repl, mirroring the prior parser's NewRepl constructor shape.
func New(banner, ver, author, line, license, prompt string, grammar version.Selector, useColor bool) *Repl {
	return &Repl{
		Banner: banner, Version: ver, Author: author, Line: line, License: license,
		Prompt: prompt, Grammar: grammar, Color: useColor,
	}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to pyparse!")
	cyanColor.Fprintf(writer, "%s\n", "Type an expression or statement and press enter")
	cyanColor.Fprintf(writer, "%s\n", "A line ending in ':' starts an indented block — enter a blank line to close it")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop, reading from reader via chzyer/readline
// and writing prompts/results/diagnostics to writer.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		block, ok := r.readLogicalUnit(rl, writer)
		if !ok {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		if strings.TrimSpace(block) == "" {
			continue
		}
		if strings.TrimSpace(block) == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		r.parseAndPrint(writer, block)
	}
}

// readLogicalUnit reads one line, and if it opens an indented block (ends
// in ':'), keeps reading continuation lines (shown with the secondary
// "... " prompt) until a blank line closes the block — the REPL's
// line-based stand-in for Python's own interactive block accumulation.
func (r *Repl) readLogicalUnit(rl *readline.Instance, writer io.Writer) (string, bool) {
	rl.SetPrompt(r.Prompt)
	line, err := rl.Readline()
	if err != nil {
		return "", false
	}
	rl.SaveHistory(line)

	if !strings.HasSuffix(strings.TrimRight(line, " \t"), ":") {
		return line, true
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteString("\n")
	rl.SetPrompt("... ")
	for {
		cont, err := rl.Readline()
		if err != nil || strings.TrimSpace(cont) == "" {
			break
		}
		rl.SaveHistory(cont)
		b.WriteString(cont)
		b.WriteString("\n")
	}
	return b.String(), true
}

// parseAndPrint parses src as a complete module and reports either its AST
// dump or its diagnostic, recovering from any unexpected panic (the REPL
// must survive a bad line and keep prompting, unlike the CLI's `parse`
// subcommand which exits).
func (r *Repl) parseAndPrint(writer io.Writer, src string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", rec)
		}
	}()

	buf := source.NewBuffer("<repl>", normalizeBlock(src))
	stream := lexer.NewStream(buf)

	mod, parseErr := parser.File(stream, r.Grammar, nil)
	if parseErr != nil {
		r.printDiagnostic(writer, parseErr)
		return
	}
	for _, stmt := range mod.Body {
		yellowColor.Fprintf(writer, "%s\n", Dump(stmt))
	}
}

// normalizeBlock appends the trailing newline File's grammar expects if the
// user's block didn't already end with one.
func normalizeBlock(src string) string {
	if strings.HasSuffix(src, "\n") {
		return src
	}
	return src + "\n"
}

func (r *Repl) printDiagnostic(writer io.Writer, err *diag.Error) {
	redColor.Fprintf(writer, "%s\n", err.Diagnostic.String())
}
