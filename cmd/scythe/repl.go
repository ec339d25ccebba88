package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lylythechosenone/scythe/internal/diag"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/parser"
)

var (
	replErrColor = color.New(color.FgRed)
	replOkColor  = color.New(color.FgYellow)
	replBanColor = color.New(color.FgCyan)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-parse-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd.OutOrStdout())
	},
}

// runREPL mirrors the akashmaji946-go-mix REPL idiom (prompt,
// history, panic recovery around one line at a time) but feeds each
// line to the parser instead of an evaluator, since this front end has
// none: a successful parse prints the resulting items, a failed one
// prints its diagnostics, and either way the loop continues.
func runREPL(w io.Writer) error {
	replBanColor.Fprintln(w, "scythe repl — type a declaration or expression, Ctrl+D to exit")

	rl, err := readline.New("scythe> ")
	if err != nil {
		return fmt.Errorf("starting repl: %w", err)
	}
	defer rl.Close()

	renderer := diag.NewRenderer(resolveColorMode())

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "goodbye")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)
		evalLine(w, renderer, line)
	}
}

func evalLine(w io.Writer, renderer *diag.Renderer, line string) {
	defer func() {
		if r := recover(); r != nil {
			replErrColor.Fprintf(w, "[internal error] %v\n", r)
		}
	}()

	items, diags, fatalErr := parser.Parse(line)
	if fatalErr != nil {
		if d, ok := lexer.AsDiagnostic(fatalErr); ok {
			replErrColor.Fprintln(w, renderer.Render(line, d))
		} else {
			replErrColor.Fprintln(w, fatalErr)
		}
		return
	}
	for _, d := range diags {
		replErrColor.Fprintln(w, renderer.Render(line, d))
	}
	replOkColor.Fprintln(w, items.String())
}
