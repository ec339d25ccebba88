package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lylythechosenone/scythe/internal/diag"
	"github.com/lylythechosenone/scythe/internal/highlight"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight <file>",
	Short: "Print a source file with lexer-driven syntax coloring",
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlight,
}

func runHighlight(cmd *cobra.Command, args []string) error {
	filename := args[0]
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	enabled := diag.ResolveColor(resolveColorMode())
	logger.Debugf("run %s: highlighting %s (color=%t)", runID, filename, enabled)
	fmt.Println(highlight.Highlight(string(src), enabled))
	return nil
}
