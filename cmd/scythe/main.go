// Command scythe is the front end's driver: a thin Cobra shell around
// internal/lexer, internal/parser, internal/diag, and internal/highlight.
// It is deliberately outside the core — the grammar, diagnostics, and
// highlighter are all usable as a library without it — and carries none
// of cmd/malphas's LLVM/codegen/LSP pipeline, since this front end stops
// at the AST.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
