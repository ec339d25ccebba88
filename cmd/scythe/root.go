package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/juju/loggo"
	"github.com/spf13/cobra"

	"github.com/lylythechosenone/scythe/internal/diag"
)

var logger = loggo.GetLogger("scythe.cmd")

// runID correlates every log line emitted by a single invocation,
// mirroring cmd/malphas's MALPHAS_DEBUG-gated debugLog but routed
// through loggo instead of a bare fmt.Fprintf-to-stderr helper.
var runID = uuid.NewString()

var colorFlag string

var rootCmd = &cobra.Command{
	Use:   "scythe",
	Short: "A front end for the Scythe systems language: lex, parse, and highlight source.",
	Long: `scythe drives the lexer, parser, and diagnostic renderer over source
files without performing name resolution, type checking, or codegen.`,
	// A RunE that returns "N diagnostics raised" isn't a usage mistake;
	// don't dump the command's help text on top of it.
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadConfig()
		configureLogging()
		logger.Debugf("run %s: invoked %q", runID, os.Args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color mode: auto, always, or never")
	rootCmd.AddCommand(parseCmd, highlightCmd, replCmd)
}

// resolveColorMode turns the --color flag into a diag.ColorMode, falling
// back to config.DefaultColor when the flag was left at its default and
// the config file sets one.
func resolveColorMode() diag.ColorMode {
	mode := colorFlag
	if !rootCmd.PersistentFlags().Changed("color") && cfg.DefaultColor != "" {
		mode = cfg.DefaultColor
	}
	switch mode {
	case "always":
		return diag.ColorAlways
	case "never":
		return diag.ColorNever
	default:
		return diag.ColorAuto
	}
}

func configureLogging() {
	level := loggo.WARNING
	if os.Getenv("SCYTHE_DEBUG") != "" || cfg.Verbose {
		level = loggo.DEBUG
	}
	if err := loggo.ConfigureLoggers(fmt.Sprintf("scythe=%s", level)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to configure logging: %v\n", err)
	}
}
