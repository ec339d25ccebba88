package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/lylythechosenone/scythe/internal/diag"
	"github.com/lylythechosenone/scythe/internal/lexer"
	"github.com/lylythechosenone/scythe/internal/parser"
)

var verboseParse bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its AST, or any diagnostics raised",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVarP(&verboseParse, "verbose", "v", false, "report parse duration and source size")
}

func runParse(cmd *cobra.Command, args []string) error {
	filename := args[0]
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}
	source := string(src)

	logger.Debugf("run %s: parsing %s (%s)", runID, filename, humanize.Bytes(uint64(len(src))))
	start := time.Now()
	items, diags, fatalErr := parser.Parse(source)
	elapsed := time.Since(start)

	renderer := diag.NewRenderer(resolveColorMode())

	if fatalErr != nil {
		if d, ok := lexer.AsDiagnostic(fatalErr); ok {
			fmt.Fprintln(os.Stderr, renderer.Render(source, d))
		} else {
			fmt.Fprintln(os.Stderr, fatalErr)
		}
		return fmt.Errorf("parsing %s failed", filename)
	}

	for _, d := range diags {
		fmt.Fprintln(os.Stderr, renderer.Render(source, d))
	}

	fmt.Println(items.String())

	if verboseParse {
		fmt.Fprintf(os.Stderr, "parsed %s in %s, %d diagnostic(s)\n",
			humanize.Bytes(uint64(len(src))), elapsed.Round(time.Microsecond), len(diags))
	}

	if len(diags) > 0 {
		return fmt.Errorf("%d diagnostic(s) raised while parsing %s", len(diags), filename)
	}
	return nil
}
