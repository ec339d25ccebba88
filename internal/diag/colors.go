package diag

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode selects whether Renderer emits ANSI escapes, matching
// malphas-lang's driver --color flag idiom, with color handling itself
// grounded on fatih/color and mattn/go-isatty (both pulled from
// akashmaji946-go-mix).
type ColorMode int

const (
	// ColorAuto enables color only when stderr is a terminal.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ResolveColor turns a ColorMode into a concrete on/off decision by
// probing stderr with go-isatty when the mode is ColorAuto.
func ResolveColor(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	}
}

// palette holds the colorize functions for each role in the rendered
// snippet. In monochrome mode every entry is the identity function so
// the layout is byte-for-byte identical minus escapes, which keeps the
// renderer testable without a terminal.
type palette struct {
	header    func(string) string
	underline func(string) string
	pointer   func(string) string
	gutter    func(string) string
	highlight func(string) string
}

func newPalette(enabled bool) palette {
	if !enabled {
		id := func(s string) string { return s }
		return palette{header: id, underline: id, pointer: id, gutter: id, highlight: id}
	}
	header := color.New(color.FgRed, color.Bold)
	underline := color.New(color.FgRed, color.Bold)
	pointer := color.New(color.FgRed)
	gutter := color.New(color.FgCyan)
	highlight := color.New(color.FgYellow, color.Bold)
	return palette{
		header:    header.Sprint,
		underline: underline.Sprint,
		pointer:   pointer.Sprint,
		gutter:    gutter.Sprint,
		highlight: highlight.Sprint,
	}
}
