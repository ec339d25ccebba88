package lexer

import "unicode"

// isXIDStart and isXIDContinue approximate Unicode UAX #31's XID_Start
// and XID_Continue classes from the standard library's unicode category
// tables. Identifier classification needs a real Unicode tables library
// rather than settling for ASCII-only classification; none of the
// retrieval pack's dependencies exports the XID_Start/XID_Continue
// tables themselves (github.com/rivo/uniseg, pulled in by the
// bufbuild-protocompile reference, covers grapheme clustering and east
// asian width, not identifier classification, so it does not fit this
// concern), so this is the one place this port falls back to the
// standard library's real (non-ASCII-only) unicode.RangeTable data,
// which is the same category data most XID_Start/XID_Continue
// implementations are built from.
func isXIDStart(r rune) bool {
	if r == '_' {
		return true
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_ID_Start, r)
}

func isXIDContinue(r rune) bool {
	if isXIDStart(r) {
		return true
	}
	return unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) ||
		unicode.Is(unicode.Mc, r) ||
		unicode.Is(unicode.Pc, r) ||
		unicode.Is(unicode.Other_ID_Continue, r)
}
