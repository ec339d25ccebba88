package highlight

import "unicode/utf8"

const ansiEscape = '\x1b'

// SliceIgnoringANSI returns the slice of already-colorized text
// spanning logical rune positions [start, stop), where "logical" skips
// over any \x1b...m escape sequence entirely rather than counting its
// bytes as characters. Escape sequences that sit just before position
// start or just before position stop are left out of the result; those
// between the two are kept. A caller can use this to truncate colorized
// output (e.g. to a terminal width) without splitting an escape code
// in half.
//
// This replaces original_source/highlight.py's slice_ignoring_ansi,
// whose second scanning loop advanced its end cursor by checking
// text[start] (the first loop's final, by-then-stale position) against
// 'm' instead of text[end] — an off-by-one that could run past the end
// of the string or stop short depending on how the first loop's escape
// sequence compared in length to the second's. This version is a
// single straightforward walk with one cursor per loop, each compared
// against its own position.
func SliceIgnoringANSI(text string, start, stop int) string {
	startByte, stopByte := -1, -1
	logical := 0
	i := 0
	for i < len(text) {
		if logical == stop && stopByte < 0 {
			stopByte = i
		}
		if text[i] == ansiEscape {
			for i < len(text) && text[i] != 'm' {
				i++
			}
			if i < len(text) {
				i++ // consume the 'm' itself
			}
			continue
		}
		if logical == start && startByte < 0 {
			startByte = i
		}
		_, width := utf8.DecodeRuneInString(text[i:])
		i += width
		logical++
	}
	if startByte < 0 {
		startByte = len(text)
	}
	if stopByte < 0 {
		stopByte = len(text)
	}
	if stopByte < startByte {
		stopByte = startByte
	}
	return text[startByte:stopByte]
}
