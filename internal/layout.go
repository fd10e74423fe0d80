package internal

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// splitToFit returns the longest prefix of s whose display width fits in
// maxWidth, and the remainder. When not even the first rune fits, that rune is
// returned alone so callers always make progress.
func splitToFit(s string, maxWidth int) (string, string) {
	width := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > maxWidth {
			if i == 0 {
				_, size := utf8.DecodeRuneInString(s)
				return s[:size], s[size:]
			}
			return s[:i], s[i:]
		}
		width += rw
	}
	return s, ""
}

// Wrap splits line into a first segment of at most maxWidth columns and the
// continuation segments that follow it. Continuations are drawn after indent
// columns of padding, so they are cut to maxWidth-indent.
func Wrap(line string, maxWidth, indent int) (string, []string) {
	first, rest := splitToFit(line, maxWidth)

	var lines []string
	budget := max(maxWidth-indent, 0)
	for rest != "" {
		var seg string
		seg, rest = splitToFit(rest, budget)
		lines = append(lines, seg)
	}
	return first, lines
}
