// Package render fits text into terminal cells.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// Sanitize drops control characters and invalid UTF-8 from tag text, and
// turns no-break spaces into spaces, so metadata cannot move the cursor.
func Sanitize(s string) string {
	s = strings.ToValidUTF8(s, "")
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00a0':
			return ' '
		case r != '\t' && unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// Truncate cuts s to maxWidth cells, ending with an ellipsis when cut.
// Styling escapes in s are kept intact.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, ellipsis)
}

// TruncateLeft keeps the end of plain text s, which is the informative
// part of a path, and marks the cut with a leading ellipsis.
func TruncateLeft(s string, maxWidth int) string {
	s = Sanitize(s)
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 0 {
		return ""
	}
	r := []rune(s)
	i, w := len(r), 0
	for i > 0 {
		cw := runewidth.RuneWidth(r[i-1])
		if w+cw > maxWidth-1 {
			break
		}
		w += cw
		i--
	}
	return ellipsis + string(r[i:])
}

// Pad fills s with spaces up to width cells.
func Pad(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// TruncateAndPad makes s exactly width cells wide.
func TruncateAndPad(s string, width int) string {
	return Pad(Truncate(s, width), width)
}

// Row puts left and right at the two ends of a width-cell line, keeping
// at least one space between them.
func Row(left, right string, width int) string {
	gap := max(width-ansi.StringWidth(left)-ansi.StringWidth(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
