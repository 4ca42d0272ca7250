package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VisibleLen returns the visible width of s in terminal cells, ignoring
// ANSI escape sequences and counting wide characters as two cells.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s to at most maxWidth cells, keeping escape sequences that
// precede the cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "")
}

// TruncateWithTail cuts s to maxWidth cells with tail counted inside the
// limit, so "Los Angeles" at 8 with "…" becomes "Los Ang…".
func TruncateWithTail(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, tail)
}

// PadRight pads s with trailing spaces to width cells.
func PadRight(s string, width int) string {
	if vis := VisibleLen(s); vis < width {
		return s + strings.Repeat(" ", width-vis)
	}
	return s
}

// PadLeft pads s with leading spaces to width cells.
func PadLeft(s string, width int) string {
	if vis := VisibleLen(s); vis < width {
		return strings.Repeat(" ", width-vis) + s
	}
	return s
}

// PadCenter centers s in width cells; odd padding puts the extra space on
// the right.
func PadCenter(s string, width int) string {
	vis := VisibleLen(s)
	if vis >= width {
		return s
	}
	left := (width - vis) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-vis-left)
}

// Fit truncates s with an ellipsis when it is wider than width and centers
// it otherwise.
func Fit(s string, width int) string {
	if VisibleLen(s) > width {
		return TruncateWithTail(s, width, "…")
	}
	return PadCenter(s, width)
}

// Wrap word-wraps s at width cells.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}
