package termtest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ValidateFrame checks that a rendered frame fits a width x height window:
// no line is wider than width cells and there are at most height lines.
func ValidateFrame(frame string, width, height int) error {
	lines := strings.Split(frame, "\n")
	if height > 0 && len(lines) > height {
		return fmt.Errorf("frame has %d lines, window has %d rows", len(lines), height)
	}
	for i, l := range lines {
		if w := ansi.StringWidth(l); w > width {
			return fmt.Errorf("line %d is %d cells wide, window has %d columns", i+1, w, width)
		}
	}
	return nil
}

// ValidateColorDepth checks that the depth tickcard detected for a
// profile's environment matches what the terminal can show. Detection may
// report less color than the profile, never more.
func ValidateColorDepth(p TerminalProfile, detected int) error {
	if detected > p.ColorDepth {
		return fmt.Errorf("terminal %q: detected %d-bit color, terminal shows %d", p.Name, detected, p.ColorDepth)
	}
	return nil
}
