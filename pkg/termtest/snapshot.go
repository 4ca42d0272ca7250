package termtest

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Snapshot captures a rendered frame for comparison testing.
type Snapshot struct {
	Name     string // Descriptive name for the snapshot
	Terminal string // Terminal profile name used
	Width    int    // Render width in columns
	Height   int    // Render height in rows
	Content  string // The rendered frame with escape sequences removed
}

// CaptureSnapshot renders at the profile's window size and stores the
// plain text of the frame.
func CaptureSnapshot(name string, p TerminalProfile, renderFn func(w, h int) string) Snapshot {
	return Snapshot{
		Name:     name,
		Terminal: p.Name,
		Width:    p.Cols,
		Height:   p.Rows,
		Content:  ansi.Strip(renderFn(p.Cols, p.Rows)),
	}
}

// Contains reports whether any line of the snapshot contains s.
func (s Snapshot) Contains(sub string) bool {
	return strings.Contains(s.Content, sub)
}

// Diff describes a single line difference between two snapshots.
type Diff struct {
	Line     int    // 1-based line number where the difference occurs
	Expected string // The expected line content
	Actual   string // The actual line content
}

// CompareSnapshots checks two snapshots for differences.
// Returns nil if the snapshots are identical.
func CompareSnapshots(expected, actual Snapshot) []Diff {
	expectedLines := ttSplitLines(expected.Content)
	actualLines := ttSplitLines(actual.Content)

	var diffs []Diff
	for i := 0; i < max(len(expectedLines), len(actualLines)); i++ {
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			diffs = append(diffs, Diff{Line: i + 1, Expected: eLine, Actual: aLine})
		}
	}
	return diffs
}

// ttSplitLines splits a string into lines; an empty string is one empty line.
func ttSplitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}
