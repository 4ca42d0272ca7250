// Package termtest describes the terminals tickcard is expected to run in
// and checks rendered frames against them. Tests apply a profile's
// environment, render at its window size and validate the result.
package termtest

import (
	"os"
	"testing"

	"gitlab.com/tinyland/lab/tickcard/pkg/terminal"
)

// TerminalProfile describes one terminal setup.
type TerminalProfile struct {
	Name        string            // Human-readable terminal name
	EnvVars     map[string]string // Environment the terminal sets
	Term        terminal.Terminal // What detection should report
	Cols        int               // Typical window width
	Rows        int               // Typical window height
	ColorDepth  int               // 24, 8 or 4 bits
	MouseMotion bool              // Reports hover without a button
}

// detectionVars are cleared before a profile is applied so the host
// terminal does not leak into a test.
var detectionVars = []string{
	"TERM_PROGRAM", "TERM", "COLORTERM", "NO_COLOR",
	"KITTY_WINDOW_ID", "ITERM_SESSION_ID", "WEZTERM_EXECUTABLE",
	"VTE_VERSION", "LC_TERMINAL", "TMUX", "STY",
	"SSH_TTY", "SSH_CONNECTION", "SSH_CLIENT",
	"COLUMNS", "LINES",
}

// Profiles returns all known terminal profiles.
func Profiles() []TerminalProfile {
	return []TerminalProfile{
		ttGhosttyProfile(),
		ttKittyProfile(),
		ttITerm2Profile(),
		ttWezTermProfile(),
		ttGNOMEProfile(),
		ttAlacrittyProfile(),
		ttAppleTerminalProfile(),
		ttTmuxProfile(),
		ttLinuxConsoleProfile(),
	}
}

// ProfileByName returns the profile matching the given name, or nil if not found.
func ProfileByName(name string) *TerminalProfile {
	for _, p := range Profiles() {
		if p.Name == name {
			cp := p
			return &cp
		}
	}
	return nil
}

// Apply clears terminal detection variables and sets the profile's
// environment for the rest of the test.
func (p TerminalProfile) Apply(t testing.TB) {
	t.Helper()
	for _, v := range detectionVars {
		t.Setenv(v, "")
		os.Unsetenv(v)
	}
	for k, v := range p.EnvVars {
		t.Setenv(k, v)
	}
}
