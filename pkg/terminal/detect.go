// Package terminal inspects the terminal tickcard runs in: which emulator it
// is, how many colors it can show, whether mouse motion is reported and how
// large the window is. Detection reads environment variables and file
// descriptor state only; it never writes query sequences.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown Terminal = iota
	TermGhostty
	TermKitty
	TermWezTerm
	TermITerm2
	TermAlacritty
	TermGNOME // VTE-based, including Tilix
	TermVSCode
	TermTmux
	TermScreen
	TermLinuxConsole
	TermGeneric
)

var terminalNames = [...]string{
	TermUnknown:      "unknown",
	TermGhostty:      "ghostty",
	TermKitty:        "kitty",
	TermWezTerm:      "wezterm",
	TermITerm2:       "iterm2",
	TermAlacritty:    "alacritty",
	TermGNOME:        "vte",
	TermVSCode:       "vscode",
	TermTmux:         "tmux",
	TermScreen:       "screen",
	TermLinuxConsole: "linux",
	TermGeneric:      "generic",
}

// String returns the short name of the terminal.
func (t Terminal) String() string {
	if t >= 0 && int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// SupportsTrueColor reports whether the emulator renders 24-bit color.
func (t Terminal) SupportsTrueColor() bool {
	switch t {
	case TermGhostty, TermKitty, TermWezTerm, TermITerm2,
		TermAlacritty, TermGNOME, TermVSCode:
		return true
	default:
		return false
	}
}

// SupportsMouseMotion reports whether the emulator reports pointer motion
// without a pressed button. The fullscreen controls only reappear on
// motion, so terminals without it keep them visible.
func (t Terminal) SupportsMouseMotion() bool {
	switch t {
	case TermLinuxConsole:
		return false
	default:
		return true
	}
}

// Detect identifies the terminal emulator from environment variables,
// checking TERM_PROGRAM first, then TERM, then emulator-specific variables
// and finally multiplexers.
func Detect() Terminal {
	if tp := os.Getenv("TERM_PROGRAM"); tp != "" {
		switch strings.ToLower(tp) {
		case "ghostty":
			return TermGhostty
		case "kitty":
			return TermKitty
		case "wezterm":
			return TermWezTerm
		case "iterm.app":
			return TermITerm2
		case "vscode":
			return TermVSCode
		case "alacritty":
			return TermAlacritty
		case "tmux":
			return TermTmux
		}
	}

	switch term := os.Getenv("TERM"); {
	case term == "xterm-ghostty":
		return TermGhostty
	case term == "xterm-kitty":
		return TermKitty
	case strings.HasPrefix(term, "alacritty"):
		return TermAlacritty
	case term == "linux":
		return TermLinuxConsole
	case strings.HasPrefix(term, "screen") && os.Getenv("STY") != "":
		return TermScreen
	}

	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "":
		return TermKitty
	case os.Getenv("ITERM_SESSION_ID") != "", os.Getenv("LC_TERMINAL") == "iTerm2":
		return TermITerm2
	case os.Getenv("WEZTERM_EXECUTABLE") != "":
		return TermWezTerm
	case os.Getenv("VTE_VERSION") != "":
		return TermGNOME
	case os.Getenv("TMUX") != "":
		return TermTmux
	case os.Getenv("STY") != "":
		return TermScreen
	}
	return TermGeneric
}

func isSSH() bool {
	return os.Getenv("SSH_TTY") != "" ||
		os.Getenv("SSH_CONNECTION") != "" ||
		os.Getenv("SSH_CLIENT") != ""
}
