package termtest

import "gitlab.com/tinyland/lab/tickcard/pkg/terminal"

func ttGhosttyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Ghostty",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "ghostty",
			"TERM":         "xterm-ghostty",
			"COLORTERM":    "truecolor",
		},
		Term:        terminal.TermGhostty,
		Cols:        160,
		Rows:        48,
		ColorDepth:  24,
		MouseMotion: true,
	}
}

func ttKittyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Kitty",
		EnvVars: map[string]string{
			"TERM":            "xterm-kitty",
			"KITTY_WINDOW_ID": "1",
		},
		Term:        terminal.TermKitty,
		Cols:        120,
		Rows:        40,
		ColorDepth:  24,
		MouseMotion: true,
	}
}

func ttITerm2Profile() TerminalProfile {
	return TerminalProfile{
		Name: "iTerm2",
		EnvVars: map[string]string{
			"TERM_PROGRAM":     "iTerm.app",
			"TERM":             "xterm-256color",
			"ITERM_SESSION_ID": "w0t0p0:ABCDEF-1234",
		},
		Term:        terminal.TermITerm2,
		Cols:        100,
		Rows:        30,
		ColorDepth:  24,
		MouseMotion: true,
	}
}

func ttWezTermProfile() TerminalProfile {
	return TerminalProfile{
		Name: "WezTerm",
		EnvVars: map[string]string{
			"TERM_PROGRAM":       "WezTerm",
			"TERM":               "xterm-256color",
			"WEZTERM_EXECUTABLE": "/usr/bin/wezterm-gui",
		},
		Term:        terminal.TermWezTerm,
		Cols:        120,
		Rows:        36,
		ColorDepth:  24,
		MouseMotion: true,
	}
}

// VTE terminals are detected from VTE_VERSION alone.
func ttGNOMEProfile() TerminalProfile {
	return TerminalProfile{
		Name: "GNOME Terminal",
		EnvVars: map[string]string{
			"TERM":        "xterm-256color",
			"VTE_VERSION": "7600",
		},
		Term:        terminal.TermGNOME,
		Cols:        80,
		Rows:        24,
		ColorDepth:  24,
		MouseMotion: true,
	}
}

func ttAlacrittyProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Alacritty",
		EnvVars: map[string]string{
			"TERM": "alacritty",
		},
		Term:        terminal.TermAlacritty,
		Cols:        100,
		Rows:        30,
		ColorDepth:  24,
		MouseMotion: true,
	}
}

// Apple Terminal has no true color and sets nothing detection recognizes.
func ttAppleTerminalProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Apple Terminal",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "Apple_Terminal",
			"TERM":         "xterm-256color",
		},
		Term:        terminal.TermGeneric,
		Cols:        80,
		Rows:        24,
		ColorDepth:  8,
		MouseMotion: true,
	}
}

func ttTmuxProfile() TerminalProfile {
	return TerminalProfile{
		Name: "tmux",
		EnvVars: map[string]string{
			"TERM_PROGRAM": "tmux",
			"TERM":         "screen-256color",
			"TMUX":         "/tmp/tmux-501/default,12345,0",
		},
		Term:        terminal.TermTmux,
		Cols:        80,
		Rows:        24,
		ColorDepth:  8,
		MouseMotion: true,
	}
}

// The Linux console reports clicks but not hover, with the 16-color palette.
func ttLinuxConsoleProfile() TerminalProfile {
	return TerminalProfile{
		Name: "Linux console",
		EnvVars: map[string]string{
			"TERM": "linux",
		},
		Term:        terminal.TermLinuxConsole,
		Cols:        80,
		Rows:        25,
		ColorDepth:  4,
		MouseMotion: false,
	}
}
