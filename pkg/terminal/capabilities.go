package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities summarizes what the current session can display.
type Capabilities struct {
	Term Terminal
	Size Size
	// Interactive is true when stdout is a terminal, which the alternate
	// screen and mouse reporting both need.
	Interactive bool
	// ColorDepth is 24 for true color, 8 for 256 colors, 4 for the ANSI
	// palette and 1 when color is unavailable.
	ColorDepth int
	// MouseMotion is true when hover events can wake the controls.
	MouseMotion bool
	SSH         bool
	Mux         bool
}

var (
	cached     *Capabilities
	detectOnce sync.Once
)

// DetectCapabilities inspects the session once and caches the result.
func DetectCapabilities() *Capabilities {
	detectOnce.Do(func() {
		cached = Inspect()
	})
	return cached
}

// Inspect inspects the session without consulting the cache.
func Inspect() *Capabilities {
	t := Detect()
	fd := os.Stdout.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	depth := DepthForProfile(termenv.NewOutput(os.Stdout).Profile)
	if t.SupportsTrueColor() || colorTermTrue() {
		depth = 24
	}
	if !interactive || os.Getenv("NO_COLOR") != "" {
		depth = 1
	}

	return &Capabilities{
		Term:        t,
		Size:        GetSize(),
		Interactive: interactive,
		ColorDepth:  depth,
		MouseMotion: interactive && t.SupportsMouseMotion(),
		SSH:         isSSH(),
		Mux:         os.Getenv("TMUX") != "" || os.Getenv("STY") != "",
	}
}

// DepthForProfile maps a termenv color profile to a depth in bits.
func DepthForProfile(p termenv.Profile) int {
	switch p {
	case termenv.TrueColor:
		return 24
	case termenv.ANSI256:
		return 8
	case termenv.ANSI:
		return 4
	default:
		return 1
	}
}

func colorTermTrue() bool {
	ct := os.Getenv("COLORTERM")
	return ct == "truecolor" || ct == "24bit"
}
