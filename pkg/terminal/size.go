package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// Size is the terminal window in character cells.
type Size struct {
	Cols int
	Rows int
}

// GetSize returns the window size from stdout, then stderr, then the
// COLUMNS and LINES variables, and finally 80x24.
func GetSize() Size {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if s, ok := sizeFromFd(fd); ok {
			return s
		}
	}
	return sizeFromEnv()
}

func sizeFromFd(fd uintptr) (Size, bool) {
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return Size{}, false
	}
	return Size{Cols: w, Rows: h}, true
}

func sizeFromEnv() Size {
	return Size{Cols: envInt("COLUMNS", 80), Rows: envInt("LINES", 24)}
}

// envInt reads a positive integer from name, or returns fallback.
func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
