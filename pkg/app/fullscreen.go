package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrFullscreenRequestFailed is reported when the alternate screen cannot
// be entered or left, typically because output is not a terminal.
var ErrFullscreenRequestFailed = errors.New("app: fullscreen request failed")

// toggleFullscreen asks the terminal for the opposite of the confirmed
// state. The visibility machine only moves once the change is confirmed.
func (m Model) toggleFullscreen() tea.Cmd {
	return m.requestFullscreen(m.vis.RequestToggle())
}

// requestFullscreen switches the alternate screen and confirms the switch
// with a FullscreenChangedEvent delivered after the screen command ran.
func (m Model) requestFullscreen(on bool) tea.Cmd {
	if !m.opts.CanFullscreen() {
		err := fmt.Errorf("%w: output is not a terminal", ErrFullscreenRequestFailed)
		return func() tea.Msg {
			return FullscreenRequestFailedEvent{Want: on, Err: err}
		}
	}

	screen := tea.ExitAltScreen
	if on {
		screen = tea.EnterAltScreen
	}
	return tea.Sequence(screen, func() tea.Msg {
		return FullscreenChangedEvent{On: on}
	})
}
