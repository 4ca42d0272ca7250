package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// addClockPanel lists the catalog zones not yet shown.
type addClockPanel struct {
	cursor int
}

func (m Model) updateAddClock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	avail := m.registry.Available()
	if m.addClock.cursor >= len(avail) {
		m.addClock.cursor = max(len(avail)-1, 0)
	}

	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.AddClock):
		return m.closeModal()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		if m.addClock.cursor > 0 {
			m.addClock.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.addClock.cursor < len(avail)-1 {
			m.addClock.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(avail) == 0 {
			cmd := m.setStatus("every catalog zone is already shown")
			return m, cmd
		}
		return m.addWorldClock(avail[m.addClock.cursor])
	}
	return m, nil
}

func (m Model) clickAddClock(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.inZone(zoneClose, msg) {
		return m.closeModal()
	}
	for _, ce := range m.registry.Available() {
		if m.inZone(catalogZone(ce.Timezone), msg) {
			return m.addWorldClock(ce)
		}
	}
	return m, nil
}
