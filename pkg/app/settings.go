package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/tickcard/pkg/theme"
)

// settingsPanel is the theme editor: a preset strip and a field list whose
// entries can be edited through a text input.
type settingsPanel struct {
	presets []string
	cursor  int
	field   int
	editing bool
	input   textinput.Model
}

func newSettingsPanel() settingsPanel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 32
	ti.Width = 20
	return settingsPanel{input: ti}
}

// reset reloads the preset list and points the cursor at current.
func (p *settingsPanel) reset(presets []string, current string) {
	p.presets = presets
	p.cursor = 0
	for i, name := range presets {
		if strings.EqualFold(name, current) {
			p.cursor = i
			break
		}
	}
	p.field = 0
	p.stopEditing()
}

func (p *settingsPanel) stopEditing() {
	p.editing = false
	p.input.Reset()
	p.input.Blur()
}

func (m Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.settings
	if p.editing {
		switch {
		case key.Matches(msg, m.keys.Close):
			p.stopEditing()
			return m, nil
		case key.Matches(msg, m.keys.Select):
			return m.commitField()
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return m, cmd
	}

	fields := m.store.Fields()
	switch {
	case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Settings):
		return m.closeModal()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Left):
		if n := len(p.presets); n > 0 {
			p.cursor = (p.cursor - 1 + n) % n
		}
	case key.Matches(msg, m.keys.Right):
		if n := len(p.presets); n > 0 {
			p.cursor = (p.cursor + 1) % n
		}
	case key.Matches(msg, m.keys.Up):
		if p.field > 0 {
			p.field--
		}
	case key.Matches(msg, m.keys.Down):
		if p.field < len(fields)-1 {
			p.field++
		}
	case key.Matches(msg, m.keys.Select):
		if len(p.presets) > 0 {
			cmd := m.applyPreset(p.presets[p.cursor])
			return m, cmd
		}
	case key.Matches(msg, m.keys.Edit):
		cmd := m.startEditing(p.field)
		return m, cmd
	}
	return m, nil
}

func (m Model) clickSettings(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.inZone(zoneClose, msg) {
		return m.closeModal()
	}
	for i, name := range m.settings.presets {
		if m.inZone(presetZone(name), msg) {
			m.settings.cursor = i
			cmd := m.applyPreset(name)
			return m, cmd
		}
	}
	for i, f := range m.store.Fields() {
		if m.inZone(fieldZone(f), msg) {
			cmd := m.startEditing(i)
			return m, cmd
		}
	}
	return m, nil
}

// applyPreset replaces the whole color record. Rejected presets leave the
// record untouched and surface a status message.
func (m *Model) applyPreset(name string) tea.Cmd {
	p, ok := m.opts.Themes.LookupPreset(m.opts.Variant, name)
	if !ok {
		return m.setStatus(fmt.Sprintf("no preset %q", name))
	}
	if err := m.store.ApplyPreset(p); err != nil {
		m.log.Warn("preset rejected", "preset", name, "error", err)
		if errors.Is(err, theme.ErrIncompletePreset) {
			return m.setStatus(fmt.Sprintf("%s does not define every color", name))
		}
		return m.setStatus(err.Error())
	}
	m.log.Info("preset applied", "preset", name)
	return nil
}

func (m *Model) startEditing(field int) tea.Cmd {
	fields := m.store.Fields()
	if field < 0 || field >= len(fields) {
		return nil
	}
	p := &m.settings
	p.field = field
	p.editing = true
	p.input.Reset()
	p.input.Placeholder = m.store.Get(fields[field])
	return p.input.Focus()
}

func (m Model) commitField() (tea.Model, tea.Cmd) {
	p := &m.settings
	value := strings.TrimSpace(p.input.Value())
	p.stopEditing()
	if value == "" {
		return m, nil
	}

	name := m.store.Fields()[p.field]
	if err := m.store.SetField(name, value); err != nil {
		m.log.Warn("color edit rejected", "field", name, "error", err)
		cmd := m.setStatus(err.Error())
		return m, cmd
	}
	m.log.Debug("color edited", "field", name, "value", value)
	return m, nil
}
