package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/tickcard/pkg/clock"
	"gitlab.com/tinyland/lab/tickcard/pkg/components"
	"gitlab.com/tinyland/lab/tickcard/pkg/theme"
)

// Click zone ids.
const (
	zoneSettings   = "ctl-settings"
	zoneAddClock   = "ctl-add"
	zoneFullscreen = "ctl-fullscreen"
	zoneHelp       = "ctl-help"
	zoneClose      = "panel-close"
)

// chipLabelMin is the narrowest label a world clock chip shows in full.
const chipLabelMin = 12

func chipRemoveZone(id string) string { return "chip-remove:" + id }
func presetZone(name string) string   { return "preset:" + name }
func fieldZone(name string) string    { return "field:" + name }
func catalogZone(tz string) string    { return "catalog:" + tz }

// View renders the card.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	pal := theme.ResolvePalette(m.store.Snapshot(), m.opts.ColorDepth)

	sections := []string{m.viewCard(pal)}
	if chips := m.viewChips(pal); chips != "" {
		sections = append(sections, "", chips)
	}
	switch m.modal {
	case modalSettings:
		sections = append(sections, "", m.viewSettings(pal))
	case modalAddClock:
		sections = append(sections, "", m.viewAddClock(pal))
	}
	if m.vis.ControlsVisible() {
		sections = append(sections, "", m.viewControls(pal))
	}
	if m.statusMsg != "" {
		status := m.statusMsg
		if m.width > 0 {
			status = strings.Join(components.Wrap(status, m.width), "\n")
		}
		sections = append(sections, on(pal.Background, pal.Accent).Render(status))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 && m.height > 0 {
		body = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
			lipgloss.WithWhitespaceBackground(pal.Background))
	}
	return m.zones.Scan(body)
}

func on(bg, fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(bg).Foreground(fg)
}

// viewCard renders the main clock: big digits with period and seconds to
// their right, then weekday and date, then the optional place line.
func (m Model) viewCard(pal theme.Palette) string {
	face := clock.Format(m.now, m.ClockOptions())

	var digits string
	if m.width == 0 || components.BigTextWidth(face.Time)+8 <= m.width {
		rows := components.BigText(face.Time)
		side := make([]string, len(rows))
		side[0] = face.Period
		side[len(side)-1] = face.Seconds
		for i := range rows {
			rows[i] = pal.Style(pal.Clock).Render(rows[i]) +
				pal.Style(pal.Accent).Render(" "+components.PadRight(side[i], 2))
		}
		digits = strings.Join(rows, "\n")
	} else {
		t := face.Time
		if face.Period != "" {
			t += " " + face.Period
		}
		digits = pal.Style(pal.Clock).Bold(true).Render(t) +
			pal.Style(pal.Accent).Render(" "+face.Seconds)
	}

	lines := []string{
		digits,
		"",
		pal.Style(pal.Accent).Bold(true).Render(face.Weekday) +
			pal.Style(pal.Date).Render("  "+face.Date),
	}
	if m.opts.EnableLocationLookup && m.place != "" {
		lines = append(lines, pal.Style(pal.Muted).Render(m.place))
	}

	card := lipgloss.JoinVertical(lipgloss.Center, lines...)
	style := lipgloss.NewStyle().Background(pal.Surface).Padding(1, 4)
	if pal.Surface != pal.Background {
		style = style.Border(lipgloss.RoundedBorder()).
			BorderForeground(pal.Muted).
			BorderBackground(pal.Background)
	}
	return style.Render(card)
}

// viewChips renders the world clocks, wrapping to the terminal width.
func (m Model) viewChips(pal theme.Palette) string {
	entries := m.registry.Entries()
	if len(entries) == 0 {
		return ""
	}

	chipStyle := lipgloss.NewStyle().
		Background(pal.Surface).
		Padding(0, 1).
		MarginBackground(pal.Background).
		MarginRight(1)

	var chips []string
	for _, e := range entries {
		zt, err := clock.FormatZone(m.now, e.Timezone, m.opts.HourFormat)
		if err != nil {
			m.log.Warn("world clock zone failed", "timezone", e.Timezone, "error", err)
			continue
		}
		// The label row spans the time row, with the remove mark at its end.
		labelWidth := max(components.VisibleLen(zt.Time+" "+zt.Offset)-2, chipLabelMin)
		label := pal.Style(pal.Accent).Bold(true).Render(components.Fit(e.Label, labelWidth))
		body := pal.Style(pal.Clock).Render(zt.Time)
		offset := pal.Style(pal.Muted).Render(zt.Offset)
		remove := m.zones.Mark(chipRemoveZone(e.ID), pal.Style(pal.Muted).Render("×"))

		chips = append(chips, chipStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left,
				label+pal.Style(pal.Surface).Render(" ")+remove,
				body+pal.Style(pal.Surface).Render(" ")+offset,
			)))
	}
	return wrapRow(chips, m.width)
}

// wrapRow lays blocks out left to right and starts a new row when the next
// block would pass width. A width of zero disables wrapping.
func wrapRow(blocks []string, width int) string {
	var (
		rows []string
		row  []string
		used int
	)
	for _, b := range blocks {
		w := lipgloss.Width(b)
		if width > 0 && used > 0 && used+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, used = nil, 0
		}
		row = append(row, b)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m Model) viewControls(pal theme.Palette) string {
	button := lipgloss.NewStyle().
		Background(pal.Surface).
		Foreground(pal.Clock).
		Padding(0, 1).
		MarginBackground(pal.Background).
		MarginRight(1)

	fsLabel := "fullscreen"
	if m.vis.Fullscreen() {
		fsLabel = "exit fullscreen"
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top,
		m.zones.Mark(zoneSettings, button.Render("⚙ settings")),
		m.zones.Mark(zoneAddClock, button.Render("+ add clock")),
		m.zones.Mark(zoneFullscreen, button.Render("⛶ "+fsLabel)),
		m.zones.Mark(zoneHelp, button.Render("?")),
	)

	h := m.help
	h.Styles.ShortKey = on(pal.Background, pal.Accent)
	h.Styles.ShortDesc = on(pal.Background, pal.Muted)
	h.Styles.ShortSeparator = on(pal.Background, pal.Muted)
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc
	h.Styles.FullSeparator = h.Styles.ShortSeparator
	return lipgloss.JoinVertical(lipgloss.Center, bar, h.View(m.keys))
}

func (m Model) panel(pal theme.Palette, title string, body ...string) string {
	head := pal.Style(pal.Accent).Bold(true).Render(title) +
		pal.Style(pal.Surface).Render("   ") +
		m.zones.Mark(zoneClose, pal.Style(pal.Muted).Render("[esc]"))
	return lipgloss.NewStyle().
		Background(pal.Surface).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pal.Accent).
		BorderBackground(pal.Background).
		Padding(0, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{head, ""}, body...)...))
}

func (m Model) viewSettings(pal theme.Palette) string {
	p := m.settings
	current := m.store.PresetName()

	var presets []string
	for i, name := range p.presets {
		style := pal.Style(pal.Clock)
		label := " " + name + " "
		switch {
		case i == p.cursor:
			style = on(pal.Accent, pal.Surface).Bold(true)
		case strings.EqualFold(name, current):
			style = style.Underline(true)
		}
		presets = append(presets, m.zones.Mark(presetZone(name), style.Render(label)))
	}
	presetRow := wrapRow(presets, max(m.width-8, 0))

	var fields []string
	for i, f := range m.store.Fields() {
		value := m.store.Get(f)
		marker := "  "
		if i == p.field {
			marker = "› "
		}
		line := fmt.Sprintf("%s%-12s %s", marker, f, value)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(theme.Adapt(map[string]string{f: value}, m.opts.ColorDepth)[f])).Render("    ")
		row := m.zones.Mark(fieldZone(f), pal.Style(pal.Clock).Render(line)+pal.Style(pal.Surface).Render(" ")+swatch)
		fields = append(fields, row)
	}

	body := []string{presetRow, ""}
	body = append(body, fields...)
	if p.editing {
		body = append(body, "", p.input.View())
	}
	body = append(body, "", pal.Style(pal.Muted).Render("←/→ preset · enter apply · ↑/↓ field · e edit"))
	return m.panel(pal, "Theme · "+current, body...)
}

func (m Model) viewAddClock(pal theme.Palette) string {
	avail := m.registry.Available()
	if len(avail) == 0 {
		return m.panel(pal, "Add clock", pal.Style(pal.Muted).Render("every catalog zone is already shown"))
	}

	// Show a window of rows around the cursor.
	const window = 8
	start := 0
	if m.addClock.cursor >= window {
		start = m.addClock.cursor - window + 1
	}
	end := min(start+window, len(avail))

	var rows []string
	for i := start; i < end; i++ {
		ce := avail[i]
		off, _ := clock.UTCOffsetLabel(m.now, ce.Timezone)
		line := components.PadRight(components.TruncateWithTail(ce.Label, 16, "…"), 16) + " " + components.PadLeft(off, 8)
		style := pal.Style(pal.Clock)
		if i == m.addClock.cursor {
			style = on(pal.Accent, pal.Surface).Bold(true)
		}
		rows = append(rows, m.zones.Mark(catalogZone(ce.Timezone), style.Render(line)))
	}
	rows = append(rows, "", pal.Style(pal.Muted).Render(fmt.Sprintf("%d of %d · ↑/↓ move · enter add", m.addClock.cursor+1, len(avail))))
	return m.panel(pal, "Add clock", rows...)
}
