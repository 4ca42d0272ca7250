package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the set of render colors derived from a store snapshot. Classic
// and card records both resolve to it so the view has one shape to draw.
type Palette struct {
	Background lipgloss.Color
	Surface    lipgloss.Color
	Clock      lipgloss.Color
	Date       lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
}

// ResolvePalette maps field values onto render roles. Missing roles fall back
// to a related field: card text drives clock, date and accent; classic date
// doubles as muted. depth is the terminal color depth passed to Adapt.
func ResolvePalette(colors map[string]string, depth int) Palette {
	c := Adapt(colors, depth)

	pick := func(names ...string) lipgloss.Color {
		for _, n := range names {
			if v := c[n]; v != "" {
				return lipgloss.Color(v)
			}
		}
		return lipgloss.Color("")
	}

	return Palette{
		Background: pick("background"),
		Surface:    pick("card", "background"),
		Clock:      pick("clock", "text"),
		Date:       pick("date", "text", "clock"),
		Accent:     pick("accent", "text", "clock"),
		Muted:      pick("muted", "date", "text"),
	}
}

// Style returns a foreground style in role fg over the palette surface.
func (p Palette) Style(fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(fg).Background(p.Surface)
}
