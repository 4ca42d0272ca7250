package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	Settings    key.Binding
	AddClock    key.Binding
	Fullscreen  key.Binding
	RemoveClock key.Binding
	Help        key.Binding
	Close       key.Binding

	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Edit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Settings:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		AddClock:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add clock")),
		Fullscreen:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fullscreen")),
		RemoveClock: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove last clock")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous preset")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next preset")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit color")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Settings, k.AddClock, k.Fullscreen, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Settings, k.AddClock, k.RemoveClock, k.Fullscreen},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Edit, k.Close},
		{k.Help, k.Quit},
	}
}
