package gallery

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Disable  key.Binding
	Style    key.Binding
	Nightly  key.Binding
	Language key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Disable: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle disabled"),
		),
		Style: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next style"),
		),
		Nightly: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "toggle nightly"),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "next language"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Disable, k.Style, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Disable, k.Style, k.Nightly, k.Language},
		{k.Help, k.Quit},
	}
}
