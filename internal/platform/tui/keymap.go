package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Stop       key.Binding
	Low        key.Binding
	Middle     key.Binding
	High       key.Binding
	Mute       key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop},
		{k.Low, k.Middle, k.High},
		{k.Mute, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "move right"),
		),
		Stop: key.NewBinding(
			key.WithKeys(" ", "space", "down", "s"),
			key.WithHelp("space/↓", "stop paddle"),
		),
		Low: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "preset low"),
		),
		Middle: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "preset middle"),
		),
		High: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "preset high"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "instructions"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
