package calculator

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the calculator
type KeyMap struct {
	Quit key.Binding

	Less key.Binding
	More key.Binding

	PrevTier key.Binding
	NextTier key.Binding

	Refresh key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Less: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/h", "multiplier -1"),
		),
		More: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→/l", "multiplier +1"),
		),
		PrevTier: key.NewBinding(
			key.WithKeys("up", "k", "shift+tab"),
			key.WithHelp("↑/k", "previous package"),
		),
		NextTier: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("↓/j", "next package"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload prices"),
		),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Less, k.More, k.PrevTier, k.NextTier, k.Refresh, k.Quit}
}
