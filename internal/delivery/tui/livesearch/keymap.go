package livesearch

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the live search key bindings.
type KeyMap struct {
	Quit   key.Binding
	Toggle key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "العربية / English"),
		),
	}
}
