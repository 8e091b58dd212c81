package livesearch

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles of the live search view.
type Styles struct {
	Title    lipgloss.Style
	Section  lipgloss.Style
	Item     lipgloss.Style
	Muted    lipgloss.Style
	Degraded lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B08D57")),
		Section:  lipgloss.NewStyle().Bold(true).Underline(true),
		Item:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Degraded: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
	}
}
