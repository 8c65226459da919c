package tui

import "github.com/charmbracelet/lipgloss"

// Style holds the lipgloss styles for the menu view.
type Style struct {
	Title    lipgloss.Style
	Cursor   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
}

func DefaultStyle() *Style {
	return &Style{
		Title:    lipgloss.NewStyle().Bold(true),
		Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("170")),
		Item:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("170")),
	}
}
