package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by the keypad view.
type Styles struct {
	Frame   lipgloss.Style
	Display lipgloss.Style
	Error   lipgloss.Style
	Status  lipgloss.Style
	Key     lipgloss.Style
	Help    lipgloss.Style
}

// DefaultStyles returns the standard keypad palette.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1),

		Display: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true).
			Align(lipgloss.Right),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87")).
			Bold(true).
			Align(lipgloss.Right),

		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true),

		Key: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
