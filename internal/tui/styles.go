package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the viewer's lipgloss styles, built from theme colors
type Styles struct {
	Banner    lipgloss.Style
	Seat      lipgloss.Style
	SeatAct   lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Board     lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the viewer styles for the given theme colors
func DefaultStyles(highlight, redCard, blackCard string) Styles {
	return Styles{
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),

		Seat: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),

		SeatAct: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color(highlight)).
			Bold(true),

		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color(redCard)).
			Bold(true),

		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color(blackCard)).
			Bold(true),

		Board: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
