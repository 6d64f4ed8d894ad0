package theme

import "github.com/charmbracelet/lipgloss"

var (
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Peach    = lipgloss.Color("#fab387")

	Clock    = lipgloss.NewStyle().Foreground(Text).Bold(true)
	Progress = lipgloss.NewStyle().Foreground(Lavender)
	Hint     = lipgloss.NewStyle().Foreground(Subtext0)
	Status   = lipgloss.NewStyle().Foreground(Peach)
)
