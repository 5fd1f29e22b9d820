package render

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	mutedColor = lipgloss.Color("#6B7280") // Gray
	errorColor = lipgloss.Color("#EF4444") // Red
)

// Styles for table output and diagnostics.
var (
	// labelStyle for field labels in table output.
	labelStyle = lipgloss.NewStyle().Foreground(mutedColor)

	// ErrorStyle for fatal diagnostic text on TTYs.
	ErrorStyle = lipgloss.NewStyle().Foreground(errorColor)
)
