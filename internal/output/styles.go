package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. These are the single source of truth; never use inline
// lipgloss.Color literals.
var (
	// ColorRed is used for error labels and error details.
	ColorRed = lipgloss.Color("196")

	// ColorBlue is used for identifiable nouns: project names, commands, flags.
	ColorBlue = lipgloss.Color("39")

	// ColorYellow is used for files, templates and list bullets.
	ColorYellow = lipgloss.Color("220")

	// ColorGreen is used for success lines.
	ColorGreen = lipgloss.Color("82")
)

// Semantic styles.
var (
	// StyleError styles the ERROR label and error text.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleNoun styles project names, commands and flags.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorBlue)

	// StyleFile styles file names, template names and bullets.
	StyleFile = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleSuccess styles success lines.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen)

	// StylePath styles filesystem paths.
	StylePath = lipgloss.NewStyle().Underline(true)
)

// Red renders s with StyleError.
func Red(s string) string { return StyleError.Render(s) }

// Blue renders s with StyleNoun.
func Blue(s string) string { return StyleNoun.Render(s) }

// Yellow renders s with StyleFile.
func Yellow(s string) string { return StyleFile.Render(s) }

// Green renders s with StyleSuccess.
func Green(s string) string { return StyleSuccess.Render(s) }

// Underline renders s with StylePath.
func Underline(s string) string { return StylePath.Render(s) }
