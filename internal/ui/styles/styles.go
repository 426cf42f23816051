// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	LabelColor     = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#54A0FF"} // Milestone labels
	CountColor     = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#CCCCCC"} // Day counts and interval words
	TextMutedColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Hints, help text

	// Semantic color names - Status
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Skipped milestones
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors

	// LabelStyle styles a milestone's label.
	LabelStyle = lipgloss.NewStyle().Bold(true).Foreground(LabelColor)

	// CountStyle styles the elapsed interval words.
	CountStyle = lipgloss.NewStyle().Foreground(CountColor)

	// MutedStyle styles secondary hints.
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// WarningStyle styles per-milestone skip notices.
	WarningStyle = lipgloss.NewStyle().Foreground(StatusWarningColor)

	// ErrorStyle styles fatal diagnostics.
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
)
