package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	stepColor  = lipgloss.Color("#10B981") // Green
	warnColor  = lipgloss.Color("#F59E0B") // Amber
	errorColor = lipgloss.Color("#EF4444") // Red
	mutedColor = lipgloss.Color("#6B7280") // Gray

	// StepStyle renders the prefix of progress messages.
	StepStyle = lipgloss.NewStyle().
			Foreground(stepColor).
			Bold(true)

	// WarnStyle renders the prefix of warnings.
	WarnStyle = lipgloss.NewStyle().
			Foreground(warnColor).
			Bold(true)

	// ErrorStyle renders the prefix of errors.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// MutedStyle renders secondary text such as dependency descriptions.
	MutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// TitleStyle renders prompt titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true)
)
