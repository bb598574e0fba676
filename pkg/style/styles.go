package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/diinject/pkg/container"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	SingletonStyle = lipgloss.NewStyle().
			Foreground(SingletonColor)

	TransientStyle = lipgloss.NewStyle().
			Foreground(TransientColor)
)

// Heading renders a section title
func Heading(s string) string { return TitleStyle.Render(s) }

// Notice renders a warning line, e.g. for an unresolved service
func Notice(s string) string { return WarningStyle.Render(s) }

// Success renders a positive result line
func Success(s string) string { return SuccessStyle.Render(s) }

// Muted renders secondary text
func Muted(s string) string { return MutedStyle.Render(s) }

// ScopeLabel renders a scope name in its color
func ScopeLabel(s container.Scope) string {
	switch s {
	case container.Singleton:
		return SingletonStyle.Render(s.String())
	case container.Transient:
		return TransientStyle.Render(s.String())
	default:
		return s.String()
	}
}
