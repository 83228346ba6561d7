// Package style holds the terminal styles shared by ruleset commands and
// decides whether output gets styled at all.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// IDStyle renders canonical module identifiers.
	IDStyle = lipgloss.NewStyle().
		Foreground(PrimaryColor)

	DirectStyle = lipgloss.NewStyle().
			Foreground(DirectColor)

	PrefixedStyle = lipgloss.NewStyle().
			Foreground(PrefixedColor)
)

// Styler applies styles only when enabled, so the same rendering code serves
// terminals and pipes.
type Styler struct {
	enabled bool
}

func NewStyler(enabled bool) Styler {
	return Styler{enabled: enabled}
}

func (s Styler) Enabled() bool {
	return s.enabled
}

// Render applies st to text when styling is on.
func (s Styler) Render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

// Strategy picks the style for a resolution strategy name.
func Strategy(name string) lipgloss.Style {
	switch name {
	case "direct", "suffixed":
		return DirectStyle
	default:
		return PrefixedStyle
	}
}
