package components

import "github.com/charmbracelet/lipgloss"

// Styles holds all shared Lipgloss styles used across TUI screens.
type Styles struct {
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Body         lipgloss.Style
	Muted        lipgloss.Style
	Success      lipgloss.Style
	Error        lipgloss.Style
	Warning      lipgloss.Style
	Panel        lipgloss.Style
	SelectedItem lipgloss.Style
	Footer       lipgloss.Style
	AccentColor  lipgloss.AdaptiveColor
	RadioOn      string
	RadioOff     string
	ToggleOn     string
	ToggleOff    string
	ScoreFull    lipgloss.Style
	ScoreEmpty   lipgloss.Style
}

// DefaultStyles returns a Styles populated with the printscout color palette.
// Uses AdaptiveColor to work in both light and dark terminals.
func DefaultStyles() Styles {
	accent := lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FB923C"}
	teal := lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	success := lipgloss.AdaptiveColor{Light: "#16A34A", Dark: "#4ADE80"}
	errColor := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	warn := lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(teal),

		Body: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Success: lipgloss.NewStyle().
			Foreground(success),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(errColor),

		Warning: lipgloss.NewStyle().
			Foreground(warn),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),

		SelectedItem: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(muted),

		AccentColor: accent,

		RadioOn:   "(o)",
		RadioOff:  "( )",
		ToggleOn:  "[x]",
		ToggleOff: "[ ]",

		ScoreFull: lipgloss.NewStyle().
			Foreground(accent),

		ScoreEmpty: lipgloss.NewStyle().
			Foreground(muted),
	}
}
