package views

import (
	"github.com/charmbracelet/lipgloss"

	"slidereel/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Arrow       lipgloss.Style
	DotActive   lipgloss.Style
	DotInactive lipgloss.Style
	Counter     lipgloss.Style
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	HelpBox     lipgloss.Style
	HelpTitle   lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	Backdrop    lipgloss.Style
	Empty       lipgloss.Style

	// Foreground and Background are the theme's raw colours, for blending
	Foreground string
	Background string
}

// NewStyles creates styles from the theme colours
func NewStyles(theme config.ThemeSettings) *Styles {
	primary := lipgloss.Color(theme.Primary)
	secondary := lipgloss.Color(theme.Secondary)
	accent := lipgloss.Color(theme.Accent)
	fg := lipgloss.Color(theme.Foreground)

	return &Styles{
		Arrow:       lipgloss.NewStyle().Bold(true).Foreground(primary),
		DotActive:   lipgloss.NewStyle().Foreground(accent),
		DotInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Counter:     lipgloss.NewStyle().Foreground(secondary),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(primary),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(accent),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("#CF6679")),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondary).
			Padding(1, 2),
		HelpTitle: lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1),
		HelpKey:   lipgloss.NewStyle().Foreground(accent),
		HelpDesc:  lipgloss.NewStyle().Foreground(fg),
		Backdrop:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Empty:     lipgloss.NewStyle().Faint(true).Italic(true),

		Foreground: theme.Foreground,
		Background: theme.Background,
	}
}
