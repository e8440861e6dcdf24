// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/samediff/internal/core/domain"
)

// Theme is the colour palette of the TUI.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
	Bar        lipgloss.Color

	// Bands colours similarity scores, indexed by domain.SimilarityBand.
	Bands [domain.BandCount]lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"),
		Secondary:  lipgloss.Color("#06B6D4"),
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Warning:    lipgloss.Color("#F9E2AF"),
		Error:      lipgloss.Color("#F38BA8"),
		Border:     lipgloss.Color("#45475A"),
		Bar:        lipgloss.Color("#181825"),
		Bands: [domain.BandCount]lipgloss.Color{
			domain.BandBelow50: "#6C7086",
			domain.Band50To70:  "#F38BA8",
			domain.Band70To80:  "#F9E2AF",
			domain.Band80To90:  "#89DCEB",
			domain.Band90To100: "#A6E3A1",
		},
	}
}

// Styles holds the lipgloss styles derived from a Theme.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style

	// StatusBar frames the bottom line of the app.
	StatusBar lipgloss.Style

	// Pane frames the focused section of a report.
	Pane lipgloss.Style

	bands [domain.BandCount]lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	s := &Styles{
		theme:    theme,
		Title:    fg(theme.Primary).Bold(true),
		Subtitle: fg(theme.Secondary).Bold(true),
		Normal:   fg(theme.Foreground),
		Muted:    fg(theme.Muted),
		Selected: fg(theme.Foreground).Background(theme.Primary).Bold(true),
		Warning:  fg(theme.Warning),
		Error:    fg(theme.Error),
		Help:     fg(theme.Muted),

		StatusBar: fg(theme.Muted).Background(theme.Bar).Padding(0, 1),

		Pane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),
	}

	for b, c := range theme.Bands {
		s.bands[b] = fg(c)
	}
	s.bands[domain.Band90To100] = s.bands[domain.Band90To100].Bold(true)

	return s
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Band returns the style for a similarity band.
func (s *Styles) Band(b domain.SimilarityBand) lipgloss.Style {
	if b < 0 || int(b) >= domain.BandCount {
		return s.Normal
	}
	return s.bands[b]
}

// Score returns the style for a similarity score.
func (s *Styles) Score(score float64) lipgloss.Style {
	return s.Band(domain.BandFor(score))
}
