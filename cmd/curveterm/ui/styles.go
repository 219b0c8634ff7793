// Package ui provides the visual styling for curveterm output, both the
// plain chart rendering and the interactive editor.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"curveterm/internal/chart"
)

var (
	// Light mode colors (default)
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#101F38")
	LightAccent     = lipgloss.Color("#8BC34A")
	LightMuted      = lipgloss.Color("#8a93a1")

	// Dark mode colors
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#8BC34A")
	DarkAccent     = lipgloss.Color("#2196F3")
	DarkMuted      = lipgloss.Color("#5a6678")

	// Semantic colors (same in both modes)
	Success = lipgloss.Color("#8BC34A")
	Warning = lipgloss.Color("#FFC107")
	Danger  = lipgloss.Color("#e53935")
	Info    = lipgloss.Color("#2196F3")
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		IsDark:     true,
	}
}

// ThemeByName resolves a configured theme name; "auto" detects from the
// terminal environment.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// DetectTheme guesses light or dark mode from the terminal environment.
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; low background indexes are dark.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}
	if os.Getenv("CURVETERM_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds the styled components used across commands.
type Styles struct {
	Theme Theme

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Layout
	Header lipgloss.Style
	Footer lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Success: lipgloss.NewStyle().Foreground(Success),
		Error:   lipgloss.NewStyle().Foreground(Danger),
		Warning: lipgloss.NewStyle().Foreground(Warning),
		Info:    lipgloss.NewStyle().Foreground(Info),

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),
	}
}

// DefaultStyles creates styles with the auto-detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// ChartPalette maps the theme onto the chart decorators: the curve itself,
// marker annotations, and zone bands.
type ChartPalette struct {
	Series chart.Decorator
	Marker chart.Decorator
	Zone   chart.Decorator
}

// Palette derives chart decorators from the styles. With color disabled all
// decorators pass text through untouched.
func (s Styles) Palette(noColor bool) ChartPalette {
	if noColor {
		return ChartPalette{
			Series: chart.NoColor,
			Marker: chart.NoColor,
			Zone:   chart.NoColor,
		}
	}
	return ChartPalette{
		Series: chart.Styled(s.Success),
		Marker: chart.Styled(s.Warning),
		Zone:   chart.Styled(s.Muted),
	}
}
