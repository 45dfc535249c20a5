package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the styles used by the outline view. Styles are built
// from a renderer so tests can use a detached one.
type Theme struct {
	Renderer *lipgloss.Renderer

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor

	Selected  lipgloss.Style
	StatusBar lipgloss.Style
	Hint      lipgloss.Style
}

// DefaultTheme returns the dark theme.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer:  r,
		Primary:   lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#BD93F9"},
		Secondary: lipgloss.AdaptiveColor{Light: "#F1A208", Dark: "#F1FA8C"},
		Muted:     lipgloss.AdaptiveColor{Light: "#9A9A9A", Dark: "#6272A4"},
		Highlight: lipgloss.AdaptiveColor{Light: "#0087D7", Dark: "#8BE9FD"},
	}
	t.Selected = r.NewStyle().Reverse(true).Bold(true)
	t.StatusBar = r.NewStyle().Foreground(t.Secondary)
	t.Hint = r.NewStyle().Foreground(t.Muted)
	return t
}

// LightTheme returns a theme tuned for light terminal backgrounds.
func LightTheme(r *lipgloss.Renderer) Theme {
	t := DefaultTheme(r)
	t.Primary = lipgloss.AdaptiveColor{Light: "#5F00AF", Dark: "#5F00AF"}
	t.Muted = lipgloss.AdaptiveColor{Light: "#767676", Dark: "#767676"}
	return t
}

// ThemeByName maps a config theme name to a theme, defaulting to dark.
func ThemeByName(name string, r *lipgloss.Renderer) Theme {
	if name == "light" {
		return LightTheme(r)
	}
	return DefaultTheme(r)
}
