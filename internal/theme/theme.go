// Package theme provides color themes for toast rendering.
package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// DefaultThemeName is the name of the built-in theme.
const DefaultThemeName = "default"

// Theme holds the colors used to render toasts. Accent colors are looked up
// by semantic role ("info", "success", "warning", "error").
type Theme struct {
	Name string

	Border     lipgloss.Color // card border
	Background lipgloss.Color // card background
	Title      lipgloss.Color // title line
	Body       lipgloss.Color // content text
	Muted      lipgloss.Color // close affordance, secondary text

	accents map[string]lipgloss.Color
}

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{
		Name:       DefaultThemeName,
		Border:     lipgloss.Color("#374151"),
		Background: lipgloss.Color("#161B22"),
		Title:      lipgloss.Color("#E5E7EB"),
		Body:       lipgloss.Color("#9CA3AF"),
		Muted:      lipgloss.Color("#4B5563"),
		accents: map[string]lipgloss.Color{
			"info":    lipgloss.Color("#3B82F6"),
			"success": lipgloss.Color("#10B981"),
			"warning": lipgloss.Color("#F59E0B"),
			"error":   lipgloss.Color("#EF4444"),
		},
	}
}

// Accent returns the accent color for a semantic role. Unknown roles fall
// back to the info accent.
func (t *Theme) Accent(role string) lipgloss.Color {
	if c, ok := t.accents[role]; ok {
		return c
	}
	return t.accents["info"]
}

// SetAccent overrides the accent color for a semantic role.
func (t *Theme) SetAccent(role string, c lipgloss.Color) {
	if t.accents == nil {
		t.accents = make(map[string]lipgloss.Color)
	}
	t.accents[role] = c
}
