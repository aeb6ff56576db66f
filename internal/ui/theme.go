package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/resurgence-tools/edjb/internal/defs"
	"github.com/resurgence-tools/edjb/pkg/models"
)

// Palette holds the hex colors of a theme.
type Palette struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// Theme is the rendering style derived from the user settings.
type Theme struct {
	Background   models.Background
	HighContrast bool
	NoColor      bool
	Colors       Palette
}

var palettes = map[models.Background]Palette{
	models.BackgroundForge: {
		Primary: "#DA7756", Secondary: "#7C3AED", Success: "#10B981", Warning: "#F59E0B",
		Error: "#EF4444", Text: "#E5E7EB", Muted: "#9CA3AF", Border: "#4B5563",
	},
	models.BackgroundC322: {
		Primary: "#60A5FA", Secondary: "#22D3EE", Success: "#34D399", Warning: "#FBBF24",
		Error: "#F87171", Text: "#E0F2FE", Muted: "#94A3B8", Border: "#334155",
	},
	models.BackgroundHighCharity: {
		Primary: "#A78BFA", Secondary: "#F472B6", Success: "#4ADE80", Warning: "#FACC15",
		Error: "#FB7185", Text: "#F5F3FF", Muted: "#A1A1AA", Border: "#52525B",
	},
}

var highContrast = Palette{
	Primary: "#FFD700", Secondary: "#00FFFF", Success: "#00FF00", Warning: "#FFFF00",
	Error: "#FF3030", Text: "#FFFFFF", Muted: "#FFFFFF", Border: "#FFFFFF",
}

// NewTheme builds the theme for the given settings. Unknown backgrounds
// fall back to forge.
func NewTheme(s models.Settings) *Theme {
	bg := s.Background
	p, ok := palettes[bg]
	if !ok {
		bg = models.BackgroundForge
		p = palettes[bg]
	}
	if s.HighContrastText {
		p = highContrast
	}
	return &Theme{
		Background:   bg,
		HighContrast: s.HighContrastText,
		NoColor:      NoColorRequested(),
		Colors:       p,
	}
}

// NoColorRequested reports whether NO_COLOR or EDJB_NO_COLOR is set.
func NoColorRequested() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv(defs.EnvNoColor) != ""
}

// style returns a foreground style for hex, or a plain style without color.
func (t *Theme) style(hex string) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// Primary renders s in the primary color.
func (t *Theme) Primary(s string) string { return t.style(t.Colors.Primary).Render(s) }

// Muted renders s in the muted color.
func (t *Theme) Muted(s string) string { return t.style(t.Colors.Muted).Render(s) }

// Success renders s in the success color.
func (t *Theme) Success(s string) string { return t.style(t.Colors.Success).Render(s) }

// Warn renders s in the warning color.
func (t *Theme) Warn(s string) string { return t.style(t.Colors.Warning).Render(s) }

// Error renders s in the error color.
func (t *Theme) Error(s string) string { return t.style(t.Colors.Error).Render(s) }
