package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level is the severity of a Notice.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarn
	LevelError
)

// Notice is a dismissible message shown to the user.
type Notice struct {
	Level   Level
	Title   string
	Details []string
}

func (t *Theme) cardStyle() lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if !t.NoColor {
		s = s.BorderForeground(lipgloss.Color(t.Colors.Border))
	}
	return s
}

// Card renders content inside a rounded border box with a styled title.
func (t *Theme) Card(title, content string) string {
	body := t.style(t.Colors.Primary).Bold(true).Render(title)
	if content != "" {
		body += "\n\n" + content
	}
	return t.cardStyle().Render(body)
}

// SuccessCard renders a success message inside a rounded border card.
func (t *Theme) SuccessCard(title string, details ...string) string {
	return t.iconCard(t.Success("✓"), title, details)
}

// WarnCard renders a warning inside a rounded border card.
func (t *Theme) WarnCard(title string, details ...string) string {
	return t.iconCard(t.Warn("!"), title, details)
}

// ErrorCard renders an error inside a rounded border card.
func (t *Theme) ErrorCard(title string, details ...string) string {
	return t.iconCard(t.Error("✗"), title, details)
}

// Render renders a Notice with the card matching its level.
func (t *Theme) Render(n Notice) string {
	switch n.Level {
	case LevelSuccess:
		return t.SuccessCard(n.Title, n.Details...)
	case LevelWarn:
		return t.WarnCard(n.Title, n.Details...)
	case LevelError:
		return t.ErrorCard(n.Title, n.Details...)
	default:
		return t.Card(n.Title, strings.Join(n.Details, "\n"))
	}
}

func (t *Theme) iconCard(icon, title string, details []string) string {
	var body strings.Builder
	body.WriteString(icon + " " + title)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return t.cardStyle().Render(body.String())
}
