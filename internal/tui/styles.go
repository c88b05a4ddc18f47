package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/moneywise/internal/ui"
)

// styles is the Lip Gloss palette for one theme.
type styles struct {
	title    lipgloss.Style
	success  lipgloss.Style
	danger   lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	help     lipgloss.Style
	border   lipgloss.Style
	ticker   lipgloss.Style
	result   lipgloss.Style
}

func newStyles(t ui.Theme) styles {
	fg, borderColor, accent := lipgloss.Color("235"), lipgloss.Color("8"), lipgloss.Color("#0984e3")
	success, danger := lipgloss.Color("#00b894"), lipgloss.Color("#d63031")
	if t.Name == ui.Dark {
		fg, borderColor, accent = lipgloss.Color("252"), lipgloss.Color("240"), lipgloss.Color("#74b9ff")
		success, danger = lipgloss.Color("#55efc4"), lipgloss.Color("#ff7675")
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(fg),
		success:  lipgloss.NewStyle().Foreground(success),
		danger:   lipgloss.NewStyle().Foreground(danger).Bold(true),
		accent:   lipgloss.NewStyle().Foreground(accent),
		muted:    lipgloss.NewStyle().Faint(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		help:     lipgloss.NewStyle().Faint(true),
		border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1),
		ticker: lipgloss.NewStyle().Foreground(accent),
		result: lipgloss.NewStyle().Bold(true).Foreground(accent),
	}
}

// panel frames inner with the theme border.
func (s styles) panel(inner string) string { return s.border.Render(inner) }
