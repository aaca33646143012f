package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tagview/internal/config"
	"github.com/jask/tagview/internal/history"
)

// Theme maps user color preferences onto the render styles the viewer uses.
type Theme struct {
	Text     lipgloss.Color
	Added    lipgloss.Color
	Deleted  lipgloss.Color
	Modified lipgloss.Color

	header    lipgloss.Style
	status    lipgloss.Style
	statusErr lipgloss.Style
	muted     lipgloss.Style
}

// NewTheme builds a theme from color preferences.
func NewTheme(colors config.ColorConfig) Theme {
	t := Theme{
		Text:     lipgloss.Color(colors.Text),
		Added:    lipgloss.Color(colors.Added),
		Deleted:  lipgloss.Color(colors.Deleted),
		Modified: lipgloss.Color(colors.Modified),
	}
	t.header = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	t.status = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	t.statusErr = lipgloss.NewStyle().Foreground(t.Deleted)
	t.muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	return t
}

// RowStyle returns the style for one comparison row state.
func (t Theme) RowStyle(state history.DiffState) lipgloss.Style {
	switch state {
	case history.Added:
		return lipgloss.NewStyle().Foreground(t.Added)
	case history.Deleted:
		return lipgloss.NewStyle().Foreground(t.Deleted)
	case history.Modified:
		return lipgloss.NewStyle().Foreground(t.Modified)
	default:
		return lipgloss.NewStyle().Foreground(t.Text)
	}
}
