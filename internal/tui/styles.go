package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/arithmos/internal/ui"
)

var (
	headerStyle  lipgloss.Style
	titleStyle   lipgloss.Style
	dimStyle     lipgloss.Style
	promptStyle  lipgloss.Style
	inputStyle   lipgloss.Style
	opStyle      lipgloss.Style
	valueStyle   lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
)

func init() {
	initStyles()
}

// initStyles rebuilds the styles from the active ui theme. Run calls it
// again after the theme is chosen.
func initStyles() {
	t := ui.CurrentTUITheme()
	headerStyle = lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	dimStyle = lipgloss.NewStyle().Foreground(t.Dim)
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Success)
	inputStyle = lipgloss.NewStyle().Foreground(t.Text)
	opStyle = lipgloss.NewStyle().Foreground(t.Accent)
	valueStyle = lipgloss.NewStyle().Foreground(t.Success)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Error)
	warningStyle = lipgloss.NewStyle().Foreground(t.Warning)
}
