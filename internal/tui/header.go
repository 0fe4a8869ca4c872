package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/arithmos/internal/format"
	"github.com/agbru/arithmos/internal/metrics"
)

// HeaderModel renders the title bar.
type HeaderModel struct {
	version  string
	width    int
	heap     uint64
	lastTime time.Duration
	count    int
}

func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version}
}

func (h *HeaderModel) SetWidth(w int) { h.width = w }

// SetHeap records the heap size shown on the right.
func (h *HeaderModel) SetHeap(bytes uint64) { h.heap = bytes }

// Evaluated records a finished evaluation.
func (h *HeaderModel) Evaluated(d time.Duration) {
	h.lastTime = d
	h.count++
}

func (h HeaderModel) View() string {
	title := "arithmos"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	left := titleStyle.Render(title)
	if h.count > 0 {
		left += dimStyle.Render(fmt.Sprintf(" | %d evaluated, last %s", h.count, format.FormatExecutionDuration(h.lastTime)))
	}
	right := dimStyle.Render("heap " + metrics.FormatBytes(h.heap))

	gap := max(h.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return headerStyle.Render(left + spaces(gap) + right)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}
