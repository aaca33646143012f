package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Row is one table line plus the style applied to its cells.
type Row struct {
	Cells []string
	Style lipgloss.Style
}

// Table renders a column header and a window of rows starting at Offset.
// Selection and offset are owned by the caller so two tables can share them
// and stay in lockstep.
type Table struct {
	Columns  []string
	Rows     []Row
	Ratios   []float64
	Offset   int
	Selected int
	Focused  bool
}

var (
	tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Bold(true)
	selectedRowBg    = lipgloss.Color("#313244")
)

// VisibleRows reports how many data rows fit into height.
func (t Table) VisibleRows(height int) int {
	return max(0, height-1) // header
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Columns) == 0 {
		return "No data"
	}
	widths := splitSpans(max(1, width-len(t.Columns)+1), len(t.Columns), t.Ratios)

	lines := make([]string, 0, height)
	lines = append(lines, t.renderLine(t.Columns, widths, tableHeaderStyle))

	offset := max(0, t.Offset)
	for i := offset; i < len(t.Rows) && len(lines) < height; i++ {
		style := t.Rows[i].Style
		if i == t.Selected && t.Focused {
			style = style.Background(selectedRowBg).Bold(true)
		}
		lines = append(lines, t.renderLine(t.Rows[i].Cells, widths, style))
	}
	return strings.Join(lines, "\n")
}

func (t Table) renderLine(cells []string, widths []int, style lipgloss.Style) string {
	cols := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		cols[i] = style.Render(PadRight(cell, widths[i]))
	}
	return strings.Join(cols, " ")
}
