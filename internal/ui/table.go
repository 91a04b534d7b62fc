package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one table column. A zero Width sizes the column to its content.
type Column struct {
	Title    string
	Width    int
	MaxWidth int
}

// Table renders rows of pre-styled cells under a muted header and divider.
type Table struct {
	Columns []Column
	Rows    [][]string
}

// AddRow appends a row of cells.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render returns the table as a string, one line per row.
func (t *Table) Render() string {
	widths := t.widths()
	headerCol := lipgloss.NewStyle().Foreground(ColorMuted)

	var sb strings.Builder

	cells := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		cells[i] = lipgloss.NewStyle().Width(widths[i]).Render(headerCol.Render(c.Title))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	sb.WriteString("\n")

	divider := 0
	for _, w := range widths {
		divider += w
	}
	sb.WriteString(Muted.Render(strings.Repeat("─", divider)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			if limit := t.Columns[i].MaxWidth; limit > 0 {
				cell = truncateString(cell, limit)
			}
			cells[i] = lipgloss.NewStyle().Width(widths[i]).Render(cell)
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		sb.WriteString("\n")
	}

	return sb.String()
}

// widths computes each column's width: fixed if set, otherwise the widest cell plus padding.
func (t *Table) widths() []int {
	widths := make([]int, len(t.Columns))
	for i, c := range t.Columns {
		if c.Width > 0 {
			widths[i] = c.Width
			continue
		}
		w := lipgloss.Width(c.Title)
		for _, row := range t.Rows {
			if i >= len(row) {
				continue
			}
			cw := lipgloss.Width(row[i])
			if c.MaxWidth > 0 && cw > c.MaxWidth {
				cw = c.MaxWidth
			}
			if cw > w {
				w = cw
			}
		}
		widths[i] = w + 2 // padding
	}
	return widths
}

// truncateString truncates a string to maxLen runes, adding "..." if truncated.
// Styled strings are left alone since cutting them would break the escape sequences.
func truncateString(s string, maxLen int) string {
	if lipgloss.Width(s) != len([]rune(s)) {
		return s
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
