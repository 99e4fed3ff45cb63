package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+3), // header and its border, plus slack
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorPrimary)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	// Nothing is focused, so the selected row must look like any other.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	t := NewTable(columns, tableRows)
	return strings.TrimRight(t.View(), " \n")
}

// RenderKeyValues renders two-column rows, sizing each column to its widest
// cell (header included).
func RenderKeyValues(keyTitle, valueTitle string, rows [][2]string) string {
	keyWidth := lipgloss.Width(keyTitle)
	valueWidth := lipgloss.Width(valueTitle)

	cells := make([][]string, len(rows))
	for i, r := range rows {
		keyWidth = max(keyWidth, lipgloss.Width(r[0]))
		valueWidth = max(valueWidth, lipgloss.Width(r[1]))
		cells[i] = []string{r[0], r[1]}
	}

	return RenderSimpleTable([]TableColumn{
		{Title: keyTitle, Width: keyWidth},
		{Title: valueTitle, Width: valueWidth},
	}, cells)
}
