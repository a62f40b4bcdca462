// Package table renders rows of values as a terminal table with lipgloss.
package table

import (
	"fmt"
	"os"
	"strings"
	"time"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is implemented by anything which can be listed as a table
type TableData interface {
	// Header returns the column labels
	Header() []string

	// Len returns the number of rows
	Len() int

	// Row returns the cell values for row i, or nil to skip the row
	Row(i int) []any
}

// Bold marks a cell to be highlighted
type Bold struct{ Value any }

///////////////////////////////////////////////////////////////////////////////
// STYLES

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	borderStyle = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render returns the table as a string. When stdout is a terminal narrower
// than the table, columns are wrapped to fit.
func Render(data TableData) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Wrap(true).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})
	for i := range data.Len() {
		if row := data.Row(i); row != nil {
			cells := make([]string, len(row))
			for j, v := range row {
				cells[j] = FormatCell(v)
			}
			t.Row(cells...)
		}
	}

	result := t.Render()
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 && lipgloss.Width(result) > width {
		result = t.Width(width).Render()
	}
	return result
}

// FormatCell returns the display string for a value. Empty and zero values
// are shown as "-".
func FormatCell(v any) string {
	switch v := v.(type) {
	case nil:
		return "-"
	case Bold:
		return boldStyle.Render(FormatCell(v.Value))
	case string:
		if v == "" {
			return "-"
		}
		return v
	case time.Time:
		if v.IsZero() {
			return "-"
		}
		return v.Format("2006-01-02 15:04")
	case []string:
		if len(v) == 0 {
			return "-"
		}
		return strings.Join(v, ", ")
	case bool:
		if v {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprint(v)
	}
}

// Truncate shortens s to max runes on one line, ending in "…" when cut
func Truncate(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	if r := []rune(s); len(r) > max && max > 0 {
		return string(r[:max-1]) + "…"
	}
	return s
}
