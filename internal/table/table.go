// Package table renders rows of text as a boxed, aligned terminal table.
// Cells may contain ANSI color sequences; they do not count towards the
// column width.
package table

import (
	"io"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment of text within a cell.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripAnsi removes ANSI color sequences from s.
func stripAnsi(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// Table accumulates a header and rows and renders them to a writer.
type Table struct {
	writer          io.Writer
	header          []string
	rows            [][]string
	columnAlignment []Alignment
	headerAlignment []Alignment
}

// NewTable returns an empty table that renders to w.
func NewTable(w io.Writer) *Table {
	return &Table{writer: w}
}

func (t *Table) WithHeader(header []string) *Table {
	t.header = header
	return t
}

func (t *Table) WithColumnAlignment(alignment []Alignment) *Table {
	t.columnAlignment = alignment
	return t
}

func (t *Table) WithHeaderAlignment(alignment []Alignment) *Table {
	t.headerAlignment = alignment
	return t
}

func (t *Table) WithRows(rows [][]string) *Table {
	t.rows = append(t.rows, rows...)
	return t
}

// Append adds a single row.
func (t *Table) Append(row []string) *Table {
	t.rows = append(t.rows, row)
	return t
}

// Render writes the table. Rows shorter than the header are padded with
// empty cells.
func (t *Table) Render() {
	widths := t.columnWidths()
	separator := t.separator(widths)

	var out strings.Builder
	out.WriteString(separator)
	if len(t.header) > 0 {
		out.WriteString(t.line(t.header, widths, t.headerAlignment))
		out.WriteString(separator)
	}
	for _, row := range t.rows {
		out.WriteString(t.line(row, widths, t.columnAlignment))
	}
	if len(t.rows) > 0 {
		out.WriteString(separator)
	}
	io.WriteString(t.writer, out.String())
}

func (t *Table) columnWidths() []int {
	count := len(t.header)
	for _, row := range t.rows {
		count = max(count, len(row))
	}
	widths := make([]int, count)
	measure := func(row []string) {
		for i, cell := range row {
			widths[i] = max(widths[i], cellWidth(cell))
		}
	}
	measure(t.header)
	for _, row := range t.rows {
		measure(row)
	}
	return widths
}

func (t *Table) separator(widths []int) string {
	var out strings.Builder
	out.WriteString("+")
	for _, w := range widths {
		out.WriteString(strings.Repeat("-", w+2))
		out.WriteString("+")
	}
	out.WriteString("\n")
	return out.String()
}

func (t *Table) line(row []string, widths []int, alignment []Alignment) string {
	var out strings.Builder
	out.WriteString("|")
	for i, w := range widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		align := AlignLeft
		if i < len(alignment) {
			align = alignment[i]
		}
		out.WriteString(" ")
		out.WriteString(pad(cell, w, align))
		out.WriteString(" |")
	}
	out.WriteString("\n")
	return out.String()
}

func cellWidth(cell string) int {
	return runewidth.StringWidth(stripAnsi(cell))
}

func pad(cell string, width int, align Alignment) string {
	space := width - cellWidth(cell)
	if space <= 0 {
		return cell
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", space) + cell
	case AlignCenter:
		left := space / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", space-left)
	default:
		return cell + strings.Repeat(" ", space)
	}
}
