package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const cellGap = "  "

// column describes one table column. A column with an empty title still
// takes part in alignment.
type column struct {
	title string
	right bool
}

// writeTable prints rows aligned by display width. A header and a rule are
// printed only when some column has a title.
func writeTable(w io.Writer, cols []column, rows [][]string) error {
	for _, line := range tableLines(cols, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func tableLines(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := make([]int, len(cols))
	header := make([]string, len(cols))
	titled := false
	for i, c := range cols {
		header[i] = c.title
		widths[i] = runewidth.StringWidth(c.title)
		titled = titled || c.title != ""
	}
	for _, row := range rows {
		for i := range cols {
			if w := runewidth.StringWidth(cellAt(row, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+2)
	if titled {
		rule := make([]string, len(cols))
		for i, width := range widths {
			rule[i] = strings.Repeat("─", width)
		}
		lines = append(lines, joinCells(cols, header, widths), strings.Join(rule, cellGap))
	}
	for _, row := range rows {
		lines = append(lines, joinCells(cols, row, widths))
	}
	return lines
}

func joinCells(cols []column, row []string, widths []int) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = pad(cellAt(row, i), widths[i], c.right)
	}
	return strings.TrimRight(strings.Join(cells, cellGap), " ")
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func pad(value string, width int, right bool) string {
	gap := width - runewidth.StringWidth(value)
	if gap <= 0 {
		return value
	}
	if right {
		return strings.Repeat(" ", gap) + value
	}
	return value + strings.Repeat(" ", gap)
}
