package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens s to width display cells, appending an ellipsis when
// anything was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// sparkBlocks are the 8-level unicode bars used by sparklines.
var sparkBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// sparkline renders values as a one-line unicode sparkline normalized to the
// series maximum. An all-zero series renders as spaces.
func sparkline(values []int) string {
	maxVal := 0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		return strings.Repeat(" ", len(values))
	}

	var sb strings.Builder
	for _, v := range values {
		level := (v * 8) / maxVal
		if level > 8 {
			level = 8
		}
		sb.WriteRune(sparkBlocks[level])
	}
	return sb.String()
}

// bar renders a horizontal bar of the given display width, proportional to
// value/maxVal.
func bar(value, maxVal, width int) string {
	if maxVal <= 0 || width <= 0 {
		return ""
	}
	filled := value * width / maxVal
	if filled == 0 && value > 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// formatPct renders a percentage with one decimal, the precision every rate
// in the aggregation core carries.
func formatPct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// columnWidths sizes each column to its widest cell, headers included.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// renderTable renders a simple aligned table in the theme's row styles.
// cursor selects the highlighted row; pass -1 for none.
func renderTable(t Theme, headers []string, rows [][]string, cursor int, maxWidth int) string {
	widths := columnWidths(headers, rows)

	// Shrink the first column when the table overflows.
	total := len(headers) - 1
	for _, w := range widths {
		total += w
	}
	if maxWidth > 0 && total > maxWidth {
		excess := total - maxWidth
		if widths[0]-excess < 4 {
			widths[0] = 4
		} else {
			widths[0] -= excess
		}
	}

	renderRow := func(cells []string) string {
		parts := make([]string, 0, len(cells))
		for i, cell := range cells {
			cell = truncate(cell, widths[i])
			parts = append(parts, padRight(cell, widths[i]))
		}
		return strings.Join(parts, " ")
	}

	var b strings.Builder
	b.WriteString(t.Header.Render(renderRow(headers)))
	for i, row := range rows {
		b.WriteString("\n")
		line := renderRow(row)
		if i == cursor {
			b.WriteString(t.Selected.Render(line))
		} else {
			b.WriteString(t.Base.Render(line))
		}
	}
	return b.String()
}
