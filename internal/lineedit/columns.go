package lineedit

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const columnGap = 2

// layoutColumns arranges items column-major, readline style, in as many
// columns as fit in width. A non-positive width yields one item per line.
func layoutColumns(items []string, width int) []string {
	if len(items) == 0 {
		return nil
	}
	cellWidth := 0
	for _, item := range items {
		if w := runewidth.StringWidth(item); w > cellWidth {
			cellWidth = w
		}
	}
	cellWidth += columnGap

	cols := 1
	if width > 0 {
		cols = width / cellWidth
		if cols < 1 {
			cols = 1
		}
	}
	rows := (len(items) + cols - 1) / cols

	lines := make([]string, 0, rows)
	for r := 0; r < rows; r++ {
		var b strings.Builder
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(items) {
				break
			}
			item := items[i]
			last := c == cols-1 || (c+1)*rows+r >= len(items)
			if last {
				b.WriteString(item)
				break
			}
			b.WriteString(runewidth.FillRight(item, cellWidth))
		}
		lines = append(lines, b.String())
	}
	return lines
}

// truncateList keeps at most limit items and reports how many were dropped.
func truncateList(items []string, limit int) ([]string, string) {
	if limit <= 0 || len(items) <= limit {
		return items, ""
	}
	return items[:limit], fmt.Sprintf("... and %d more", len(items)-limit)
}
