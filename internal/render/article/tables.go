package article

import (
	"strings"

	nethtml "golang.org/x/net/html"
)

const (
	tableColumnGap = " │ "
	minColumnWidth = 3
)

// renderTable lays rows out as aligned columns. When the grid is wider than
// the renderer, the widest columns shrink and their cells are cut with "…".
func (r htmlArticleRenderer) renderTable(table *nethtml.Node) []string {
	rows, header := r.tableCells(table)
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	fitColumns(widths, r.width-visibleLen(tableColumnGap)*(len(widths)-1))

	gap := blocks.tableBorder.Render(tableColumnGap)
	lines := make([]string, 0, len(rows)+1)
	for i, row := range rows {
		cells := make([]string, len(widths))
		for col, w := range widths {
			cell := ""
			if col < len(row) {
				cell = fitCell(row[col], w)
			}
			if i == 0 && header {
				cell = blocks.tableHeader.Render(cell)
			}
			cells[col] = cell + strings.Repeat(" ", w-visibleLen(cell))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, gap), " "))
		if i == 0 && header {
			rules := make([]string, len(widths))
			for col, w := range widths {
				rules[col] = strings.Repeat("─", w)
			}
			lines = append(lines, blocks.tableBorder.Render(strings.Join(rules, "─┼─")))
		}
	}
	return lines
}

// tableCells collects the inline text of every th/td, row by row. header
// reports whether the first row is made of th cells.
func (r htmlArticleRenderer) tableCells(table *nethtml.Node) ([][]string, bool) {
	var rows [][]string
	header := false
	cellRenderer := htmlArticleRenderer{width: 1 << 16, opts: r.opts}

	var walk func(*nethtml.Node)
	walk = func(node *nethtml.Node) {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type != nethtml.ElementNode || isActiveContent(child.Data) {
				continue
			}
			if !strings.EqualFold(child.Data, "tr") {
				walk(child)
				continue
			}
			var row []string
			allHeader := true
			for cell := child.FirstChild; cell != nil; cell = cell.NextSibling {
				if cell.Type != nethtml.ElementNode {
					continue
				}
				isHeader := strings.EqualFold(cell.Data, "th")
				if !isHeader && !strings.EqualFold(cell.Data, "td") {
					continue
				}
				allHeader = allHeader && isHeader
				text := cellRenderer.inlineText(cell)
				row = append(row, strings.ReplaceAll(text, "\n", " "))
			}
			if len(row) == 0 {
				continue
			}
			if len(rows) == 0 {
				header = allHeader
			}
			rows = append(rows, row)
		}
	}
	walk(table)
	return rows, header
}

func columnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for col, cell := range row {
			if col >= len(widths) {
				widths = append(widths, 1)
			}
			widths[col] = max(widths[col], visibleLen(cell))
		}
	}
	return widths
}

// fitColumns shrinks the widest column one rune at a time until the total
// fits in budget or every column is at its minimum.
func fitColumns(widths []int, budget int) {
	total := 0
	for _, w := range widths {
		total += w
	}
	for total > budget {
		widest := 0
		for col, w := range widths {
			if w > widths[widest] {
				widest = col
			}
		}
		if widths[widest] <= minColumnWidth {
			return
		}
		widths[widest]--
		total--
	}
}

func fitCell(cell string, width int) string {
	if visibleLen(cell) <= width {
		return cell
	}
	runes := []rune(stripANSI(cell))
	return string(runes[:max(0, width-1)]) + "…"
}
