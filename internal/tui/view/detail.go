package view

import (
	"strings"
	"unicode/utf8"

	"github.com/glabrego/journal-cli/internal/journal"
	article "github.com/glabrego/journal-cli/internal/render/article"
	tuitheme "github.com/glabrego/journal-cli/internal/tui/theme"
)

func DetailLines(entry journal.Entry, width int, opts article.Options, th tuitheme.Theme) []string {
	if width < 1 {
		width = 1
	}
	title := strings.TrimSpace(entry.Title)
	if title == "" {
		title = untitled
	}

	lines := make([]string, 0, 16)
	for _, line := range article.WrapText(title, width) {
		lines = append(lines, th.DetailTitle.Render(line))
	}
	lines = append(lines, strings.Repeat("=", max(1, min(width, utf8.RuneCountInString(title)))))

	if content := article.ContentLinesWithOptions(entry.Description, width, opts); len(content) > 0 {
		lines = append(lines, "")
		lines = append(lines, content...)
	}
	return lines
}

// CopyText is the clipboard form of an entry: title then plain description.
func CopyText(entry journal.Entry) string {
	title := strings.TrimSpace(entry.Title)
	body := article.Text(entry.Description)
	switch {
	case title == "":
		return body
	case body == "":
		return title
	default:
		return title + "\n\n" + body
	}
}
